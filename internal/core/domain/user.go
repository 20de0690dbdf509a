package domain

import (
	"errors"
	"time"
)

const (
	RoleAuthor = "author"
	RoleReader = "reader"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account on the platform. PasswordHash holds the bcrypt
// digest; the plaintext password never survives past the service boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the recognised user roles.
func ValidRole(role string) bool {
	return role == RoleAuthor || role == RoleReader
}
