package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// AuthService covers registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
