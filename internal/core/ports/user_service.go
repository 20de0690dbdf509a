package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// UpdateUserInput carries the optional profile fields for an update. Empty
// fields are left unchanged; a non-empty Password is re-hashed before
// storage.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

// UserPage is the envelope returned by user listings.
type UserPage struct {
	TotalUsers  int64         `json:"totalUsers"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
	Users       []domain.User `json:"users"`
}

type UserService interface {
	List(ctx context.Context, params ListParams) (*UserPage, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
