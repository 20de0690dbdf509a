package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Create must surface domain.ErrEmailTaken on a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, params ListParams) ([]domain.User, int64, error)
	Update(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
