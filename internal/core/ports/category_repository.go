package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// CategoryRepository defines the persistence contract for categories.
// Create must surface domain.ErrCategoryExists on a duplicate name.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
}
