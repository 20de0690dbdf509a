package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// PostRepository defines the persistence contract for posts. List applies
// the search and exact-match filters from params and returns the page of
// posts plus the total match count.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, params ListParams) ([]domain.Post, int64, error)
	Update(ctx context.Context, id string, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
