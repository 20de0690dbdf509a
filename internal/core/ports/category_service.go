package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
