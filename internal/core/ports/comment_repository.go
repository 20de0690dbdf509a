package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// CommentRepository defines the persistence contract for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
