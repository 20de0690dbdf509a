package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// CreateCommentInput carries the data for a new comment.
type CreateCommentInput struct {
	PostID   string
	AuthorID string
	Content  string
}

type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Create(ctx context.Context, in CreateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
