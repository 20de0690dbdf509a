package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// CreatePostInput carries all data needed to publish a post.
type CreatePostInput struct {
	Title      string
	Content    string
	AuthorID   string
	Categories []string
	Tags       []string
}

// UpdatePostInput carries the replacement content for an existing post.
type UpdatePostInput struct {
	Title      string
	Content    string
	Categories []string
	Tags       []string
}

// PostPage is the envelope returned by post listings.
type PostPage struct {
	TotalPosts  int64         `json:"totalPosts"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
	Posts       []domain.Post `json:"posts"`
}

type PostService interface {
	List(ctx context.Context, params ListParams) (*PostPage, error)
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
