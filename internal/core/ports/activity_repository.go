package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// ActivityRepository appends entries to the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}
