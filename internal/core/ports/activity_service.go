package ports

import (
	"context"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

// ActivityInput is a raw audit event handed to the dispatcher. The service
// assigns the id and timestamp when recording.
type ActivityInput struct {
	Kind      domain.ActivityKind
	SubjectID string
	ActorID   string
}

// ActivityService persists a single audit event. Implementations are called
// from dispatcher workers, never from request handlers directly.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
}

// ActivitySink is the producer side of the audit pipeline; handlers and
// services enqueue without blocking on persistence.
type ActivitySink interface {
	Enqueue(in ActivityInput)
}
