package domain

import "time"

// ActivityKind enumerates the recorded platform events.
type ActivityKind string

const (
	ActivityUserRegistered ActivityKind = "user_registered"
	ActivityPostCreated    ActivityKind = "post_created"
	ActivityPostDeleted    ActivityKind = "post_deleted"
	ActivityCommentCreated ActivityKind = "comment_created"
)

// Activity is an audit-trail entry written asynchronously after a mutation.
// SubjectID identifies the affected entity; events for the same subject are
// processed in order.
type Activity struct {
	ID        string       `json:"id"`
	Kind      ActivityKind `json:"kind"`
	SubjectID string       `json:"subject_id"`
	ActorID   string       `json:"actor_id,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
