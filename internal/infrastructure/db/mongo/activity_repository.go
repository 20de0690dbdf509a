package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogcraft/blog-api/internal/core/domain"
)

const collectionActivity = "activity"

// ActivityRepository appends audit-trail documents. Entries are never
// updated or deleted.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

type mongoActivity struct {
	ID        string    `bson:"_id"`
	Kind      string    `bson:"kind"`
	SubjectID string    `bson:"subject_id"`
	ActorID   string    `bson:"actor_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		ID:        activity.ID,
		Kind:      string(activity.Kind),
		SubjectID: activity.SubjectID,
		ActorID:   activity.ActorID,
		Timestamp: activity.Timestamp,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// EnsureIndexes creates the subject_id index used for per-entity history
// queries.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "subject_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
