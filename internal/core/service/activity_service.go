package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

var (
	activityRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "activity_recorded_total",
			Help:      "Total number of activity events recorded.",
		},
		[]string{"kind"},
	)
	activityErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "activity_errors_total",
			Help:      "Total number of activity events that failed to persist.",
		},
		[]string{"kind"},
	)
)

type activityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// Record assigns the event id and timestamp, then appends to the audit
// trail. Called from dispatcher workers.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	activity := &domain.Activity{
		ID:        uuid.NewString(),
		Kind:      in.Kind,
		SubjectID: in.SubjectID,
		ActorID:   in.ActorID,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		activityErrorsTotal.WithLabelValues(string(in.Kind)).Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	activityRecordedTotal.WithLabelValues(string(in.Kind)).Inc()
	s.logger.Debug().
		Str("kind", string(in.Kind)).
		Str("subject_id", in.SubjectID).
		Msg("activity recorded")
	return nil
}
