package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.ActivityInput
}

func (s *recordingService) Record(_ context.Context, in ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, in)
	return nil
}

func (s *recordingService) snapshot() []ports.ActivityInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.ActivityInput, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.ActivityInput{Kind: domain.ActivityPostCreated, SubjectID: "post_1"})
	d.Enqueue(ports.ActivityInput{Kind: domain.ActivityCommentCreated, SubjectID: "post_2"})

	waitFor(t, func() bool { return len(svc.snapshot()) == 2 })
}

func TestDispatcher_PerSubjectOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	kinds := []domain.ActivityKind{
		domain.ActivityPostCreated,
		domain.ActivityCommentCreated,
		domain.ActivityPostDeleted,
	}
	for _, k := range kinds {
		d.Enqueue(ports.ActivityInput{Kind: k, SubjectID: "post_1"})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == 3 })

	got := svc.snapshot()
	for i, k := range kinds {
		if got[i].Kind != k {
			t.Fatalf("event %d out of order: expected %s, got %s", i, k, got[i].Kind)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingService{}, zerolog.Nop())
	first := d.shardIndex("post_1")
	for i := 0; i < 100; i++ {
		if d.shardIndex("post_1") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
