package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

type stubCommentRepo struct {
	comments []domain.Comment
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	created := *comment
	created.ID = "comment_1"
	r.comments = append(r.comments, created)
	return &created, nil
}

func (r *stubCommentRepo) FindByPost(_ context.Context, postID string) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.comments {
		if c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

func TestCommentService_Create_ChecksPostExists(t *testing.T) {
	posts := newStubPostRepo()
	comments := &stubCommentRepo{}
	svc := NewCommentService(comments, posts, nil)

	_, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID:   "missing",
		AuthorID: "user_1",
		Content:  "hi",
	})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Create_EnqueuesActivity(t *testing.T) {
	posts := newStubPostRepo()
	posts.posts["post_1"] = &domain.Post{ID: "post_1"}
	comments := &stubCommentRepo{}
	sink := &stubSink{}
	svc := NewCommentService(comments, posts, sink)

	comment, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID:   "post_1",
		AuthorID: "user_1",
		Content:  "nice post",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comment.ID == "" {
		t.Fatalf("expected id assigned")
	}
	if len(sink.events) != 1 || sink.events[0].Kind != domain.ActivityCommentCreated {
		t.Fatalf("expected comment_created activity, got %+v", sink.events)
	}
}

func TestCommentService_ListByPost_EmptyIsNotNil(t *testing.T) {
	svc := NewCommentService(&stubCommentRepo{}, newStubPostRepo(), nil)
	comments, err := svc.ListByPost(context.Background(), "post_1")
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if comments == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
