package service

import (
	"context"
	"time"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

type commentService struct {
	repo     ports.CommentRepository
	posts    ports.PostRepository
	activity ports.ActivitySink
}

// NewCommentService returns a CommentService implementation.
func NewCommentService(repo ports.CommentRepository, posts ports.PostRepository, activity ports.ActivitySink) ports.CommentService {
	return &commentService{repo: repo, posts: posts, activity: activity}
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	comments, err := s.repo.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// Create stores a comment after checking the target post exists.
func (s *commentService) Create(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Kind:      domain.ActivityCommentCreated,
			SubjectID: in.PostID,
			ActorID:   in.AuthorID,
		})
	}
	return created, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
