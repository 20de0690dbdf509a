package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

// ViewCounter abstracts the read-counter store (Redis). Counter failures are
// never fatal to a request.
type ViewCounter interface {
	Increment(ctx context.Context, postID string) (int64, error)
}

type postService struct {
	repo     ports.PostRepository
	views    ViewCounter
	activity ports.ActivitySink
	logger   zerolog.Logger
}

// NewPostService returns a PostService implementation.
func NewPostService(repo ports.PostRepository, views ViewCounter, activity ports.ActivitySink, logger zerolog.Logger) ports.PostService {
	return &postService{repo: repo, views: views, activity: activity, logger: logger}
}

func (s *postService) List(ctx context.Context, params ports.ListParams) (*ports.PostPage, error) {
	posts, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	return &ports.PostPage{
		TotalPosts:  total,
		TotalPages:  ports.TotalPages(total, params.Limit),
		CurrentPage: params.Page,
		Posts:       posts,
	}, nil
}

func (s *postService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:      in.Title,
		Content:    in.Content,
		AuthorID:   in.AuthorID,
		Categories: in.Categories,
		Tags:       in.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Kind:      domain.ActivityPostCreated,
			SubjectID: created.ID,
			ActorID:   in.AuthorID,
		})
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", in.AuthorID).Msg("post created")
	return created, nil
}

// Get fetches a post and bumps its view counter. A counter error only
// degrades the response (views stay zero).
func (s *postService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.views != nil {
		views, err := s.views.Increment(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("post_id", id).Msg("view counter unavailable")
		} else {
			post.Views = views
		}
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.Categories = in.Categories
	post.Tags = in.Tags
	post.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, id, post)
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Kind:      domain.ActivityPostDeleted,
			SubjectID: id,
		})
	}
	return nil
}
