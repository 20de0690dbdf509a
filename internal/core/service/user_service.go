package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository) ports.UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, params ports.ListParams) (*ports.UserPage, error) {
	users, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}

	return &ports.UserPage{
		TotalUsers:  total,
		TotalPages:  ports.TotalPages(total, params.Limit),
		CurrentPage: params.Page,
		Users:       users,
	}, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the non-empty fields of in. A new password is re-hashed;
// the stored hash is otherwise left untouched.
func (s *userService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, id, user)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
