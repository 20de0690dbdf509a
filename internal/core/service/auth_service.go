package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	activity ports.ActivitySink
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, activity ports.ActivitySink) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, activity: activity}
}

// Register creates a user account. The plaintext password is hashed here
// and never stored or logged.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Kind:      domain.ActivityUserRegistered,
			SubjectID: created.ID,
			ActorID:   created.ID,
		})
	}
	return created, nil
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password both yield ErrInvalidCredentials so the response cannot be
// used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Role)
}
