package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	nextID  int
	findErr error // returned by FindByEmail when set
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = user.Username
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ ports.ListParams) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, user *domain.User) (*domain.User, error) {
	for email, u := range r.users {
		if u.ID == id {
			updated := cloneUser(user)
			updated.ID = id
			delete(r.users, email)
			r.users[updated.Email] = updated
			return cloneUser(updated), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSink struct {
	events []ports.ActivityInput
}

func (s *stubSink) Enqueue(in ports.ActivityInput) {
	s.events = append(s.events, in)
}

func newAuthService(t *testing.T, repo ports.UserRepository, sink ports.ActivitySink) *AuthService {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return NewAuthService(repo, tokens, sink)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	sink := &stubSink{}
	svc := newAuthService(t, repo, sink)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123", domain.RoleAuthor)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAuthor {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if len(sink.events) != 1 || sink.events[0].Kind != domain.ActivityUserRegistered {
		t.Fatalf("expected user_registered activity, got %+v", sink.events)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), "", "a@b.com", "pass", domain.RoleReader); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass", "admin"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass12", domain.RoleReader); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bobby", "bob@example.com", "pass34", domain.RoleReader); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret", domain.RoleAuthor); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	tokens, _ := NewTokenService("secret", time.Hour)
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != domain.RoleAuthor {
		t.Fatalf("expected role %s, got %s", domain.RoleAuthor, claims.Role)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo, nil)

	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass", domain.RoleReader)

	// Wrong password and unknown email must be indistinguishable.
	_, errWrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, errNoUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errNoUser)
	}
}

func TestAuthService_Login_StoreFailureNotCredentialError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection reset by peer")
	svc := newAuthService(t, repo, nil)

	// A store outage is not a credential problem and must not be reported
	// as one, or callers would render it as a 400.
	_, err := svc.Login(context.Background(), "dave@example.com", "goodpass")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure collapsed into ErrInvalidCredentials: %v", err)
	}
	if !errors.Is(err, repo.findErr) {
		t.Fatalf("expected underlying store error, got %v", err)
	}
}
