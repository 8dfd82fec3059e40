package services

import (
	"context"
	"errors"
	"fmt"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// UserService handles login and user administration reads.
type UserService struct {
	users    UserRepository
	sessions *SessionService
	hasher   PasswordHasher
}

// NewUserService creates a UserService.
func NewUserService(users UserRepository, sessions *SessionService, hasher PasswordHasher) *UserService {
	return &UserService{users: users, sessions: sessions, hasher: hasher}
}

// Login verifies the credentials and issues a session. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNoRecord) {
			return nil, domain.ErrInvalidUser
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if err := s.hasher.Verify(user.Password, password); err != nil {
		return nil, domain.ErrInvalidUser
	}

	return s.sessions.Issue(ctx, user.ID, user.Username, user.Role)
}

// List returns one page of non-admin accounts.
func (s *UserService) List(ctx context.Context, q query.UserList) (*domain.Page[domain.User], error) {
	return s.users.List(ctx, q)
}
