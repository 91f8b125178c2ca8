package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service is the identity directory: it maps usernames to user ids and owns
// registration and credential checks. Identity is asserted by the caller; there
// is no session or token layer.
type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate returns the matched username when the exact pair was registered.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return user.Username, nil
}

func (s *Service) Resolve(ctx context.Context, username string) (int64, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
