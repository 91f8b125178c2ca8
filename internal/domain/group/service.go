package group

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"
)

const (
	inviteCodeLength   = 6
	inviteCodeAttempts = 10
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	defaultListCacheTTL = time.Minute
)

type Config struct {
	ListCacheTTL time.Duration
}

type Service struct {
	repo  Repository
	users IdentityResolver
	cache Cache
	cfg   Config

	newCode func(length int) (string, error)
}

func NewService(repo Repository, users IdentityResolver, cache Cache, cfg Config) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if cfg.ListCacheTTL < 0 {
		cfg.ListCacheTTL = 0
	}
	return &Service{repo: repo, users: users, cache: cache, cfg: cfg, newCode: generateCode}
}

func DefaultConfig() Config {
	return Config{ListCacheTTL: defaultListCacheTTL}
}

// CreateGroup registers a new group owned by username and makes the creator
// its first member. The group row and the membership commit together.
func (s *Service) CreateGroup(ctx context.Context, username string) (string, error) {
	userID, err := s.users.Resolve(ctx, username)
	if err != nil {
		return "", err
	}

	for i := 0; i < inviteCodeAttempts; i++ {
		code, err := s.newCode(inviteCodeLength)
		if err != nil {
			return "", err
		}

		err = s.repo.Transaction(ctx, func(tx Repository) error {
			taken, err := tx.GroupExists(ctx, code)
			if err != nil {
				return err
			}
			if taken {
				return ErrCodeTaken
			}

			if err := tx.CreateGroup(ctx, &Group{GroupID: code, CreatorID: userID}); err != nil {
				return err
			}
			return tx.AddMember(ctx, &Membership{UserID: userID, GroupID: code})
		})
		if errors.Is(err, ErrCodeTaken) {
			continue
		}
		if err != nil {
			return "", err
		}

		s.cache.DeleteByUsername(username)
		return code, nil
	}

	return "", ErrCodeGenerationFailed
}

// JoinGroup adds username to the group named by code. Joining a group twice
// succeeds and leaves a single membership.
func (s *Service) JoinGroup(ctx context.Context, username, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrCodeRequired
	}

	userID, err := s.users.Resolve(ctx, username)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.GroupExists(ctx, code)
		if err != nil {
			return err
		}
		if !exists {
			return ErrGroupNotFound
		}
		return tx.AddMember(ctx, &Membership{UserID: userID, GroupID: code})
	})
	if err != nil {
		return err
	}

	s.cache.DeleteByUsername(username)
	return nil
}

func (s *Service) ListGroups(ctx context.Context, username string) ([]string, error) {
	if cached, ok := s.cache.GetByUsername(username); ok {
		return cached, nil
	}

	groupIDs, err := s.repo.ListGroupIDsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if groupIDs == nil {
		groupIDs = []string{}
	}

	if s.cfg.ListCacheTTL > 0 {
		s.cache.SetByUsername(username, groupIDs, s.cfg.ListCacheTTL)
	}
	return groupIDs, nil
}

// HasAccess reports whether username is a member of groupID.
func (s *Service) HasAccess(ctx context.Context, username, groupID string) (bool, error) {
	if username == "" || groupID == "" {
		return false, nil
	}
	return s.repo.HasMembership(ctx, username, groupID)
}

func generateCode(length int) (string, error) {
	max := big.NewInt(int64(len(inviteCodeAlphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(inviteCodeAlphabet[n.Int64()])
	}

	return builder.String(), nil
}
