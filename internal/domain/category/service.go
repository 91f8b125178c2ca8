package category

import (
	"context"
	"strings"
	"time"
)

const defaultCacheTTL = 5 * time.Minute

type Config struct {
	CacheTTL time.Duration
}

func DefaultConfig() Config {
	return Config{CacheTTL: defaultCacheTTL}
}

// Service is the per-group category catalog. It performs no membership check;
// any caller that knows a group id may read or extend its categories.
type Service struct {
	repo  Repository
	cache Cache
	cfg   Config
}

func NewService(repo Repository, cache Cache, cfg Config) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}
	return &Service{repo: repo, cache: cache, cfg: cfg}
}

// AddCategory stores name under (groupID, categoryType). Adding an existing
// category succeeds without changes.
func (s *Service) AddCategory(ctx context.Context, groupID, categoryType, name string) error {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return ErrGroupRequired
	}
	if !ValidType(categoryType) {
		return ErrInvalidType
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	err := s.repo.AddCategory(ctx, &Category{
		GroupID: groupID,
		Type:    categoryType,
		Name:    name,
	})
	if err != nil {
		return err
	}

	s.cache.Delete(groupID, categoryType)
	return nil
}

// ListCategories returns the names under (groupID, categoryType). An empty
// type means expense. A blank group or unknown type yields an empty list.
func (s *Service) ListCategories(ctx context.Context, groupID, categoryType string) ([]string, error) {
	groupID = strings.TrimSpace(groupID)
	if categoryType == "" {
		categoryType = TypeExpense
	}
	if groupID == "" || !ValidType(categoryType) {
		return []string{}, nil
	}

	if cached, ok := s.cache.Get(groupID, categoryType); ok {
		return cached, nil
	}

	names, err := s.repo.ListCategoryNames(ctx, groupID, categoryType)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}

	if s.cfg.CacheTTL > 0 {
		s.cache.Set(groupID, categoryType, names, s.cfg.CacheTTL)
	}
	return names, nil
}
