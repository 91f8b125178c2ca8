package group

import "time"

// Cache holds the group list of a username.
type Cache interface {
	GetByUsername(username string) ([]string, bool)
	SetByUsername(username string, groupIDs []string, ttl time.Duration)
	DeleteByUsername(username string)
}

type noopCache struct{}

func (noopCache) GetByUsername(string) ([]string, bool) {
	return nil, false
}

func (noopCache) SetByUsername(string, []string, time.Duration) {}

func (noopCache) DeleteByUsername(string) {}
