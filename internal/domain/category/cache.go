package category

import "time"

type Cache interface {
	Get(groupID, categoryType string) ([]string, bool)
	Set(groupID, categoryType string, names []string, ttl time.Duration)
	Delete(groupID, categoryType string)
}

type noopCache struct{}

func (noopCache) Get(string, string) ([]string, bool) {
	return nil, false
}

func (noopCache) Set(string, string, []string, time.Duration) {}

func (noopCache) Delete(string, string) {}
