package inmemory

import (
	"sync"
	"time"
)

// CategoriesCache keeps category names per group and record type.
type CategoriesCache struct {
	mu    sync.RWMutex
	items map[categoriesKey]categoriesItem
}

type categoriesKey struct {
	groupID      string
	categoryType string
}

type categoriesItem struct {
	value     []string
	expiresAt time.Time
}

func NewCategoriesCache() *CategoriesCache {
	return &CategoriesCache{
		items: make(map[categoriesKey]categoriesItem),
	}
}

func (c *CategoriesCache) Get(groupID, categoryType string) ([]string, bool) {
	key := categoriesKey{groupID: groupID, categoryType: categoryType}
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[key]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneStrings(item.value), true
}

func (c *CategoriesCache) Set(groupID, categoryType string, names []string, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(groupID, categoryType)
		return
	}

	c.mu.Lock()
	c.items[categoriesKey{groupID: groupID, categoryType: categoryType}] = categoriesItem{
		value:     cloneStrings(names),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *CategoriesCache) Delete(groupID, categoryType string) {
	c.mu.Lock()
	delete(c.items, categoriesKey{groupID: groupID, categoryType: categoryType})
	c.mu.Unlock()
}
