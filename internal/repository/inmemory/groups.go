package inmemory

import (
	"sync"
	"time"
)

// GroupListCache keeps the invite codes a username belongs to.
type GroupListCache struct {
	mu    sync.RWMutex
	items map[string]groupListItem
}

type groupListItem struct {
	value     []string
	expiresAt time.Time
}

func NewGroupListCache() *GroupListCache {
	return &GroupListCache{
		items: make(map[string]groupListItem),
	}
}

func (c *GroupListCache) GetByUsername(username string) ([]string, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[username]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[username]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, username)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneStrings(item.value), true
}

func (c *GroupListCache) SetByUsername(username string, groupIDs []string, ttl time.Duration) {
	if ttl <= 0 {
		c.DeleteByUsername(username)
		return
	}

	c.mu.Lock()
	c.items[username] = groupListItem{
		value:     cloneStrings(groupIDs),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *GroupListCache) DeleteByUsername(username string) {
	c.mu.Lock()
	delete(c.items, username)
	c.mu.Unlock()
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
