package spell

import "sync"

// Cache maps misspelled words to the corrections found for them, so repeated
// lookups skip the dictionary scan. Only found matches are stored. A failed
// search is never recorded, which keeps words reachable after later dictionary
// additions. Entries survive until Purge.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache returns an empty suggestion cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached suggestion for word.
func (c *Cache) Get(word string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[word]
	return s, ok
}

// Put records a found suggestion for word.
func (c *Cache) Put(word, suggestion string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[word] = suggestion
}

// Purge drops every entry and returns how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]string)
	return n
}

// Len returns the number of cached suggestions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
