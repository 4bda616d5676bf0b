package solver

import (
	"sync"
)

// Cache stores exact negamax scores by game key.
type Cache struct {
	// data stores the underlying map
	data map[string]int

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]int),
	}
}

// Upsert adds or overwrites the score of a position.
func (c *Cache) Upsert(key string, score int) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	c.data[key] = score
}

// Lookup returns the stored score of a position.
func (c *Cache) Lookup(key string) (int, bool) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	score, ok := c.data[key]
	return score, ok
}

// Len returns the number of stored positions.
func (c *Cache) Len() int {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	return len(c.data)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	clear(c.data)
}
