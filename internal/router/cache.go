package router

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// vectorCache stores utterance embeddings. Entries are write-once: routes are
// immutable after startup, so staleness is not a concern. Per-route mutexes
// make sure concurrent cold-start requests embed each route's examples once.
type vectorCache struct {
	vectors *lru.Cache[string, []float32]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newVectorCache(size int) (*vectorCache, error) {
	vectors, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}
	return &vectorCache{
		vectors: vectors,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (c *vectorCache) get(key string) ([]float32, bool) {
	return c.vectors.Get(key)
}

func (c *vectorCache) add(key string, vec []float32) {
	c.vectors.Add(key, vec)
}

// lock acquires the mutex for the given key, creating it on first use.
// The returned func releases it.
func (c *vectorCache) lock(key string) func() {
	c.mu.Lock()
	m, ok := c.locks[key]
	if !ok {
		m = &sync.Mutex{}
		c.locks[key] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}
