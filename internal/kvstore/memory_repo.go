package kvstore

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

type MemoryRepo struct {
	items map[string]entry
	mu    *sync.RWMutex
}

var _ Store = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items: make(map[string]entry),
		mu:    &sync.RWMutex{},
	}
}

func (r *MemoryRepo) Get(key string) (string, error) {
	r.mu.RLock()
	e, ok := r.items[key]
	r.mu.RUnlock()

	if !ok {
		return "", ErrNotExist
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		r.mu.Lock()
		delete(r.items, key)
		r.mu.Unlock()
		return "", ErrNotExist
	}

	return e.value, nil
}

func (r *MemoryRepo) Put(key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	r.mu.Lock()
	r.items[key] = e
	r.mu.Unlock()

	return nil
}

func (r *MemoryRepo) Delete(key string) error {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()

	return nil
}
