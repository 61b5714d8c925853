package kvstore

import (
	"errors"
	"time"
)

var (
	ErrNotExist = errors.New("key not exist")
)

// Store is an opaque key-value store. There is no compare-and-swap and
// no transaction: concurrent read-modify-write sequences against the
// same key can lose updates, and callers are expected to live with that.
type Store interface {
	Get(key string) (string, error)
	Put(key string, value string, ttl time.Duration) error
	Delete(key string) error
}
