package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/momo66-22/telegram-feed-pages/internal/kvstore"
)

// KVRepo counts a view once per user per TTL window. A marker key with
// an expiry guards the increment; the counter itself is the same
// unprotected read-modify-write the reaction repo uses.
type KVRepo struct {
	store   kvstore.Store
	seenTTL time.Duration
}

var _ ViewRepo = (*KVRepo)(nil)

func NewKVRepo(store kvstore.Store, seenTTL time.Duration) *KVRepo {
	return &KVRepo{
		store:   store,
		seenTTL: seenTTL,
	}
}

func viewsKey(postID string) string {
	return fmt.Sprintf("v:count:%s", postID)
}

func seenKey(postID string, userID string) string {
	return fmt.Sprintf("v:seen:%s:%s", postID, userID)
}

func (r *KVRepo) Get(postID string) (int, error) {
	if postID == "" {
		return 0, ErrEmptyPostID
	}

	return r.count(viewsKey(postID))
}

func (r *KVRepo) Seen(postID string, userID string) (int, bool, error) {
	if postID == "" {
		return 0, false, ErrEmptyPostID
	}
	if userID == "" {
		return 0, false, ErrEmptyUserID
	}

	sk := seenKey(postID, userID)
	_, err := r.store.Get(sk)
	if err == nil {
		views, err := r.count(viewsKey(postID))
		return views, false, err
	}
	if err != kvstore.ErrNotExist {
		return 0, false, err
	}

	if err := r.store.Put(sk, "1", r.seenTTL); err != nil {
		return 0, false, err
	}

	vk := viewsKey(postID)
	current, err := r.count(vk)
	if err != nil {
		return 0, false, err
	}

	next := current + 1
	if err := r.store.Put(vk, strconv.Itoa(next), 0); err != nil {
		return 0, false, err
	}

	return next, true, nil
}

func (r *KVRepo) count(key string) (int, error) {
	raw, err := r.store.Get(key)
	if err == kvstore.ErrNotExist {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, nil
	}

	return n, nil
}
