package reaction

import (
	"fmt"
	"strconv"

	"github.com/momo66-22/telegram-feed-pages/internal/kvstore"
)

// KVRepo stores reactions under one counter key per (post, kind) and
// one marker key per (post, user, kind). Toggle is a plain
// read-modify-write over those keys: two concurrent toggles for the
// same (post, kind) can both read the same counter value and one
// increment gets lost. The store offers no compare-and-swap, so this
// stays as an accepted weak-consistency property; the client controller
// is built to reconcile around it.
type KVRepo struct {
	store kvstore.Store
	kinds []string
}

var _ ReactionRepo = (*KVRepo)(nil)

func NewKVRepo(store kvstore.Store, kinds []string) *KVRepo {
	return &KVRepo{
		store: store,
		kinds: kinds,
	}
}

func (r *KVRepo) Kinds() []string {
	return r.kinds
}

func countKey(postID string, kind string) string {
	return fmt.Sprintf("r:count:%s:%s", postID, kind)
}

func mineKey(postID string, userID string, kind string) string {
	return fmt.Sprintf("r:mine:%s:%s:%s", postID, userID, kind)
}

func (r *KVRepo) Read(postID string, userID string) (*State, error) {
	if postID == "" {
		return nil, ErrEmptyPostID
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	return r.state(postID, userID)
}

func (r *KVRepo) Toggle(postID string, userID string, kind string) (*State, error) {
	if postID == "" {
		return nil, ErrEmptyPostID
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if !r.allowed(kind) {
		return nil, ErrUnknownKind
	}

	mk := mineKey(postID, userID, kind)

	had := true
	_, err := r.store.Get(mk)
	if err == kvstore.ErrNotExist {
		had = false
	} else if err != nil {
		return nil, err
	}

	var delta int
	if had {
		if err := r.store.Delete(mk); err != nil {
			return nil, err
		}
		delta = -1
	} else {
		if err := r.store.Put(mk, "1", 0); err != nil {
			return nil, err
		}
		delta = 1
	}

	ck := countKey(postID, kind)
	current, err := r.count(ck)
	if err != nil {
		return nil, err
	}

	next := current + delta
	if next < 0 {
		next = 0
	}
	if err := r.store.Put(ck, strconv.Itoa(next), 0); err != nil {
		return nil, err
	}

	return r.state(postID, userID)
}

func (r *KVRepo) allowed(kind string) bool {
	for _, k := range r.kinds {
		if k == kind {
			return true
		}
	}

	return false
}

// count reads a stored counter, normalizing missing, unparsable and
// negative values to zero.
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

func (r *KVRepo) state(postID string, userID string) (*State, error) {
	state := &State{
		Counts: make(map[string]int, len(r.kinds)),
		Mine:   make([]string, 0, len(r.kinds)),
	}

	for _, kind := range r.kinds {
		n, err := r.count(countKey(postID, kind))
		if err != nil {
			return nil, err
		}
		state.Counts[kind] = n

		_, err = r.store.Get(mineKey(postID, userID, kind))
		if err == kvstore.ErrNotExist {
			continue
		}
		if err != nil {
			return nil, err
		}
		state.Mine = append(state.Mine, kind)
	}

	return state, nil
}
