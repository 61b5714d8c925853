package reaction

import (
	"errors"
)

var (
	ErrEmptyPostID = errors.New("post id is empty")
	ErrEmptyUserID = errors.New("user id is empty")
	ErrUnknownKind = errors.New("emoji not allowed")
)

// DefaultKinds is the fixed ordered emoji set shared by server and
// client. Membership tests are case-sensitive exact match.
func DefaultKinds() []string {
	return []string{"❤", "👍", "🔥"}
}

// State is the wire shape of per-post reaction state for one user:
// the full counter map over every configured kind plus the kinds this
// user currently has toggled on.
type State struct {
	Counts map[string]int `json:"counts"`
	Mine   []string       `json:"mine"`
}

type ReactionRepo interface {
	Read(postID string, userID string) (*State, error)
	Toggle(postID string, userID string, kind string) (*State, error)
}
