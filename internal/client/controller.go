package client

import (
	"context"
	"sync"
	"time"

	"github.com/momo66-22/telegram-feed-pages/internal/reaction"
	"github.com/sirupsen/logrus"
)

// Parity tracks whether an odd number of un-reconciled clicks has
// happened for a kind since it last agreed with server truth. Toggling
// an even number of times is a no-op on a boolean membership, so the
// pending intent never needs more than one bit per kind and the flush
// loop never needs more than one request per kind between server
// syncs, no matter how fast the user clicks.
type Parity int

const (
	Idle Parity = iota
	Pending
)

// retryDelay paces flush re-entry after a failed pass, so a backend
// that fails instantly does not get hammered in a tight loop.
const retryDelay = 2 * time.Second

type ReactionAPI interface {
	GetReactions(ctx context.Context, postID string) (*reaction.State, error)
	ToggleReaction(ctx context.Context, postID string, kind string) (*reaction.State, error)
}

// Listener is called after every state change with the effective
// state, the kinds still pending and the in-flight flag. It runs under
// the controller lock and must not call back into the controller.
type Listener func(state *reaction.State, pending []string, inflight bool)

// Controller owns the optimistic reaction state for one mounted post.
// It layers un-reconciled click parity on top of the last merged
// server truth, keeps at most one network call in flight for its post
// and converges the server to the user's intent in the background.
type Controller struct {
	postID   string
	kinds    []string
	api      ReactionAPI
	logger   *logrus.Entry
	listener Listener

	mu           sync.Mutex
	serverCounts map[string]int
	serverMine   map[string]bool
	parity       map[string]Parity
	inflight     bool
	closed       bool
}

func NewController(postID string, kinds []string, api ReactionAPI, logger *logrus.Entry, listener Listener) *Controller {
	c := &Controller{
		postID:       postID,
		kinds:        kinds,
		api:          api,
		logger:       logger,
		listener:     listener,
		serverCounts: make(map[string]int, len(kinds)),
		serverMine:   make(map[string]bool, len(kinds)),
		parity:       make(map[string]Parity, len(kinds)),
	}
	for _, k := range kinds {
		c.serverCounts[k] = 0
		c.parity[k] = Idle
	}

	return c
}

func (c *Controller) PostID() string {
	return c.postID
}

// SetFromServer merges a server truth payload. Unknown kinds are
// dropped, bad counts clamp to zero, and pending parity survives the
// merge: unresolved user intent is never discarded by a refresh.
func (c *Controller) SetFromServer(state *reaction.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.mergeLocked(state)
	c.notifyLocked()
}

// Click flips the pending parity for a kind and requests a flush.
// The UI update is immediate; the network catches up asynchronously.
func (c *Controller) Click(kind string) {
	c.mu.Lock()

	if c.closed || !c.allowed(kind) {
		c.mu.Unlock()
		return
	}

	if c.parity[kind] == Pending {
		c.parity[kind] = Idle
	} else {
		c.parity[kind] = Pending
	}
	c.notifyLocked()

	start := !c.inflight && c.hasPendingLocked()
	if start {
		c.inflight = true
	}
	c.mu.Unlock()

	if start {
		go c.flush()
	}
}

// Flush starts a background flush if any parity is pending and no
// call is already in flight. The periodic refresher uses it to pick
// up intent left over from a failed pass.
func (c *Controller) Flush() {
	c.mu.Lock()
	start := !c.closed && !c.inflight && c.hasPendingLocked()
	if start {
		c.inflight = true
	}
	c.mu.Unlock()

	if start {
		go c.flush()
	}
}

// Effective returns what the UI should show: server truth with one
// extra membership flip (and matching count delta, clamped at zero)
// applied for every kind whose parity is pending.
func (c *Controller) Effective() *reaction.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.effectiveLocked()
}

// Pending lists the kinds whose parity is still pending, in the
// configured order.
func (c *Controller) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pendingLocked()
}

// Close marks the post unmounted. Responses and merges that arrive
// afterwards are dropped instead of acting on a stale handle.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// flush is the serialization point: the caller has already set
// inflight, so no second flush can run for this post. Each pass sends
// at most one toggle per pending kind in the configured order,
// clearing parity only after a successful response. A failure ends the
// pass after one best-effort truth refresh; intent stays pending.
func (c *Controller) flush() {
	for {
		c.mu.Lock()
		if c.closed {
			c.inflight = false
			c.mu.Unlock()
			return
		}
		c.notifyLocked()
		c.mu.Unlock()

		failed := false
		for _, kind := range c.kinds {
			c.mu.Lock()
			if c.closed {
				c.inflight = false
				c.mu.Unlock()
				return
			}
			pending := c.parity[kind] == Pending
			c.mu.Unlock()

			if !pending {
				continue
			}

			state, err := c.api.ToggleReaction(context.Background(), c.postID, kind)
			if err != nil {
				c.logger.WithFields(logrus.Fields{
					"post_id": c.postID,
					"emoji":   kind,
				}).Warn("toggle failed, intent kept pending: ", err)

				c.refreshTruth()
				failed = true
				break
			}

			c.mu.Lock()
			if c.closed {
				c.inflight = false
				c.mu.Unlock()
				return
			}
			c.mergeLocked(state)
			c.parity[kind] = Idle
			c.notifyLocked()
			c.mu.Unlock()
		}

		c.mu.Lock()
		c.inflight = false
		c.notifyLocked()
		again := !c.closed && c.hasPendingLocked()
		if again {
			c.inflight = true
		}
		c.mu.Unlock()

		if !again {
			return
		}
		if failed {
			time.Sleep(retryDelay)
		}
	}
}

// refreshTruth fetches server truth once and merges it without
// touching parity. Errors are swallowed: this is the best-effort
// resync on the failure path.
func (c *Controller) refreshTruth() {
	state, err := c.api.GetReactions(context.Background(), c.postID)
	if err != nil {
		return
	}

	c.SetFromServer(state)
}

func (c *Controller) allowed(kind string) bool {
	for _, k := range c.kinds {
		if k == kind {
			return true
		}
	}

	return false
}

func (c *Controller) mergeLocked(state *reaction.State) {
	counts := make(map[string]int, len(c.kinds))
	for _, k := range c.kinds {
		counts[k] = 0
		if state != nil && state.Counts != nil {
			if v, ok := state.Counts[k]; ok && v > 0 {
				counts[k] = v
			}
		}
	}

	mine := make(map[string]bool, len(c.kinds))
	if state != nil {
		for _, k := range state.Mine {
			if _, ok := counts[k]; ok {
				mine[k] = true
			}
		}
	}

	c.serverCounts = counts
	c.serverMine = mine
}

func (c *Controller) effectiveLocked() *reaction.State {
	state := &reaction.State{
		Counts: make(map[string]int, len(c.kinds)),
		Mine:   make([]string, 0, len(c.kinds)),
	}

	for _, k := range c.kinds {
		count := c.serverCounts[k]
		mine := c.serverMine[k]

		if c.parity[k] == Pending {
			if mine {
				mine = false
				count--
				if count < 0 {
					count = 0
				}
			} else {
				mine = true
				count++
			}
		}

		state.Counts[k] = count
		if mine {
			state.Mine = append(state.Mine, k)
		}
	}

	return state
}

func (c *Controller) pendingLocked() []string {
	pending := make([]string, 0, len(c.kinds))
	for _, k := range c.kinds {
		if c.parity[k] == Pending {
			pending = append(pending, k)
		}
	}

	return pending
}

func (c *Controller) hasPendingLocked() bool {
	for _, k := range c.kinds {
		if c.parity[k] == Pending {
			return true
		}
	}

	return false
}

func (c *Controller) notifyLocked() {
	if c.listener == nil {
		return
	}

	c.listener(c.effectiveLocked(), c.pendingLocked(), c.inflight)
}
