package client

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher re-fetches server truth for every mounted post on a fixed
// interval and merges it into the controllers. It pauses while the
// viewer is not visible and runs one immediate pass when visibility
// comes back. The merge never discards pending parity, so a refresh
// corrects lost updates and other sessions' toggles without stepping
// on the user's own unresolved intent.
type Refresher struct {
	api      ReactionAPI
	interval time.Duration
	logger   *logrus.Entry

	mu      sync.Mutex
	mounted map[string]*Controller
	visible bool

	kick chan struct{}
}

func NewRefresher(api ReactionAPI, interval time.Duration, logger *logrus.Entry) *Refresher {
	return &Refresher{
		api:      api,
		interval: interval,
		logger:   logger,
		mounted:  make(map[string]*Controller),
		visible:  true,
		kick:     make(chan struct{}, 1),
	}
}

// Mount creates and registers a controller for a post entering the
// viewport.
func (r *Refresher) Mount(postID string, kinds []string, listener Listener) *Controller {
	c := NewController(postID, kinds, r.api, r.logger, listener)

	r.mu.Lock()
	r.mounted[postID] = c
	r.mu.Unlock()

	return c
}

// Unmount closes the post's controller and stops refreshing it.
func (r *Refresher) Unmount(postID string) {
	r.mu.Lock()
	c, ok := r.mounted[postID]
	delete(r.mounted, postID)
	r.mu.Unlock()

	if ok {
		c.Close()
	}
}

// SetVisible pauses or resumes the loop. Becoming visible triggers an
// immediate refresh pass.
func (r *Refresher) SetVisible(visible bool) {
	r.mu.Lock()
	was := r.visible
	r.visible = visible
	r.mu.Unlock()

	if visible && !was {
		select {
		case r.kick <- struct{}{}:
		default:
		}
	}
}

// Run drives the loop until the context is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-r.kick:
		}

		r.mu.Lock()
		visible := r.visible
		controllers := make([]*Controller, 0, len(r.mounted))
		for _, c := range r.mounted {
			controllers = append(controllers, c)
		}
		r.mu.Unlock()

		if !visible {
			continue
		}

		for _, c := range controllers {
			state, err := r.api.GetReactions(ctx, c.PostID())
			if err != nil {
				r.logger.WithFields(logrus.Fields{
					"post_id": c.PostID(),
				}).Warn("refresh failed: ", err)
				continue
			}

			c.SetFromServer(state)
			c.Flush()
		}
	}
}
