package test

import (
	"context"
	"io/ioutil"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/momo66-22/telegram-feed-pages/internal/client"
	"github.com/momo66-22/telegram-feed-pages/internal/reaction"
	"github.com/sirupsen/logrus"
)

// fakeAPI behaves like the toggle endpoint over in-memory state, with
// hooks to block a toggle mid-flight, fail toggles and detect
// overlapping calls.
type fakeAPI struct {
	mu        sync.Mutex
	counts    map[string]int
	mine      map[string]bool
	toggleErr error
	block     chan struct{}
	started   chan string
	order     []string
	gets      int
	busy      int
	overlap   bool
}

func newFakeAPI() *fakeAPI {
	counts := make(map[string]int)
	for _, k := range reaction.DefaultKinds() {
		counts[k] = 0
	}

	return &fakeAPI{
		counts: counts,
		mine:   make(map[string]bool),
	}
}

func (f *fakeAPI) snapshotLocked() *reaction.State {
	state := &reaction.State{
		Counts: make(map[string]int),
		Mine:   make([]string, 0),
	}
	for _, k := range reaction.DefaultKinds() {
		state.Counts[k] = f.counts[k]
		if f.mine[k] {
			state.Mine = append(state.Mine, k)
		}
	}

	return state
}

func (f *fakeAPI) GetReactions(_ context.Context, _ string) (*reaction.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gets++
	return f.snapshotLocked(), nil
}

func (f *fakeAPI) ToggleReaction(_ context.Context, _ string, kind string) (*reaction.State, error) {
	f.mu.Lock()
	f.busy++
	if f.busy > 1 {
		f.overlap = true
	}
	started := f.started
	block := f.block
	f.mu.Unlock()

	if started != nil {
		started <- kind
	}
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.busy--
	if f.toggleErr != nil {
		return nil, f.toggleErr
	}

	f.order = append(f.order, kind)
	if f.mine[kind] {
		delete(f.mine, kind)
		if f.counts[kind] > 0 {
			f.counts[kind]--
		}
	} else {
		f.mine[kind] = true
		f.counts[kind]++
	}

	return f.snapshotLocked(), nil
}

func (f *fakeAPI) getCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeAPI) toggleOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := make([]string, len(f.order))
	copy(order, f.order)
	return order
}

func (f *fakeAPI) setToggleErr(err error) {
	f.mu.Lock()
	f.toggleErr = err
	f.mu.Unlock()
}

// waitStarted blocks until a toggle is in flight, then disarms the
// signal so later toggles do not block sending it.
func (f *fakeAPI) waitStarted() string {
	kind := <-f.started

	f.mu.Lock()
	f.started = nil
	f.mu.Unlock()

	return kind
}

func discardLogger() *logrus.Entry {
	contextLogger := logrus.WithFields(logrus.Fields{
		"logger": "LOGRUS",
	})
	contextLogger.Logger.Out = ioutil.Discard

	return contextLogger
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Errorf("condition not reached within %v", timeout)
}

// N rapid clicks before the flush completes must show an effective
// count of server+N%2 and membership iff N is odd, no matter how many
// individual clicks happened.
func TestControllerParityCoalescing(t *testing.T) {
	for _, n := range []int{4, 7} {
		api := newFakeAPI()
		api.counts["❤"] = 5
		api.block = make(chan struct{})
		api.started = make(chan string, 1)

		ctrl := client.NewController("p1", reaction.DefaultKinds(), api, discardLogger(), nil)
		ctrl.SetFromServer(&reaction.State{
			Counts: map[string]int{"❤": 5},
			Mine:   []string{},
		})

		// First click starts the flush; once its toggle is provably in
		// flight and blocked, the remaining clicks can only coalesce.
		ctrl.Click("❤")
		api.waitStarted()
		for i := 1; i < n; i++ {
			ctrl.Click("❤")
		}

		effective := ctrl.Effective()
		wantCount := 5 + n%2
		if effective.Counts["❤"] != wantCount {
			t.Errorf("n=%d: wrong effective count, expected %d, got %d", n, wantCount, effective.Counts["❤"])
		}
		wantMine := []string{}
		if n%2 == 1 {
			wantMine = []string{"❤"}
		}
		if !reflect.DeepEqual(effective.Mine, wantMine) {
			t.Errorf("n=%d: wrong effective mine, expected %#v, got %#v", n, wantMine, effective.Mine)
		}

		close(api.block)
		waitFor(t, 2*time.Second, func() bool { return len(ctrl.Pending()) == 0 })
		ctrl.Close()
	}
}

// A server-truth merge from another session must not discard the
// user's own unresolved pending flip.
func TestControllerReconnectKeepsPendingIntent(t *testing.T) {
	api := newFakeAPI()
	api.block = make(chan struct{})
	api.started = make(chan string, 1)

	ctrl := client.NewController("p1", reaction.DefaultKinds(), api, discardLogger(), nil)
	ctrl.SetFromServer(&reaction.State{Counts: map[string]int{}, Mine: []string{}})

	ctrl.Click("🔥")
	api.waitStarted()

	ctrl.SetFromServer(&reaction.State{
		Counts: map[string]int{"❤": 3},
		Mine:   []string{},
	})

	effective := ctrl.Effective()
	if effective.Counts["❤"] != 3 {
		t.Errorf("merged count lost, expected 3, got %d", effective.Counts["❤"])
	}
	if effective.Counts["🔥"] != 1 {
		t.Errorf("pending flip lost, expected 1, got %d", effective.Counts["🔥"])
	}
	if !reflect.DeepEqual(effective.Mine, []string{"🔥"}) {
		t.Errorf("wrong effective mine, expected [🔥], got %#v", effective.Mine)
	}

	close(api.block)
	waitFor(t, 2*time.Second, func() bool { return len(ctrl.Pending()) == 0 })
	ctrl.Close()
}

// Toggles for one post never overlap and run in the configured order.
func TestControllerSerializesToggles(t *testing.T) {
	api := newFakeAPI()
	api.block = make(chan struct{})
	api.started = make(chan string, 1)

	ctrl := client.NewController("p1", reaction.DefaultKinds(), api, discardLogger(), nil)
	defer ctrl.Close()

	ctrl.Click("❤")
	api.waitStarted()
	ctrl.Click("🔥")
	ctrl.Click("👍")
	close(api.block)

	waitFor(t, 2*time.Second, func() bool { return len(ctrl.Pending()) == 0 })

	api.mu.Lock()
	overlap := api.overlap
	api.mu.Unlock()
	if overlap {
		t.Errorf("toggle calls overlapped for one post")
	}

	order := api.toggleOrder()
	if !reflect.DeepEqual(order, []string{"❤", "👍", "🔥"}) {
		t.Errorf("wrong toggle order, expected [❤ 👍 🔥], got %#v", order)
	}
}

// A failed toggle keeps the intent pending, resyncs server truth once
// and succeeds on a later pass.
func TestControllerFailureKeepsIntent(t *testing.T) {
	api := newFakeAPI()
	api.counts["❤"] = 2
	api.setToggleErr(context.DeadlineExceeded)

	ctrl := client.NewController("p1", reaction.DefaultKinds(), api, discardLogger(), nil)
	defer ctrl.Close()
	ctrl.SetFromServer(&reaction.State{
		Counts: map[string]int{"❤": 2},
		Mine:   []string{},
	})

	ctrl.Click("❤")

	waitFor(t, 2*time.Second, func() bool { return api.getCalls() >= 1 })

	if !reflect.DeepEqual(ctrl.Pending(), []string{"❤"}) {
		t.Errorf("intent dropped after failure, pending %#v", ctrl.Pending())
		return
	}
	effective := ctrl.Effective()
	if effective.Counts["❤"] != 3 {
		t.Errorf("wrong effective count after failure, expected 3, got %d", effective.Counts["❤"])
		return
	}

	api.setToggleErr(nil)
	waitFor(t, 5*time.Second, func() bool { return len(ctrl.Pending()) == 0 })

	effective = ctrl.Effective()
	if effective.Counts["❤"] != 3 {
		t.Errorf("wrong converged count, expected 3, got %d", effective.Counts["❤"])
		return
	}
	if !reflect.DeepEqual(effective.Mine, []string{"❤"}) {
		t.Errorf("wrong converged mine, expected [❤], got %#v", effective.Mine)
	}
}

func TestControllerUnknownKindIgnored(t *testing.T) {
	api := newFakeAPI()
	ctrl := client.NewController("p1", reaction.DefaultKinds(), api, discardLogger(), nil)
	defer ctrl.Close()

	ctrl.Click("💀")

	if pending := ctrl.Pending(); len(pending) != 0 {
		t.Errorf("unknown kind produced pending intent: %#v", pending)
		return
	}
	if order := api.toggleOrder(); len(order) != 0 {
		t.Errorf("unknown kind reached the network: %#v", order)
	}
}

func TestControllerClosedDropsMerges(t *testing.T) {
	api := newFakeAPI()
	ctrl := client.NewController("p1", reaction.DefaultKinds(), api, discardLogger(), nil)

	ctrl.SetFromServer(&reaction.State{
		Counts: map[string]int{"❤": 5},
		Mine:   []string{},
	})
	ctrl.Close()
	ctrl.SetFromServer(&reaction.State{
		Counts: map[string]int{"❤": 9},
		Mine:   []string{"❤"},
	})

	effective := ctrl.Effective()
	if effective.Counts["❤"] != 5 {
		t.Errorf("merge after close applied, expected 5, got %d", effective.Counts["❤"])
	}
}

func TestRefresherMergesAndPauses(t *testing.T) {
	api := newFakeAPI()
	api.counts["❤"] = 4

	ref := client.NewRefresher(api, 20*time.Millisecond, discardLogger())
	ctrl := ref.Mount("p1", reaction.DefaultKinds(), nil)
	defer ref.Unmount("p1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ref.Run(ctx)

	waitFor(t, 2*time.Second, func() bool { return ctrl.Effective().Counts["❤"] == 4 })

	ref.SetVisible(false)
	time.Sleep(50 * time.Millisecond)
	paused := api.getCalls()
	time.Sleep(100 * time.Millisecond)
	if api.getCalls() != paused {
		t.Errorf("refresh kept running while not visible")
		return
	}

	ref.SetVisible(true)
	waitFor(t, 2*time.Second, func() bool { return api.getCalls() > paused })
}
