package geolocation

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinemap/models"
)

// ErrAlreadyTracking is returned by Start while a tracking session is active.
var ErrAlreadyTracking = errors.New("tracking already active")

// Update is one delivery of a tracking session: a position or the error
// that ended the session.
type Update struct {
	Position models.Position
	Err      error
	At       time.Time
}

// Tracker re-acquires the user's position on an interval until stopped.
// Position changes never trigger a search by themselves; consumers decide
// what to do with each update.
type Tracker struct {
	provider Provider
	interval time.Duration
	timeout  time.Duration

	mu        sync.Mutex
	sessionID string
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewTracker creates a tracker polling provider every interval, each
// attempt bounded by timeout.
func NewTracker(provider Provider, interval, timeout time.Duration) *Tracker {
	return &Tracker{
		provider: provider,
		interval: interval,
		timeout:  timeout,
	}
}

// Start launches a tracking session. The returned channel receives updates
// and is closed when the session ends: on Stop, on ctx cancellation, or
// after the first error, which is delivered before closing.
func (t *Tracker) Start(ctx context.Context) (<-chan Update, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return nil, ErrAlreadyTracking
	}
	if t.provider == nil {
		return nil, ErrUnsupported
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	t.sessionID = uuid.New().String()
	t.cancel = cancel
	t.done = make(chan struct{})

	out := make(chan Update)
	log.Printf("[Tracker] Starting session %s (interval=%v, timeout=%v)", t.sessionID, t.interval, t.timeout)
	go t.run(sessionCtx, t.sessionID, out, t.done)
	return out, nil
}

// Stop ends the active session, if any. When Stop returns no further update
// is delivered; a position request still in flight is abandoned and its
// result dropped.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done, id := t.cancel, t.done, t.sessionID
	t.cancel, t.done, t.sessionID = nil, nil, ""
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Printf("[Tracker] Stopped session %s", id)
}

// Tracking reports whether a session is active.
func (t *Tracker) Tracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Tracker) run(ctx context.Context, id string, out chan<- Update, done chan<- struct{}) {
	defer close(done)
	defer close(out)
	defer t.release(id)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		pos, err := Acquire(ctx, t.provider, t.timeout)
		if ctx.Err() != nil {
			return
		}

		select {
		case out <- Update{Position: pos, Err: err, At: time.Now()}:
		case <-ctx.Done():
			return
		}

		if err != nil {
			log.Printf("[Tracker] Session %s ended by error: %v", id, err)
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// release forgets session id when it ends without Stop (error or parent
// context cancelled).
func (t *Tracker) release(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sessionID != id {
		return
	}
	t.cancel()
	t.cancel, t.done, t.sessionID = nil, nil, ""
}
