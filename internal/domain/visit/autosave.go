package visit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/odonto/odonto/internal/platform/telemetry"
)

// DefaultAutosaveDelay is how long after the last edit the observations
// text is persisted.
const DefaultAutosaveDelay = 1500 * time.Millisecond

// commitTimeout bounds the background write once the timer fires.
const commitTimeout = 10 * time.Second

// CommitFunc persists the observations text.
type CommitFunc func(ctx context.Context, text string) error

// Autosaver debounces observation edits. Every Record resets a fixed-delay
// timer; when it fires, the text recorded last is committed. Prime sets the
// text without arming, so loading a snapshot never triggers a write. Cancel
// is unconditional: no commit fires after it returns.
type Autosaver struct {
	mu      sync.Mutex
	delay   time.Duration
	commit  CommitFunc
	log     zerolog.Logger
	metrics *telemetry.Provider

	timer *time.Timer
	text  string
	armed bool
	// gen invalidates fires scheduled before the latest Record or Cancel.
	gen uint64
}

func NewAutosaver(delay time.Duration, commit CommitFunc, log zerolog.Logger, metrics *telemetry.Provider) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{delay: delay, commit: commit, log: log, metrics: metrics}
}

// Prime sets the current text without arming the timer. Used when the text
// comes from a load rather than an edit.
func (a *Autosaver) Prime(text string) {
	a.mu.Lock()
	a.text = text
	a.mu.Unlock()
}

// Record stores an edit and (re)arms the timer.
func (a *Autosaver) Record(text string) {
	a.mu.Lock()
	a.text = text
	a.gen++
	gen := a.gen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.armed = true
	a.timer = time.AfterFunc(a.delay, func() { a.fire(gen) })
	a.mu.Unlock()
}

// Cancel drops any pending commit. Safe to call at any time, from any
// state.
func (a *Autosaver) Cancel() {
	a.mu.Lock()
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	wasArmed := a.armed
	a.armed = false
	a.mu.Unlock()
	if wasArmed {
		a.metrics.AutosaveResult("cancelled")
	}
}

// Pending reports whether a commit is scheduled.
func (a *Autosaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.armed
}

func (a *Autosaver) fire(gen uint64) {
	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return
	}
	text := a.text
	a.armed = false
	a.timer = nil
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()
	if err := a.commit(ctx, text); err != nil {
		// The next edit re-arms the timer and retries.
		a.log.Warn().Err(err).Msg("autosave commit failed")
		a.metrics.AutosaveResult("failed")
		return
	}
	a.metrics.AutosaveResult("committed")
}
