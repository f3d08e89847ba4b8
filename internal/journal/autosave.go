package journal

import (
	"sync"
	"time"
)

// Autosaver debounces persistence of in-progress answer text: a write fires
// only after the configured delay has passed with no further updates, so a
// burst of keystrokes results in a single write holding the final content.
//
// Close flushes any pending content synchronously, guaranteeing nothing typed
// is lost when the editing surface is torn down.
type Autosaver struct {
	mu      sync.Mutex
	delay   time.Duration
	save    func(string) error
	timer   *time.Timer
	pending string
	dirty   bool
	lastErr error
	closed  bool
}

func NewAutosaver(delay time.Duration, save func(string) error) *Autosaver {
	return &Autosaver{
		delay: delay,
		save:  save,
	}
}

// Update records the latest content and restarts the quiet-interval timer.
func (a *Autosaver) Update(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	a.pending = text
	a.dirty = true

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flushLocked()
}

func (a *Autosaver) flushLocked() {
	if !a.dirty {
		return
	}
	a.dirty = false
	a.lastErr = a.save(a.pending)
}

// Flush writes any pending content immediately.
func (a *Autosaver) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
	}
	a.flushLocked()
	return a.lastErr
}

// Close stops the timer and flushes pending content. The Autosaver accepts no
// further updates afterwards.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return a.lastErr
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.flushLocked()
	return a.lastErr
}

// Err returns the most recent save error, if any. Timer-driven saves happen
// off the caller's goroutine, so errors surface here or from Flush/Close.
func (a *Autosaver) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}
