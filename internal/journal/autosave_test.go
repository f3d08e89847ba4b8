package journal

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type saveRecorder struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (r *saveRecorder) save(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, text)
	return r.err
}

func (r *saveRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

func TestAutosaverDebouncesBurst(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(30*time.Millisecond, rec.save)
	defer a.Close()

	// A burst of edits inside the debounce window.
	a.Update("h")
	a.Update("he")
	a.Update("hel")
	a.Update("hello")

	// Nothing written until the quiet interval elapses.
	if writes := rec.snapshot(); len(writes) != 0 {
		t.Fatalf("write fired before debounce window elapsed: %v", writes)
	}

	time.Sleep(100 * time.Millisecond)

	writes := rec.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected exactly 1 write, got %d: %v", len(writes), writes)
	}
	if writes[0] != "hello" {
		t.Errorf("write content = %q, want final content %q", writes[0], "hello")
	}
}

func TestAutosaverNewEditResetsWindow(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(50*time.Millisecond, rec.save)
	defer a.Close()

	a.Update("first")
	time.Sleep(30 * time.Millisecond)
	a.Update("second") // resets the window before the first fires
	time.Sleep(30 * time.Millisecond)

	if writes := rec.snapshot(); len(writes) != 0 {
		t.Fatalf("write fired despite window reset: %v", writes)
	}

	time.Sleep(60 * time.Millisecond)
	writes := rec.snapshot()
	if len(writes) != 1 || writes[0] != "second" {
		t.Fatalf("expected single write of %q, got %v", "second", writes)
	}
}

func TestAutosaverCloseFlushesPending(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(time.Hour, rec.save) // timer will never fire on its own

	a.Update("unsaved draft")
	if err := a.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	writes := rec.snapshot()
	if len(writes) != 1 || writes[0] != "unsaved draft" {
		t.Fatalf("Close did not flush pending content: %v", writes)
	}

	// Updates after Close are dropped.
	a.Update("too late")
	a.Flush()
	if writes := rec.snapshot(); len(writes) != 1 {
		t.Errorf("update accepted after Close: %v", writes)
	}
}

func TestAutosaverFlushIsIdempotent(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(time.Hour, rec.save)
	defer a.Close()

	a.Update("content")
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if err := a.Flush(); err != nil {
		t.Fatalf("second Flush failed: %v", err)
	}

	if writes := rec.snapshot(); len(writes) != 1 {
		t.Errorf("clean flush wrote again: %v", writes)
	}
}

func TestAutosaverSurfacesSaveError(t *testing.T) {
	rec := &saveRecorder{err: errors.New("disk full")}
	a := NewAutosaver(time.Hour, rec.save)
	defer a.Close()

	a.Update("content")
	if err := a.Flush(); err == nil {
		t.Error("expected save error from Flush, got nil")
	}
	if err := a.Err(); err == nil {
		t.Error("expected save error from Err, got nil")
	}
}
