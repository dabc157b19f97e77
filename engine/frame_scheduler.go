package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// FrameFunc is invoked once per frame with the frame timestamp
type FrameFunc func(now time.Time)

// FrameHandle is the registration of a single frame callback
type FrameHandle struct {
	fs     *FrameScheduler
	fn     FrameFunc
	active bool
}

// Cancel detaches the callback synchronously
// Safe to call from inside any frame callback, the callback never fires again, including later in
// the current frame. Repeated calls are no-ops
func (h *FrameHandle) Cancel() {
	if h == nil || !h.active {
		return
	}
	h.active = false
	h.fn = nil
	h.fs.dirty = true
}

// Active reports whether the callback is still registered
func (h *FrameHandle) Active() bool {
	return h != nil && h.active
}

// FrameScheduler runs registered callbacks once per display refresh
// Single-threaded: Request, Cancel and Frame must all happen on the loop goroutine. Run gives
// other goroutines a way in through the inbox channel
type FrameScheduler struct {
	clock    TimeProvider
	interval time.Duration

	handles []*FrameHandle
	dirty   bool // Cancelled handles pending compaction

	// Present runs after all callbacks of a frame, used for drawing
	present FrameFunc

	frameCount atomic.Uint64
}

// NewFrameScheduler creates a scheduler ticking at interval
func NewFrameScheduler(clock TimeProvider, interval time.Duration) *FrameScheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &FrameScheduler{
		clock:    clock,
		interval: interval,
	}
}

// Request registers fn to run every frame until the handle is cancelled
// Callbacks run in registration order
func (fs *FrameScheduler) Request(fn FrameFunc) *FrameHandle {
	h := &FrameHandle{fs: fs, fn: fn, active: true}
	fs.handles = append(fs.handles, h)
	return h
}

// Now returns the scheduler clock time
func (fs *FrameScheduler) Now() time.Time {
	return fs.clock.Now()
}

// SetPresent sets the end-of-frame callback
func (fs *FrameScheduler) SetPresent(fn FrameFunc) {
	fs.present = fn
}

// Pending returns the number of active callbacks
func (fs *FrameScheduler) Pending() int {
	n := 0
	for _, h := range fs.handles {
		if h.active {
			n++
		}
	}
	return n
}

// FrameCount returns frames run so far
func (fs *FrameScheduler) FrameCount() uint64 {
	return fs.frameCount.Load()
}

// Frame runs one frame at the current clock time and returns that time
func (fs *FrameScheduler) Frame() time.Time {
	now := fs.clock.Now()

	// Snapshot length: callbacks requested during this frame start next frame
	n := len(fs.handles)
	for i := 0; i < n; i++ {
		h := fs.handles[i]
		if !h.active {
			continue
		}
		h.fn(now)
	}

	if fs.dirty {
		fs.compact()
	}
	if fs.present != nil {
		fs.present(now)
	}
	fs.frameCount.Add(1)
	return now
}

func (fs *FrameScheduler) compact() {
	live := fs.handles[:0]
	for _, h := range fs.handles {
		if h.active {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(fs.handles); i++ {
		fs.handles[i] = nil
	}
	fs.handles = live
	fs.dirty = false
}

// Run drives frames on a ticker and executes inbox functions between frames
// Returns ctx.Err() on cancellation, nil when the inbox is closed
func (fs *FrameScheduler) Run(ctx context.Context, inbox <-chan func()) error {
	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-inbox:
			if !ok {
				return nil
			}
			fn()
		case <-ticker.C:
			fs.Frame()
		}
	}
}
