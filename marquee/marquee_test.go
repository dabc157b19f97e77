package marquee

import (
	"testing"
	"time"

	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/event"
)

type harness struct {
	clock  *engine.MockTimeProvider
	frames *engine.FrameScheduler
	input  *event.Dispatcher
}

func newHarness() *harness {
	clock := engine.NewMockTimeProvider(epoch)
	return &harness{
		clock:  clock,
		frames: engine.NewFrameScheduler(clock, time.Second),
		input:  event.NewDispatcher(),
	}
}

// step advances the clock and runs one frame
func (h *harness) step(d time.Duration) {
	h.clock.Advance(d)
	h.frames.Frame()
}

func testItems() []Item {
	// 3 items of 30 cells with gap 2: unit 96
	return []Item{block{30, 3}, block{30, 3}, block{30, 3}}
}

func TestMarquee_MountMeasuresOnFirstFrame(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	cfg.Duration = 8 * time.Second

	m := New(cfg, testItems())
	m.Resize(Rect{X: 0, Y: 0, W: 100, H: 3})
	m.Mount(h.frames, h.input)

	if m.Driver().State() != StateMeasuring {
		t.Fatalf("Expected measuring before first frame, got %s", m.Driver().State())
	}

	h.step(0)
	v := m.View()
	if v.State != StateRunning {
		t.Fatalf("Expected running after first frame, got %s", v.State)
	}
	if v.Unit != 96 {
		t.Errorf("Expected unit 96, got %d", v.Unit)
	}
	if v.Copies != 3 {
		t.Errorf("Expected 3 copies for viewport 100, got %d", v.Copies)
	}
	if len(v.Placements) != 9 {
		t.Errorf("Expected 9 placements, got %d", len(v.Placements))
	}

	h.step(time.Second)
	if got := m.View().Offset; !approx(got, 12) {
		t.Errorf("Expected offset 12 after 1s, got %v", got)
	}
}

func TestMarquee_ResizeKeepsOffset(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	cfg.Duration = 8 * time.Second

	m := New(cfg, testItems())
	m.Resize(Rect{W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)
	h.step(time.Second)

	// Resize storm within one frame coalesces into a single pass
	m.Resize(Rect{W: 150, H: 3})
	m.Resize(Rect{W: 200, H: 3})
	m.Resize(Rect{W: 300, H: 3})
	h.step(time.Second)

	v := m.View()
	if v.Copies != 7 {
		t.Errorf("Expected 7 copies for viewport 300, got %d", v.Copies)
	}
	if v.State != StateRunning {
		t.Errorf("Expected running across resize, got %s", v.State)
	}
	if !approx(v.Offset, 24) {
		t.Errorf("Expected offset to continue to 24, got %v", v.Offset)
	}
}

func TestMarquee_ContentChangeRestartsMeasurement(t *testing.T) {
	h := newHarness()
	m := New(DefaultConfig(), testItems())
	m.Resize(Rect{W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)
	h.step(time.Second)

	m.SetItems([]Item{block{10, 1}})
	if m.Driver().State() != StateMeasuring {
		t.Fatalf("Expected measuring after content change, got %s", m.Driver().State())
	}

	h.step(time.Second)
	v := m.View()
	if v.Unit != 12 || v.Offset != 0 || v.State != StateRunning {
		t.Errorf("Expected fresh run with unit 12, got unit=%d offset=%v state=%s", v.Unit, v.Offset, v.State)
	}
}

func TestMarquee_RebindReverseResets(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	m := New(cfg, testItems())
	m.Resize(Rect{W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)
	h.step(time.Second)

	cfg.Reverse = true
	m.Rebind(cfg)
	if m.Driver().State() != StateMeasuring || m.Driver().Unit().Valid() {
		t.Fatalf("Expected invalidated measurement, got state=%s unit=%d", m.Driver().State(), m.Driver().Unit())
	}
	if m.Primitives().Sign != 1 {
		t.Errorf("Expected reversed sign 1, got %d", m.Primitives().Sign)
	}

	h.step(time.Second)
	if m.Driver().State() != StateRunning {
		t.Errorf("Expected running after re-measure, got %s", m.Driver().State())
	}
}

func TestMarquee_ZeroExtentStaysMeasuring(t *testing.T) {
	h := newHarness()
	m := New(DefaultConfig(), []Item{block{0, 0}})
	m.Resize(Rect{W: 80, H: 1})
	m.Mount(h.frames, h.input)

	for i := 0; i < 5; i++ {
		h.step(time.Second)
	}
	v := m.View()
	if v.State != StateMeasuring {
		t.Errorf("Expected measuring indefinitely, got %s", v.State)
	}
	if v.Offset != 0 || v.Copies != 0 {
		t.Errorf("Expected static content, got offset=%v copies=%d", v.Offset, v.Copies)
	}
}

func TestMarquee_UnmountDetaches(t *testing.T) {
	h := newHarness()
	m := New(DefaultConfig(), testItems())
	m.Resize(Rect{W: 100, H: 3})
	m.Mount(h.frames, h.input)

	// Teardown with the layout pass still pending
	m.Unmount()

	if m.Mounted() {
		t.Error("Expected unmounted")
	}
	if h.frames.Pending() != 0 {
		t.Errorf("Expected no frame callbacks, got %d", h.frames.Pending())
	}
	if h.input.Len() != 0 {
		t.Errorf("Expected no input listeners, got %d", h.input.Len())
	}

	h.step(time.Second)
	if m.Driver().State() != StateStopped || m.View().Unit.Valid() {
		t.Errorf("Expected stopped without measurement, got state=%s unit=%d", m.Driver().State(), m.View().Unit)
	}

	m.Mount(h.frames, h.input)
	if m.Mounted() {
		t.Error("Expected remount of a stopped instance to be refused")
	}
}

func TestMarquee_UnmountInsideFrame(t *testing.T) {
	h := newHarness()
	a := New(DefaultConfig(), testItems())
	b := New(DefaultConfig(), testItems())
	a.Resize(Rect{W: 100, H: 3})
	b.Resize(Rect{W: 100, H: 3, Y: 5})

	h.frames.Request(func(time.Time) { b.Unmount() })
	a.Mount(h.frames, h.input)
	b.Mount(h.frames, h.input)

	h.step(time.Second)
	if b.View().Unit.Valid() {
		t.Error("Expected instance unmounted earlier in the frame to receive no update")
	}
	if a.View().State != StateRunning {
		t.Errorf("Expected independent instance running, got %s", a.View().State)
	}
}

func TestMarquee_HoverThroughDispatcher(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	cfg.PauseOnHover = true
	cfg.Duration = 8 * time.Second

	m := New(cfg, testItems())
	m.Resize(Rect{X: 0, Y: 10, W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)
	h.step(time.Second)

	h.input.Publish(event.Pointer(5, 11, h.clock.Now()))
	if m.Driver().State() != StatePaused {
		t.Fatalf("Expected paused with pointer inside, got %s", m.Driver().State())
	}
	frozen := m.View().Offset

	h.step(3 * time.Second)
	h.input.Publish(event.Pointer(6, 11, h.clock.Now()))
	if m.View().Offset != frozen {
		t.Errorf("Expected frozen offset %v, got %v", frozen, m.View().Offset)
	}

	h.input.Publish(event.Pointer(5, 2, h.clock.Now()))
	if m.Driver().State() != StateRunning {
		t.Fatalf("Expected running after pointer left, got %s", m.Driver().State())
	}
	h.step(time.Second)
	if got := m.View().Offset; !approx(got, frozen+12) {
		t.Errorf("Expected %v, got %v", frozen+12, got)
	}
}

func TestMarquee_ResizeRechecksHover(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	cfg.PauseOnHover = true
	cfg.Duration = 8 * time.Second

	m := New(cfg, testItems())
	m.Resize(Rect{Y: 10, W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)
	h.step(time.Second)

	h.input.Publish(event.Pointer(5, 11, h.clock.Now()))
	if m.Driver().State() != StatePaused {
		t.Fatalf("Expected paused with pointer inside, got %s", m.Driver().State())
	}

	// Track scrolls away from a resting pointer
	m.Resize(Rect{Y: 30, W: 100, H: 3})
	if m.Controller().Hovered() {
		t.Error("Expected hover released after track moved away")
	}
	h.step(time.Second)
	h.step(time.Second)
	if m.Driver().State() != StateRunning {
		t.Fatalf("Expected running after track moved away, got %s", m.Driver().State())
	}
	if got := m.View().Offset; !approx(got, 36) {
		t.Errorf("Expected offset 36, got %v", got)
	}

	// Track scrolls back under the pointer
	m.Resize(Rect{Y: 10, W: 100, H: 3})
	if m.Driver().State() != StatePaused {
		t.Fatalf("Expected paused after track moved under pointer, got %s", m.Driver().State())
	}
	h.step(time.Second)
	if got := m.View().Offset; !approx(got, 36) {
		t.Errorf("Expected frozen offset 36, got %v", got)
	}
}

func TestMarquee_ResizeAfterPointerLeaveKeepsRunning(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	cfg.PauseOnHover = true

	m := New(cfg, testItems())
	m.Resize(Rect{Y: 30, W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)

	h.input.Publish(event.Pointer(5, 11, h.clock.Now()))
	h.input.Publish(event.PointerLeave(h.clock.Now()))
	m.Resize(Rect{Y: 10, W: 100, H: 3})
	if m.Driver().State() != StateRunning {
		t.Errorf("Expected running with pointer gone, got %s", m.Driver().State())
	}
}

func TestMarquee_VisibilityAndFreeze(t *testing.T) {
	h := newHarness()
	h.input.Publish(event.Visibility(false, h.clock.Now()))

	m := New(DefaultConfig(), testItems())
	m.Resize(Rect{W: 100, H: 3})
	m.Mount(h.frames, h.input)
	h.step(0)

	if m.Driver().State() != StatePaused {
		t.Fatalf("Expected paused when mounted while host hidden, got %s", m.Driver().State())
	}

	h.input.Publish(event.Visibility(true, h.clock.Now()))
	if m.Driver().State() != StateRunning {
		t.Fatalf("Expected running on visibility return, got %s", m.Driver().State())
	}

	h.input.Publish(event.Freeze(true, h.clock.Now()))
	if m.Driver().State() != StatePaused {
		t.Errorf("Expected paused on freeze, got %s", m.Driver().State())
	}
	h.input.Publish(event.Freeze(false, h.clock.Now()))

	m.SetOnscreen(false, h.clock.Now())
	if m.Driver().State() != StatePaused {
		t.Errorf("Expected paused off-screen, got %s", m.Driver().State())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("Expected outside points rejected")
	}
}
