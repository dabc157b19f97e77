package marquee

import (
	"log"
	"time"

	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/event"
)

// Rect is a cell rectangle in screen coordinates
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Extent returns the rect length along axis
func (r Rect) Extent(axis Axis) int {
	if axis == AxisY {
		return r.H
	}
	return r.W
}

// Marquee is the owned state of one mounted marquee instance
// The repeat unit and copy layout are cached and only recomputed by an explicit layout pass,
// which Resize, SetItems and Rebind schedule for the next frame
type Marquee struct {
	cfg   Config
	prims Primitives
	items []Item

	driver *Driver
	ctrl   *Controller

	bounds Rect
	copies int
	layout []Placement
	dirty  bool

	stalled bool // Zero-extent content reported once per stall

	frames *engine.FrameScheduler
	frame  *engine.FrameHandle
	input  *event.Dispatcher
	sub    *event.Subscription
}

// New creates an unmounted marquee, cfg is normalized
func New(cfg Config, items []Item) *Marquee {
	cfg = cfg.Normalize()
	d := NewDriver(cfg)
	return &Marquee{
		cfg:    cfg,
		prims:  Bind(cfg),
		items:  items,
		driver: d,
		ctrl:   NewController(d, cfg.PauseOnHover),
	}
}

// Config returns the bound configuration
func (m *Marquee) Config() Config {
	return m.cfg
}

// Primitives returns the bound rendering primitives
func (m *Marquee) Primitives() Primitives {
	return m.prims
}

// Driver exposes the animation driver
func (m *Marquee) Driver() *Driver {
	return m.driver
}

// Controller exposes the interaction controller
func (m *Marquee) Controller() *Controller {
	return m.ctrl
}

// Mounted reports whether frame and input callbacks are attached
func (m *Marquee) Mounted() bool {
	return m.frame.Active()
}

// OnWrap sets the wrap callback, survives Rebind
func (m *Marquee) OnWrap(fn func(wraps int)) {
	m.driver.OnWrap = fn
}

// Mount attaches the instance to the host frame loop and input dispatcher
// Current host visibility, freeze and pointer state are applied immediately
func (m *Marquee) Mount(frames *engine.FrameScheduler, input *event.Dispatcher) {
	if m.Mounted() || m.driver.State() == StateStopped {
		return
	}
	now := frames.Now()
	m.frames = frames
	m.driver.Start()
	m.dirty = true

	if input != nil {
		m.input = input
		m.ctrl.SetVisible(input.Visible(), now)
		m.ctrl.SetFrozen(input.Frozen(), now)
		m.trackPointer(now)
		m.sub = input.Subscribe(m.onEvent)
	}
	m.frame = frames.Request(m.onFrame)
}

// Unmount detaches callbacks synchronously and stops the driver
// A pending layout pass is dropped. The instance cannot be mounted again
func (m *Marquee) Unmount() {
	m.frame.Cancel()
	m.sub.Unsubscribe()
	m.frame = nil
	m.sub = nil
	m.input = nil
	m.dirty = false
	m.driver.Stop()
}

// Bounds returns the container rect
func (m *Marquee) Bounds() Rect {
	return m.bounds
}

// Resize records new container bounds, the layout pass is coalesced into the next frame
// Hover is re-evaluated immediately against the last known pointer, since moving bounds can
// slide the track under or out from under a resting pointer
func (m *Marquee) Resize(bounds Rect) {
	if bounds == m.bounds {
		return
	}
	m.bounds = bounds
	m.dirty = true
	if m.Mounted() && m.input != nil {
		m.trackPointer(m.frames.Now())
	}
}

// SetItems replaces the content sequence, invalidating the repeat unit
func (m *Marquee) SetItems(items []Item) {
	m.items = items
	m.driver.Invalidate()
	m.dirty = true
}

// Items returns the content sequence
func (m *Marquee) Items() []Item {
	return m.items
}

// Rebind applies a new configuration
// Driver returns to Measuring, the offset restarts from zero
func (m *Marquee) Rebind(cfg Config) {
	if m.driver.State() == StateStopped {
		return
	}
	cfg = cfg.Normalize()
	m.cfg = cfg
	m.prims = Bind(cfg)
	m.driver.Reconfigure(cfg)
	now := time.Time{}
	if m.frames != nil {
		now = m.frames.Now()
	}
	m.ctrl.SetPauseOnHover(cfg.PauseOnHover, now)
	m.dirty = true
}

// SetOnscreen reports whether the instance is inside the host viewport
func (m *Marquee) SetOnscreen(onscreen bool, now time.Time) {
	m.ctrl.SetOnscreen(onscreen, now)
}

// trackPointer syncs hover with the dispatcher's last pointer position
func (m *Marquee) trackPointer(now time.Time) {
	p, ok := m.input.Pointer()
	m.hover(ok && m.bounds.Contains(p.X, p.Y), now)
}

func (m *Marquee) hover(inside bool, now time.Time) {
	switch {
	case inside && !m.ctrl.Hovered():
		m.ctrl.HoverEnter(now)
	case !inside && m.ctrl.Hovered():
		m.ctrl.HoverLeave(now)
	}
}

func (m *Marquee) onEvent(ev event.Event) {
	switch ev.Kind {
	case event.KindPointer:
		m.hover(m.bounds.Contains(ev.X, ev.Y), ev.At)
	case event.KindPointerLeave:
		m.hover(false, ev.At)
	case event.KindVisibility:
		m.ctrl.SetVisible(ev.On, ev.At)
	case event.KindFreeze:
		m.ctrl.SetFrozen(ev.On, ev.At)
	}
}

func (m *Marquee) onFrame(now time.Time) {
	if m.dirty {
		m.layoutPass(now)
	}
	m.driver.Tick(now)
}

// layoutPass re-measures content and recomputes the copy layout
// A changed unit restarts measurement, a viewport-only change keeps the offset
func (m *Marquee) layoutPass(now time.Time) {
	m.dirty = false

	unit := Measure(m.items, m.prims.Gap, m.prims.Axis)
	if !unit.Valid() {
		if !m.stalled {
			log.Printf("marquee: content has zero extent along %s, not animating", m.prims.Axis)
			m.stalled = true
		}
		m.driver.Invalidate()
		m.copies = 0
		m.layout = m.layout[:0]
		return
	}
	m.stalled = false

	if m.driver.Unit() != unit {
		m.driver.Invalidate()
	}
	m.driver.SetUnit(unit, now)

	m.copies = Copies(unit, m.bounds.Extent(m.prims.Axis))
	m.layout = Layout(m.layout, m.items, m.prims.Gap, m.prims.Axis, m.copies)
}

// View is a read-only snapshot for rendering
type View struct {
	Bounds     Rect
	Prims      Primitives
	Items      []Item
	Placements []Placement
	Offset     float64
	Unit       Extent
	Copies     int
	State      State
}

// View returns the current render snapshot
// Placements alias internal storage and are valid until the next frame
func (m *Marquee) View() View {
	return View{
		Bounds:     m.bounds,
		Prims:      m.prims,
		Items:      m.items,
		Placements: m.layout,
		Offset:     m.driver.Offset(),
		Unit:       m.driver.Unit(),
		Copies:     m.copies,
		State:      m.driver.State(),
	}
}
