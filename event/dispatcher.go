package event

// Listener receives dispatched events
type Listener func(Event)

// Subscription is a registered listener, released with Unsubscribe
type Subscription struct {
	d      *Dispatcher
	fn     Listener
	active bool
}

// Unsubscribe removes the listener synchronously, later publishes never reach it
// Idempotent and safe to call from inside a listener
func (s *Subscription) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.fn = nil
	s.d.dirty = true
}

// Active reports whether the listener is still registered
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Dispatcher fans host input events out to listeners in subscription order
// Not safe for concurrent use, owned by the frame loop goroutine
type Dispatcher struct {
	subs  []*Subscription
	dirty bool

	// Last published state, read by late subscribers
	lastPointer *Event
	visible     bool
	frozen      bool
}

// NewDispatcher creates a dispatcher with the host visible and unfrozen
func NewDispatcher() *Dispatcher {
	return &Dispatcher{visible: true}
}

// Subscribe registers fn, current host state is available through the accessors
func (d *Dispatcher) Subscribe(fn Listener) *Subscription {
	s := &Subscription{d: d, fn: fn, active: true}
	d.subs = append(d.subs, s)
	return s
}

// Visible reports the last published visibility
func (d *Dispatcher) Visible() bool {
	return d.visible
}

// Frozen reports the last published freeze state
func (d *Dispatcher) Frozen() bool {
	return d.frozen
}

// Pointer returns the last pointer event, ok is false when the pointer is unknown or left
func (d *Dispatcher) Pointer() (Event, bool) {
	if d.lastPointer == nil {
		return Event{}, false
	}
	return *d.lastPointer, true
}

// Len returns the number of active subscriptions
func (d *Dispatcher) Len() int {
	n := 0
	for _, s := range d.subs {
		if s.active {
			n++
		}
	}
	return n
}

// Publish delivers ev to every active listener
func (d *Dispatcher) Publish(ev Event) {
	switch ev.Kind {
	case KindPointer:
		p := ev
		d.lastPointer = &p
	case KindPointerLeave:
		d.lastPointer = nil
	case KindVisibility:
		d.visible = ev.On
	case KindFreeze:
		d.frozen = ev.On
	}

	n := len(d.subs)
	for i := 0; i < n; i++ {
		s := d.subs[i]
		if !s.active {
			continue
		}
		s.fn(ev)
	}

	if d.dirty {
		live := d.subs[:0]
		for _, s := range d.subs {
			if s.active {
				live = append(live, s)
			}
		}
		for i := len(live); i < len(d.subs); i++ {
			d.subs[i] = nil
		}
		d.subs = live
		d.dirty = false
	}
}
