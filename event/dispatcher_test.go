package event

import (
	"testing"
	"time"
)

func TestDispatcher_PublishOrder(t *testing.T) {
	d := NewDispatcher()

	var got []int
	d.Subscribe(func(Event) { got = append(got, 1) })
	d.Subscribe(func(Event) { got = append(got, 2) })

	d.Publish(Pointer(1, 1, time.Time{}))

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected [1 2], got %v", got)
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	s := d.Subscribe(func(Event) { calls++ })

	d.Publish(Freeze(true, time.Time{}))
	s.Unsubscribe()
	s.Unsubscribe()
	d.Publish(Freeze(false, time.Time{}))

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if d.Len() != 0 {
		t.Errorf("Expected 0 subscriptions, got %d", d.Len())
	}
}

func TestDispatcher_UnsubscribeInsideListener(t *testing.T) {
	d := NewDispatcher()

	var second *Subscription
	secondCalls := 0
	d.Subscribe(func(Event) { second.Unsubscribe() })
	second = d.Subscribe(func(Event) { secondCalls++ })

	d.Publish(Visibility(false, time.Time{}))

	if secondCalls != 0 {
		t.Errorf("Expected unsubscribed listener to be skipped, got %d calls", secondCalls)
	}
	if second.Active() {
		t.Error("Expected subscription inactive")
	}
}

func TestDispatcher_TracksHostState(t *testing.T) {
	d := NewDispatcher()

	if !d.Visible() {
		t.Error("Expected dispatcher to start visible")
	}
	if _, ok := d.Pointer(); ok {
		t.Error("Expected no pointer before first pointer event")
	}

	d.Publish(Pointer(4, 7, time.Time{}))
	d.Publish(Visibility(false, time.Time{}))
	d.Publish(Freeze(true, time.Time{}))

	p, ok := d.Pointer()
	if !ok || p.X != 4 || p.Y != 7 {
		t.Errorf("Expected pointer (4,7), got (%d,%d) ok=%v", p.X, p.Y, ok)
	}
	if d.Visible() {
		t.Error("Expected not visible")
	}
	if !d.Frozen() {
		t.Error("Expected frozen")
	}

	d.Publish(PointerLeave(time.Time{}))
	if _, ok := d.Pointer(); ok {
		t.Error("Expected pointer cleared after leave")
	}
}

func TestKindString(t *testing.T) {
	if KindPointer.String() != "Pointer" {
		t.Errorf("Expected Pointer, got %s", KindPointer.String())
	}
	if Kind(200).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Kind(200).String())
	}
}
