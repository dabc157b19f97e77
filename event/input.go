package event

import "time"

// Kind identifies a host input event
type Kind uint8

const (
	// KindPointer reports the pointer position in screen cells
	// Trigger: mouse motion | Consumer: Marquee hover tracking
	KindPointer Kind = iota + 1

	// KindPointerLeave reports the pointer leaving the screen
	// Trigger: focus loss, terminal leave | Consumer: Marquee hover tracking
	KindPointerLeave

	// KindVisibility reports host visibility (terminal focus)
	// Trigger: focus in/out | Consumer: Marquee visibility hold
	KindVisibility

	// KindFreeze toggles the host-wide freeze
	// Trigger: user key | Consumer: Marquee freeze hold
	KindFreeze
)

var kindNames = map[Kind]string{
	KindPointer:      "Pointer",
	KindPointerLeave: "PointerLeave",
	KindVisibility:   "Visibility",
	KindFreeze:       "Freeze",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is a host input event, fields are interpreted per Kind
type Event struct {
	Kind Kind
	At   time.Time

	X, Y int  // KindPointer
	On   bool // KindVisibility: visible, KindFreeze: frozen
}

// Pointer builds a pointer event
func Pointer(x, y int, at time.Time) Event {
	return Event{Kind: KindPointer, X: x, Y: y, At: at}
}

// PointerLeave builds a pointer-leave event
func PointerLeave(at time.Time) Event {
	return Event{Kind: KindPointerLeave, At: at}
}

// Visibility builds a visibility event
func Visibility(visible bool, at time.Time) Event {
	return Event{Kind: KindVisibility, On: visible, At: at}
}

// Freeze builds a freeze event
func Freeze(frozen bool, at time.Time) Event {
	return Event{Kind: KindFreeze, On: frozen, At: at}
}
