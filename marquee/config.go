package marquee

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"
)

// Direction is the travel direction of marquee content
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

var directionNames = [...]string{"left", "right", "up", "down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection resolves a direction name, case-insensitive
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return DirectionLeft, fmt.Errorf("unknown direction %q", s)
}

// Axis returns the scroll axis for the direction
func (d Direction) Axis() Axis {
	if d == DirectionUp || d == DirectionDown {
		return AxisY
	}
	return AxisX
}

// Axis is the main scroll axis
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Defaults, extents are in terminal cells
const (
	DefaultDuration  = 40 * time.Second
	DefaultGap       = 2
	DefaultFadeWidth = 6
	DefaultMaxStep   = time.Second

	// MinDuration is the clamp floor for non-positive durations
	MinDuration = 100 * time.Millisecond
	// MinMaxStep is the clamp floor for the per-tick delta bound
	MinMaxStep = time.Millisecond
)

// Config is the immutable per-mount marquee configuration
// Changing any field requires Marquee.Rebind, never in-place mutation
type Config struct {
	Direction    Direction
	Reverse      bool
	Fade         bool
	FadeWidth    int
	PauseOnHover bool
	Reserve      bool
	Gap          int

	// Duration is the time for one full repeat-unit pass, used when Speed is zero
	Duration time.Duration
	// Speed is a literal rate in cells per second, overrides Duration when positive
	Speed float64

	// MaxStep bounds a single tick's delta time
	MaxStep time.Duration
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		Direction: DirectionLeft,
		FadeWidth: DefaultFadeWidth,
		Gap:       DefaultGap,
		Duration:  DefaultDuration,
		MaxStep:   DefaultMaxStep,
	}
}

// Normalize returns a copy with invalid values clamped to their minimums
// Each clamped field logs a warning; normalization never fails
func (c Config) Normalize() Config {
	if c.Direction > DirectionDown {
		log.Printf("marquee: invalid direction %d, using left", c.Direction)
		c.Direction = DirectionLeft
	}
	if c.Duration <= 0 {
		log.Printf("marquee: non-positive duration %v, clamped to %v", c.Duration, MinDuration)
		c.Duration = MinDuration
	} else if c.Duration < MinDuration {
		log.Printf("marquee: duration %v below minimum, clamped to %v", c.Duration, MinDuration)
		c.Duration = MinDuration
	}
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed < 0 {
		log.Printf("marquee: invalid speed %v, falling back to duration", c.Speed)
		c.Speed = 0
	}
	if c.Gap < 0 {
		log.Printf("marquee: negative gap %d, clamped to 0", c.Gap)
		c.Gap = 0
	}
	if c.FadeWidth < 0 {
		log.Printf("marquee: negative fade width %d, clamped to 0", c.FadeWidth)
		c.FadeWidth = 0
	}
	if c.MaxStep <= 0 {
		c.MaxStep = DefaultMaxStep
	} else if c.MaxStep < MinMaxStep {
		log.Printf("marquee: max step %v below minimum, clamped to %v", c.MaxStep, MinMaxStep)
		c.MaxStep = MinMaxStep
	}
	return c
}

// Sign is -1 when content travels toward the axis origin (left, up), +1 otherwise
// Reverse flips it within the axis
func (c Config) Sign() int {
	sign := 1
	if c.Direction == DirectionLeft || c.Direction == DirectionUp {
		sign = -1
	}
	if c.Reverse {
		sign = -sign
	}
	return sign
}
