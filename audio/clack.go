package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	clackFreq     = 1800.0
	clackDuration = 25 * time.Millisecond
	clackDecay    = 220.0 // Envelope decay per second
	clackVolume   = 0.25

	// DefaultClackGap rate-limits clacks from fast marquees
	DefaultClackGap = 120 * time.Millisecond
)

// Clacker plays a short ticker-tape click when a marquee wraps
type Clacker struct {
	mu     sync.Mutex
	play   func(beep.Streamer)
	last   time.Time
	minGap time.Duration
	closed bool
	owned  bool // Speaker initialized by this clacker
}

// NewClacker initializes the speaker
func NewClacker() (*Clacker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	play := func(s beep.Streamer) { speaker.Play(s) }
	return &Clacker{play: play, minGap: DefaultClackGap, owned: true}, nil
}

// newClackerWithPlayer is used by tests to capture streamers
func newClackerWithPlayer(play func(beep.Streamer)) *Clacker {
	return &Clacker{play: play, minGap: DefaultClackGap}
}

// Clack plays one click unless one played within the minimum gap
// Nil receiver is a silent no-op, so callers can run without audio
func (c *Clacker) Clack(now time.Time) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	if !c.last.IsZero() && now.Sub(c.last) < c.minGap {
		return false
	}
	c.last = now
	c.play(newClick(clackFreq, clackDuration, sampleRate))
	return true
}

// Close releases the speaker
func (c *Clacker) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.owned {
		speaker.Close()
	}
}

// click is a sine burst with an exponential decay envelope
type click struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newClick(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &click{freq: freq, duration: rate.N(duration), rate: rate}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}
		t := float64(c.position) / float64(c.rate)
		env := math.Exp(-clackDecay*t) * clackVolume
		val := math.Sin(2*math.Pi*c.phase) * env

		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }
