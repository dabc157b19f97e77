package marquee

// Primitives are the rendering parameters derived from a Config
// Comparable, so identical configs yield == primitives
type Primitives struct {
	Axis Axis
	Sign int // -1 toward axis origin, +1 away

	Gap int

	// Fade is the edge ramp width in cells, 0 when fade is disabled
	Fade int
	// Reserve is the extra container extent at each end of the track, 0 or Fade
	Reserve int
}

// Bind translates a config into rendering primitives
// Without reserve the ramp overlays the outer Fade cells of the track. With reserve the container
// grows by Fade at both ends and the ramp covers exactly those bands
func Bind(cfg Config) Primitives {
	p := Primitives{
		Axis: cfg.Direction.Axis(),
		Sign: cfg.Sign(),
		Gap:  max(cfg.Gap, 0),
	}
	if cfg.Fade && cfg.FadeWidth > 0 {
		p.Fade = cfg.FadeWidth
		if cfg.Reserve {
			p.Reserve = cfg.FadeWidth
		}
	}
	return p
}

// ContainerExtent is the layout extent a host allocates for a track of the given extent
func (p Primitives) ContainerExtent(track int) int {
	return track + 2*p.Reserve
}

// FadeAlpha returns content opacity at distance d cells from the nearest container edge
// Linear ramp sampled at cell centers: (d+0.5)/Fade, 1 outside the ramp
func (p Primitives) FadeAlpha(d int) float64 {
	if p.Fade <= 0 || d >= p.Fade {
		return 1
	}
	if d < 0 {
		return 0
	}
	return (float64(d) + 0.5) / float64(p.Fade)
}

// EdgeDistance returns the distance of pos from the nearest edge of a container of extent n
func EdgeDistance(pos, n int) int {
	return min(pos, n-1-pos)
}
