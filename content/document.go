package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/marquee/marquee"
)

// Item sources a section can reference
const (
	SourceTestimonials = "testimonials"
	SourceLogos        = "logos"
)

// Testimonial is one quote card record
type Testimonial struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Logo is one brand badge record
type Logo struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

// Options are the per-section marquee settings, unset fields keep marquee defaults
type Options struct {
	Direction    string  `yaml:"direction"`
	Reverse      bool    `yaml:"reverse"`
	Fade         bool    `yaml:"fade"`
	FadeWidth    *int    `yaml:"fade_width"`
	PauseOnHover bool    `yaml:"pause_on_hover"`
	Reserve      bool    `yaml:"reserve"`
	Gap          *int    `yaml:"gap"`
	Duration     string  `yaml:"duration"`
	Speed        float64 `yaml:"speed"`

	// Height is the track extent in rows for vertical sections
	Height int `yaml:"height"`
}

// Config converts options to a marquee config, values are not clamped here
func (o Options) Config() (marquee.Config, error) {
	cfg := marquee.DefaultConfig()
	if o.Direction != "" {
		d, err := marquee.ParseDirection(o.Direction)
		if err != nil {
			return cfg, err
		}
		cfg.Direction = d
	}
	if o.Duration != "" {
		d, err := time.ParseDuration(o.Duration)
		if err != nil {
			return cfg, fmt.Errorf("invalid duration: %w", err)
		}
		cfg.Duration = d
	}
	if math.IsNaN(o.Speed) || math.IsInf(o.Speed, 0) {
		return cfg, fmt.Errorf("invalid speed %v", o.Speed)
	}
	if o.FadeWidth != nil {
		cfg.FadeWidth = *o.FadeWidth
	}
	if o.Gap != nil {
		cfg.Gap = *o.Gap
	}
	cfg.Reverse = o.Reverse
	cfg.Fade = o.Fade
	cfg.PauseOnHover = o.PauseOnHover
	cfg.Reserve = o.Reserve
	cfg.Speed = o.Speed
	return cfg, nil
}

// Section is one demo block: a title, a marquee and its code snippet
type Section struct {
	Title   string  `yaml:"title"`
	Items   string  `yaml:"items"`
	Marquee Options `yaml:"marquee"`
	Code    string  `yaml:"code"`
}

// Document is the demo page content
type Document struct {
	Title        string        `yaml:"title"`
	Subtitle     string        `yaml:"subtitle"`
	Install      string        `yaml:"install"`
	Import       string        `yaml:"import"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Logos        []Logo        `yaml:"logos"`
	Sections     []Section     `yaml:"sections"`
}

// ErrNoSections is returned for a document without sections
var ErrNoSections = errors.New("document has no sections")

// Default returns the embedded demo document
func Default() (*Document, error) {
	return Decode(bytes.NewReader(defaultDocument))
}

// Load reads a document from path, an empty path yields the embedded default
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses and validates a YAML document, unknown fields are rejected
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks section references and marquee options
func (d *Document) Validate() error {
	if len(d.Sections) == 0 {
		return ErrNoSections
	}
	for i, s := range d.Sections {
		switch s.Items {
		case SourceTestimonials:
			if len(d.Testimonials) == 0 {
				return fmt.Errorf("section %d (%s): no testimonials defined", i, s.Title)
			}
		case SourceLogos:
			if len(d.Logos) == 0 {
				return fmt.Errorf("section %d (%s): no logos defined", i, s.Title)
			}
		default:
			return fmt.Errorf("section %d (%s): unknown item source %q", i, s.Title, s.Items)
		}
		if _, err := s.Marquee.Config(); err != nil {
			return fmt.Errorf("section %d (%s): %w", i, s.Title, err)
		}
	}
	return nil
}
