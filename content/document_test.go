package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/marquee/marquee"
)

func TestDefaultDocument(t *testing.T) {
	doc, err := Default()
	if err != nil {
		t.Fatalf("Expected embedded document to load, got %v", err)
	}

	if len(doc.Testimonials) != 5 {
		t.Errorf("Expected 5 testimonials, got %d", len(doc.Testimonials))
	}
	if len(doc.Logos) != 5 {
		t.Errorf("Expected 5 logos, got %d", len(doc.Logos))
	}
	if len(doc.Sections) != 6 {
		t.Errorf("Expected 6 sections, got %d", len(doc.Sections))
	}
	for _, s := range doc.Sections {
		if strings.TrimSpace(s.Code) == "" {
			t.Errorf("Expected code snippet for section %q", s.Title)
		}
	}
}

func TestDefaultDocument_SectionConfigs(t *testing.T) {
	doc, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	byTitle := map[string]marquee.Config{}
	for _, s := range doc.Sections {
		cfg, err := s.Marquee.Config()
		if err != nil {
			t.Fatalf("section %q: %v", s.Title, err)
		}
		byTitle[s.Title] = cfg
	}

	if !byTitle["Reverse direction"].Reverse {
		t.Error("Expected reverse section to reverse")
	}
	if byTitle["Vertical"].Direction != marquee.DirectionUp {
		t.Errorf("Expected vertical section to scroll up, got %s", byTitle["Vertical"].Direction)
	}
	custom := byTitle["Custom gap and speed"]
	if custom.Gap != 6 || custom.Duration != 5*time.Second {
		t.Errorf("Expected gap 6 and 5s, got gap %d and %v", custom.Gap, custom.Duration)
	}
	if !byTitle["Pause on hover"].PauseOnHover {
		t.Error("Expected pause on hover section to pause")
	}
	if byTitle["Fade"].Duration != marquee.DefaultDuration {
		t.Errorf("Expected default duration, got %v", byTitle["Fade"].Duration)
	}
}

func TestOptionsConfig_Errors(t *testing.T) {
	if _, err := (Options{Direction: "diagonal"}).Config(); err == nil {
		t.Error("Expected error for bad direction")
	}
	if _, err := (Options{Duration: "soon"}).Config(); err == nil {
		t.Error("Expected error for bad duration")
	}
}

func TestOptionsConfig_ExplicitZero(t *testing.T) {
	zero := 0
	cfg, err := Options{Gap: &zero, FadeWidth: &zero}.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gap != 0 || cfg.FadeWidth != 0 {
		t.Errorf("Expected explicit zeros kept, got gap %d fade %d", cfg.Gap, cfg.FadeWidth)
	}
}

func TestDecode_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no sections", "title: x\n"},
		{"unknown source", "logos: [{name: a}]\nsections: [{title: s, items: pictures}]\n"},
		{"missing logos", "sections: [{title: s, items: logos}]\n"},
		{"unknown field", "colour: red\nsections: [{title: s, items: logos}]\n"},
		{"bad option", "logos: [{name: a}]\nsections: [{title: s, items: logos, marquee: {direction: north}}]\n"},
		{"infinite speed", "logos: [{name: a}]\nsections: [{title: s, items: logos, marquee: {speed: .inf}}]\n"},
		{"nan speed", "logos: [{name: a}]\nsections: [{title: s, items: logos, marquee: {speed: .nan}}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	_, err := Decode(strings.NewReader("title: x\n"))
	if !errors.Is(err, ErrNoSections) {
		t.Errorf("Expected ErrNoSections, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	data := "title: Custom\nlogos: [{name: Go, glyph: g}]\nsections:\n  - title: Only\n    items: logos\n    marquee: {speed: 12}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Expected file to load, got %v", err)
	}
	if doc.Title != "Custom" || len(doc.Sections) != 1 {
		t.Errorf("Unexpected document %+v", doc)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	def, err := Load("")
	if err != nil || def.Title != "Marquee" {
		t.Errorf("Expected embedded default for empty path, got %v, %v", def, err)
	}
}
