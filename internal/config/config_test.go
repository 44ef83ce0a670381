package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pywo.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
settings:
  layout: grid
  ignore: [shade]
keys:
  put: KP_5
aliases:
  tl: top_left
sections:
  top_left:
    gravity: TOP_LEFT
    widths: HALF, THIRD
    heights: HALF
`)
	cfg, err := LoadFromPath(path, testLogger())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Settings.Layout != "grid" {
		t.Fatalf("layout = %q, want grid", cfg.Settings.Layout)
	}
	if cfg.Keys["put"] != "KP_5" {
		t.Fatalf("keys[put] = %q, want KP_5", cfg.Keys["put"])
	}

	section, ok := cfg.Section("top_left")
	if !ok {
		t.Fatalf("section top_left missing")
	}
	if section.Gravity == nil || section.Gravity.X != 0 || section.Gravity.Y != 0 {
		t.Fatalf("gravity = %v, want top-left", section.Gravity)
	}
	if got := section.Size.Widths(100); len(got) != 2 || got[0] != 50 || got[1] != 33 {
		t.Fatalf("widths = %v, want [50 33]", got)
	}
}

func TestSectionAlias(t *testing.T) {
	path := writeConfig(t, `
aliases:
  tl: top_left
sections:
  top_left:
    gravity: TOP_LEFT
`)
	cfg, err := LoadFromPath(path, testLogger())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	byAlias, ok := cfg.Section("tl")
	if !ok {
		t.Fatalf("alias tl did not resolve")
	}
	byName, _ := cfg.Section("top_left")
	if byAlias != byName {
		t.Fatalf("alias must resolve to the same section")
	}
}

func TestFallbackChain(t *testing.T) {
	path := writeConfig(t, `
sections:
  only_gravity:
    gravity: MIDDLE
  only_position:
    position: BOTTOM
`)
	cfg, err := LoadFromPath(path, testLogger())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	section, _ := cfg.Section("only_gravity")
	if section.Direction == nil || !section.Direction.IsMiddle() {
		t.Fatalf("direction must fall back to gravity, got %v", section.Direction)
	}
	if section.Position == nil || !section.Position.IsMiddle() {
		t.Fatalf("position must fall back to gravity, got %v", section.Position)
	}

	section, _ = cfg.Section("only_position")
	if section.Gravity == nil || !section.Gravity.IsBottom() {
		t.Fatalf("gravity must fall back to position, got %v", section.Gravity)
	}
}

func TestMalformedSectionSkipped(t *testing.T) {
	path := writeConfig(t, `
sections:
  broken:
    gravity: "1.0"
  fine:
    gravity: TOP
`)
	cfg, err := LoadFromPath(path, testLogger())
	if err != nil {
		t.Fatalf("a malformed section must not fail the load: %v", err)
	}
	if _, ok := cfg.Section("broken"); ok {
		t.Fatalf("malformed section must be skipped")
	}
	if _, ok := cfg.Section("fine"); !ok {
		t.Fatalf("valid section must survive a sibling's parse error")
	}
}

func TestIgnored(t *testing.T) {
	path := writeConfig(t, `
settings:
  ignore: [shade]
sections:
  corner:
    gravity: TOP_LEFT
    ignore: [fullscreen]
`)
	cfg, err := LoadFromPath(path, testLogger())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	section, _ := cfg.Section("corner")
	if !cfg.Ignored(section, "shade") {
		t.Fatalf("globally ignored action must be ignored")
	}
	if !cfg.Ignored(section, "fullscreen") {
		t.Fatalf("section-ignored action must be ignored")
	}
	if cfg.Ignored(section, "put") {
		t.Fatalf("unlisted action must not be ignored")
	}
}
