package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/tweak/pkg/color"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/studio/lights/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Title != "lights" {
		t.Errorf("Title = %q, want %q", got.Title, "lights")
	}
	if diff := cmp.Diff(Number{Min: 0, Max: 100, Digits: 2}, got.Number); diff != "" {
		t.Errorf("Number mismatch (-want +got):\n%s", diff)
	}
	if got.Width != 128 || got.Height != 128 {
		t.Errorf("canvas = %dx%d, want 128x128", got.Width, got.Height)
	}
	if !got.Color.Equal(color.HSV(0, 100, 100)) {
		t.Errorf("Color = %v, want red", got.Color)
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "swatches")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Title != "swatches" {
		t.Errorf("Title = %q, want %q", got.Title, "swatches")
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
title: Exposure
color: "#408040"
number:
  value: 5
  min: 0
  max: 10
  step: 0.25
canvas:
  width: 64
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Title != "Exposure" {
		t.Errorf("Title = %q, want Exposure", got.Title)
	}
	if diff := cmp.Diff(Number{Value: 5, Min: 0, Max: 10, Step: 0.25, Digits: 2}, got.Number); diff != "" {
		t.Errorf("Number mismatch (-want +got):\n%s", diff)
	}
	if got.Width != 64 || got.Height != 64 {
		t.Errorf("canvas = %dx%d, want 64x64", got.Width, got.Height)
	}
	if !got.Color.Equal(color.RGB(0x40, 0x80, 0x40)) {
		t.Errorf("Color = %v, want #408040", got.Color)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "title: [", "failed to parse"},
		{"bad color", "color: teal", "invalid color"},
		{"empty range", "number: {min: 5, max: 5}", "must be greater"},
		{"value outside", "number: {min: 0, max: 1, value: 3}", "outside"},
		{"negative step", "number: {step: -1}", "must not be negative"},
		{"digits", "number: {digits: 12}", "digits"},
		{"canvas", "canvas: {width: -4}", "canvas size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			_, err := Resolve(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected empty config (-want +got):\n%s", diff)
	}
}
