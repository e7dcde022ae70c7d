// Package config loads the optional tweak.yaml that seeds the demo controls.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/numeric"
)

// FileName is the config file looked up in a project directory.
const FileName = "tweak.yaml"

// Config represents the optional tweak.yaml configuration.
type Config struct {
	Title  string       `yaml:"title,omitempty"`
	Color  string       `yaml:"color,omitempty"`
	Number NumberConfig `yaml:"number"`
	Canvas CanvasConfig `yaml:"canvas"`
}

// NumberConfig seeds the slider/text control.
type NumberConfig struct {
	Value  *float64 `yaml:"value,omitempty"`
	Min    *float64 `yaml:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty"`
	Step   float64  `yaml:"step,omitempty"`
	Digits *int     `yaml:"digits,omitempty"`
}

// CanvasConfig sizes the saturation/value palette.
type CanvasConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// Resolved contains configuration with defaults applied and values checked.
type Resolved struct {
	Root   string
	Title  string
	Color  color.Color
	Number Number
	Width  int
	Height int
}

// Number is the resolved slider/text setup.
type Number struct {
	Value, Min, Max, Step float64
	Digits                int
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// Parse parses tweak.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// LoadOptional reads tweak.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Resolve loads tweak.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve applies defaults to cfg and validates the result. dir is used for
// the default title.
func (cfg *Config) Resolve(dir string) (*Resolved, error) {
	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(dir)
	}

	c := color.HSV(0, 100, 100)
	if s := strings.TrimSpace(cfg.Color); s != "" {
		parsed, ok := format.ColorHexParser{}.Parse(s)
		if !ok {
			return nil, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or 0xrrggbb", s)
		}
		c = parsed
	}

	n := Number{Min: 0, Max: 100, Digits: 2}
	if cfg.Number.Min != nil {
		n.Min = *cfg.Number.Min
	}
	if cfg.Number.Max != nil {
		n.Max = *cfg.Number.Max
	}
	if n.Max <= n.Min {
		return nil, fmt.Errorf("number.max (%g) must be greater than number.min (%g)", n.Max, n.Min)
	}
	n.Value = n.Min
	if cfg.Number.Value != nil {
		n.Value = *cfg.Number.Value
	}
	if n.Value < n.Min || n.Value > n.Max {
		return nil, fmt.Errorf("number.value (%g) is outside [%g, %g]", n.Value, n.Min, n.Max)
	}
	if cfg.Number.Step < 0 {
		return nil, fmt.Errorf("number.step must not be negative")
	}
	n.Step = cfg.Number.Step
	if cfg.Number.Digits != nil {
		n.Digits = *cfg.Number.Digits
	} else if n.Step > 0 {
		n.Digits = numeric.DecimalDigits(n.Step)
	}
	if n.Digits < 0 || n.Digits > 10 {
		return nil, fmt.Errorf("number.digits must be between 0 and 10")
	}

	width, height := cfg.Canvas.Width, cfg.Canvas.Height
	if width == 0 {
		width = 128
	}
	if height == 0 {
		height = width
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}

	return &Resolved{
		Root:   dir,
		Title:  title,
		Color:  c,
		Number: n,
		Width:  width,
		Height: height,
	}, nil
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding tweak.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

// defaultTitle names the demo after the enclosing Go module, falling back to
// the directory name.
func defaultTitle(dir string) string {
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			if prefix, _, ok := module.SplitPathVersion(path); ok {
				path = prefix
			}
			return path[strings.LastIndex(path, "/")+1:]
		}
	}
	if base := filepath.Base(dir); base != "." && base != string(filepath.Separator) {
		return base
	}
	return "tweak"
}
