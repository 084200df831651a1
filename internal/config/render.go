package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"ionic-scatter/pkg/colorscale"
)

// Backend selects how a figure is shown.
type Backend string

const (
	BackendStatic      Backend = "static"
	BackendInteractive Backend = "interactive"
)

var (
	ErrUnknownBackend    = errors.New("unknown backend")
	ErrUnknownColorscale = colorscale.ErrUnknown
	ErrInvalidConfig     = errors.New("invalid render config")
)

// ParseBackend accepts a backend name in any case.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendStatic, BackendInteractive:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// AxisLabels are the captions of the three spatial axes.
type AxisLabels struct {
	X string `toml:"x" json:"x"`
	Y string `toml:"y" json:"y"`
	Z string `toml:"z" json:"z"`
}

// RenderConfig holds everything a single render call needs besides the points.
type RenderConfig struct {
	Backend      Backend    `toml:"backend" json:"backend"`
	Colorscale   string     `toml:"colorscale" json:"colorscale"`
	AxisLabels   AxisLabels `toml:"axis_labels" json:"axis_labels"`
	Title        string     `toml:"title" json:"title"`
	MarkerSize   float64    `toml:"marker_size" json:"marker_size"`
	ShowColorbar bool       `toml:"show_colorbar" json:"show_colorbar"`
	// ValueRange pins the colour normalisation to [min, max]. Empty means the
	// range of the data.
	ValueRange []float64 `toml:"value_range" json:"value_range"`
}

// DefaultRender is the configuration used when nothing else is given.
func DefaultRender() RenderConfig {
	return RenderConfig{
		Backend:      BackendStatic,
		Colorscale:   "coolwarm",
		AxisLabels:   AxisLabels{X: "x", Y: "y", Z: "z"},
		MarkerSize:   DefaultMarkerSize,
		ShowColorbar: true,
	}
}

// LoadRenderConfig reads a TOML file on top of DefaultRender.
func LoadRenderConfig(path string) (RenderConfig, error) {
	cfg := DefaultRender()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to read render config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return RenderConfig{}, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// Validate checks every option a render depends on.
func (c RenderConfig) Validate() error {
	if _, err := ParseBackend(string(c.Backend)); err != nil {
		return err
	}
	if _, err := colorscale.Lookup(c.Colorscale); err != nil {
		return err
	}
	if !(c.MarkerSize > 0) || math.IsInf(c.MarkerSize, 0) {
		return fmt.Errorf("%w: marker size %v", ErrInvalidConfig, c.MarkerSize)
	}
	switch len(c.ValueRange) {
	case 0:
	case 2:
		lo, hi := c.ValueRange[0], c.ValueRange[1]
		if math.IsNaN(lo) || math.IsNaN(hi) || !(lo < hi) {
			return fmt.Errorf("%w: value range [%v, %v]", ErrInvalidConfig, lo, hi)
		}
	default:
		return fmt.Errorf("%w: value range needs 2 numbers, got %d", ErrInvalidConfig, len(c.ValueRange))
	}
	return nil
}
