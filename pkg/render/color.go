// pkg/render/color.go
package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"ionic-scatter/internal/config"
)

// SceneColors holds all the color definitions needed to render the axes around the data.
type SceneColors struct {
	BackgroundColor color.RGBA
	PaneColor       color.RGBA
	BoxColor        color.RGBA
	AxisColor       color.RGBA
	TextColor       color.RGBA
	StrokeWidth     float32
}

// DefaultSceneColors takes the palette from config.
func DefaultSceneColors() SceneColors {
	return SceneColors{
		BackgroundColor: config.BackgroundColor,
		PaneColor:       config.PaneColor,
		BoxColor:        config.BoxColor,
		AxisColor:       config.AxisColor,
		TextColor:       config.TextColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

// ToRGBA converts a scale colour to an opaque 8-bit colour.
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.6),
		G: uint8(float64(c.G) * 0.6),
		B: uint8(float64(c.B) * 0.6),
		A: c.A,
	}
}

// FadeColor blends c towards bg by t in [0, 1]; used to shade distant markers.
func FadeColor(c, bg color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return color.RGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: c.A}
}

// ToRL converts any color to a raylib color.
func ToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
