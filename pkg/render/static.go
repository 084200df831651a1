package render

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ionic-scatter/internal/config"
	"ionic-scatter/internal/scatter"
)

type staticGame struct {
	renderer *ScatterRenderer
}

func (g *staticGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *staticGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *staticGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// ShowStatic opens a window with the figure and blocks until it is closed.
func ShowStatic(fig *scatter.Figure) error {
	renderer, err := NewScatterRenderer(fig, config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle(fig) + " | Esc/Q - Close")
	log.Printf("Showing %d markers in a static window", len(fig.Markers))

	if err := ebiten.RunGame(&staticGame{renderer: renderer}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func windowTitle(fig *scatter.Figure) string {
	if fig.Title == "" {
		return config.WindowTitle
	}
	return config.WindowTitle + " | " + fig.Title
}
