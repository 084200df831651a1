// internal/app/display.go
package app

import (
	"errors"
	"fmt"
	"log"

	"ionic-scatter/internal/config"
	"ionic-scatter/internal/scatter"
	"ionic-scatter/pkg/render"
)

// ErrNoFigure is returned by Display for a nil figure.
var ErrNoFigure = errors.New("no figure to display")

// ShowFunc puts a figure on screen. The static viewer returns once its window is
// closed, the interactive one as soon as its process has the figure.
type ShowFunc func(fig *scatter.Figure) error

// backends maps every known backend to its viewer.
var backends = map[config.Backend]ShowFunc{
	config.BackendStatic:      render.ShowStatic,
	config.BackendInteractive: launchInteractive,
}

// Display shows fig with the backend it was rendered for.
func Display(fig *scatter.Figure) error {
	if fig == nil {
		return ErrNoFigure
	}
	show, ok := backends[fig.Backend]
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownBackend, fig.Backend)
	}
	if err := show(fig); err != nil {
		return fmt.Errorf("%s backend: %w", fig.Backend, err)
	}
	return nil
}

// Plot renders points with cfg and shows the result. Nothing is opened when
// rendering fails.
func Plot(points scatter.PointSet, cfg config.RenderConfig) (*scatter.Figure, error) {
	fig, err := scatter.Render(points, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Rendered %d markers, values in [%g, %g], scale %s", len(fig.Markers), fig.ValueMin, fig.ValueMax, fig.Scale.Name)
	return fig, Display(fig)
}
