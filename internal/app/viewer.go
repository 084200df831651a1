// internal/app/viewer.go
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/exec"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"ionic-scatter/internal/config"
	"ionic-scatter/internal/scatter"
	"ionic-scatter/pkg/render"
)

// ViewCommand is the hidden subcommand that runs the interactive window in its
// own process.
const ViewCommand = "view"

// ErrBadPayload means the viewer process could not read what its parent sent.
var ErrBadPayload = errors.New("bad viewer payload")

// viewerPayload is what the parent writes to the viewer's stdin.
type viewerPayload struct {
	Positions [][3]jsonFloat      `json:"positions"`
	Values    []jsonFloat         `json:"values"`
	Config    config.RenderConfig `json:"config"`
}

// jsonFloat carries NaN and ±Inf as strings, plain JSON numbers have no way to.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(v, 'g', -1, 64))), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %s is not a number", ErrBadPayload, b)
	}
	*f = jsonFloat(v)
	return nil
}

// payloadOf rebuilds the render input a figure came from, so the viewer process
// renders exactly the same markers and colours.
func payloadOf(fig *scatter.Figure) viewerPayload {
	p := viewerPayload{
		Positions: make([][3]jsonFloat, len(fig.Markers)),
		Values:    make([]jsonFloat, len(fig.Markers)),
		Config: config.RenderConfig{
			Backend:      config.BackendInteractive,
			Colorscale:   fig.Scale.Name,
			AxisLabels:   fig.AxisLabels,
			Title:        fig.Title,
			MarkerSize:   fig.MarkerSize,
			ShowColorbar: fig.ShowColorbar,
		},
	}
	// Равные min и max диапазоном не задаются, процесс вычислит их сам
	if fig.ValueMax > fig.ValueMin {
		p.Config.ValueRange = []float64{fig.ValueMin, fig.ValueMax}
	}
	for i, m := range fig.Markers {
		p.Positions[i] = [3]jsonFloat{jsonFloat(m.Position.X), jsonFloat(m.Position.Y), jsonFloat(m.Position.Z)}
		p.Values[i] = jsonFloat(m.Value)
	}
	return p
}

// figure renders the payload again on the viewer side.
func (p viewerPayload) figure() (*scatter.Figure, error) {
	points := scatter.PointSet{
		Coordinates: make([]r3.Vec, len(p.Positions)),
		Values:      make([]float64, len(p.Values)),
	}
	for i, pos := range p.Positions {
		points.Coordinates[i] = r3.Vec{X: float64(pos[0]), Y: float64(pos[1]), Z: float64(pos[2])}
	}
	for i, v := range p.Values {
		points.Values[i] = float64(v)
	}
	return scatter.Render(points, p.Config)
}

// startFunc starts the viewer process, writes the payload to its stdin and
// returns without waiting for the window to close.
type startFunc func(payload []byte) error

var startViewer startFunc = startViewerProcess

// launchInteractive hands fig to a separate viewer process and returns at once.
func launchInteractive(fig *scatter.Figure) error {
	payload, err := json.Marshal(payloadOf(fig))
	if err != nil {
		return fmt.Errorf("failed to marshal viewer payload: %w", err)
	}
	return startViewer(payload)
}

func startViewerProcess(payload []byte) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	cmd := exec.Command(exe, ViewCommand)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := startDetached(cmd, payload); err != nil {
		return err
	}
	log.Printf("Started viewer process %d", cmd.Process.Pid)
	return cmd.Process.Release()
}

// startDetached starts cmd and feeds it payload. It does not wait for cmd to exit.
func startDetached(cmd *exec.Cmd, payload []byte) error {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open viewer stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start viewer: %w", err)
	}
	if _, err := stdin.Write(payload); err != nil {
		stdin.Close()
		return fmt.Errorf("failed to send figure to viewer: %w", err)
	}
	return stdin.Close()
}

// RunViewer reads a payload from r and shows it in the interactive window. It is
// the body of the viewer process and blocks until the window closes.
func RunViewer(r io.Reader) error {
	var p viewerPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	fig, err := p.figure()
	if err != nil {
		return err
	}
	return render.ShowInteractive(fig)
}
