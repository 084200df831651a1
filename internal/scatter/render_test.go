package scatter

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"ionic-scatter/internal/config"
	"ionic-scatter/pkg/colorscale"
)

func line(n int) PointSet {
	ps := PointSet{
		Coordinates: make([]r3.Vec, n),
		Values:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		ps.Coordinates[i] = r3.Vec{X: float64(i), Y: float64(2 * i), Z: float64(-i)}
		ps.Values[i] = float64(i%2*2 - 1)
	}
	return ps
}

func TestRender_MarkerCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 250} {
		fig, err := Render(line(n), config.DefaultRender())
		if err != nil {
			t.Fatalf("Render(n=%d): %v", n, err)
		}
		if len(fig.Markers) != n {
			t.Fatalf("markers=%d, want %d", len(fig.Markers), n)
		}
	}
}

func TestRender_ShapeMismatch(t *testing.T) {
	tcs := []struct {
		name   string
		coords int
		values int
	}{
		{name: "more coords", coords: 3, values: 2},
		{name: "more values", coords: 0, values: 1},
		{name: "no values", coords: 5, values: 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ps := PointSet{
				Coordinates: make([]r3.Vec, tc.coords),
				Values:      make([]float64, tc.values),
			}
			fig, err := Render(ps, config.DefaultRender())
			if !errors.Is(err, ErrShapeMismatch) {
				t.Fatalf("err=%v, want ErrShapeMismatch", err)
			}
			if fig != nil {
				t.Fatalf("figure=%v, want nil", fig)
			}
		})
	}
}

func TestRender_ShapeMismatchBeforeConfig(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.Colorscale = "nope"
	_, err := Render(PointSet{Values: []float64{1}}, cfg)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err=%v, want ErrShapeMismatch", err)
	}
}

func TestRender_AxisLabels(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.AxisLabels = config.AxisLabels{X: "a [nm]", Y: "", Z: "depth"}
	fig, err := Render(line(3), cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if fig.AxisLabels != cfg.AxisLabels {
		t.Fatalf("labels=%+v, want %+v", fig.AxisLabels, cfg.AxisLabels)
	}
}

func TestRender_CoolwarmEnds(t *testing.T) {
	ps := PointSet{
		Coordinates: []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
		Values:      []float64{-1, 1},
	}
	cfg := config.DefaultRender()
	cfg.Colorscale = "coolwarm"
	fig, err := Render(ps, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	scale, _ := colorscale.Lookup("coolwarm")
	if len(fig.Markers) != 2 {
		t.Fatalf("markers=%d, want 2", len(fig.Markers))
	}
	if fig.Markers[0].Color != scale.Low() {
		t.Fatalf("first=%s, want low end %s", fig.Markers[0].Color.Hex(), scale.Low().Hex())
	}
	if fig.Markers[1].Color != scale.High() {
		t.Fatalf("second=%s, want high end %s", fig.Markers[1].Color.Hex(), scale.High().Hex())
	}
}

func TestRender_Empty(t *testing.T) {
	fig, err := Render(PointSet{}, config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(fig.Markers) != 0 {
		t.Fatalf("markers=%d, want 0", len(fig.Markers))
	}
	if fig.ValueMin != 0 || fig.ValueMax != 1 {
		t.Fatalf("range=[%v,%v], want [0,1]", fig.ValueMin, fig.ValueMax)
	}
}

func TestRender_Deterministic(t *testing.T) {
	ps := line(40)
	for i := range ps.Values {
		ps.Values[i] = math.Sin(float64(i))
	}
	cfg := config.DefaultRender()
	cfg.Colorscale = "Viridis"

	a, err := Render(ps, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, _ := Render(ps, cfg)
	for i := range a.Markers {
		if a.Markers[i].Color != b.Markers[i].Color {
			t.Fatalf("marker %d: %v vs %v", i, a.Markers[i].Color, b.Markers[i].Color)
		}
	}
}

func TestRender_DoesNotAliasInput(t *testing.T) {
	ps := line(3)
	fig, err := Render(ps, config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	ps.Coordinates[0] = r3.Vec{X: 99, Y: 99, Z: 99}
	ps.Values[0] = 42
	if fig.Markers[0].Position == ps.Coordinates[0] || fig.Markers[0].Value == 42 {
		t.Fatalf("figure follows caller's slices: %+v", fig.Markers[0])
	}
}

func TestRender_ScaleNotShared(t *testing.T) {
	ps := line(2)
	first, err := Render(ps, config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := first.Markers[0].Color
	first.Scale.Stops[0].Pos = 0.3

	second, err := Render(ps, config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if second.Scale.Stops[0].Pos != 0 {
		t.Fatalf("Stops[0].Pos=%v, want 0", second.Scale.Stops[0].Pos)
	}
	if second.Markers[0].Color != want {
		t.Fatalf("color=%v, want %v", second.Markers[0].Color, want)
	}
}

func TestRender_InputUntouched(t *testing.T) {
	ps := line(4)
	before := append([]float64(nil), ps.Values...)
	if _, err := Render(ps, config.DefaultRender()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := range before {
		if ps.Values[i] != before[i] {
			t.Fatalf("value %d changed: %v -> %v", i, before[i], ps.Values[i])
		}
	}
}

func TestRender_FixedRangeClamps(t *testing.T) {
	ps := PointSet{
		Coordinates: make([]r3.Vec, 3),
		Values:      []float64{-5, 0, 5},
	}
	cfg := config.DefaultRender()
	cfg.Colorscale = "bwr"
	cfg.ValueRange = []float64{-1, 1}
	fig, err := Render(ps, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []string{"#0000ff", "#ffffff", "#ff0000"}
	for i, m := range fig.Markers {
		if m.Color.Hex() != want[i] {
			t.Fatalf("marker %d=%s, want %s", i, m.Color.Hex(), want[i])
		}
	}
	if fig.ValueMin != -1 || fig.ValueMax != 1 {
		t.Fatalf("range=[%v,%v], want [-1,1]", fig.ValueMin, fig.ValueMax)
	}
}

func TestRender_FlatValuesAtLowEnd(t *testing.T) {
	ps := PointSet{
		Coordinates: make([]r3.Vec, 2),
		Values:      []float64{0.3, 0.3},
	}
	fig, err := Render(ps, config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, m := range fig.Markers {
		if m.Color != fig.Scale.Low() {
			t.Fatalf("marker %d=%s, want low end", i, m.Color.Hex())
		}
	}
}

func TestRender_NaNValue(t *testing.T) {
	ps := PointSet{
		Coordinates: make([]r3.Vec, 3),
		Values:      []float64{-1, math.NaN(), 1},
	}
	fig, err := Render(ps, config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if fig.Markers[1].Color != fig.Scale.Bad {
		t.Fatalf("NaN marker=%s, want bad colour", fig.Markers[1].Color.Hex())
	}
	if fig.ValueMin != -1 || fig.ValueMax != 1 {
		t.Fatalf("NaN leaked into range [%v,%v]", fig.ValueMin, fig.ValueMax)
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*config.RenderConfig)
		err    error
	}{
		{name: "backend", mutate: func(c *config.RenderConfig) { c.Backend = "web" }, err: config.ErrUnknownBackend},
		{name: "scale", mutate: func(c *config.RenderConfig) { c.Colorscale = "nope" }, err: config.ErrUnknownColorscale},
		{name: "marker", mutate: func(c *config.RenderConfig) { c.MarkerSize = -1 }, err: config.ErrInvalidConfig},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultRender()
			tc.mutate(&cfg)
			fig, err := Render(line(2), cfg)
			if !errors.Is(err, tc.err) || fig != nil {
				t.Fatalf("fig=%v err=%v, want %v", fig, err, tc.err)
			}
		})
	}
}

func TestFigure_PositionsAndBounds(t *testing.T) {
	fig, err := Render(line(3), config.DefaultRender())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	pos := fig.Positions()
	if len(pos) != 3 || pos[2] != (r3.Vec{X: 2, Y: 4, Z: -2}) {
		t.Fatalf("positions=%v", pos)
	}
	if fig.Bounds.Min != (r3.Vec{X: 0, Y: 0, Z: -2}) || fig.Bounds.Max != (r3.Vec{X: 2, Y: 4, Z: 0}) {
		t.Fatalf("bounds=%+v", fig.Bounds)
	}
	if fig.ColorAt(fig.ValueMax) != fig.Scale.High() {
		t.Fatalf("ColorAt(max) is not the high end")
	}
}
