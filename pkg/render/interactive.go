package render

import (
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"ionic-scatter/internal/config"
	"ionic-scatter/internal/scatter"
	"ionic-scatter/internal/ui"
	"ionic-scatter/pkg/view"
)

const helpText = "LMB - rotate | RMB - pan | Wheel - zoom | R - reset | Esc - close"

type interactiveViewer struct {
	fig       *scatter.Figure
	cam       view.Camera
	resetting bool
	camera    rl.Camera3D
	projector *view.Projector
	screen    []view.ScreenPoint
	hovered   view.ScreenPoint
	hasHover  bool
	world     []rl.Vector3
	colors    []rl.Color
	resetBtn  *ui.Button
}

func newInteractiveViewer(fig *scatter.Figure) *interactiveViewer {
	v := &interactiveViewer{
		fig:    fig,
		cam:    view.DefaultCamera(),
		world:  make([]rl.Vector3, len(fig.Markers)),
		colors: make([]rl.Color, len(fig.Markers)),
		resetBtn: ui.NewButton("Reset view", rl.KeyR, config.ResetButtonW, config.ResetButtonH, config.ResetButtonMargin,
			ToRL(config.ButtonColor), ToRL(config.ButtonHover)),
	}
	// Позиции и цвета маркеров не меняются, считаем один раз
	for i, m := range fig.Markers {
		v.world[i] = toWorld(fig.Bounds.Normalize(m.Position))
		v.colors[i] = ToRL(ToRGBA(m.Color))
	}
	v.syncCamera()
	return v
}

// ShowInteractive opens a raylib window with an orbit camera and blocks until it is
// closed. raylib has to own the main thread, so callers that must not block run it
// in a process of its own.
func ShowInteractive(fig *scatter.Figure) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, windowTitle(fig))
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open interactive window")
	}
	rl.SetTargetFPS(config.TargetFPS)

	v := newInteractiveViewer(fig)
	log.Printf("Showing %d markers in an interactive window", len(fig.Markers))

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}
	return nil
}

func (v *interactiveViewer) update() {
	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	v.resetBtn.Anchor(config.ResetButtonMargin)

	if v.resetBtn.Triggered(mouse) {
		v.resetting = true
	}

	// Любое ручное управление прерывает плавный сброс
	switch {
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && !v.resetBtn.Hovered(mouse):
		v.cam.Rotate(-float64(delta.X)*config.RotateSpeed, float64(delta.Y)*config.RotateSpeed)
		v.resetting = false
	case rl.IsMouseButtonDown(rl.MouseRightButton):
		v.cam.Pan(-float64(delta.X)*config.PanSpeed, float64(delta.Y)*config.PanSpeed)
		v.resetting = false
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.Zoom(math.Pow(config.ZoomStep, float64(wheel)))
		v.resetting = false
	}

	if v.resetting {
		home := view.DefaultCamera()
		v.cam.Approach(home, config.ResetSmoothing)
		if v.cam.Near(home, 1e-3) {
			v.cam.Reset()
			v.resetting = false
		}
	}
	v.syncCamera()

	v.projector = view.NewProjector(v.cam, v.fig.Bounds, int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	v.screen = v.projector.ProjectMarkers(v.fig.Positions())
	v.hovered, v.hasHover = view.Nearest(v.screen, float64(mouse.X), float64(mouse.Y), config.HoverRadius)
}

func (v *interactiveViewer) syncCamera() {
	v.camera = rl.Camera3D{
		Position:   toWorld(v.cam.Eye()),
		Target:     toWorld(v.cam.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(v.cam.FovY),
		Projection: rl.CameraPerspective,
	}
}

func (v *interactiveViewer) draw() {
	mouse := rl.GetMousePosition()

	rl.BeginDrawing()
	rl.ClearBackground(ToRL(config.BackgroundColor))

	rl.BeginMode3D(v.camera)
	boxColor := ToRL(config.BoxColor)
	for _, e := range view.BoxEdges() {
		rl.DrawLine3D(toWorld(e[0]), toWorld(e[1]), boxColor)
	}
	radius := v.markerRadius()
	for i, pos := range v.world {
		rl.DrawSphereEx(pos, radius, config.SphereRings, config.SphereSlices, v.colors[i])
	}
	if v.hasHover {
		rl.DrawSphereWires(v.world[v.hovered.Index], radius*1.3, config.SphereRings, config.SphereSlices, ToRL(config.AxisColor))
	}
	rl.EndMode3D()

	v.drawAxes()
	if v.fig.ShowColorbar {
		v.drawColorbar()
	}
	if v.fig.Title != "" {
		w := rl.MeasureText(v.fig.Title, config.TitleFontSize+4)
		rl.DrawText(v.fig.Title, (int32(rl.GetScreenWidth())-w)/2, config.TitleOffsetY-10, config.TitleFontSize+4, ToRL(config.TextColor))
	}
	if v.hasHover {
		v.drawTooltip(mouse)
	}
	f := v.cam.Focus(v.fig.Bounds)
	focus := fmt.Sprintf("centre x=%s y=%s z=%s", view.TickLabel(f.X), view.TickLabel(f.Y), view.TickLabel(f.Z))
	rl.DrawText(focus, 10, int32(rl.GetScreenHeight())-46, 16, ToRL(config.AxisColor))
	rl.DrawText(helpText, 10, int32(rl.GetScreenHeight())-24, 16, ToRL(config.AxisColor))
	v.resetBtn.Draw(mouse)

	rl.EndDrawing()
}

func (v *interactiveViewer) drawAxes() {
	labels := [3]string{v.fig.AxisLabels.X, v.fig.AxisLabels.Y, v.fig.AxisLabels.Z}
	text := ToRL(config.TextColor)
	axis := ToRL(config.AxisColor)

	for i, ann := range v.projector.Annotate(config.TickCount, config.TickLength, config.TickLabelOffset, config.AxisLabelOffset) {
		for _, tick := range ann.Ticks {
			rl.DrawLineV(rl.NewVector2(float32(tick.X0), float32(tick.Y0)), rl.NewVector2(float32(tick.X1), float32(tick.Y1)), axis)
			drawTextCentered(tick.Label, tick.LabelX, tick.LabelY, config.FontSize+2, text)
		}
		if labels[i] != "" {
			drawTextCentered(labels[i], ann.LabelX, ann.LabelY, config.FontSize+6, text)
		}
	}
}

func (v *interactiveViewer) drawColorbar() {
	x0 := int32(rl.GetScreenWidth()) - config.ColorbarMarginX
	y0 := (int32(rl.GetScreenHeight()) - config.ColorbarHeight) / 2
	step := float32(config.ColorbarHeight) / config.ColorbarSteps

	for i := 0; i < config.ColorbarSteps; i++ {
		t := 1 - (float64(i)+0.5)/config.ColorbarSteps
		y := float32(y0) + float32(i)*step
		rl.DrawRectangleRec(rl.NewRectangle(float32(x0), y, config.ColorbarWidth, step+1), ToRL(ToRGBA(v.fig.Scale.At(t))))
	}
	rl.DrawRectangleLines(x0, y0, config.ColorbarWidth, config.ColorbarHeight, ToRL(config.AxisColor))

	lo, hi := v.fig.ValueMin, v.fig.ValueMax
	right := x0 + config.ColorbarWidth
	for _, val := range view.Ticks(lo, hi, config.TickCount) {
		t := 0.0
		if hi > lo {
			t = (val - lo) / (hi - lo)
		}
		y := y0 + int32(float64(config.ColorbarHeight)*(1-t))
		rl.DrawLine(right, y, right+4, y, ToRL(config.AxisColor))
		rl.DrawText(view.TickLabel(val), right+8, y-7, config.FontSize+2, ToRL(config.TextColor))
	}
}

func (v *interactiveViewer) drawTooltip(mouse rl.Vector2) {
	m := v.fig.Markers[v.hovered.Index]
	lines := []string{
		fmt.Sprintf("#%d", v.hovered.Index),
		fmt.Sprintf("x=%s y=%s z=%s", view.TickLabel(m.Position.X), view.TickLabel(m.Position.Y), view.TickLabel(m.Position.Z)),
		fmt.Sprintf("value=%s", view.TickLabel(m.Value)),
	}
	const size, pad, lineH = 16, 6, 18

	var w int32
	for _, l := range lines {
		w = max(w, rl.MeasureText(l, size))
	}
	x, y := int32(mouse.X)+14, int32(mouse.Y)+14
	h := int32(len(lines))*lineH + 2*pad
	// Не вылезаем за правый и нижний край окна
	if x+w+2*pad > int32(rl.GetScreenWidth()) {
		x = int32(mouse.X) - w - 2*pad - 14
	}
	if y+h > int32(rl.GetScreenHeight()) {
		y = int32(mouse.Y) - h - 14
	}

	rl.DrawRectangle(x, y, w+2*pad, h, ToRL(config.TooltipColor))
	for i, l := range lines {
		rl.DrawText(l, x+pad, y+pad+int32(i)*lineH, size, ToRL(config.TooltipText))
	}
}

func (v *interactiveViewer) markerRadius() float32 {
	return float32(v.fig.MarkerSize * 0.03 * config.WorldScale / 10)
}

func drawTextCentered(s string, cx, cy float64, size int32, clr rl.Color) {
	w := rl.MeasureText(s, size)
	rl.DrawText(s, int32(cx)-w/2, int32(cy)-size/2, size, clr)
}

// toWorld maps unit-cube coordinates (z up) into raylib's y-up world.
func toWorld(u r3.Vec) rl.Vector3 {
	return rl.NewVector3(
		float32(u.X*config.WorldScale),
		float32(u.Z*config.WorldScale),
		float32(-u.Y*config.WorldScale),
	)
}
