package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"ionic-scatter/internal/config"
	"ionic-scatter/internal/scatter"
	"ionic-scatter/pkg/view"
)

// ScatterRenderer draws a figure from the default 3D view onto an ebiten image.
type ScatterRenderer struct {
	fig          *scatter.Figure
	camera       view.Camera
	projector    *view.Projector
	screenWidth  int
	screenHeight int
	colors       SceneColors
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	fontFace     font.Face
	titleFace    font.Face
	sceneImage   *ebiten.Image // предрендеренная сцена
	rendered     bool
}

func NewScatterRenderer(fig *scatter.Figure, screenWidth, screenHeight int) (*ScatterRenderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := newFace(tt, config.FontSize)
	if err != nil {
		return nil, err
	}
	titleFace, err := newFace(tt, config.TitleFontSize)
	if err != nil {
		return nil, err
	}

	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	camera := view.DefaultCamera()
	return &ScatterRenderer{
		fig:          fig,
		camera:       camera,
		projector:    view.NewProjector(camera, fig.Bounds, screenWidth, screenHeight),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       DefaultSceneColors(),
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 8),
		fillIs:       make([]uint16, 0, 12),
		fontFace:     face,
		titleFace:    titleFace,
		sceneImage:   ebiten.NewImage(screenWidth, screenHeight),
	}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// RenderScene draws the whole figure once; the view never changes afterwards.
func (r *ScatterRenderer) RenderScene() {
	r.sceneImage.Fill(r.colors.BackgroundColor)

	for _, pane := range r.camera.BackPanes() {
		r.drawPane(r.sceneImage, pane)
	}
	r.drawBox(r.sceneImage)
	r.drawAxes(r.sceneImage)
	r.drawMarkers(r.sceneImage)
	if r.fig.ShowColorbar {
		r.drawColorbar(r.sceneImage)
	}
	if r.fig.Title != "" {
		drawCentered(r.sceneImage, r.fig.Title, r.titleFace, float64(r.screenWidth)/2, config.TitleOffsetY, r.colors.TextColor)
	}
	r.rendered = true
}

func (r *ScatterRenderer) Draw(screen *ebiten.Image) {
	if !r.rendered {
		r.RenderScene()
	}
	screen.DrawImage(r.sceneImage, nil)
}

func (r *ScatterRenderer) drawPane(target *ebiten.Image, pane view.Pane) {
	path := vector.Path{}
	for i, corner := range pane.Corners {
		sp := r.projector.ProjectUnit(corner)
		if i == 0 {
			path.MoveTo(float32(sp.X), float32(sp.Y))
		} else {
			path.LineTo(float32(sp.X), float32(sp.Y))
		}
	}
	path.Close()

	fill := r.colors.PaneColor
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fill.R) / 255
		r.fillVs[i].ColorG = float32(fill.G) / 255
		r.fillVs[i].ColorB = float32(fill.B) / 255
		r.fillVs[i].ColorA = float32(fill.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *ScatterRenderer) drawBox(target *ebiten.Image) {
	for _, e := range view.BoxEdges() {
		a, b := r.projector.ProjectUnit(e[0]), r.projector.ProjectUnit(e[1])
		vector.StrokeLine(target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.colors.StrokeWidth, r.colors.BoxColor, true)
	}
}

func (r *ScatterRenderer) drawAxes(target *ebiten.Image) {
	labels := [3]string{r.fig.AxisLabels.X, r.fig.AxisLabels.Y, r.fig.AxisLabels.Z}
	anns := r.projector.Annotate(config.TickCount, config.TickLength, config.TickLabelOffset, config.AxisLabelOffset)

	for i, ann := range anns {
		vector.StrokeLine(target, float32(ann.Start.X), float32(ann.Start.Y), float32(ann.End.X), float32(ann.End.Y),
			r.colors.StrokeWidth*1.5, r.colors.AxisColor, true)
		for _, tick := range ann.Ticks {
			vector.StrokeLine(target, float32(tick.X0), float32(tick.Y0), float32(tick.X1), float32(tick.Y1),
				r.colors.StrokeWidth, r.colors.AxisColor, true)
			drawCentered(target, tick.Label, r.fontFace, tick.LabelX, tick.LabelY, r.colors.TextColor)
		}
		if labels[i] != "" {
			drawCentered(target, labels[i], r.fontFace, ann.LabelX, ann.LabelY, r.colors.TextColor)
		}
	}
}

// drawMarkers paints far markers first and fades them towards the background,
// the way matplotlib's depthshade does.
func (r *ScatterRenderer) drawMarkers(target *ebiten.Image) {
	order := r.projector.ProjectMarkers(r.fig.Positions())
	if len(order) == 0 {
		return
	}
	nearest, farthest := math.Inf(1), math.Inf(-1)
	for _, sp := range order {
		nearest = math.Min(nearest, sp.Depth)
		farthest = math.Max(farthest, sp.Depth)
	}

	radius := float32(r.fig.MarkerSize)
	for _, sp := range order {
		fill := ToRGBA(r.fig.Markers[sp.Index].Color)
		if farthest > nearest {
			shade := (sp.Depth - nearest) / (farthest - nearest) * config.DepthShadeMax
			fill = FadeColor(fill, r.colors.BackgroundColor, shade)
		}
		vector.DrawFilledCircle(target, float32(sp.X), float32(sp.Y), radius, fill, true)
		vector.StrokeCircle(target, float32(sp.X), float32(sp.Y), radius, config.MarkerStroke, DarkenColor(fill), true)
	}
}

func (r *ScatterRenderer) drawColorbar(target *ebiten.Image) {
	x0 := float32(r.screenWidth - config.ColorbarMarginX)
	y0 := float32(r.screenHeight-config.ColorbarHeight) / 2
	step := float32(config.ColorbarHeight) / config.ColorbarSteps

	for i := 0; i < config.ColorbarSteps; i++ {
		t := 1 - (float64(i)+0.5)/config.ColorbarSteps
		c := ToRGBA(r.fig.Scale.At(t))
		vector.DrawFilledRect(target, x0, y0+float32(i)*step, config.ColorbarWidth, step+1, c, false)
	}
	vector.StrokeRect(target, x0, y0, config.ColorbarWidth, config.ColorbarHeight, r.colors.StrokeWidth, r.colors.AxisColor, false)

	lo, hi := r.fig.ValueMin, r.fig.ValueMax
	right := x0 + config.ColorbarWidth
	for _, v := range view.Ticks(lo, hi, config.TickCount) {
		t := 0.0
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		y := y0 + float32(config.ColorbarHeight)*float32(1-t)
		vector.StrokeLine(target, right, y, right+4, y, r.colors.StrokeWidth, r.colors.AxisColor, false)
		drawLeftAligned(target, view.TickLabel(v), r.fontFace, float64(right+8), float64(y), r.colors.TextColor)
	}
}

// drawCentered draws s with its bounding box centred on (cx, cy).
func drawCentered(target *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - (b.Min.X+b.Max.X)/2
	y := int(cy) - (b.Min.Y+b.Max.Y)/2
	text.Draw(target, s, face, x, y, clr)
}

// drawLeftAligned draws s starting at x, vertically centred on cy.
func drawLeftAligned(target *ebiten.Image, s string, face font.Face, x, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	y := int(cy) - (b.Min.Y+b.Max.Y)/2
	text.Draw(target, s, face, int(x)-b.Min.X, y, clr)
}
