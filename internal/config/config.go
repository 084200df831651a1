// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 800
	WindowTitle  = "Cluster Scatter"

	DefaultMarkerSize = 4.0 // радиус маркера в пикселях
	MarkerStroke      = 1.0
	DepthShadeMax     = 0.55 // how far the farthest marker fades into the background

	TickCount       = 5
	TickLength      = 6.0
	TickLabelOffset = 14.0
	AxisLabelOffset = 34.0
	FontSize        = 12
	TitleFontSize   = 16
	TitleOffsetY    = 28

	ColorbarWidth   = 18
	ColorbarHeight  = 320
	ColorbarMarginX = 70
	ColorbarSteps   = 128

	// Interactive viewer
	TargetFPS         = 60
	WorldScale        = 10.0  // unit cube edge length in raylib world units
	RotateSpeed       = 0.3   // degrees per pixel of mouse drag
	PanSpeed          = 0.002 // view-plane fraction per pixel of mouse drag
	ZoomStep          = 0.9
	ResetSmoothing    = 0.15
	HoverRadius       = 10.0
	SphereRings       = 8
	SphereSlices      = 12
	ResetButtonW      = 120
	ResetButtonH      = 32
	ResetButtonMargin = 12
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PaneColor       = color.RGBA{242, 242, 242, 255}
	BoxColor        = color.RGBA{170, 170, 170, 255}
	AxisColor       = color.RGBA{60, 60, 60, 255}
	TextColor       = color.RGBA{20, 20, 30, 255}
	MarkerEdgeColor = color.RGBA{40, 40, 40, 90}
	TooltipColor    = color.RGBA{20, 20, 30, 220}
	TooltipText     = color.RGBA{240, 240, 240, 255}
	ButtonColor     = color.RGBA{200, 200, 210, 255}
	ButtonHover     = color.RGBA{170, 170, 185, 255}
	StrokeWidth     = 1.0
)
