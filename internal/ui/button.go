// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is a raylib push button that can also be fired from the keyboard.
type Button struct {
	Rect       rl.Rectangle
	Label      string
	Shortcut   int32
	Idle       rl.Color
	Hover      rl.Color
	LabelColor rl.Color
	FontSize   float32
}

// NewButton places a button of the given size in the top-right corner of the window.
func NewButton(label string, shortcut int32, width, height, margin float32, idle, hover rl.Color) *Button {
	return &Button{
		Rect:       rl.NewRectangle(float32(rl.GetScreenWidth())-width-margin, margin, width, height),
		Label:      label,
		Shortcut:   shortcut,
		Idle:       idle,
		Hover:      hover,
		LabelColor: rl.Black,
		FontSize:   18,
	}
}

// Anchor keeps the button in the top-right corner after a window resize.
func (b *Button) Anchor(margin float32) {
	b.Rect.X = float32(rl.GetScreenWidth()) - b.Rect.Width - margin
	b.Rect.Y = margin
}

// Hovered reports whether the mouse is over the button.
func (b *Button) Hovered(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// Triggered reports a left click on the button or a press of its shortcut key.
func (b *Button) Triggered(mousePos rl.Vector2) bool {
	if b.Shortcut != 0 && rl.IsKeyPressed(b.Shortcut) {
		return true
	}
	return b.Hovered(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw renders the button with raylib's default font.
func (b *Button) Draw(mousePos rl.Vector2) {
	bg := b.Idle
	if b.Hovered(mousePos) {
		bg = b.Hover
	}
	rl.DrawRectangleRec(b.Rect, bg)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	font := rl.GetFontDefault()
	size := rl.MeasureTextEx(font, b.Label, b.FontSize, 1)
	pos := rl.NewVector2(b.Rect.X+(b.Rect.Width-size.X)/2, b.Rect.Y+(b.Rect.Height-size.Y)/2)
	rl.DrawTextEx(font, b.Label, pos, b.FontSize, 1, b.LabelColor)
}
