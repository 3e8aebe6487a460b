// internal/ui/button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextButton - прямоугольная кнопка с надписью (меню, повтор, выход в меню).
type TextButton struct {
	X, Y          float32
	Width, Height float32
	Text          string
	BgColor       color.RGBA
	HoverColor    color.RGBA
	TextColor     color.RGBA
	Font          font.Face
	LastClickTime time.Time
}

// NewTextButton создает новую кнопку.
func NewTextButton(x, y, w, h float32, label string, face font.Face, bg, hover, fg color.RGBA) *TextButton {
	return &TextButton{
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		Text:       label,
		BgColor:    bg,
		HoverColor: hover,
		TextColor:  fg,
		Font:       face,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *TextButton) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// Press запоминает момент клика для анимации.
func (b *TextButton) Press() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку.
func (b *TextButton) Draw(screen *ebiten.Image, hovered bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := float32(1.0 + 0.1*math.Exp(-elapsed*8))
	w, h := b.Width*scale, b.Height*scale
	x, y := b.X-(w-b.Width)/2, b.Y-(h-b.Height)/2

	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)

	bounds := text.BoundString(b.Font, b.Text)
	tx := int(b.X) + (int(b.Width)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.Height)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
