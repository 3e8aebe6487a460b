package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator показывает стадию римскими цифрами и прогресс волны.
type WaveIndicator struct {
	X, Y         float32
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
	Font         font.Face
}

func NewWaveIndicator(x, y float32, face font.Face, clr, boss color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		BossColor:    boss,
		OutlineColor: color.RGBA{255, 255, 255, 255},
		Font:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует "STAGE II" и счётчик выпущенных врагов, центрируя по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, stage, spawned, planned int, bossPhase bool) {
	if stage <= 0 {
		return
	}
	label := "STAGE " + toRoman(stage)
	textColor := i.Color
	if bossPhase {
		textColor = i.BossColor
	}

	bounds := text.BoundString(i.Font, label)
	x := int(i.X) - bounds.Dx()/2
	y := int(i.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.Font, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Font, x, y, textColor)

	progress := fmt.Sprintf("%d/%d", spawned, planned)
	pb := text.BoundString(i.Font, progress)
	text.Draw(screen, progress, i.Font, int(i.X)-pb.Dx()/2, y+bounds.Dy()+6, textColor)
}
