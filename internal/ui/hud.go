// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudBorderWidth = 1
	hudLineGap     = 22
)

// HUD рисует здоровье базы, деньги и число оставшихся врагов.
type HUD struct {
	X, Y          float32
	BarWidth      float32
	BarHeight     float32
	BackColor     color.RGBA
	FrontColor    color.RGBA
	TextColor     color.RGBA
	MoneyColor    color.RGBA
	MoneyMaxColor color.RGBA
	Font          font.Face
}

func NewHUD(x, y, barWidth, barHeight float32, face font.Face) *HUD {
	return &HUD{
		X:             x,
		Y:             y,
		BarWidth:      barWidth,
		BarHeight:     barHeight,
		BackColor:     color.RGBA{255, 0, 0, 255},
		FrontColor:    color.RGBA{0, 200, 0, 255},
		TextColor:     color.RGBA{0, 0, 0, 255},
		MoneyColor:    color.RGBA{0, 0, 0, 255},
		MoneyMaxColor: color.RGBA{200, 140, 0, 255},
		Font:          face,
	}
}

// HealthRatio - доля заполнения полосы базы, всегда в [0, 1].
func HealthRatio(hp, maxHP int) float32 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	if hp >= maxHP {
		return 1
	}
	return float32(hp) / float32(maxHP)
}

func (h *HUD) Draw(screen *ebiten.Image, baseHP, maxBaseHP, money, maxMoney, enemiesLeft int) {
	// 1. Полоса здоровья базы
	vector.DrawFilledRect(screen, h.X, h.Y, h.BarWidth, h.BarHeight, h.BackColor, true)
	if fill := h.BarWidth * HealthRatio(baseHP, maxBaseHP); fill > 0 {
		vector.DrawFilledRect(screen, h.X, h.Y, fill, h.BarHeight, h.FrontColor, true)
	}
	vector.StrokeRect(screen, h.X, h.Y, h.BarWidth, h.BarHeight, hudBorderWidth, color.White, true)

	hpText := fmt.Sprintf("BASE %d/%d", max(baseHP, 0), maxBaseHP)
	b := text.BoundString(h.Font, hpText)
	text.Draw(screen, hpText, h.Font, int(h.X+h.BarWidth/2)-b.Dx()/2, int(h.Y+h.BarHeight/2)+b.Dy()/2, color.White)

	// 2. Деньги и враги
	moneyColor := h.MoneyColor
	if money >= maxMoney {
		moneyColor = h.MoneyMaxColor
	}
	y := int(h.Y+h.BarHeight) + hudLineGap
	text.Draw(screen, fmt.Sprintf("MONEY %d/%d", money, maxMoney), h.Font, int(h.X), y, moneyColor)
	text.Draw(screen, fmt.Sprintf("ENEMIES LEFT %d", enemiesLeft), h.Font, int(h.X), y+hudLineGap, h.TextColor)
}
