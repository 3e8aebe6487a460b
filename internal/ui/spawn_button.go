// internal/ui/spawn_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-lane-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SpawnButton - кнопка призыва союзника. Заблокирована, пока не хватает
// денег или идёт перезарядка; решение о призыве принимает ядро.
type SpawnButton struct {
	X, Y          float32
	Size          float32
	Archetype     defs.ArchetypeID
	Cost          int
	Cooldown      float64
	Color         color.RGBA
	LockedColor   color.RGBA
	Font          font.Face
	LastClickTime time.Time
}

func NewSpawnButton(x, y, size float32, def defs.UnitDefinition, face font.Face, clr, locked color.RGBA) *SpawnButton {
	return &SpawnButton{
		X:           x,
		Y:           y,
		Size:        size,
		Archetype:   def.ID,
		Cost:        def.Stats.Cost,
		Cooldown:    def.Stats.Cooldown,
		Color:       clr,
		LockedColor: locked,
		Font:        face,
	}
}

// Locked - показывать ли замок при текущих деньгах и остатке перезарядки.
func (b *SpawnButton) Locked(money int, cooldownLeft float64) bool {
	return money < b.Cost || cooldownLeft > 0
}

func (b *SpawnButton) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Size && fy >= b.Y && fy <= b.Y+b.Size
}

func (b *SpawnButton) Press() {
	b.LastClickTime = time.Now()
}

// Draw рисует кнопку, затемняя её пропорционально оставшейся перезарядке.
func (b *SpawnButton) Draw(screen *ebiten.Image, money int, cooldownLeft float64) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := float32(1.0 + 0.15*math.Exp(-elapsed*8))
	size := b.Size * scale
	x, y := b.X-(size-b.Size)/2, b.Y-(size-b.Size)/2

	fill := b.Color
	if b.Locked(money, cooldownLeft) {
		fill = b.LockedColor
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, true)
	if cooldownLeft > 0 && b.Cooldown > 0 {
		ratio := float32(math.Min(1, cooldownLeft/b.Cooldown))
		vector.DrawFilledRect(screen, x, y, size, size*ratio, color.RGBA{0, 0, 0, 120}, true)
	}
	vector.StrokeRect(screen, x, y, size, size, 2, color.White, true)

	name := string(b.Archetype)
	nb := text.BoundString(b.Font, name)
	text.Draw(screen, name, b.Font, int(b.X)+(int(b.Size)-nb.Dx())/2, int(b.Y)+nb.Dy()+8, color.White)

	cost := fmt.Sprintf("$%d", b.Cost)
	cb := text.BoundString(b.Font, cost)
	costColor := color.RGBA{255, 255, 0, 255}
	if money < b.Cost {
		costColor = color.RGBA{255, 120, 120, 255}
	}
	text.Draw(screen, cost, b.Font, int(b.X)+(int(b.Size)-cb.Dx())/2, int(b.Y+b.Size)-8, costColor)

	if cooldownLeft > 0 {
		cd := fmt.Sprintf("%.1fs", cooldownLeft)
		db := text.BoundString(b.Font, cd)
		text.Draw(screen, cd, b.Font, int(b.X)+(int(b.Size)-db.Dx())/2, int(b.Y)+(int(b.Size)+db.Dy())/2, color.White)
	}
}
