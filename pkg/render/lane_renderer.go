package render

import (
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	unitHPBarHeight = 6
	unitHPBarGap    = 4
	hpSmoothing     = 0.25
)

// LaneRenderer рисует линию, юнитов и эффекты по проекциям ядра.
type LaneRenderer struct {
	colors       *LaneColors
	fontFace     font.Face
	screenWidth  int
	screenHeight int
	baseline     float32
	boss         defs.ArchetypeID

	// Показанная доля HP по юнитам, догоняет настоящую плавно
	shownHP map[types.EntityID]float32
}

func NewLaneRenderer(colors *LaneColors, screenWidth, screenHeight int, baseline float64, boss defs.ArchetypeID) *LaneRenderer {
	return &LaneRenderer{
		colors:       colors,
		fontFace:     basicfont.Face7x13,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		baseline:     float32(baseline),
		boss:         boss,
		shownHP:      make(map[types.EntityID]float32),
	}
}

// DrawBackground заливает фон; после выхода босса фон темнеет.
func (r *LaneRenderer) DrawBackground(screen *ebiten.Image, bossPhase bool) {
	bg := r.colors.BackgroundColor
	ground := r.colors.GroundColor
	if bossPhase {
		bg = DarkenColor(bg)
		ground = DarkenColor(ground)
	}
	screen.Fill(bg)
	vector.DrawFilledRect(screen, 0, r.baseline, float32(r.screenWidth), float32(r.screenHeight)-r.baseline, ground, false)
}

// DrawUnits рисует юнитов в порядке среза: враги под союзниками.
func (r *LaneRenderer) DrawUnits(screen *ebiten.Image, units []entity.View) {
	seen := make(map[types.EntityID]float32, len(units))
	for _, v := range units {
		shown, ok := r.shownHP[v.ID]
		if !ok {
			shown = float32(v.HPRatio)
		}
		shown = utils.Lerp(shown, float32(v.HPRatio), hpSmoothing)
		seen[v.ID] = shown
		r.drawUnit(screen, v, shown)
	}
	r.shownHP = seen
}

func (r *LaneRenderer) drawUnit(screen *ebiten.Image, v entity.View, hp float32) {
	size := float32(v.Width)
	x := float32(v.PixelX)
	y := float32(v.Y) - size

	fill := r.colors.FriendlyColor
	switch {
	case v.Archetype == r.boss:
		fill = r.colors.BossColor
	case v.Side == entity.SideEnemy:
		fill = r.colors.EnemyColor
	}
	if v.State == entity.StateAttacking && !v.Striking {
		fill = DarkenColor(fill)
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	if v.Striking {
		vector.StrokeRect(screen, x, y, size, size, r.colors.StrokeWidth*2, r.colors.AttackFlashColor, false)
	}

	barY := y - unitHPBarGap - unitHPBarHeight
	vector.DrawFilledRect(screen, x, barY, size, unitHPBarHeight, r.colors.HPBackColor, false)
	vector.DrawFilledRect(screen, x, barY, size*hp, unitHPBarHeight, r.colors.HPFrontColor, false)

	label := string(v.Archetype)
	bounds := text.BoundString(r.fontFace, label)
	tx := int(x) + (int(size)-bounds.Dx())/2
	text.Draw(screen, label, r.fontFace, tx, int(y)+bounds.Dy()+4, r.colors.TextColor)
}

// DrawEffect рисует поднимающийся угасающий круг на месте гибели союзника.
func (r *LaneRenderer) DrawEffect(screen *ebiten.Image, x, y, size float64, alpha uint8) {
	if alpha == 0 {
		return
	}
	c := WithAlpha(r.colors.EffectColor, alpha)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size)/4, c, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(size)/4, r.colors.StrokeWidth, WithAlpha(r.colors.TextColor, alpha/2), true)
}
