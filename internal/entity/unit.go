// internal/entity/unit.go
package entity

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	mathutil "go-lane-defense/pkg/utils"
)

// AttackAnimDuration - сколько секунд после удара показывается кадр атаки.
const AttackAnimDuration = 0.2

// Side - сторона юнита: определяет направление движения и пул целей.
type Side int

const (
	SideFriendly Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "friendly"
}

// Direction - знак движения по оси X.
func (s Side) Direction() float64 {
	if s == SideEnemy {
		return -1
	}
	return 1
}

// UnitState пересчитывается каждый тик, истории переходов нет.
type UnitState int

const (
	StateMoving UnitState = iota
	StateAttacking
)

func (s UnitState) String() string {
	if s == StateAttacking {
		return "attacking"
	}
	return "moving"
}

// Unit - боец на линии. Архетип задаёт только числа, поведение общее.
type Unit struct {
	ID        types.EntityID
	Side      Side
	Archetype defs.ArchetypeID
	Stats     defs.UnitStats
	Position  component.Position
	Velocity  component.Velocity
	Health    component.Health
	Combat    component.Combat
	State     UnitState

	removed bool
}

// NewUnit ставит юнита левым краем в x, низом на baseline.
func NewUnit(id types.EntityID, side Side, archetype defs.ArchetypeID, stats defs.UnitStats, x, baseline float64) *Unit {
	return &Unit{
		ID:        id,
		Side:      side,
		Archetype: archetype,
		Stats:     stats,
		Position:  component.Position{X: x, Y: baseline},
		Velocity:  component.Velocity{Speed: stats.Speed},
		Health:    component.Health{Value: stats.MaxHP, Max: stats.MaxHP},
		Combat: component.Combat{
			Power:        stats.AttackPower,
			Range:        stats.AttackRange,
			Interval:     stats.AttackInterval,
			LastAttackAt: math.Inf(-1), // первый удар доступен сразу
			AnimAt:       math.Inf(-1),
		},
		State: StateMoving,
	}
}

// PixelX - целочисленный левый край, как у прямоугольника отрисовки.
func (u *Unit) PixelX() int {
	return int(u.Position.X)
}

// CenterX - целочисленный центр, по нему считаются дистанции.
func (u *Unit) CenterX() int {
	return u.PixelX() + int(u.Stats.Width)/2
}

// CenterY - центр квадратного спрайта, стоящего на линии земли.
func (u *Unit) CenterY() int {
	size := int(u.Stats.Width)
	return int(u.Position.Y) - size + size/2
}

func (u *Unit) Removed() bool {
	return u.removed
}

func (u *Unit) Alive() bool {
	return u.Health.Value > 0
}

// TakeDamage уменьшает здоровье без обрезки в ноль: смерть замечается
// на следующем собственном тике юнита.
func (u *Unit) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	u.Health.Value -= amount
}

// Nearest ищет ближайшего противника по горизонтали.
// При равных дистанциях побеждает первый в порядке коллекции.
func (u *Unit) Nearest(opponents []*Unit) (*Unit, int) {
	var nearest *Unit
	minDist := math.MaxInt
	for _, other := range opponents {
		if other == nil || other.removed {
			continue
		}
		dist := mathutil.Abs(u.CenterX() - other.CenterX())
		if dist < minDist {
			minDist = dist
			nearest = other
		}
	}
	return nearest, minDist
}

// Tick продвигает юнита на один кадр.
func (u *Unit) Tick(opponents []*Unit, now float64, out event.Emitter) {
	if u.removed {
		return
	}
	if u.Health.Value <= 0 {
		if u.Side == SideFriendly && out != nil {
			out.Emit(event.Event{Type: event.FriendlyDied, Data: event.Death{
				X: float64(u.CenterX()),
				Y: float64(u.CenterY()),
			}})
		}
		u.removed = true
		return
	}

	target, dist := u.Nearest(opponents)
	if target == nil || float64(dist) > u.Combat.Range {
		u.State = StateMoving
		u.move()
		return
	}

	u.State = StateAttacking
	if now-u.Combat.LastAttackAt < u.Combat.Interval {
		return
	}
	target.TakeDamage(u.Combat.Power)
	u.Combat.LastAttackAt = now
	u.Combat.AnimAt = now
	if out != nil {
		out.Emit(event.Event{Type: event.UnitAttacked, Data: event.Attack{
			AttackerID: u.ID,
			TargetID:   target.ID,
			Friendly:   u.Side == SideFriendly,
			Damage:     u.Combat.Power,
		}})
	}
}

func (u *Unit) move() {
	u.Position.X += u.Velocity.Speed * u.Side.Direction()
}

// View - публичная проекция юнита для отрисовки.
type View struct {
	ID        types.EntityID
	Side      Side
	Archetype defs.ArchetypeID
	X, Y      float64
	PixelX    int
	Width     float64
	State     UnitState
	HPRatio   float64
	Striking  bool // Показывать кадр атаки
}

func (u *Unit) Project(now float64) View {
	ratio := 0.0
	if u.Health.Max > 0 {
		ratio = math.Max(0, math.Min(1, float64(u.Health.Value)/float64(u.Health.Max)))
	}
	return View{
		ID:        u.ID,
		Side:      u.Side,
		Archetype: u.Archetype,
		X:         u.Position.X,
		Y:         u.Position.Y,
		PixelX:    u.PixelX(),
		Width:     u.Stats.Width,
		State:     u.State,
		HPRatio:   ratio,
		Striking:  now-u.Combat.AnimAt < AttackAnimDuration,
	}
}
