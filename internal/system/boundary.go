package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// BoundarySystem снимает здоровье базы за каждого врага, дошедшего до края.
// Такой враг исчезает сразу, без эффекта смерти.
type BoundarySystem struct {
	world *entity.World
	cfg   config.Config
	out   event.Emitter
}

func NewBoundarySystem(world *entity.World, cfg config.Config, out event.Emitter) *BoundarySystem {
	return &BoundarySystem{world: world, cfg: cfg, out: out}
}

// Update возвращает число пересечений за тик.
func (s *BoundarySystem) Update(state *component.GameState) int {
	crossings := 0
	for _, enemy := range s.world.Enemies {
		if enemy.Removed() || enemy.PixelX() > s.cfg.BaseBoundary {
			continue
		}
		state.BaseHP -= s.cfg.BasePenalty
		s.world.Remove(enemy)
		crossings++
		s.out.Emit(event.Event{Type: event.BaseDamaged, Data: event.BaseHit{
			Penalty: s.cfg.BasePenalty,
			BaseHP:  state.BaseHP,
		}})
	}
	if crossings > 0 {
		s.world.Compact(entity.SideEnemy)
	}
	return crossings
}
