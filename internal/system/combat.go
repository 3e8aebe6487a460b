package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// CombatSystem прогоняет тики юнитов: сначала союзники по врагам,
// затем враги по союзникам. Погибшие выбрасываются после прохода своей стороны.
type CombatSystem struct {
	world *entity.World
	out   event.Emitter
}

func NewCombatSystem(world *entity.World, out event.Emitter) *CombatSystem {
	return &CombatSystem{world: world, out: out}
}

func (s *CombatSystem) Update(now float64) {
	for _, u := range s.world.Friendly {
		u.Tick(s.world.Enemies, now, s.out)
	}
	s.world.Compact(entity.SideFriendly)

	for _, u := range s.world.Enemies {
		u.Tick(s.world.Friendly, now, s.out)
	}
	s.world.Compact(entity.SideEnemy)
}
