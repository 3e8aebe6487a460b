package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

const (
	VictoryMessage = "VICTORY!!"
	DefeatMessage  = "DEFEAT..."
)

// StateSystem проверяет условия конца сессии.
type StateSystem struct {
	world *entity.World
	out   event.Emitter
}

func NewStateSystem(world *entity.World, out event.Emitter) *StateSystem {
	return &StateSystem{world: world, out: out}
}

// Evaluate сначала проверяет поражение, так что одновременные победа
// и поражение дают поражение. Итог выставляется один раз.
func (s *StateSystem) Evaluate(state *component.GameState, wave *component.Wave) {
	if state.Over {
		return
	}
	switch {
	case state.BaseHP <= 0:
		s.finish(state, component.OutcomeDefeat, DefeatMessage)
	case wave.Spawned >= wave.Planned && len(s.world.Enemies) == 0:
		s.finish(state, component.OutcomeVictory, VictoryMessage)
	}
}

func (s *StateSystem) finish(state *component.GameState, outcome component.Outcome, message string) {
	state.Over = true
	state.Outcome = outcome
	state.Message = message
	s.out.Emit(event.Event{Type: event.GameOver, Data: event.Result{
		Victory: outcome == component.OutcomeVictory,
		Message: message,
	}})
}
