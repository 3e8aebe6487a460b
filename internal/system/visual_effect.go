package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// VisualEffectSystem управляет декоративными эффектами смерти.
type VisualEffectSystem struct {
	world *entity.World
	cfg   config.Config
}

// NewVisualEffectSystem создает систему и подписывает её на смерть союзников.
func NewVisualEffectSystem(world *entity.World, cfg config.Config, dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world, cfg: cfg}
	if dispatcher != nil {
		dispatcher.Subscribe(event.FriendlyDied, s)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	death, ok := e.Data.(event.Death)
	if !ok {
		return
	}
	s.world.AddEffect(entity.NewEffect(s.world.NewEntity(), death.X, death.Y,
		s.cfg.EffectSize, s.cfg.EffectRiseSpeed, s.cfg.EffectFadeSpeed))
}

// Update двигает и гасит все эффекты.
func (s *VisualEffectSystem) Update() {
	for _, fx := range s.world.Effects {
		fx.Update()
	}
	s.world.CompactEffects()
}
