package app

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
)

// EffectView - публичная проекция эффекта.
type EffectView struct {
	X, Y  float64
	Size  float64
	Alpha uint8
}

// Snapshot is the read-only state the presentation layer draws each frame.
type Snapshot struct {
	Money            int
	MaxMoney         int
	BaseHP           int
	MaxBaseHP        int
	EnemiesRemaining int
	Planned          int
	Spawned          int
	Difficulty       int
	GameOver         bool
	Outcome          component.Outcome
	Message          string
	BossSpawned      bool
	Units            []entity.View
	Effects          []EffectView
	Cooldowns        map[defs.ArchetypeID]float64
}

// Snapshot собирает проекцию без побочных эффектов.
func (g *Game) Snapshot(now float64) Snapshot {
	snap := Snapshot{
		Money:            g.Economy.Money,
		MaxMoney:         g.Config.MaxMoney,
		BaseHP:           g.State.BaseHP,
		MaxBaseHP:        g.State.MaxBaseHP,
		EnemiesRemaining: g.EnemiesRemaining(),
		Planned:          g.Wave.Planned,
		Spawned:          g.Wave.Spawned,
		Difficulty:       g.difficulty,
		GameOver:         g.State.Over,
		Outcome:          g.State.Outcome,
		Message:          g.State.Message,
		BossSpawned:      g.Wave.BossSpawned,
		Units:            make([]entity.View, 0, len(g.World.Friendly)+len(g.World.Enemies)),
		Effects:          g.Effects(),
		Cooldowns:        make(map[defs.ArchetypeID]float64),
	}
	for _, u := range g.World.Enemies {
		snap.Units = append(snap.Units, u.Project(now))
	}
	for _, u := range g.World.Friendly {
		snap.Units = append(snap.Units, u.Project(now))
	}
	for _, id := range g.Roster.FriendlyIDs() {
		snap.Cooldowns[id] = g.CooldownRemaining(id)
	}
	return snap
}

// Effects возвращает живые эффекты с текущей прозрачностью.
func (g *Game) Effects() []EffectView {
	views := make([]EffectView, 0, len(g.World.Effects))
	for _, fx := range g.World.Effects {
		views = append(views, EffectView{X: fx.Position.X, Y: fx.Position.Y, Size: fx.Size, Alpha: fx.Alpha()})
	}
	return views
}
