package app

import (
	"sort"

	"go-lane-defense/internal/defs"
)

// Autopilot - простая политика призыва для безоконных прогонов и зрителя:
// пока на линии есть враги, зовёт самого дорогого доступного союзника.
type Autopilot struct {
	order []defs.ArchetypeID
}

func NewAutopilot(roster *defs.Roster) *Autopilot {
	ids := roster.FriendlyIDs()
	cost := func(id defs.ArchetypeID) int {
		def, _ := roster.Friendly(id)
		return def.Stats.Cost
	}
	sort.SliceStable(ids, func(i, j int) bool { return cost(ids[i]) > cost(ids[j]) })
	return &Autopilot{order: ids}
}

// Act делает не больше одного призыва и возвращает архетип, если он удался.
func (a *Autopilot) Act(g *Game) (defs.ArchetypeID, bool) {
	if g.IsGameOver() || g.LiveEnemies() == 0 {
		return "", false
	}
	for _, id := range a.order {
		if g.RequestSpawnFriendly(id) {
			return id, true
		}
	}
	return "", false
}
