package app

import (
	"testing"

	"go-lane-defense/internal/defs"
)

func TestAutopilotPrefersExpensiveUnits(t *testing.T) {
	pilot := NewAutopilot(defs.DefaultRoster())
	want := []defs.ArchetypeID{defs.FriendlyC3, defs.FriendlyC2, defs.FriendlyC1}
	for i, id := range want {
		if pilot.order[i] != id {
			t.Fatalf("order[%d] = %s, want %s", i, pilot.order[i], id)
		}
	}
}

func TestAutopilotWaitsForEnemies(t *testing.T) {
	g := newTestGame(t, 1, WithStartMoney(1000))
	pilot := NewAutopilot(g.Roster)

	if _, ok := pilot.Act(g); ok {
		t.Fatal("autopilot should not spawn on an empty lane")
	}

	def, _ := g.Roster.Enemy(defs.EnemyM1_1)
	addEnemy(g, defs.EnemyM1_1, def.Stats, 900)
	id, ok := pilot.Act(g)
	if !ok || id != defs.FriendlyC3 {
		t.Fatalf("expected C3 with plenty of money, got %s ok=%v", id, ok)
	}
	id, ok = pilot.Act(g)
	if !ok || id != defs.FriendlyC2 {
		t.Fatalf("C3 is cooling down, expected C2, got %s ok=%v", id, ok)
	}
	if g.Money() != 500 {
		t.Fatalf("expected 500 left after C3 and C2, got %d", g.Money())
	}
}
