package main

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
)

func TestRunSessionReachesTerminalState(t *testing.T) {
	rs := runSession(config.Default(), defs.DefaultRoster(), 1, 1, 7, 60*60*30)
	if rs.outcome == component.OutcomeNone {
		t.Fatalf("session should finish within the cap, ran %d ticks", rs.ticks)
	}
	if rs.firstEnemyTick < 0 || rs.enemiesSpawned == 0 {
		t.Fatal("expected at least one enemy spawn")
	}
	if rs.outcome == component.OutcomeVictory && rs.enemiesSpawned != 10 {
		t.Fatalf("victory on stage 1 needs all 10 enemies spawned, got %d", rs.enemiesSpawned)
	}
	if rs.bossTick >= 0 {
		t.Fatal("stage 1 has no boss")
	}
}

func TestRunSessionRespectsTickCap(t *testing.T) {
	rs := runSession(config.Default(), defs.DefaultRoster(), 3, 1, 7, 10)
	if rs.ticks != 10 || rs.outcome != component.OutcomeNone {
		t.Fatalf("expected a timeout after 10 ticks, got %d ticks outcome=%s", rs.ticks, rs.outcome)
	}
}

func TestRecordMarksFirstTicks(t *testing.T) {
	rs := runStats{firstEnemyTick: -1, firstSpawnTick: -1, firstDeathTick: -1, firstBreachTick: -1, bossTick: -1, spawns: map[string]int{}}
	rs.record(5, event.Event{Type: event.EnemySpawned, Data: event.Spawn{Archetype: "M1_1"}})
	rs.record(9, event.Event{Type: event.EnemySpawned, Data: event.Spawn{Archetype: "BOSS", Boss: true}})
	rs.record(12, event.Event{Type: event.FriendlySpawned, Data: event.Spawn{Archetype: "C1"}})
	rs.record(13, event.Event{Type: event.FriendlySpawned, Data: event.Spawn{Archetype: "C1"}})
	rs.record(20, event.Event{Type: event.UnitAttacked, Data: event.Attack{Friendly: true}})
	rs.record(21, event.Event{Type: event.UnitAttacked, Data: event.Attack{Friendly: false}})
	rs.record(30, event.Event{Type: event.BaseDamaged, Data: event.BaseHit{Penalty: 50}})

	if rs.firstEnemyTick != 5 || rs.bossTick != 9 || rs.firstSpawnTick != 12 || rs.firstBreachTick != 30 {
		t.Fatalf("unexpected markers %+v", rs)
	}
	if rs.enemiesSpawned != 2 || rs.spawns["C1"] != 2 || rs.attacks != 2 || rs.friendlyHits != 1 || rs.breaches != 1 {
		t.Fatalf("unexpected totals %+v", rs)
	}
	if rs.firstDeathTick != -1 {
		t.Fatal("no deaths were recorded")
	}
}

func TestSummarize(t *testing.T) {
	all := []runStats{
		{outcome: component.OutcomeVictory, ticks: 100, finalBaseHP: 150, spawns: map[string]int{"C1": 2}},
		{outcome: component.OutcomeDefeat, ticks: 300, finalBaseHP: -50, spawns: map[string]int{"C1": 1, "C3": 1}},
		{outcome: component.OutcomeNone, ticks: 200, finalBaseHP: 100},
	}
	agg := summarize(all)
	if agg.victories != 1 || agg.defeats != 1 || agg.timeouts != 1 {
		t.Fatalf("unexpected outcome counts %+v", agg)
	}
	if agg.avgTicks != 200 {
		t.Fatalf("expected avg ticks 200, got %.1f", agg.avgTicks)
	}
	if agg.avgBaseHP != 250.0/3 {
		t.Fatalf("negative base hp should count as 0, got %.2f", agg.avgBaseHP)
	}
	if agg.spawns["C1"] != 3 || agg.spawns["C3"] != 1 {
		t.Fatalf("unexpected spawn totals %v", agg.spawns)
	}
	if got := joinCounts(agg.spawns); got != "C1=3,C3=1" {
		t.Fatalf("joinCounts = %q", got)
	}
	if summarize(nil).runs != 0 {
		t.Fatal("empty input should summarize to zero runs")
	}
}
