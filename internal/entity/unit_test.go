package entity

import (
	"testing"

	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) Emit(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func stats(hp int, speed float64, power int, rng, interval float64) defs.UnitStats {
	return defs.UnitStats{MaxHP: hp, Speed: speed, AttackPower: power, AttackRange: rng, AttackInterval: interval, Width: 100}
}

func TestMovingWithoutOpponents(t *testing.T) {
	f := NewUnit(1, SideFriendly, "F", stats(10, 1.5, 1, 50, 1), 100, 500)
	e := NewUnit(2, SideEnemy, "E", stats(10, 2, 1, 50, 1), 800, 500)

	f.Tick(nil, 0, nil)
	e.Tick([]*Unit{}, 0, nil)

	if f.State != StateMoving || f.Position.X != 101.5 {
		t.Fatalf("friendly should move right to 101.5, got %v state=%s", f.Position.X, f.State)
	}
	if e.State != StateMoving || e.Position.X != 798 {
		t.Fatalf("enemy should move left to 798, got %v state=%s", e.Position.X, e.State)
	}
}

func TestSlowSpeedAccumulates(t *testing.T) {
	u := NewUnit(1, SideFriendly, "F", stats(10, 0.25, 1, 50, 1), 0, 500)
	for i := 0; i < 3; i++ {
		u.Tick(nil, 0, nil)
	}
	if u.PixelX() != 0 {
		t.Fatalf("after 0.75 units the rounded position should still be 0, got %d", u.PixelX())
	}
	u.Tick(nil, 0, nil)
	if u.PixelX() != 1 {
		t.Fatalf("after 1.0 units the rounded position should be 1, got %d", u.PixelX())
	}
}

func TestNearestPicksClosestAndFirstOnTie(t *testing.T) {
	u := NewUnit(1, SideFriendly, "F", stats(10, 1, 1, 50, 1), 100, 500)
	far := NewUnit(2, SideEnemy, "E", stats(10, 1, 1, 50, 1), 600, 500)
	near := NewUnit(3, SideEnemy, "E", stats(10, 1, 1, 50, 1), 300, 500)
	tieA := NewUnit(4, SideEnemy, "E", stats(10, 1, 1, 50, 1), 0, 500)
	tieB := NewUnit(5, SideEnemy, "E", stats(10, 1, 1, 50, 1), 200, 500)

	got, dist := u.Nearest([]*Unit{far, near})
	if got != near || dist != 200 {
		t.Fatalf("expected nearest id 3 at 200, got %v at %d", got, dist)
	}
	got, _ = u.Nearest([]*Unit{tieA, tieB})
	if got != tieA {
		t.Fatalf("tie should resolve to the first unit in order, got id %d", got.ID)
	}
	if got, _ := u.Nearest(nil); got != nil {
		t.Fatal("no opponents should yield nil")
	}
}

func TestAttackRespectsIntervalAndStopsMovement(t *testing.T) {
	f := NewUnit(1, SideFriendly, "F", stats(100, 1, 40, 100, 1.0), 100, 500)
	e := NewUnit(2, SideEnemy, "E", stats(60, 1, 0, 10, 1.0), 150, 500)
	rec := &recorder{}

	f.Tick([]*Unit{e}, 10.0, rec)
	if f.State != StateAttacking || e.Health.Value != 20 {
		t.Fatalf("expected first hit for 40, got hp=%d state=%s", e.Health.Value, f.State)
	}
	startX := f.Position.X

	f.Tick([]*Unit{e}, 10.5, rec)
	if e.Health.Value != 20 {
		t.Fatalf("attack on cooldown should not deal damage, hp=%d", e.Health.Value)
	}
	if f.Position.X != startX || f.State != StateAttacking {
		t.Fatal("attacking unit must not move while on cooldown")
	}

	f.Tick([]*Unit{e}, 11.0, rec)
	if e.Health.Value != -20 {
		t.Fatalf("second hit should leave hp=-20 without clamping, got %d", e.Health.Value)
	}
	if rec.count(event.UnitAttacked) != 2 {
		t.Fatalf("expected 2 attack events, got %d", rec.count(event.UnitAttacked))
	}
}

func TestDeadFriendlyEmitsDeathOnce(t *testing.T) {
	f := NewUnit(1, SideFriendly, "F", stats(10, 1, 1, 50, 1), 100, 500)
	rec := &recorder{}
	f.TakeDamage(15)
	if f.Removed() {
		t.Fatal("damage alone must not remove the unit")
	}

	f.Tick(nil, 0, rec)
	f.Tick(nil, 0, rec)

	if !f.Removed() {
		t.Fatal("unit with hp<=0 should be removed on its tick")
	}
	if rec.count(event.FriendlyDied) != 1 {
		t.Fatalf("expected exactly one death event, got %d", rec.count(event.FriendlyDied))
	}
	death := rec.events[0].Data.(event.Death)
	if death.X != 150 || death.Y != 450 {
		t.Fatalf("death should be reported at the unit center (150,450), got (%v,%v)", death.X, death.Y)
	}
}

func TestDeadEnemyIsSilent(t *testing.T) {
	e := NewUnit(1, SideEnemy, "E", stats(10, 1, 1, 50, 1), 100, 500)
	rec := &recorder{}
	e.TakeDamage(10)
	e.Tick(nil, 0, rec)
	if !e.Removed() || len(rec.events) != 0 {
		t.Fatalf("enemy death should remove without events, removed=%v events=%d", e.Removed(), len(rec.events))
	}
}

func TestTakeDamageIgnoresNonPositive(t *testing.T) {
	u := NewUnit(1, SideEnemy, "E", stats(10, 1, 1, 50, 1), 0, 500)
	u.TakeDamage(-5)
	u.TakeDamage(0)
	if u.Health.Value != u.Health.Max {
		t.Fatalf("hp must never exceed max, got %d/%d", u.Health.Value, u.Health.Max)
	}
}

func TestRemovedOpponentsAreIgnored(t *testing.T) {
	f := NewUnit(1, SideFriendly, "F", stats(10, 1, 5, 500, 1), 100, 500)
	e := NewUnit(2, SideEnemy, "E", stats(10, 1, 1, 50, 1), 150, 500)
	e.removed = true
	f.Tick([]*Unit{e}, 0, nil)
	if f.State != StateMoving {
		t.Fatal("removed opponents must not be targeted")
	}
}

func TestProjection(t *testing.T) {
	f := NewUnit(7, SideFriendly, "F", stats(100, 1, 5, 500, 1), 100.7, 500)
	e := NewUnit(8, SideEnemy, "E", stats(100, 1, 1, 50, 1), 200, 500)
	f.Tick([]*Unit{e}, 3.0, nil)

	v := f.Project(3.1)
	if !v.Striking || v.State != StateAttacking || v.PixelX != 100 {
		t.Fatalf("unexpected projection %+v", v)
	}
	if f.Project(3.3).Striking {
		t.Fatal("attack frame should end after AttackAnimDuration")
	}

	e.TakeDamage(150)
	if r := e.Project(0).HPRatio; r != 0 {
		t.Fatalf("hp ratio should clamp to 0, got %v", r)
	}
}

func TestEffectFadesOut(t *testing.T) {
	fx := NewEffect(1, 10, 100, 150, 1.0, 100)
	fx.Update()
	if fx.Removed() || fx.Position.Y != 99 || fx.Alpha() != 155 {
		t.Fatalf("after one update expected y=99 alpha=155, got y=%v alpha=%d", fx.Position.Y, fx.Alpha())
	}
	fx.Update()
	fx.Update()
	if !fx.Removed() || fx.Alpha() != 0 {
		t.Fatalf("effect should be removed once opacity reaches 0, alpha=%d", fx.Alpha())
	}
	y := fx.Position.Y
	fx.Update()
	if fx.Position.Y != y {
		t.Fatal("removed effect must not keep moving")
	}
}
