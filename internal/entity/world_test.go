package entity

import "testing"

func TestWorldIDsAreNeverReused(t *testing.T) {
	w := NewWorld()
	a := w.NewEntity()
	b := w.NewEntity()
	if a == b || a == 0 {
		t.Fatalf("expected distinct non-zero ids, got %d and %d", a, b)
	}
}

func TestWorldCompactDropsRemovedUnits(t *testing.T) {
	w := NewWorld()
	s := stats(10, 1, 1, 50, 1)
	keep := NewUnit(w.NewEntity(), SideEnemy, "E", s, 0, 500)
	drop := NewUnit(w.NewEntity(), SideEnemy, "E", s, 10, 500)
	ally := NewUnit(w.NewEntity(), SideFriendly, "F", s, 0, 500)
	w.Add(keep)
	w.Add(drop)
	w.Add(ally)

	w.Remove(drop)
	if len(w.Units(SideEnemy)) != 2 {
		t.Fatal("Remove should only mark the unit until Compact")
	}
	w.Compact(SideEnemy)

	if len(w.Enemies) != 1 || w.Enemies[0] != keep {
		t.Fatalf("expected only the kept enemy, got %d units", len(w.Enemies))
	}
	if len(w.Opponents(SideEnemy)) != 1 || w.Opponents(SideFriendly)[0] != keep {
		t.Fatal("opponent lookup should return the other side")
	}
}

func TestWorldCompactEffects(t *testing.T) {
	w := NewWorld()
	w.AddEffect(NewEffect(w.NewEntity(), 0, 0, 10, 1, 300))
	w.AddEffect(NewEffect(w.NewEntity(), 0, 0, 10, 1, 1))
	for _, fx := range w.Effects {
		fx.Update()
	}
	w.CompactEffects()
	if len(w.Effects) != 1 {
		t.Fatalf("expected 1 surviving effect, got %d", len(w.Effects))
	}
}
