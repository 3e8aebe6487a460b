// internal/entity/world.go
package entity

import "go-lane-defense/internal/types"

// World хранит живые сущности сессии по сторонам.
type World struct {
	NextID   types.EntityID
	Friendly []*Unit
	Enemies  []*Unit
	Effects  []*Effect
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Units возвращает коллекцию стороны.
func (w *World) Units(side Side) []*Unit {
	if side == SideEnemy {
		return w.Enemies
	}
	return w.Friendly
}

// Opponents возвращает коллекцию целей для стороны.
func (w *World) Opponents(side Side) []*Unit {
	if side == SideEnemy {
		return w.Friendly
	}
	return w.Enemies
}

func (w *World) Add(u *Unit) {
	if u.Side == SideEnemy {
		w.Enemies = append(w.Enemies, u)
	} else {
		w.Friendly = append(w.Friendly, u)
	}
}

func (w *World) AddEffect(e *Effect) {
	w.Effects = append(w.Effects, e)
}

// Compact выбрасывает удалённые сущности из коллекции стороны.
func (w *World) Compact(side Side) {
	if side == SideEnemy {
		w.Enemies = compactUnits(w.Enemies)
	} else {
		w.Friendly = compactUnits(w.Friendly)
	}
}

func (w *World) CompactEffects() {
	kept := w.Effects[:0]
	for _, e := range w.Effects {
		if !e.removed {
			kept = append(kept, e)
		}
	}
	clear(w.Effects[len(kept):])
	w.Effects = kept
}

// Remove помечает юнита удалённым; из коллекции он уйдёт при Compact.
func (w *World) Remove(u *Unit) {
	u.removed = true
}

func compactUnits(units []*Unit) []*Unit {
	kept := units[:0]
	for _, u := range units {
		if !u.removed {
			kept = append(kept, u)
		}
	}
	clear(units[len(kept):])
	return kept
}
