package entity

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/types"
)

// Effect - декоративная сущность без взаимодействия (душа погибшего союзника).
type Effect struct {
	ID       types.EntityID
	Position component.Position // Центр
	Fade     component.Fade
	Size     float64

	removed bool
}

func NewEffect(id types.EntityID, x, y, size, riseSpeed, fadeSpeed float64) *Effect {
	return &Effect{
		ID:       id,
		Position: component.Position{X: x, Y: y},
		Fade:     component.Fade{Alpha: 255, FadeSpeed: fadeSpeed, RiseSpeed: riseSpeed},
		Size:     size,
	}
}

// Update поднимает эффект и гасит его; при нулевой прозрачности он удаляется.
func (e *Effect) Update() {
	if e.removed {
		return
	}
	e.Position.Y -= e.Fade.RiseSpeed
	e.Fade.Alpha -= e.Fade.FadeSpeed
	if e.Fade.Alpha <= 0 {
		e.Fade.Alpha = 0
		e.removed = true
	}
}

func (e *Effect) Removed() bool {
	return e.removed
}

// Alpha - прозрачность для отрисовки.
func (e *Effect) Alpha() uint8 {
	return uint8(e.Fade.Alpha)
}
