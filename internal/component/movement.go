// component/movement.go
package component

// Position - точная (дробная) координата левого края и линия земли.
type Position struct {
	X, Y float64
}

// Velocity - скорость в единицах за тик
type Velocity struct {
	Speed float64
}
