package render

import "image/color"

// LaneColors holds all the colors needed to draw the lane and its units.
type LaneColors struct {
	BackgroundColor  color.RGBA
	GroundColor      color.RGBA
	FriendlyColor    color.RGBA
	EnemyColor       color.RGBA
	BossColor        color.RGBA
	AttackFlashColor color.RGBA
	EffectColor      color.RGBA
	HPBackColor      color.RGBA
	HPFrontColor     color.RGBA
	TextColor        color.RGBA
	StrokeWidth      float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns the color premultiplied to the given opacity.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	k := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
