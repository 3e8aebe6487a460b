package ui

import (
	"image/color"
	"testing"

	"go-lane-defense/internal/defs"
)

var testColor = color.RGBA{70, 130, 180, 255}

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 2: "II", 3: "III", 4: "IV", 9: "IX", 14: "XIV", 40: "XL"}
	for in, want := range cases {
		if got := toRoman(in); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		hp, max int
		want    float32
	}{
		{150, 150, 1},
		{75, 150, 0.5},
		{0, 150, 0},
		{-50, 150, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := HealthRatio(tt.hp, tt.max); got != tt.want {
			t.Errorf("HealthRatio(%d, %d) = %v, want %v", tt.hp, tt.max, got, tt.want)
		}
	}
}

func TestSpawnButtonLockAndHit(t *testing.T) {
	def := defs.UnitDefinition{ID: defs.FriendlyC2, Stats: defs.UnitStats{Cost: 100, Cooldown: 7}}
	b := NewSpawnButton(30, 470, 120, def, nil, testColor, testColor)

	if !b.Locked(99, 0) {
		t.Error("button should lock when money is short")
	}
	if !b.Locked(500, 1.5) {
		t.Error("button should lock while cooling down")
	}
	if b.Locked(100, 0) {
		t.Error("button should unlock with exact money and no cooldown")
	}
	if !b.Contains(30, 470) || !b.Contains(150, 590) || b.Contains(151, 500) {
		t.Error("hit test should cover exactly the square")
	}
}

func TestTextButtonContains(t *testing.T) {
	b := NewTextButton(100, 100, 200, 50, "RETRY", nil, testColor, testColor, testColor)
	if !b.Contains(150, 120) || b.Contains(99, 120) || b.Contains(150, 151) {
		t.Error("unexpected hit test result")
	}
}
