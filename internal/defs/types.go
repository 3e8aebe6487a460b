// internal/defs/types.go
package defs

// ArchetypeID names a unit stat template, e.g. "C1" or "BOSS".
type ArchetypeID string

// UnitStats holds the immutable stat block of one archetype.
type UnitStats struct {
	MaxHP          int     `json:"max_hp"`
	Speed          float64 `json:"speed"` // units per tick
	AttackPower    int     `json:"attack_power"`
	AttackRange    float64 `json:"attack_range"`
	AttackInterval float64 `json:"attack_interval"` // seconds
	Cost           int     `json:"cost,omitempty"`
	Cooldown       float64 `json:"cooldown,omitempty"` // seconds
	Width          float64 `json:"width"`
}

// UnitDefinition is one roster row as stored in a roster file.
type UnitDefinition struct {
	ID    ArchetypeID `json:"id"`
	Name  string      `json:"name"`
	Stats UnitStats   `json:"stats"`
}
