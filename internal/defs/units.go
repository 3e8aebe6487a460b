// internal/defs/units.go
package defs

const (
	FriendlyC1 ArchetypeID = "C1"
	FriendlyC2 ArchetypeID = "C2"
	FriendlyC3 ArchetypeID = "C3"

	EnemyM1_1 ArchetypeID = "M1_1"
	EnemyM1_2 ArchetypeID = "M1_2"
	EnemyM2_1 ArchetypeID = "M2_1"
	EnemyM2_2 ArchetypeID = "M2_2"
	EnemyBoss ArchetypeID = "BOSS"
)

const (
	unitWidth = 150.0
	bossWidth = 375.0
)

// FriendlyDefs - союзники в порядке кнопок.
var FriendlyDefs = []UnitDefinition{
	{ID: FriendlyC1, Name: "Recruit", Stats: UnitStats{MaxHP: 100, Speed: 1.5, AttackPower: 20, AttackRange: 100, AttackInterval: 0.8, Cost: 50, Cooldown: 4.0, Width: unitWidth}},
	{ID: FriendlyC2, Name: "Guard", Stats: UnitStats{MaxHP: 400, Speed: 0.8, AttackPower: 10, AttackRange: 90, AttackInterval: 0.8, Cost: 100, Cooldown: 7.0, Width: unitWidth}},
	{ID: FriendlyC3, Name: "Striker", Stats: UnitStats{MaxHP: 200, Speed: 1.2, AttackPower: 40, AttackRange: 125, AttackInterval: 1.0, Cost: 400, Cooldown: 10.0, Width: unitWidth}},
}

// EnemyDefs - все враги, включая босса.
var EnemyDefs = []UnitDefinition{
	{ID: EnemyM1_1, Name: "Slime", Stats: UnitStats{MaxHP: 60, Speed: 1.0, AttackPower: 8, AttackRange: 80, AttackInterval: 1.0, Width: unitWidth}},
	{ID: EnemyM1_2, Name: "Runner", Stats: UnitStats{MaxHP: 90, Speed: 2.0, AttackPower: 12, AttackRange: 80, AttackInterval: 0.8, Width: unitWidth}},
	{ID: EnemyM2_1, Name: "Brute", Stats: UnitStats{MaxHP: 250, Speed: 0.5, AttackPower: 20, AttackRange: 100, AttackInterval: 1.2, Width: unitWidth}},
	{ID: EnemyM2_2, Name: "Knight", Stats: UnitStats{MaxHP: 300, Speed: 1.1, AttackPower: 25, AttackRange: 115, AttackInterval: 2.0, Width: unitWidth}},
	{ID: EnemyBoss, Name: "Overlord", Stats: UnitStats{MaxHP: 3000, Speed: 0.4, AttackPower: 100, AttackRange: 160, AttackInterval: 2.0, Width: bossWidth}},
}
