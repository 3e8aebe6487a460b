package event

import "go-lane-defense/internal/types"

const (
	FriendlyDied    EventType = "FriendlyDied"    // Союзник погиб (Data: Death)
	UnitAttacked    EventType = "UnitAttacked"    // Юнит нанёс удар (Data: Attack)
	EnemySpawned    EventType = "EnemySpawned"    // Враг вышел на линию (Data: Spawn)
	FriendlySpawned EventType = "FriendlySpawned" // Союзник призван (Data: Spawn)
	BaseDamaged     EventType = "BaseDamaged"     // Враг дошёл до базы (Data: BaseHit)
	GameOver        EventType = "GameOver"        // Сессия закончилась (Data: Result)
)

// Death - точка, где погиб союзник
type Death struct {
	X, Y float64
}

// Attack - кто ударил и на сколько
type Attack struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	Friendly   bool
	Damage     int
}

// Spawn - новый юнит на линии
type Spawn struct {
	UnitID    types.EntityID
	Archetype string
	Boss      bool
}

// BaseHit - потеря здоровья базы
type BaseHit struct {
	Penalty int
	BaseHP  int
}

// Result - итог сессии
type Result struct {
	Victory bool
	Message string
}
