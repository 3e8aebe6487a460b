// internal/component/wave.go
package component

// Wave - состояние волны врагов на всю сессию
type Wave struct {
	Difficulty    int     // Уровень сложности
	Planned       int     // Сколько врагов всего в волне
	Spawned       int     // Сколько уже выпущено
	LastSpawnAt   float64 // Время последнего спавна
	SpawnInterval float64 // Интервал до следующего спавна (в секундах)
	Started       bool    // Часы волны запущены первым тиком
	BossSpawned   bool
}

// Remaining - сколько врагов ещё не выпущено.
func (w *Wave) Remaining() int {
	if w.Spawned >= w.Planned {
		return 0
	}
	return w.Planned - w.Spawned
}
