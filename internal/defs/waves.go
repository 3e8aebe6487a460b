package defs

const (
	MinDifficulty = 1
	MaxDifficulty = 3
)

// DifficultyPools определяет, из каких врагов случайно собирается волна.
// Ключ карты - уровень сложности.
var DifficultyPools = map[int][]ArchetypeID{
	1: {EnemyM1_1, EnemyM1_2, EnemyM2_1}, // слабые
	2: {EnemyM1_2, EnemyM2_1, EnemyM2_2}, // средние
	3: {EnemyM2_1, EnemyM2_2},            // только сильные
}

// ClampDifficulty приводит уровень сложности к диапазону [MinDifficulty, MaxDifficulty].
func ClampDifficulty(difficulty int) int {
	if difficulty < MinDifficulty {
		return MinDifficulty
	}
	if difficulty > MaxDifficulty {
		return MaxDifficulty
	}
	return difficulty
}
