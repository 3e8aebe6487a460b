package component

// Health - компонент здоровья. Value может уйти в минус до следующего тика.
type Health struct {
	Value int
	Max   int
}

// Combat - параметры и таймеры атаки юнита
type Combat struct {
	Power        int
	Range        float64
	Interval     float64 // Секунд между ударами
	LastAttackAt float64 // Время последнего удара
	AnimAt       float64 // Начало анимации удара
}
