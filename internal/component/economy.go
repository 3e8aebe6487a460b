package component

// Economy - деньги игрока и таймер дохода
type Economy struct {
	Money int
	Timer float64
}
