package component

// Outcome - итог сессии
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// GameState - компонент для хранения состояния сессии
type GameState struct {
	BaseHP    int
	MaxBaseHP int
	Over      bool
	Outcome   Outcome
	Message   string
}
