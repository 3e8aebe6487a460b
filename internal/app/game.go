// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/utils"

	"github.com/google/uuid"
)

// Game holds one session of the lane battle and advances it tick by tick.
// It is not safe for concurrent use: the shell calls Tick once per frame and
// reads state or requests spawns between ticks.
type Game struct {
	ID      uuid.UUID
	Config  config.Config
	Roster  *defs.Roster
	World   *entity.World
	Economy component.Economy
	State   component.GameState
	Wave    *component.Wave
	Rng     *utils.PRNGService

	EconomySystem      *system.EconomySystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	BoundarySystem     *system.BoundarySystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	EventDispatcher    *event.Dispatcher

	events            *event.Queue
	difficulty        int
	now               float64
	lastFriendlySpawn map[defs.ArchetypeID]float64
}

// Option настраивает сессию при создании.
type Option func(*Game)

// WithSeed фиксирует генератор случайных чисел волны.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.Rng = utils.NewPRNGService(seed)
	}
}

// WithStartMoney переопределяет стартовый капитал (обрезается по MaxMoney).
func WithStartMoney(money int) Option {
	return func(g *Game) {
		g.Economy.Money = min(max(money, 0), g.Config.MaxMoney)
	}
}

// NewGame initializes a new session for the given difficulty (1..3).
func NewGame(cfg config.Config, roster *defs.Roster, difficulty int, opts ...Option) *Game {
	if roster == nil {
		panic("roster cannot be nil")
	}

	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	g := &Game{
		ID:                uuid.New(),
		Config:            cfg,
		Roster:            roster,
		World:             world,
		Economy:           component.Economy{Money: min(max(cfg.StartMoney, 0), cfg.MaxMoney)},
		EventDispatcher:   dispatcher,
		events:            event.NewQueue(dispatcher),
		lastFriendlySpawn: make(map[defs.ArchetypeID]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}

	clamped := defs.ClampDifficulty(difficulty)
	if clamped != difficulty {
		g.logf("difficulty %d out of range, using %d", difficulty, clamped)
	}
	g.difficulty = clamped

	g.State = component.GameState{BaseHP: cfg.BaseHP, MaxBaseHP: cfg.BaseHP}
	g.EconomySystem = system.NewEconomySystem(cfg)
	g.WaveSystem = system.NewWaveSystem(world, roster, g.Rng, cfg, g.events)
	g.CombatSystem = system.NewCombatSystem(world, g.events)
	g.BoundarySystem = system.NewBoundarySystem(world, cfg, g.events)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, cfg, dispatcher)
	g.StateSystem = system.NewStateSystem(world, g.events)
	g.Wave = g.WaveSystem.StartWave(g.difficulty)

	dispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		if res, ok := e.Data.(event.Result); ok {
			g.logf("game over: %s (base hp %d, spawned %d/%d)", res.Message, g.State.BaseHP, g.Wave.Spawned, g.Wave.Planned)
		}
	}))

	g.logf("session started: difficulty=%d planned=%d seed=%d", g.difficulty, g.Wave.Planned, g.Rng.Seed())
	return g
}

// Tick advances the whole simulation by one frame. dt is the elapsed time in
// seconds since the previous frame, now is the session clock in seconds.
// Once the game is over Tick does nothing.
func (g *Game) Tick(dt, now float64) {
	if g.State.Over {
		return
	}
	g.now = now

	g.EconomySystem.Update(dt, &g.Economy)
	g.WaveSystem.Update(now, g.Wave)
	g.CombatSystem.Update(now)
	g.VisualEffectSystem.Update()
	g.BoundarySystem.Update(&g.State)
	g.StateSystem.Evaluate(&g.State, g.Wave)
}

// SpawnFriendly validates and spawns a friendly unit at the base side.
// Nothing is mutated when an error is returned.
func (g *Game) SpawnFriendly(id defs.ArchetypeID) error {
	def, ok := g.Roster.Friendly(id)
	if !ok {
		g.logf("rejected spawn of unknown archetype %q", id)
		return fmt.Errorf("%w: %q", ErrUnknownArchetype, id)
	}
	if g.State.Over {
		return ErrGameOver
	}
	if g.CooldownRemaining(id) > 0 {
		return fmt.Errorf("%w: %s", ErrOnCooldown, id)
	}
	if !g.EconomySystem.Spend(&g.Economy, def.Stats.Cost) {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, id, def.Stats.Cost, g.Economy.Money)
	}

	unit := entity.NewUnit(g.World.NewEntity(), entity.SideFriendly, id, def.Stats, g.Config.FriendlySpawnX, g.Config.Baseline)
	g.World.Add(unit)
	g.lastFriendlySpawn[id] = g.now
	g.events.Emit(event.Event{Type: event.FriendlySpawned, Data: event.Spawn{
		UnitID:    unit.ID,
		Archetype: string(id),
	}})
	return nil
}

// RequestSpawnFriendly is SpawnFriendly reduced to success or failure.
func (g *Game) RequestSpawnFriendly(id defs.ArchetypeID) bool {
	return g.SpawnFriendly(id) == nil
}

// CooldownRemaining возвращает, сколько секунд архетип ещё недоступен.
func (g *Game) CooldownRemaining(id defs.ArchetypeID) float64 {
	last, used := g.lastFriendlySpawn[id]
	if !used {
		return 0
	}
	def, ok := g.Roster.Friendly(id)
	if !ok {
		return 0
	}
	return max(0, def.Stats.Cooldown-(g.now-last))
}

// DrainEvents returns the events produced since the previous drain.
func (g *Game) DrainEvents() []event.Event {
	return g.events.Drain()
}

func (g *Game) Money() int {
	return g.Economy.Money
}

func (g *Game) BaseHP() int {
	return g.State.BaseHP
}

func (g *Game) MaxBaseHP() int {
	return g.State.MaxBaseHP
}

func (g *Game) IsGameOver() bool {
	return g.State.Over
}

func (g *Game) Difficulty() int {
	return g.difficulty
}

func (g *Game) Now() float64 {
	return g.now
}

func (g *Game) Outcome() component.Outcome {
	return g.State.Outcome
}

func (g *Game) ResultMessage() string {
	return g.State.Message
}

func (g *Game) BossSpawned() bool {
	return g.Wave.BossSpawned
}

// LiveEnemies - враги на линии.
func (g *Game) LiveEnemies() int {
	return len(g.World.Enemies)
}

// EnemiesRemaining = ещё не выпущенные + живые на линии.
func (g *Game) EnemiesRemaining() int {
	return g.Wave.Remaining() + len(g.World.Enemies)
}

func (g *Game) logf(format string, args ...interface{}) {
	log.Printf("[%s] "+format, append([]interface{}{g.ID.String()[:8]}, args...)...)
}
