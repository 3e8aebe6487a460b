// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/sound"
	"go-lane-defense/internal/ui"
	"go-lane-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	pauseButtonSize   = 14
	resultButtonWidth = 160
	resultButtonGap   = 30
)

// GameState - состояние боя: принимает ввод, двигает ядро, рисует снимок.
type GameState struct {
	sm           *StateMachine
	opts         Options
	game         *app.Game
	renderer     *render.LaneRenderer
	hud          *ui.HUD
	waveInfo     *ui.WaveIndicator
	spawnButtons []*ui.SpawnButton
	pauseButton  *ui.PauseButton
	retryButton  *ui.TextButton
	menuButton   *ui.TextButton
	sound        *sound.Player
	fontFace     font.Face
	clock        float64
}

func NewGameState(sm *StateMachine, opts Options, difficulty int) *GameState {
	gameLogic := app.NewGame(opts.Config, opts.Roster, difficulty, app.WithSeed(opts.Seed))
	face := basicfont.Face7x13

	// Создаем и заполняем структуру с цветами для рендерера
	laneColors := &render.LaneColors{
		BackgroundColor:  config.BackgroundColor,
		GroundColor:      config.GroundColor,
		FriendlyColor:    config.FriendlyColor,
		EnemyColor:       config.EnemyColor,
		BossColor:        config.BossColor,
		AttackFlashColor: config.AttackFlashColor,
		EffectColor:      config.EffectColor,
		HPBackColor:      config.HPBackColor,
		HPFrontColor:     config.HPFrontColor,
		TextColor:        config.TextLightColor,
		StrokeWidth:      2,
	}
	renderer := render.NewLaneRenderer(laneColors, config.ScreenWidth, config.ScreenHeight, opts.Config.Baseline, opts.Roster.Boss())

	gs := &GameState{
		sm:          sm,
		opts:        opts,
		game:        gameLogic,
		renderer:    renderer,
		hud:         ui.NewHUD(20, 20, config.HPBarWidth, config.HPBarHeight, face),
		waveInfo:    ui.NewWaveIndicator(config.ScreenWidth/2, 30, face, config.TextDarkColor, config.BossColor),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-40, 40, pauseButtonSize, config.TextDarkColor, config.TextDarkColor),
		sound:       sound.NewPlayer(),
		fontFace:    face,
	}

	y := float32(config.ScreenHeight - config.SpawnButtonBottom)
	for i, id := range opts.Roster.FriendlyIDs() {
		def, _ := opts.Roster.Friendly(id)
		x := float32(config.SpawnButtonX + i*(config.SpawnButtonSize+config.SpawnButtonSpacing))
		gs.spawnButtons = append(gs.spawnButtons, ui.NewSpawnButton(x, y, config.SpawnButtonSize, def, face, config.ButtonColor, config.ButtonLockedColor))
	}

	bx := float32(config.ScreenWidth)/2 - resultButtonWidth - resultButtonGap/2
	by := float32(config.ScreenHeight)/2 + 40
	gs.retryButton = ui.NewTextButton(bx, by, resultButtonWidth, 44, "RETRY (R)", face, config.ButtonColor, config.ButtonLockedColor, config.TextLightColor)
	gs.menuButton = ui.NewTextButton(bx+resultButtonWidth+resultButtonGap, by, resultButtonWidth, 44, "MENU (M)", face, config.ButtonColor, config.ButtonLockedColor, config.TextLightColor)
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(false)

	if g.game.IsGameOver() {
		g.updateResult()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) {
			g.pause()
			return
		}
		for _, b := range g.spawnButtons {
			if b.Contains(x, y) {
				g.requestSpawn(b)
			}
		}
	}
	spawnKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	for i, b := range g.spawnButtons {
		if i < len(spawnKeys) && inpututil.IsKeyJustPressed(spawnKeys[i]) {
			g.requestSpawn(b)
		}
	}

	g.clock += deltaTime
	g.game.Tick(deltaTime, g.clock)
	forwardEvents(g.game.DrainEvents(), g.sound)
}

// forwardEvents отдаёт события тика слушателям оболочки уже после Tick.
func forwardEvents(events []event.Event, listeners ...event.Listener) {
	for _, e := range events {
		for _, l := range listeners {
			l.OnEvent(e)
		}
	}
}

func (g *GameState) requestSpawn(b *ui.SpawnButton) {
	b.Press()
	err := g.game.SpawnFriendly(b.Archetype)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrInsufficientFunds), errors.Is(err, app.ErrOnCooldown):
		// Кнопка и так показана заблокированной
	default:
		log.Printf("spawn %s: %v", b.Archetype, err)
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// updateResult обрабатывает выбор после конца боя: повтор или меню.
func (g *GameState) updateResult() {
	retry := inpututil.IsKeyJustPressed(ebiten.KeyR)
	menu := inpututil.IsKeyJustPressed(ebiten.KeyM)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		retry = retry || g.retryButton.Contains(x, y)
		menu = menu || g.menuButton.Contains(x, y)
	}
	switch {
	case retry:
		g.retryButton.Press()
		g.sm.SetState(NewGameState(g.sm, g.opts, g.game.Difficulty()))
	case menu:
		g.menuButton.Press()
		g.sm.SetState(NewMenuState(g.sm, g.opts))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot(g.clock)

	g.renderer.DrawBackground(screen, snap.BossSpawned)
	g.renderer.DrawUnits(screen, snap.Units)
	for _, fx := range snap.Effects {
		g.renderer.DrawEffect(screen, fx.X, fx.Y, fx.Size, fx.Alpha)
	}

	g.hud.Draw(screen, snap.BaseHP, snap.MaxBaseHP, snap.Money, snap.MaxMoney, snap.EnemiesRemaining)
	g.waveInfo.Draw(screen, snap.Difficulty, snap.Spawned, snap.Planned, snap.BossSpawned)
	for _, b := range g.spawnButtons {
		b.Draw(screen, snap.Money, snap.Cooldowns[b.Archetype])
	}
	g.pauseButton.Draw(screen)

	if snap.GameOver {
		g.drawResult(screen, snap.Message)
	}

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), config.ScreenWidth-90, config.ScreenHeight-20)
}

func (g *GameState) drawResult(screen *ebiten.Image, message string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	b := text.BoundString(g.fontFace, message)
	text.Draw(screen, message, g.fontFace, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, config.TextLightColor)

	x, y := ebiten.CursorPosition()
	g.retryButton.Draw(screen, g.retryButton.Contains(x, y))
	g.menuButton.Draw(screen, g.menuButton.Contains(x, y))
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// Game отдаёт сессию для состояния паузы.
func (g *GameState) Game() *app.Game {
	return g.game
}
