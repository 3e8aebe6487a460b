// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	difficulty := flag.Int("difficulty", 1, "stage 1..3 (used with -menu=false)")
	configPath := flag.String("config", "", "YAML balance override")
	rosterPath := flag.String("roster", "", "JSON roster override")
	seed := flag.Int64("seed", 0, "wave RNG seed, 0 = time based")
	withMenu := flag.Bool("menu", true, "start from the stage menu")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	roster, err := defs.LoadRoster(*rosterPath)
	if err != nil {
		log.Fatalf("roster: %v", err)
	}
	opts := state.Options{Config: cfg, Roster: roster, Seed: *seed}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *withMenu {
		sm.SetState(state.NewMenuState(sm, opts)) // Устанавливаем состояние меню
	} else {
		sm.SetState(state.NewGameState(sm, opts, *difficulty)) // Сразу в бой
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
