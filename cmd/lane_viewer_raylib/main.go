package main

import (
	"flag"
	"fmt"
	"log"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxSpeed = 8

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

type viewer struct {
	cfg    config.Config
	roster *defs.Roster
	seed   int64

	game   *app.Game
	pilot  *app.Autopilot
	clock  float64
	speed  int
	paused bool

	deaths   int
	breaches int
	flash    float64 // секунды красной вспышки после удара по базе
}

func (v *viewer) restart(difficulty int) {
	v.game = app.NewGame(v.cfg, v.roster, difficulty, app.WithSeed(v.seed))
	v.pilot = app.NewAutopilot(v.roster)
	v.clock = 0
	v.seed++
	v.deaths, v.breaches, v.flash = 0, 0, 0
}

// count разбирает события тика уже после Tick.
func (v *viewer) count(events []event.Event) {
	for _, e := range events {
		switch e.Type {
		case event.FriendlyDied:
			v.deaths++
		case event.BaseDamaged:
			v.breaches++
			v.flash = 0.2
		}
	}
}

func (v *viewer) step(dt float64) {
	v.flash = max(0, v.flash-dt)
	if v.paused {
		return
	}
	for i := 0; i < v.speed && !v.game.IsGameOver(); i++ {
		v.pilot.Act(v.game)
		v.clock += dt
		v.game.Tick(dt, v.clock)
		v.count(v.game.DrainEvents())
	}
}

func main() {
	difficulty := flag.Int("difficulty", 2, "stage 1..3")
	seed := flag.Int64("seed", 1, "first session seed")
	configPath := flag.String("config", "", "YAML balance override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	v := &viewer{cfg: cfg, roster: defs.DefaultRoster(), seed: *seed, speed: 1}
	v.restart(*difficulty)

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Raylib Lane Viewer | Space - Pause, Up/Down - Speed, 1-3 - Stage, R - Restart")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		// --- Обновление (логика) ---
		if rl.IsKeyPressed(rl.KeySpace) {
			v.paused = !v.paused
		}
		if rl.IsKeyPressed(rl.KeyUp) && v.speed < maxSpeed {
			v.speed *= 2
		}
		if rl.IsKeyPressed(rl.KeyDown) && v.speed > 1 {
			v.speed /= 2
		}
		if rl.IsKeyPressed(rl.KeyR) {
			v.restart(v.game.Difficulty())
		}
		for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
			if rl.IsKeyPressed(key) {
				v.restart(defs.MinDifficulty + i)
			}
		}

		dt := float64(rl.GetFrameTime())
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		v.step(dt)

		// --- Отрисовка ---
		rl.BeginDrawing()
		draw(v)
		rl.EndDrawing()
	}
}

func draw(v *viewer) {
	snap := v.game.Snapshot(v.clock)
	bg := rl.NewColor(10, 10, 20, 255)
	if snap.BossSpawned {
		bg = rl.NewColor(30, 0, 30, 255)
	}
	if v.flash > 0 {
		bg = rl.NewColor(90, 0, 0, 255)
	}
	rl.ClearBackground(bg)
	baseline := int32(v.cfg.Baseline)
	rl.DrawRectangle(0, baseline, config.ScreenWidth, config.ScreenHeight-baseline, rl.NewColor(40, 60, 30, 255))

	for _, u := range snap.Units {
		size := int32(u.Width)
		x, y := int32(u.PixelX), int32(u.Y)-size
		fill := rl.Blue
		if u.Side == entity.SideEnemy {
			fill = rl.Red
		}
		if u.Archetype == v.roster.Boss() {
			fill = rl.Purple
		}
		rl.DrawRectangleLines(x, y, size, size, fill)
		if u.Striking {
			rl.DrawRectangle(x, y, size, size, rl.Fade(rl.Yellow, 0.4))
		}
		hpColor := ColorLerp(rl.Red, rl.Green, float32(u.HPRatio))
		rl.DrawRectangle(x, y-8, int32(float64(size)*u.HPRatio), 4, hpColor)
		rl.DrawText(string(u.Archetype), x+4, y+4, 10, rl.RayWhite)
	}
	for _, fx := range snap.Effects {
		rl.DrawCircle(int32(fx.X), int32(fx.Y), float32(fx.Size)/4, rl.NewColor(255, 255, 255, fx.Alpha))
	}

	status := fmt.Sprintf("stage %d  base %d/%d  money %d  enemies %d  spawned %d/%d  lost %d  breaches %d  x%d",
		snap.Difficulty, snap.BaseHP, snap.MaxBaseHP, snap.Money, snap.EnemiesRemaining, snap.Spawned, snap.Planned, v.deaths, v.breaches, v.speed)
	rl.DrawText(status, 10, 10, 20, rl.RayWhite)
	if v.paused {
		rl.DrawText("PAUSED", config.ScreenWidth/2-40, 40, 20, rl.Yellow)
	}
	if snap.GameOver {
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 128))
		w := rl.MeasureText(snap.Message, 40)
		rl.DrawText(snap.Message, (config.ScreenWidth-w)/2, config.ScreenHeight/2-20, 40, rl.White)
		rl.DrawText("R - restart", config.ScreenWidth/2-50, config.ScreenHeight/2+30, 20, rl.LightGray)
	}
}
