// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	menuButtonWidth  = 220
	menuButtonHeight = 50
	menuButtonGap    = 20
	menuTitle        = "LANE DEFENSE"
)

// MenuState - выбор стадии (сложности) перед началом боя.
type MenuState struct {
	sm      *StateMachine
	opts    Options
	buttons []*ui.TextButton
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	m := &MenuState{sm: sm, opts: opts}
	face := basicfont.Face7x13
	x := float32(config.ScreenWidth-menuButtonWidth) / 2
	y := float32(config.ScreenHeight) / 3
	for d := defs.MinDifficulty; d <= defs.MaxDifficulty; d++ {
		label := fmt.Sprintf("STAGE %d", d)
		m.buttons = append(m.buttons, ui.NewTextButton(x, y, menuButtonWidth, menuButtonHeight, label, face,
			config.ButtonColor, config.ButtonLockedColor, config.TextLightColor))
		y += menuButtonHeight + menuButtonGap
	}
	return m
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			m.start(defs.MinDifficulty + i)
			return
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				b.Press()
				m.start(defs.MinDifficulty + i)
				return
			}
		}
	}
}

func (m *MenuState) start(difficulty int) {
	m.sm.SetState(NewGameState(m.sm, m.opts, difficulty))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	b := text.BoundString(face, menuTitle)
	text.Draw(screen, menuTitle, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/4, config.TextDarkColor)

	x, y := ebiten.CursorPosition()
	for _, btn := range m.buttons {
		btn.Draw(screen, btn.Contains(x, y))
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
