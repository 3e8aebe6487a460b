package state

import (
	"testing"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeState struct {
	name  string
	log   *[]string
	ticks int
}

func (f *fakeState) Enter() { *f.log = append(*f.log, "enter "+f.name) }
func (f *fakeState) Update(deltaTime float64) { f.ticks++ }
func (f *fakeState) Draw(screen *ebiten.Image) {}
func (f *fakeState) Exit() { *f.log = append(*f.log, "exit "+f.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016) // без состояния ничего не происходит

	menu := &fakeState{name: "menu", log: &log}
	game := &fakeState{name: "game", log: &log}
	sm.SetState(menu)
	sm.Update(0.016)
	sm.SetState(game)
	sm.Update(0.016)
	sm.Update(0.016)

	want := []string{"enter menu", "exit menu", "enter game"}
	if len(log) != len(want) {
		t.Fatalf("transitions = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", log, want)
		}
	}
	if menu.ticks != 1 || game.ticks != 2 {
		t.Fatalf("updates routed wrong: menu=%d game=%d", menu.ticks, game.ticks)
	}
	if sm.Current() != game {
		t.Fatal("current state should be the last one set")
	}

	sm.SetState(nil)
	if sm.Current() != nil || log[len(log)-1] != "exit game" {
		t.Fatal("clearing the state should exit the previous one")
	}
}

type recordingListener struct {
	got []event.EventType
}

func (r *recordingListener) OnEvent(e event.Event) { r.got = append(r.got, e.Type) }

func TestForwardEventsDeliversDrainedEventsInOrder(t *testing.T) {
	g := app.NewGame(config.Default(), defs.DefaultRoster(), 1, app.WithSeed(3), app.WithStartMoney(100))
	first, second := &recordingListener{}, &recordingListener{}

	if !g.RequestSpawnFriendly(defs.FriendlyC1) {
		t.Fatal("spawn should succeed")
	}
	g.World.Friendly[0].TakeDamage(1000)
	g.Tick(1.0/60, 1)

	drained := g.DrainEvents()
	forwardEvents(drained, first, second)

	for _, l := range []*recordingListener{first, second} {
		if len(l.got) != len(drained) {
			t.Fatalf("listener got %d events, want %d", len(l.got), len(drained))
		}
		for i, e := range drained {
			if l.got[i] != e.Type {
				t.Fatalf("event %d = %s, want %s", i, l.got[i], e.Type)
			}
		}
	}
	if first.got[0] != event.FriendlySpawned || countType(first.got, event.FriendlyDied) != 1 {
		t.Fatalf("expected spawn then one death, got %v", first.got)
	}
	if len(g.DrainEvents()) != 0 {
		t.Fatal("queue should be empty after draining")
	}
}

func countType(got []event.EventType, typ event.EventType) int {
	n := 0
	for _, t := range got {
		if t == typ {
			n++
		}
	}
	return n
}
