package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) { c.got = append(c.got, e) }

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	deaths := &countingListener{}
	d.Subscribe(FriendlyDied, deaths)

	d.Dispatch(Event{Type: UnitAttacked})
	d.Dispatch(Event{Type: FriendlyDied, Data: Death{X: 1, Y: 2}})

	if len(deaths.got) != 1 {
		t.Fatalf("expected 1 death event, got %d", len(deaths.got))
	}
	if d, ok := deaths.got[0].Data.(Death); !ok || d.X != 1 || d.Y != 2 {
		t.Fatalf("unexpected payload %+v", deaths.got[0].Data)
	}
}

func TestQueueDispatchesAndDrains(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(GameOver, ListenerFunc(func(Event) { calls++ }))
	q := NewQueue(d)

	q.Emit(Event{Type: GameOver, Data: Result{Victory: true}})
	q.Emit(Event{Type: BaseDamaged})

	if calls != 1 {
		t.Fatalf("expected listener to run once during Emit, got %d", calls)
	}
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}
	drained := q.Drain()
	if len(drained) != 2 || drained[0].Type != GameOver {
		t.Fatalf("unexpected drain %+v", drained)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Fatal("queue should be empty after drain")
	}
}

func TestQueueWithoutDispatcher(t *testing.T) {
	q := NewQueue(nil)
	q.Emit(Event{Type: EnemySpawned})
	if q.Len() != 1 {
		t.Fatalf("expected 1 queued event, got %d", q.Len())
	}
}
