package component

import "testing"

func TestWaveRemaining(t *testing.T) {
	w := &Wave{Planned: 10, Spawned: 4}
	if got := w.Remaining(); got != 6 {
		t.Fatalf("expected 6 remaining, got %d", got)
	}
	w.Spawned = 12
	if got := w.Remaining(); got != 0 {
		t.Fatalf("overspawned wave should report 0 remaining, got %d", got)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{OutcomeNone: "none", OutcomeVictory: "victory", OutcomeDefeat: "defeat"}
	for o, want := range cases {
		if o.String() != want {
			t.Fatalf("%d: expected %q, got %q", o, want, o.String())
		}
	}
}
