package game

import "testing"

func TestDetermineSessionOutcome(t *testing.T) {
	cases := []struct {
		name     string
		damage   float64
		kills    int
		outcome  SessionOutcome
		describe string
	}{
		{"no kills", 0, 0, OutcomeInconclusive, "inconclusive_no_kills"},
		{"thinned", 0, 2, OutcomeInconclusive, "inconclusive_wave_thinned"},
		{"decisive", 20, 5, OutcomeVictory, "decisive_victory_wave_cleared"},
		{"marginal", 60, 5, OutcomeVictory, "marginal_victory_wave_cleared"},
		{"slain", 1000, 1, OutcomeDefeat, "defeat_player_slain"},
		{"pyrrhic", 1000, 5, OutcomeDefeat, "defeat_pyrrhic_wave_cleared"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := NewTestSession()
			for _, e := range ts.Enemies()[:tc.kills] {
				e.TakeDamage(1000, ts.Game)
			}
			ts.Player().TakeDamage(tc.damage, ts.Game)

			r := ts.Outcome()
			if r.Outcome != tc.outcome || r.Description != tc.describe {
				t.Fatalf("got %s/%s, want %s/%s", r.Outcome, r.Description, tc.outcome, tc.describe)
			}
			if r.EnemiesTotal != 5 || r.EnemiesKilled != tc.kills {
				t.Fatalf("counts: %+v", r)
			}
		})
	}
}

func TestSessionOutcome_String(t *testing.T) {
	if OutcomeVictory.String() != "victory" || SessionOutcome(9).String() != "unknown" {
		t.Fatal("unexpected names")
	}
}
