package game

type SessionOutcome int

const (
	OutcomeInconclusive SessionOutcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o SessionOutcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

type SessionOutcomeReason struct {
	Outcome        SessionOutcome
	PlayerHealth   float64
	PlayerMaxHP    float64
	EnemiesTotal   int
	EnemiesKilled  int
	EnemiesRemoved int
	Description    string
}

// DetermineSessionOutcome grades a session from its final state. A dead
// player is a defeat even if the wave also fell.
func DetermineSessionOutcome(p *Player, enemies []*Enemy) SessionOutcomeReason {
	r := SessionOutcomeReason{
		PlayerHealth: p.Health(),
		PlayerMaxHP:  p.MaxHealth(),
		EnemiesTotal: len(enemies),
	}
	for _, e := range enemies {
		if !e.Alive() {
			r.EnemiesKilled++
		}
		if e.Removed() {
			r.EnemiesRemoved++
		}
	}

	switch {
	case !p.Alive() && r.EnemiesKilled == r.EnemiesTotal && r.EnemiesTotal > 0:
		r.Outcome = OutcomeDefeat
		r.Description = "defeat_pyrrhic_wave_cleared"
	case !p.Alive():
		r.Outcome = OutcomeDefeat
		r.Description = "defeat_player_slain"
	case r.EnemiesTotal > 0 && r.EnemiesKilled == r.EnemiesTotal && r.PlayerHealth >= 0.75*r.PlayerMaxHP:
		r.Outcome = OutcomeVictory
		r.Description = "decisive_victory_wave_cleared"
	case r.EnemiesTotal > 0 && r.EnemiesKilled == r.EnemiesTotal:
		r.Outcome = OutcomeVictory
		r.Description = "marginal_victory_wave_cleared"
	case r.EnemiesKilled > 0:
		r.Outcome = OutcomeInconclusive
		r.Description = "inconclusive_wave_thinned"
	default:
		r.Outcome = OutcomeInconclusive
		r.Description = "inconclusive_no_kills"
	}
	return r
}
