package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

type options struct {
	runs       int
	seconds    float64
	seedBase   int64
	seedStep   int64
	scenario   string
	tuningPath string
	copy       bool
}

type runStats struct {
	runIndex int
	seed     int64
	elapsed  float64
	outcome  game.SessionOutcomeReason

	firstHitTick  int
	firstKillTick int
	clearTime     float64 // seconds until the last skeleton fell, -1 if never
	deathTime     float64 // seconds until the player fell, -1 if never

	attacks     int
	hits        int
	kills       int
	swings      int
	misses      int
	playerHits  int
	noMana      int
	itemsUsed   int
	damageDealt float64
	damageTaken float64
}

// scenarios maps a name to its session options and whether the bot fights.
var scenarios = map[string]struct {
	opts  []game.SessionOption
	fight bool
}{
	"duel": {opts: []game.SessionOption{game.WithoutWave(), game.WithEnemyAt(game.Vec3{0, 0, -6})}, fight: true},
	"wave": {fight: true},
	"idle": {fight: false},
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "headless-report",
		Short: "Run headless glade sessions and print a combat report",
		Long: `headless-report plays the glade without a window. A bot walks the knight
into the wave and swings at whatever is closest; each run is seeded so a
report can be reproduced exactly.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.runs, "runs", 5, "number of headless sessions")
	f.Float64Var(&o.seconds, "seconds", 120, "simulated seconds per session")
	f.Int64Var(&o.seedBase, "seed-base", 42, "RNG seed for run 1")
	f.Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	f.StringVar(&o.scenario, "scenario", "wave", "scenario: duel, wave or idle")
	f.StringVar(&o.tuningPath, "tuning", "", "YAML file overlaid on the default tuning")
	f.BoolVar(&o.copy, "copy", false, "also copy the report to the clipboard")
	return cmd
}

func run(out io.Writer, o options) error {
	if o.runs <= 0 {
		return fmt.Errorf("--runs must be > 0")
	}
	if o.seconds <= 0 {
		return fmt.Errorf("--seconds must be > 0")
	}
	sc, ok := scenarios[o.scenario]
	if !ok {
		return fmt.Errorf("unsupported scenario %q (supported: %s)", o.scenario, strings.Join(scenarioNames(), ", "))
	}
	cfg := tuning.MustDefault()
	if o.tuningPath != "" {
		var err error
		if cfg, err = tuning.Load(o.tuningPath); err != nil {
			return err
		}
	}

	var report bytes.Buffer
	fmt.Fprintf(&report, "=== Headless Glade Report ===\n")
	fmt.Fprintf(&report, "scenario=%s runs=%d seconds=%.0f seed_base=%d seed_step=%d\n\n",
		o.scenario, o.runs, o.seconds, o.seedBase, o.seedStep)

	all := make([]runStats, 0, o.runs)
	for i := 0; i < o.runs; i++ {
		seed := o.seedBase + int64(i)*o.seedStep
		opts := append([]game.SessionOption{game.WithSeed(seed), game.WithTuning(cfg)}, sc.opts...)
		rs := runSession(i+1, seed, o.seconds, sc.fight, opts...)
		all = append(all, rs)
		printRun(&report, rs)
	}
	printAggregate(&report, all)

	if _, err := out.Write(report.Bytes()); err != nil {
		return err
	}
	if o.copy {
		if err := clipboard.WriteAll(report.String()); err != nil {
			slog.Warn("clipboard copy failed", "error", err)
		}
	}
	return nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func runSession(runIndex int, seed int64, seconds float64, fight bool, opts ...game.SessionOption) runStats {
	ts := game.NewTestSession(opts...)
	b := &bot{potionBelow: 0.4}
	for ts.Elapsed() < seconds {
		if fight {
			b.act(ts)
		}
		ts.RunTicks(1)
		if ts.State() == game.StateGameOver || waveCleared(ts) {
			break
		}
	}
	return collect(runIndex, seed, ts)
}

func waveCleared(ts *game.TestSession) bool {
	enemies := ts.Enemies()
	if len(enemies) == 0 {
		return false
	}
	for _, e := range enemies {
		if e.Alive() {
			return false
		}
	}
	return true
}

func collect(runIndex int, seed int64, ts *game.TestSession) runStats {
	rs := runStats{
		runIndex:      runIndex,
		seed:          seed,
		elapsed:       ts.Elapsed(),
		outcome:       ts.Outcome(),
		firstHitTick:  -1,
		firstKillTick: -1,
		clearTime:     -1,
		deathTime:     -1,
	}
	for _, e := range ts.SimLog.Entries() {
		switch e.Key {
		case "player_attack":
			rs.attacks++
		case "enemy_hit":
			rs.hits++
			rs.damageDealt += e.NumVal
			if rs.firstHitTick < 0 {
				rs.firstHitTick = e.Tick
			}
		case "enemy_defeated":
			rs.kills++
			if rs.firstKillTick < 0 {
				rs.firstKillTick = e.Tick
			}
		case "enemy_swing":
			rs.swings++
		case "enemy_missed":
			rs.misses++
		case "player_hit":
			rs.playerHits++
			rs.damageTaken += e.NumVal
		case "insufficient_mana":
			rs.noMana++
		case "item_used":
			rs.itemsUsed++
		}
	}
	switch {
	case rs.outcome.Outcome == game.OutcomeDefeat:
		rs.deathTime = rs.elapsed
	case rs.outcome.Outcome == game.OutcomeVictory:
		rs.clearTime = rs.elapsed
	}
	return rs
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- run %d seed=%d ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "outcome=%s (%s) elapsed=%.1fs player_hp=%.0f/%.0f\n",
		rs.outcome.Outcome, rs.outcome.Description, rs.elapsed, rs.outcome.PlayerHealth, rs.outcome.PlayerMaxHP)
	fmt.Fprintf(w, "skeletons: total=%d killed=%d removed=%d\n",
		rs.outcome.EnemiesTotal, rs.outcome.EnemiesKilled, rs.outcome.EnemiesRemoved)
	fmt.Fprintf(w, "player: attacks=%d hits=%d accuracy=%s dealt=%.0f no_mana=%d items=%d\n",
		rs.attacks, rs.hits, ratio(rs.hits, rs.attacks), rs.damageDealt, rs.noMana, rs.itemsUsed)
	fmt.Fprintf(w, "skeletons: swings=%d landed=%d missed=%d taken=%.0f\n",
		rs.swings, rs.playerHits, rs.misses, rs.damageTaken)
	fmt.Fprintf(w, "markers: first_hit=%s first_kill=%s\n\n", tickString(rs.firstHitTick), tickString(rs.firstKillTick))
}

func printAggregate(w io.Writer, all []runStats) {
	var kills, deaths, attacks, hits, swings, landed int
	var dealt, taken float64
	var clearTimes []float64
	outcomes := map[string]int{}

	for _, rs := range all {
		kills += rs.kills
		attacks += rs.attacks
		hits += rs.hits
		swings += rs.swings
		landed += rs.playerHits
		dealt += rs.damageDealt
		taken += rs.damageTaken
		if rs.deathTime >= 0 {
			deaths++
		}
		if rs.clearTime >= 0 {
			clearTimes = append(clearTimes, rs.clearTime)
		}
		outcomes[rs.outcome.Description]++
	}

	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d kills=%d deaths=%d\n", len(all), kills, deaths)
	fmt.Fprintf(w, "avg_per_run: kills=%.1f attacks=%.1f dealt=%.1f taken=%.1f\n",
		avg(kills, len(all)), avg(attacks, len(all)), avgf(dealt, len(all)), avgf(taken, len(all)))
	fmt.Fprintf(w, "accuracy: player=%s skeletons=%s\n", ratio(hits, attacks), ratio(landed, swings))
	fmt.Fprintf(w, "mean_time_to_clear=%s (cleared %d/%d)\n", meanString(clearTimes), len(clearTimes), len(all))

	fmt.Fprintln(w, "outcomes:")
	keys := make([]string, 0, len(outcomes))
	for k := range outcomes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-30s %d\n", k, outcomes[k])
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgf(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func ratio(part, whole int) string {
	if whole <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(part)/float64(whole)*100)
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return fmt.Sprint(t)
}

func meanString(vals []float64) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1fs", sum/float64(len(vals)))
}
