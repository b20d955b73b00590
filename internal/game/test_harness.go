package game

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// TestSession is a headless session harness used by tests and the batch
// report. It drives Game.Update at a fixed step with no frontend attached.
type TestSession struct {
	Game   *Game
	SimLog *SimLog
	Step   float64

	gameOpts []Option
	enemyAt  []Vec3
	playerAt *Vec3
	noWave   bool
	state    GameState
	elapsed  float64
}

// SessionOption configures a TestSession. Every game Option is also a
// SessionOption.
type SessionOption interface {
	applySession(ts *TestSession)
}

func (o Option) applySession(ts *TestSession) { ts.gameOpts = append(ts.gameOpts, o) }

type sessionOption func(*TestSession)

func (o sessionOption) applySession(ts *TestSession) { o(ts) }

// WithEnemyAt adds a skeleton at pos after the wave, if any, has spawned.
func WithEnemyAt(pos Vec3) SessionOption {
	return sessionOption(func(ts *TestSession) { ts.enemyAt = append(ts.enemyAt, pos) })
}

// WithPlayerAt moves the player after the session starts.
func WithPlayerAt(pos Vec3) SessionOption {
	return sessionOption(func(ts *TestSession) { ts.playerAt = &pos })
}

// WithoutWave drops the default wave so only WithEnemyAt skeletons exist.
func WithoutWave() SessionOption {
	return sessionOption(func(ts *TestSession) { ts.noWave = true })
}

// WithState chooses the state the session starts in. The default is
// Playing.
func WithState(s GameState) SessionOption {
	return sessionOption(func(ts *TestSession) { ts.state = s })
}

// WithVerbose enables per-tick position and stat samples in the SimLog.
func WithVerbose(v bool) SessionOption {
	return sessionOption(func(ts *TestSession) { ts.SimLog = NewSimLog(v) })
}

// WithStep sets the fixed frame step in seconds.
func WithStep(dt float64) SessionOption {
	return sessionOption(func(ts *TestSession) { ts.Step = dt })
}

// NewTestSession builds a Game in two passes: construction with the game
// options, then placement of the player and skeletons.
func NewTestSession(opts ...SessionOption) *TestSession {
	ts := &TestSession{
		Step:   1.0 / 60,
		SimLog: NewSimLog(false),
		state:  StatePlaying,
	}
	for _, o := range opts {
		o.applySession(ts)
	}
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithSimLog(ts.SimLog),
	}
	ts.Game = New(append(base, ts.gameOpts...)...)
	g := ts.Game

	if ts.state == StateMenu {
		return ts
	}
	g.StartGame()
	if ts.noWave {
		g.enemies = nil
	}
	for _, p := range ts.enemyAt {
		g.SpawnEnemy(p)
	}
	if ts.playerAt != nil {
		g.player.Pos = *ts.playerAt
		g.camera.Snap(g.player.Pos)
	}
	g.updateObjective()

	switch ts.state {
	case StatePaused:
		g.Pause()
	case StateGameOver:
		g.GameOver()
	}
	return ts
}

func (ts *TestSession) Player() *Player    { return ts.Game.Player() }
func (ts *TestSession) Enemies() []*Enemy  { return ts.Game.Enemies() }
func (ts *TestSession) State() GameState   { return ts.Game.State() }
func (ts *TestSession) Elapsed() float64   { return ts.elapsed }
func (ts *TestSession) CurrentTick() int   { return ts.Game.Tick() }
func (ts *TestSession) Enemy(i int) *Enemy { return ts.Game.Enemies()[i] }

// RunTicks advances n fixed steps.
func (ts *TestSession) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.step()
	}
}

// RunFor advances the session by roughly seconds of simulated time.
func (ts *TestSession) RunFor(seconds float64) {
	ts.RunTicks(int(math.Round(seconds / ts.Step)))
}

// RunUntil steps until predicate holds or maxSeconds pass. It returns the
// elapsed session time when the predicate held, or -1.
func (ts *TestSession) RunUntil(predicate func(*TestSession) bool, maxSeconds float64) float64 {
	n := int(math.Round(maxSeconds / ts.Step))
	for i := 0; i < n; i++ {
		ts.step()
		if predicate(ts) {
			return ts.elapsed
		}
	}
	return -1
}

func (ts *TestSession) step() {
	ts.Game.Update(ts.Step)
	ts.elapsed += ts.Step

	if !ts.SimLog.Verbose() {
		return
	}
	tick := ts.Game.Tick()
	p := ts.Game.Player()
	ts.SimLog.AddVerbose(tick, p.Label, "move", "position",
		fmt.Sprintf("(%.2f,%.2f,%.2f)", p.Pos[0], p.Pos[1], p.Pos[2]), 0)
	ts.SimLog.AddVerbose(tick, p.Label, "stats", "mana", fmt.Sprintf("%.1f", p.Mana()), p.Mana())
	for _, e := range ts.Game.Enemies() {
		if e.Removed() {
			continue
		}
		ts.SimLog.AddVerbose(tick, e.Label, "move", "position",
			fmt.Sprintf("(%.2f,%.2f,%.2f)", e.Pos[0], e.Pos[1], e.Pos[2]), 0)
	}
}

// Press holds a key until Release.
func (ts *TestSession) Press(key string) { ts.Game.Input().KeyDown(key) }

func (ts *TestSession) Release(key string) { ts.Game.Input().KeyUp(key) }

// Tap presses key for one frame and releases it on the next, so a
// following Tap of the same key registers as a fresh press.
func (ts *TestSession) Tap(key string) {
	ts.Press(key)
	ts.step()
	ts.Release(key)
	ts.step()
}

func (ts *TestSession) MouseDown(button int) { ts.Game.Input().MouseDown(button) }

func (ts *TestSession) MouseUp(button int) { ts.Game.Input().MouseUp(button) }

// Click sends a menu button press.
func (ts *TestSession) Click(k UIActionKind) { ts.Game.HandleUIAction(Click(k)) }

// AimCamera swings the camera so "forward" points from the player at target.
func (ts *TestSession) AimCamera(target Vec3) {
	p := ts.Game.Player()
	d := target.Sub(p.Pos)
	ts.Game.Camera().Phi = math.Atan2(-d[0], -d[2])
}

// FacePlayerAt turns the player toward target immediately.
func (ts *TestSession) FacePlayerAt(target Vec3) {
	p := ts.Game.Player()
	p.Yaw = YawTo(p.Pos, target)
}

func (ts *TestSession) Outcome() SessionOutcomeReason {
	return DetermineSessionOutcome(ts.Game.Player(), ts.Game.Enemies())
}

// SessionSnapshot is a lightweight copy of the session state.
type SessionSnapshot struct {
	Tick    int
	State   GameState
	Player  ActorSnapshot
	Enemies []ActorSnapshot
}

// ActorSnapshot is one entity's state at a tick.
type ActorSnapshot struct {
	Label  string
	Pos    Vec3
	Health float64
	Alive  bool
	Anim   AnimState
}

func (ts *TestSession) Snapshot() SessionSnapshot {
	g := ts.Game
	p := g.Player()
	snap := SessionSnapshot{
		Tick:   g.Tick(),
		State:  g.State(),
		Player: ActorSnapshot{Label: p.Label, Pos: p.Pos, Health: p.Health(), Alive: p.Alive(), Anim: p.Anim()},
	}
	for _, e := range g.Enemies() {
		snap.Enemies = append(snap.Enemies, ActorSnapshot{
			Label:  e.Label,
			Pos:    e.Pos,
			Health: e.Health(),
			Alive:  e.Alive(),
			Anim:   e.Anim(),
		})
	}
	return snap
}
