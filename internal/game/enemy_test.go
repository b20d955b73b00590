package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

// stubArena is a minimal world for driving one enemy by hand.
type stubArena struct {
	env     *Environment
	player  *Player
	enemies []*Enemy
	sched   *Scheduler
	events  []Event
	smoke   *stubEffect
}

type stubEffect struct{ done bool }

func (e *stubEffect) Kind() EffectKind          { return EffectSmoke }
func (e *stubEffect) Update(float64)            {}
func (e *stubEffect) Finished() bool            { return e.done }
func (e *stubEffect) Particles() []ParticleView { return nil }

func newStubArena(t *testing.T) *stubArena {
	t.Helper()
	cfg := tuning.MustDefault()
	a := &stubArena{
		env:    NewEnvironment(cfg.World, rand.New(rand.NewSource(1))), // #nosec G404 -- deterministic test
		player: NewPlayer(cfg.Player, nil),
		sched:  NewScheduler(),
		smoke:  &stubEffect{},
	}
	return a
}

func (a *stubArena) Env() *Environment              { return a.env }
func (a *stubArena) Player() *Player                { return a.player }
func (a *stubArena) Enemies() []*Enemy              { return a.enemies }
func (a *stubArena) After(delay float64, fn func()) { a.sched.After(delay, fn) }
func (a *stubArena) Emit(ev Event)                  { a.events = append(a.events, ev) }
func (a *stubArena) SpawnEffect(Effect)             {}
func (a *stubArena) SpawnSmoke(Vec3) Effect         { return a.smoke }
func (a *stubArena) SpawnSparkle(Vec3)              {}

func (a *stubArena) count(kind EventKind) int {
	n := 0
	for _, ev := range a.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func (a *stubArena) addEnemy(pos Vec3, model *Future[*assets.Model]) *Enemy {
	e := NewEnemy(tuning.MustDefault().Enemy, "S0", pos, model, rand.New(rand.NewSource(2))) // #nosec G404 -- deterministic test
	a.enemies = append(a.enemies, e)
	return e
}

func skeletonWithDeath(duration float64) *Future[*assets.Model] {
	return ResolvedFuture("skeleton", &assets.Model{
		Name: "skeleton",
		Size: [3]float64{0.8, 1.8, 0.8},
		Clips: []assets.Clip{
			{Name: "Idle", Duration: 2, Loop: true},
			{Name: "Death_B", Duration: duration},
		},
	})
}

func TestEnemy_Removed_When_Anim_Finishes_Before_Smoke(t *testing.T) {
	a := newStubArena(t)
	a.player.Pos = Vec3{0, 0, 40}
	e := a.addEnemy(Vec3{}, nil)

	e.TakeDamage(1000, a)
	if e.Alive() {
		t.Fatal("enemy should be dead")
	}
	if !e.DeathAnimDone() {
		t.Fatal("no model: death animation counts as done at once")
	}

	for i := 0; i < 30; i++ {
		e.Update(1.0/60, a)
	}
	if e.Removed() {
		t.Fatal("removed before the smoke finished")
	}

	a.smoke.done = true
	e.Update(1.0/60, a)
	if !e.Removed() {
		t.Fatal("should be removed once both flags are set")
	}
	e.Update(1.0/60, a)
	if got := a.count(EventEnemyRemoved); got != 1 {
		t.Fatalf("expected one removal event, got %d", got)
	}
}

func TestEnemy_Removed_When_Smoke_Finishes_Before_Anim(t *testing.T) {
	a := newStubArena(t)
	a.player.Pos = Vec3{0, 0, 40}
	e := a.addEnemy(Vec3{}, skeletonWithDeath(1.0))
	e.Update(1.0/60, a) // binds the model

	e.TakeDamage(1000, a)
	if e.DeathAnimDone() {
		t.Fatal("death clip has not played yet")
	}
	a.smoke.done = true

	for i := 0; i < 30; i++ {
		e.Update(1.0/60, a)
	}
	if e.Removed() {
		t.Fatal("removed before the death clip finished")
	}
	for i := 0; i < 60 && !e.Removed(); i++ {
		e.Update(1.0/60, a)
	}
	if !e.Removed() {
		t.Fatal("should be removed after the death clip")
	}
	if e.Visible {
		t.Fatal("removed enemy must not be visible")
	}
}

func TestEnemy_Damage_After_Death_Is_Ignored(t *testing.T) {
	a := newStubArena(t)
	e := a.addEnemy(Vec3{}, nil)
	e.TakeDamage(30, a)
	if e.Health() != 20 || !e.Flashing() {
		t.Fatalf("health=%.1f flashing=%t", e.Health(), e.Flashing())
	}
	e.TakeDamage(30, a)
	e.TakeDamage(30, a)
	if e.Health() != 0 {
		t.Fatalf("health should clamp at 0, got %.1f", e.Health())
	}
}

func TestEnemy_Strike_Lands_After_Wind_Up(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}), WithEnemyAt(Vec3{0, 0, -1.5}))
	p := ts.Player()
	cfg := ts.Game.Tuning().Enemy

	ts.RunTicks(1)
	if ts.SimLog.Count("combat", EventEnemySwing.String()) != 1 {
		t.Fatal("enemy in range should swing at once")
	}
	ts.RunFor(cfg.WindUp - 0.1)
	if p.Health() != p.MaxHealth() {
		t.Fatal("damage landed before the wind-up elapsed")
	}
	ts.RunFor(0.2)
	if want := p.MaxHealth() - cfg.AttackDamage; p.Health() != want {
		t.Fatalf("health = %.1f, want %.1f", p.Health(), want)
	}
}

func TestEnemy_Strike_Misses_When_Player_Leaves(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}), WithEnemyAt(Vec3{0, 0, -1.5}))
	p := ts.Player()

	ts.RunTicks(1)
	p.Pos = Vec3{0, 0, 10}
	ts.RunFor(0.6)

	if p.Health() != p.MaxHealth() {
		t.Fatalf("player hit from %v", p.Pos)
	}
	if ts.SimLog.Count("combat", EventEnemyMissed.String()) != 1 {
		t.Fatal("expected a miss event")
	}
}

func TestEnemy_Strike_Aborts_When_Enemy_Dies(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}), WithEnemyAt(Vec3{0, 0, -1.5}))
	p := ts.Player()
	e := ts.Enemy(0)

	ts.RunTicks(1)
	e.TakeDamage(1000, ts.Game)
	ts.RunFor(0.6)

	if p.Health() != p.MaxHealth() {
		t.Fatal("dead skeleton must not deliver its swing")
	}
	if e.Attacking() {
		t.Fatal("aborted swing should clear the attacking flag")
	}
}

func TestEnemy_Delivery_Cone(t *testing.T) {
	cfg := tuning.MustDefault().Enemy
	e := NewEnemy(cfg, "S0", Vec3{}, nil, rand.New(rand.NewSource(1))) // #nosec G404 -- deterministic test
	e.Yaw = 0
	at := func(deg, dist float64) Vec3 {
		r := deg * math.Pi / 180
		return Vec3{math.Sin(r) * dist, 0, math.Cos(r) * dist}
	}
	if !e.delivery.Contains(e.Yaw, e.Pos, at(89, 2.3)) {
		t.Fatal("89 degrees at 2.3 should still connect")
	}
	if e.delivery.Contains(e.Yaw, e.Pos, at(10, 2.5)) {
		t.Fatal("beyond 1.2x range should miss")
	}
	if e.delivery.Contains(e.Yaw, e.Pos, at(100, 1)) {
		t.Fatal("100 degrees off facing should miss")
	}
}

func TestEnemy_Chases_Within_Sight(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}), WithEnemyAt(Vec3{0, 0, -10}))
	e := ts.Enemy(0)
	ts.RunFor(1)
	if e.Pos[2] < -9 || e.Pos[2] > -8 {
		t.Fatalf("expected about 1.5 units of progress, at %v", e.Pos)
	}
	if !e.Moving() {
		t.Fatal("enemy should be chasing")
	}
	if math.Abs(AngleTo(e.Yaw, e.Pos, Vec3{})) > 1e-6 {
		t.Fatal("enemy should face the player")
	}
}

func TestEnemy_Idle_Out_Of_Sight(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}), WithEnemyAt(Vec3{0, 0, -30}))
	e := ts.Enemy(0)
	ts.RunFor(1)
	if e.Pos[2] != -30 || e.Moving() {
		t.Fatalf("enemy beyond sight should not move, at %v", e.Pos)
	}
}

func TestEnemy_Idle_When_Player_Dead(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}), WithEnemyAt(Vec3{0, 0, -5}))
	ts.Player().TakeDamage(1000, ts.Game)
	e := ts.Enemy(0)
	before := e.Pos
	e.Update(0.5, ts.Game)
	if e.Pos != before || e.Moving() {
		t.Fatalf("enemy moved toward a dead player: %v", e.Pos)
	}
}

func TestEnemy_Pushed_Out_Of_Player(t *testing.T) {
	a := newStubArena(t)
	a.player.Pos = Vec3{}
	e := a.addEnemy(Vec3{0.3, 0, 0}, nil)
	e.lastAttack = 0
	e.clock = 0
	e.Update(1.0/60, a)
	d := HorizontalDist(e.Pos, a.player.Pos)
	if want := e.Radius() + a.player.Radius(); d < want-1e-9 {
		t.Fatalf("overlap not resolved: dist %.3f < %.3f", d, want)
	}
}

func TestEnemy_Push_Stays_Inside_Bounds(t *testing.T) {
	a := newStubArena(t)
	half := a.env.HalfExtent()
	a.player.Pos = Vec3{half - 0.1, 0, 0}
	e := a.addEnemy(Vec3{half - 0.05, 0, 0}, nil)
	e.lastAttack = 0
	e.clock = 0
	for i := 0; i < 30; i++ {
		e.Update(1.0/60, a)
		if math.Abs(e.Pos[0]) > half || math.Abs(e.Pos[2]) > half {
			t.Fatalf("tick %d: pushed past the edge to %v (half extent %.1f)", i, e.Pos, half)
		}
	}
}

func TestEnemy_Non_Positive_Damage_Is_Ignored(t *testing.T) {
	a := newStubArena(t)
	e := a.addEnemy(Vec3{}, nil)
	full := e.Health()
	e.TakeDamage(-25, a)
	e.TakeDamage(0, a)
	if e.Health() != full || e.Flashing() {
		t.Fatalf("health=%.1f flashing=%t, want %.1f and no flash", e.Health(), e.Flashing(), full)
	}
	if n := len(a.events); n != 0 {
		t.Fatalf("expected no events, got %d", n)
	}
}

func TestEnemy_Jitter_At_Zero_Distance(t *testing.T) {
	a := newStubArena(t)
	a.player.Pos = Vec3{}
	e := a.addEnemy(Vec3{}, nil)
	e.pushFromPlayer(a.player)
	if e.Pos == (Vec3{}) {
		t.Fatal("coincident enemy should be nudged")
	}
	if math.Abs(e.Pos[0]) > 0.05 || math.Abs(e.Pos[2]) > 0.05 {
		t.Fatalf("jitter too large: %v", e.Pos)
	}
}
