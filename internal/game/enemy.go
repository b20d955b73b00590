package game

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

// Enemy is one skeleton. Its AI chases and strikes the player while the
// player is alive and within sight.
type Enemy struct {
	cfg      tuning.Enemy
	delivery Cone
	rng      *rand.Rand
	Label    string

	Pos     Vec3
	Vel     Vec3
	Yaw     float64
	Visible bool

	health    float64
	alive     bool
	grounded  bool
	attacking bool
	moving    bool
	flash     float64

	clock       float64
	lastAttack  float64
	attackTimer float64

	deathAnimDone bool
	deathSmoke    Effect
	removed       bool

	model  *Future[*assets.Model]
	body   [3]float64
	mixer  *ClipMixer
	anim   *AnimationFSM
	failed bool
}

func NewEnemy(cfg tuning.Enemy, label string, pos Vec3, model *Future[*assets.Model], rng *rand.Rand) *Enemy {
	return &Enemy{
		cfg: cfg,
		delivery: Cone{
			Range: cfg.AttackRange * cfg.DeliveryRangeFactor,
			Angle: 2 * mgl64.DegToRad(cfg.DeliveryAngleDeg),
		},
		rng:        rng,
		Label:      label,
		Pos:        pos,
		Visible:    true,
		health:     cfg.MaxHealth,
		alive:      true,
		lastAttack: math.Inf(-1),
		model:      model,
		body:       placeholderSize,
	}
}

func (e *Enemy) Alive() bool        { return e.alive }
func (e *Enemy) Health() float64    { return e.health }
func (e *Enemy) MaxHealth() float64 { return e.cfg.MaxHealth }
func (e *Enemy) Attacking() bool    { return e.attacking }
func (e *Enemy) Moving() bool       { return e.moving }
func (e *Enemy) Flashing() bool     { return e.flash > 0 }
func (e *Enemy) Radius() float64    { return e.cfg.Radius }
func (e *Enemy) Body() [3]float64   { return e.body }

// Removed reports that the death animation and the death smoke both
// finished and the body left the world.
func (e *Enemy) Removed() bool { return e.removed }

// DeathAnimDone reports whether the death clip has finished, or was never
// available.
func (e *Enemy) DeathAnimDone() bool { return e.deathAnimDone }

func (e *Enemy) Anim() AnimState {
	if e.anim == nil {
		return AnimNone
	}
	return e.anim.Current()
}

func (e *Enemy) bindModel(a Arena) {
	if e.anim != nil || e.failed || e.model == nil || !e.model.Resolved() {
		return
	}
	m, ok := e.model.Value()
	if !ok {
		e.failed = true
		a.Emit(Event{Kind: EventAssetFailed, Actor: e.Label, Detail: e.model.Name()})
		return
	}
	e.body = m.Size
	e.mixer = NewClipMixer(m)
	first := ""
	if len(m.Clips) > 0 {
		first = m.Clips[0].Name
	}
	e.anim = NewAnimationFSM(e.mixer, skeletonClips, first)
	if e.alive {
		e.anim.Set(AnimIdle)
	}
}

// Update runs one frame: animation, then either the death join or the AI,
// movement and physics.
func (e *Enemy) Update(dt float64, a Arena) {
	if e.removed {
		return
	}
	e.clock += dt
	e.bindModel(a)
	e.tickAnim(dt)

	if !e.alive {
		if e.deathAnimDone && (e.deathSmoke == nil || e.deathSmoke.Finished()) {
			e.removed = true
			e.Visible = false
			a.Emit(Event{Kind: EventEnemyRemoved, Actor: e.Label, Pos: e.Pos})
		}
		return
	}

	if e.flash > 0 {
		e.flash = math.Max(0, e.flash-dt)
	}

	state := e.think(a)
	if e.anim != nil {
		e.anim.Set(state)
	}

	if e.moving && !e.attacking {
		e.Pos[0] += e.Vel[0] * dt
		e.Pos[2] += e.Vel[2] * dt
	}
	env := a.Env()
	env.ClampToBounds(&e.Pos, &e.Vel, 0)

	if !e.grounded {
		e.Vel[1] += gravityOf(a) * dt
	} else {
		e.Vel[1] = math.Max(0, e.Vel[1])
	}
	e.Pos[1] += e.Vel[1] * dt
	ground := env.GroundHeight(e.Pos[0], e.Pos[2])
	if e.Pos[1] <= ground {
		e.Pos[1] = ground
		e.Vel[1] = 0
		e.grounded = true
	} else {
		e.grounded = false
	}

	e.pushFromPlayer(a.Player())
	// the push can shove a skeleton pinned against the edge back out
	env.ClampToBounds(&e.Pos, &e.Vel, 0)
}

// gravityOf uses the player's gravity so both bodies fall alike.
func gravityOf(a Arena) float64 {
	if p := a.Player(); p != nil {
		return p.cfg.Gravity
	}
	return -18
}

// think picks velocity and animation for this frame.
func (e *Enemy) think(a Arena) AnimState {
	e.moving = false
	if e.attacking {
		e.Vel[0], e.Vel[2] = 0, 0
		return AnimAttack
	}
	p := a.Player()
	if p == nil || !p.Alive() {
		e.Vel[0], e.Vel[2] = 0, 0
		return AnimIdle
	}
	dist := e.Pos.Sub(p.Pos).Len()
	if dist > e.cfg.SightRange {
		e.Vel[0], e.Vel[2] = 0, 0
		return AnimIdle
	}
	e.Yaw = YawTo(e.Pos, p.Pos)
	switch {
	case dist <= e.cfg.AttackRange && e.clock-e.lastAttack >= e.cfg.AttackCooldown:
		e.Vel[0], e.Vel[2] = 0, 0
		e.performAttack(a)
		return AnimAttack
	case dist > e.cfg.AttackRange:
		dir := p.Pos.Sub(e.Pos).Normalize()
		e.Vel[0] = dir[0] * e.cfg.Speed
		e.Vel[2] = dir[2] * e.cfg.Speed
		e.moving = true
		return AnimWalk
	default:
		e.Vel[0], e.Vel[2] = 0, 0
		return AnimIdle
	}
}

// performAttack starts the swing; damage lands after the wind-up only if
// the strike still connects then.
func (e *Enemy) performAttack(a Arena) {
	if !e.alive || e.attacking {
		return
	}
	e.attacking = true
	e.lastAttack = e.clock
	if e.anim != nil && e.anim.Has(AnimAttack) {
		e.anim.Restart(AnimAttack)
	} else {
		e.attackTimer = e.cfg.FallbackAttackDuration
	}
	a.Emit(Event{Kind: EventEnemySwing, Actor: e.Label, Pos: e.Pos})
	a.After(e.cfg.WindUp, func() { e.deliver(a) })
}

func (e *Enemy) deliver(a Arena) {
	p := a.Player()
	if !e.alive || e.removed || p == nil || !p.Alive() {
		e.attacking = false
		e.attackTimer = 0
		return
	}
	if !e.delivery.Contains(e.Yaw, e.Pos, p.Pos) {
		a.Emit(Event{Kind: EventEnemyMissed, Actor: e.Label, Pos: e.Pos, Amount: e.Pos.Sub(p.Pos).Len()})
		return
	}
	p.TakeDamage(e.cfg.AttackDamage, a)
}

func (e *Enemy) tickAnim(dt float64) {
	if e.attackTimer > 0 {
		e.attackTimer -= dt
		if e.attackTimer <= 0 {
			e.attackTimer = 0
			e.attacking = false
		}
	}
	if e.anim == nil {
		return
	}
	for _, done := range e.anim.Update(dt) {
		switch done {
		case AnimAttack:
			e.attacking = false
		case AnimDeath:
			e.deathAnimDone = true
		}
	}
}

// TakeDamage lowers health, flashes, and kills at zero. Damage after death
// is ignored.
func (e *Enemy) TakeDamage(amount float64, a Arena) {
	if !e.alive || amount <= 0 {
		return
	}
	e.health = math.Max(0, e.health-amount)
	e.flash = e.cfg.DamageFlash
	if e.health <= 0 {
		e.die(a)
	}
}

func (e *Enemy) die(a Arena) {
	if !e.alive {
		return
	}
	e.alive = false
	e.moving = false
	e.flash = 0
	e.deathSmoke = a.SpawnSmoke(e.Pos)
	if e.anim != nil && e.anim.Has(AnimDeath) {
		e.anim.Restart(AnimDeath)
	} else {
		e.deathAnimDone = true
	}
}

// pushFromPlayer separates the skeleton from a living player on the
// ground plane.
func (e *Enemy) pushFromPlayer(p *Player) {
	if p == nil || !p.Alive() {
		return
	}
	combined := e.cfg.Radius + p.Radius()
	dx := e.Pos[0] - p.Pos[0]
	dz := e.Pos[2] - p.Pos[2]
	dist := math.Hypot(dx, dz)
	if dist >= combined {
		return
	}
	if dist == 0 {
		e.Pos[0] += (e.rng.Float64() - 0.5) * 0.1
		e.Pos[2] += (e.rng.Float64() - 0.5) * 0.1
		return
	}
	nx, nz := dx/dist, dz/dist
	overlap := combined - dist
	e.Pos[0] += nx * overlap
	e.Pos[2] += nz * overlap
	if e.Vel[0]*-nx+e.Vel[2]*-nz > 0 {
		e.Vel = e.Vel.Mul(0.8)
	}
}
