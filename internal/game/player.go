package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

// Arena is the part of the running session an entity can see.
type Arena interface {
	Env() *Environment
	Player() *Player
	Enemies() []*Enemy
	After(delay float64, fn func())
	Emit(ev Event)
	SpawnEffect(e Effect)
	SpawnSmoke(at Vec3) Effect
	SpawnSparkle(at Vec3)
}

// Player is the knight the user controls.
type Player struct {
	cfg   tuning.Player
	cone  Cone
	Label string

	Pos     Vec3
	Vel     Vec3
	Yaw     float64
	Visible bool

	health, mana float64
	alive        bool
	grounded     bool
	attacking    bool
	defending    bool
	jumping      bool
	intent       Vec3 // x right, z forward, unit or zero
	prevPrimary  bool

	clock       float64
	lastAttack  float64
	lastManaUse float64
	attackTimer float64

	model  *Future[*assets.Model]
	body   [3]float64
	mixer  *ClipMixer
	anim   *AnimationFSM
	failed bool

	inventory *Inventory
}

func NewPlayer(cfg tuning.Player, model *Future[*assets.Model]) *Player {
	p := &Player{
		cfg:   cfg,
		cone:  Cone{Range: cfg.AttackRange, Angle: mgl64.DegToRad(cfg.AttackAngleDeg)},
		Label: "P",
		model: model,
		body:  placeholderSize,

		inventory: NewInventory(cfg.InventorySlots),
	}
	p.Reset(nil)
	return p
}

// Reset restores full stats at the start position and refills the
// inventory with items.
func (p *Player) Reset(items []tuning.Item) {
	p.health = p.cfg.MaxHealth
	p.mana = p.cfg.MaxMana
	p.alive = true
	p.Pos = Vec3{p.cfg.Start[0], p.cfg.Start[1], p.cfg.Start[2]}
	p.Vel = Vec3{}
	p.Yaw = 0
	p.grounded = false
	p.clearActions()
	p.lastAttack = math.Inf(-1)
	p.lastManaUse = math.Inf(-1)
	p.inventory.Fill(items)
	if p.anim != nil {
		p.anim.Restart(AnimIdle)
	}
}

// ResetControls stops all motion and action flags and recentres the camera.
func (p *Player) ResetControls(cam *Camera) {
	p.Vel = Vec3{}
	p.clearActions()
	cam.Reset(p.Pos)
}

func (p *Player) clearActions() {
	p.attacking = false
	p.defending = false
	p.jumping = false
	p.attackTimer = 0
	p.intent = Vec3{}
	p.prevPrimary = false
}

func (p *Player) Alive() bool           { return p.alive }
func (p *Player) Health() float64       { return p.health }
func (p *Player) MaxHealth() float64    { return p.cfg.MaxHealth }
func (p *Player) Mana() float64         { return p.mana }
func (p *Player) MaxMana() float64      { return p.cfg.MaxMana }
func (p *Player) Attacking() bool       { return p.attacking }
func (p *Player) Defending() bool       { return p.defending }
func (p *Player) Grounded() bool        { return p.grounded }
func (p *Player) Radius() float64       { return p.cfg.Radius }
func (p *Player) Inventory() *Inventory { return p.inventory }
func (p *Player) Body() [3]float64      { return p.body }

// Anim is the current animation state, AnimNone until the model resolves.
func (p *Player) Anim() AnimState {
	if p.anim == nil {
		return AnimNone
	}
	return p.anim.Current()
}

// SetMana overrides the mana pool, clamped to [0, max].
func (p *Player) SetMana(v float64) { p.mana = clampf(v, 0, p.cfg.MaxMana) }

// SetHealth overrides health, clamped to [0, max]. It never kills.
func (p *Player) SetHealth(v float64) {
	if p.alive {
		p.health = clampf(v, 0, p.cfg.MaxHealth)
	}
}

func (p *Player) bindModel(a Arena) {
	if p.anim != nil || p.failed || p.model == nil || !p.model.Resolved() {
		return
	}
	m, ok := p.model.Value()
	if !ok {
		p.failed = true
		a.Emit(Event{Kind: EventAssetFailed, Actor: p.Label, Detail: p.model.Name()})
		return
	}
	p.body = m.Size
	p.mixer = NewClipMixer(m)
	first := ""
	if len(m.Clips) > 0 {
		first = m.Clips[0].Name
	}
	p.anim = NewAnimationFSM(p.mixer, playerClips, first)
	if p.alive {
		p.anim.Set(AnimIdle)
	} else {
		p.anim.Set(AnimDeath)
	}
}

// Update advances the player by dt. A dead player only settles: animation,
// gravity and collisions.
func (p *Player) Update(dt float64, in InputState, cam *Camera, sensitivity float64, a Arena) {
	p.clock += dt
	p.bindModel(a)
	env := a.Env()
	if !p.alive {
		p.tickAnim(dt)
		p.applyGravity(dt)
		p.collide(env)
		return
	}

	cam.Rotate(in.MouseDX, in.MouseDY, sensitivity)
	p.handleInput(in, cam, a)
	p.regenMana(dt)

	moving := p.intent.LenSqr() > 0.01
	if p.grounded {
		p.jumping = false
	}
	if p.anim != nil {
		p.anim.Set(SelectAnimState(AnimInputs{
			Attacking: p.attacking,
			Defending: p.defending,
			Airborne:  !p.grounded && p.jumping,
			Moving:    p.grounded && moving,
		}))
	}

	if moving && p.grounded && !p.attacking {
		dir := cam.Forward().Mul(p.intent[2]).Add(cam.Right().Mul(p.intent[0]))
		if dir.LenSqr() > 1e-12 {
			target := math.Atan2(dir[0], dir[2])
			p.Yaw = SlerpYaw(p.Yaw, target, dt*p.cfg.RotationSpeed)
		}
	}

	p.Pos[0] += p.Vel[0] * dt
	p.Pos[2] += p.Vel[2] * dt
	p.applyGravity(dt)
	p.collide(env)
	cam.Follow(dt, p.Pos)
	p.tickAnim(dt)
}

func (p *Player) handleInput(in InputState, cam *Camera, a Arena) {
	primary := in.MouseButton == MousePrimary
	secondary := in.MouseButton == MouseSecondary
	pressed := primary && !p.prevPrimary
	p.prevPrimary = primary

	ready := !p.attacking && !p.defending && p.clock-p.lastAttack >= p.cfg.AttackCooldown
	if primary && ready {
		if p.mana >= p.cfg.AttackManaCost {
			p.startAttack(a)
		} else if pressed {
			a.Emit(Event{Kind: EventInsufficientMana, Actor: p.Label, Pos: p.Pos, Amount: p.mana})
		}
	}

	p.defending = secondary && !p.attacking

	if p.attacking || p.defending {
		p.intent = Vec3{}
		p.Vel[0], p.Vel[2] = 0, 0
		return
	}

	var right, forward float64
	if in.Key("w", "arrowup") {
		forward++
	}
	if in.Key("s", "arrowdown") {
		forward--
	}
	if in.Key("a", "arrowleft") {
		right++
	}
	if in.Key("d", "arrowright") {
		right--
	}
	p.intent = Vec3{right, 0, forward}
	if p.intent.LenSqr() > 0 {
		p.intent = p.intent.Normalize()
	}
	v := cam.Forward().Mul(p.intent[2] * p.cfg.MoveSpeed).Add(cam.Right().Mul(p.intent[0] * p.cfg.MoveSpeed))
	p.Vel[0], p.Vel[2] = v[0], v[2]

	if in.Key("space", " ") && p.grounded {
		p.Vel[1] = p.cfg.JumpVelocity
		p.grounded = false
		p.jumping = true
		a.Emit(Event{Kind: EventPlayerJump, Actor: p.Label, Pos: p.Pos})
	}
}

func (p *Player) startAttack(a Arena) {
	p.attacking = true
	p.defending = false
	p.lastAttack = p.clock
	p.mana -= p.cfg.AttackManaCost
	p.lastManaUse = p.clock
	if p.anim != nil && p.anim.Has(AnimAttack) {
		p.anim.Restart(AnimAttack)
	} else {
		p.attackTimer = p.cfg.FallbackAttackDuration
	}
	a.Emit(Event{Kind: EventPlayerAttack, Actor: p.Label, Pos: p.Pos, Amount: p.mana})
	p.dealDamage(a)
}

// dealDamage hits every living enemy inside the attack cone.
func (p *Player) dealDamage(a Arena) {
	for _, e := range a.Enemies() {
		if !e.Alive() {
			continue
		}
		if !p.cone.Contains(p.Yaw, p.Pos, e.Pos) {
			continue
		}
		e.TakeDamage(p.cfg.AttackDamage, a)
		a.Emit(Event{Kind: EventEnemyHit, Actor: e.Label, Pos: e.Pos, Amount: p.cfg.AttackDamage})
		a.SpawnSparkle(e.Pos.Add(Vec3{0, 1, 0}))
		if !e.Alive() {
			a.Emit(Event{Kind: EventEnemyDefeated, Actor: e.Label, Pos: e.Pos})
		}
	}
}

// TryAttack reports whether an attack would start right now.
func (p *Player) TryAttack() bool {
	return p.alive && !p.attacking && !p.defending &&
		p.clock-p.lastAttack >= p.cfg.AttackCooldown && p.mana >= p.cfg.AttackManaCost
}

func (p *Player) regenMana(dt float64) {
	if p.clock-p.lastManaUse < p.cfg.ManaRegenCooldown || p.mana >= p.cfg.MaxMana {
		return
	}
	p.mana = math.Min(p.cfg.MaxMana, p.mana+p.cfg.ManaRegenRate*dt)
}

func (p *Player) applyGravity(dt float64) {
	if !p.grounded {
		p.Vel[1] += p.cfg.Gravity * dt
	} else {
		p.Vel[1] = math.Max(0, p.Vel[1])
	}
	p.Pos[1] += p.Vel[1] * dt
}

func (p *Player) collide(env *Environment) {
	ground := env.GroundHeight(p.Pos[0], p.Pos[2])
	if p.Pos[1] <= ground {
		p.Pos[1] = ground
		p.Vel[1] = 0
		p.grounded = true
	} else {
		p.grounded = false
	}
	env.ResolveTrees(&p.Pos, &p.Vel, p.cfg.Radius)
	env.ClampToBounds(&p.Pos, &p.Vel, p.cfg.Radius)
}

func (p *Player) tickAnim(dt float64) {
	if p.attackTimer > 0 {
		p.attackTimer -= dt
		if p.attackTimer <= 0 {
			p.attackTimer = 0
			p.attacking = false
		}
	}
	if p.anim == nil {
		return
	}
	for _, done := range p.anim.Update(dt) {
		if done == AnimAttack {
			p.attacking = false
		}
	}
}

// TakeDamage applies amount, reduced while defending, and returns the
// damage actually taken. It is a no-op once dead.
func (p *Player) TakeDamage(amount float64, a Arena) float64 {
	if !p.alive || amount <= 0 {
		return 0
	}
	if p.defending {
		amount *= 1 - p.cfg.DefenseDamageReduction
	}
	p.health = math.Max(0, p.health-amount)
	a.Emit(Event{Kind: EventPlayerHit, Actor: p.Label, Pos: p.Pos, Amount: amount, Detail: fmt.Sprintf("defending=%t", p.defending)})
	if p.health <= 0 {
		p.die(a)
	}
	return amount
}

func (p *Player) die(a Arena) {
	if !p.alive {
		return
	}
	p.alive = false
	p.health = 0
	p.clearActions()
	if p.anim != nil {
		if p.anim.Has(AnimDeath) {
			p.anim.Restart(AnimDeath)
		} else {
			p.anim.Set(AnimIdle)
		}
	}
	a.Emit(Event{Kind: EventPlayerDied, Actor: p.Label, Pos: p.Pos})
}

// UseItem consumes one unit from slot. Only health potions have an effect;
// they are refused at full health.
func (p *Player) UseItem(slot int, a Arena) bool {
	if !p.alive {
		return false
	}
	it, ok := p.inventory.Item(slot)
	if !ok || it.ID != healthPotionID || p.health >= p.cfg.MaxHealth {
		return false
	}
	before := p.health
	p.health = math.Min(p.cfg.MaxHealth, p.health+p.cfg.PotionHeal)
	p.inventory.consume(slot)
	a.Emit(Event{Kind: EventItemUsed, Actor: p.Label, Pos: p.Pos, Amount: p.health - before, Detail: it.Name})
	return true
}
