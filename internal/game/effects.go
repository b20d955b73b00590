package game

import (
	"math"
	"math/rand"
)

// ParticleView is the render-facing state of one particle.
type ParticleView struct {
	Pos      Vec3
	Scale    float64
	Opacity  float64
	Rotation float64
}

// EffectKind tags effects for renderers that draw them differently.
type EffectKind int

const (
	EffectSmoke EffectKind = iota
	EffectSparkle
	EffectMenuDrift
)

// Effect is a self-terminating particle burst owned by the game's
// per-frame effect list.
type Effect interface {
	Kind() EffectKind
	Update(dt float64)
	Finished() bool
	Particles() []ParticleView
}

const (
	smokeMinParticles = 10
	smokeMaxParticles = 14
	smokeGravity      = 2.0
	smokeMaxOpacity   = 0.6
	smokeLift         = 0.2  // spawn height above the origin
	smokeJitter       = 0.15 // horizontal spawn spread
)

type smokeParticle struct {
	pos         Vec3
	vel         Vec3
	life        float64
	maxLife     float64
	scale       float64
	scaleFactor float64
	rotation    float64
	spin        float64
}

// SmokeBurst is the puff shown when a skeleton spawns or dies. It is
// finished once every particle has run out of life.
type SmokeBurst struct {
	texture   string
	particles []smokeParticle
}

// NewSmokeBurst seeds a burst at origin. texture names the shared sprite held
// by the resource registry.
func NewSmokeBurst(rng *rand.Rand, origin Vec3, texture string) *SmokeBurst {
	n := smokeMinParticles + rng.Intn(smokeMaxParticles-smokeMinParticles+1)
	b := &SmokeBurst{texture: texture, particles: make([]smokeParticle, n)}
	for i := range b.particles {
		life := 0.9 + rng.Float64()*0.8
		b.particles[i] = smokeParticle{
			pos: Vec3{
				origin[0] + (rng.Float64()*2-1)*smokeJitter,
				origin[1] + smokeLift,
				origin[2] + (rng.Float64()*2-1)*smokeJitter,
			},
			vel: Vec3{
				(rng.Float64()*2 - 1) * 0.6,
				0.6 + rng.Float64(),
				(rng.Float64()*2 - 1) * 0.6,
			},
			life:        life,
			maxLife:     life,
			scale:       0.4 + rng.Float64()*0.7,
			scaleFactor: 1.2 + rng.Float64()*0.8,
			rotation:    rng.Float64() * 2 * math.Pi,
			spin:        (rng.Float64()*2 - 1) * 0.75,
		}
	}
	return b
}

// newSmokeFromLives builds a burst with fixed lifetimes, for tests.
func newSmokeFromLives(lives ...float64) *SmokeBurst {
	b := &SmokeBurst{particles: make([]smokeParticle, len(lives))}
	for i, l := range lives {
		b.particles[i] = smokeParticle{life: l, maxLife: l, scale: 1, scaleFactor: 1.5, vel: Vec3{0, 1, 0}}
	}
	return b
}

func (b *SmokeBurst) Kind() EffectKind { return EffectSmoke }
func (b *SmokeBurst) Texture() string  { return b.texture }

func (b *SmokeBurst) Update(dt float64) {
	for i := range b.particles {
		p := &b.particles[i]
		if p.life <= 0 {
			continue
		}
		p.life -= dt
		if p.life <= 0 {
			p.life = 0
			continue
		}
		ratio := p.life / p.maxLife
		p.vel[1] -= smokeGravity * dt
		p.pos = p.pos.Add(p.vel.Mul(dt))
		p.scale += p.scaleFactor * dt * (0.5 + ratio*0.5)
		p.rotation += p.spin * dt
	}
}

func (b *SmokeBurst) Finished() bool {
	for _, p := range b.particles {
		if p.life > 0 {
			return false
		}
	}
	return true
}

func (b *SmokeBurst) Particles() []ParticleView {
	out := make([]ParticleView, 0, len(b.particles))
	for _, p := range b.particles {
		if p.life <= 0 {
			continue
		}
		out = append(out, ParticleView{
			Pos:      p.pos,
			Scale:    p.scale,
			Opacity:  p.life / p.maxLife * smokeMaxOpacity,
			Rotation: p.rotation,
		})
	}
	return out
}

const (
	sparkleCount    = 50
	sparkleDuration = 1.5
	sparkleMaxSpeed = 1.5
	sparkleLift     = 0.5
	sparkleGravity  = 1.0
)

// SparkleBurst is the hit flash: a sphere of sparks that fades over a fixed
// duration.
type SparkleBurst struct {
	elapsed float64
	pos     []Vec3
	vel     []Vec3
}

func NewSparkleBurst(rng *rand.Rand, origin Vec3) *SparkleBurst {
	b := &SparkleBurst{
		pos: make([]Vec3, sparkleCount),
		vel: make([]Vec3, sparkleCount),
	}
	for i := range b.pos {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		speed := rng.Float64() * sparkleMaxSpeed
		b.pos[i] = origin
		b.vel[i] = Vec3{
			speed * math.Sin(phi) * math.Cos(theta),
			speed*math.Cos(phi) + sparkleLift,
			speed * math.Sin(phi) * math.Sin(theta),
		}
	}
	return b
}

func (b *SparkleBurst) Kind() EffectKind { return EffectSparkle }

func (b *SparkleBurst) Update(dt float64) {
	if b.Finished() {
		return
	}
	b.elapsed += dt
	for i := range b.pos {
		b.vel[i][1] -= sparkleGravity * dt
		b.pos[i] = b.pos[i].Add(b.vel[i].Mul(dt))
	}
}

func (b *SparkleBurst) Finished() bool { return b.elapsed >= sparkleDuration }

func (b *SparkleBurst) Opacity() float64 {
	progress := clampf(b.elapsed/sparkleDuration, 0, 1)
	return 1 - progress*progress
}

func (b *SparkleBurst) Particles() []ParticleView {
	if b.Finished() {
		return nil
	}
	op := b.Opacity()
	out := make([]ParticleView, len(b.pos))
	for i, p := range b.pos {
		out[i] = ParticleView{Pos: p, Scale: 0.1, Opacity: op}
	}
	return out
}

const (
	menuDriftCount  = 80
	menuDriftSpread = 25.0
	menuDriftDepth  = 20.0
	menuDriftSpeed  = 0.1
)

// MenuDrift is the ambient dust behind the main menu. It never finishes;
// the game only updates it while the menu is up.
type MenuDrift struct {
	active bool
	pos    []Vec3
	vel    []Vec3
}

func NewMenuDrift(rng *rand.Rand) *MenuDrift {
	d := &MenuDrift{
		pos: make([]Vec3, menuDriftCount),
		vel: make([]Vec3, menuDriftCount),
	}
	for i := range d.pos {
		d.pos[i] = Vec3{
			(rng.Float64() - 0.5) * menuDriftSpread,
			(rng.Float64() - 0.5) * menuDriftSpread,
			(rng.Float64() - 0.5) * menuDriftDepth,
		}
		d.vel[i] = Vec3{
			(rng.Float64() - 0.5) * menuDriftSpeed,
			(rng.Float64() - 0.5) * menuDriftSpeed,
			(rng.Float64() - 0.5) * menuDriftSpeed,
		}
	}
	return d
}

func (d *MenuDrift) Kind() EffectKind { return EffectMenuDrift }
func (d *MenuDrift) Activate()        { d.active = true }
func (d *MenuDrift) Deactivate()      { d.active = false }
func (d *MenuDrift) Active() bool     { return d.active }
func (d *MenuDrift) Finished() bool   { return false }

func (d *MenuDrift) Update(dt float64) {
	if !d.active {
		return
	}
	half := Vec3{menuDriftSpread / 2, menuDriftSpread / 2, menuDriftDepth / 2}
	for i := range d.pos {
		p := d.pos[i].Add(d.vel[i].Mul(dt))
		for axis := 0; axis < 3; axis++ {
			if p[axis] > half[axis] {
				p[axis] -= 2 * half[axis]
			} else if p[axis] < -half[axis] {
				p[axis] += 2 * half[axis]
			}
		}
		d.pos[i] = p
	}
}

func (d *MenuDrift) Particles() []ParticleView {
	if !d.active {
		return nil
	}
	out := make([]ParticleView, len(d.pos))
	for i, p := range d.pos {
		out[i] = ParticleView{Pos: p, Scale: 0.05, Opacity: 0.5}
	}
	return out
}
