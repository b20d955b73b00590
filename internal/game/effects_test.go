package game

import (
	"math/rand"
	"testing"
)

func TestSmokeBurst_Single_Particle_Finishes_At_Expiry(t *testing.T) {
	b := newSmokeFromLives(0.5)
	b.Update(0.25)
	if b.Finished() {
		t.Fatal("burst finished while its only particle still had life")
	}
	b.Update(0.25)
	if !b.Finished() {
		t.Fatal("burst should finish once its only particle expired")
	}
}

func TestSmokeBurst_Staggered_Lifetimes(t *testing.T) {
	b := newSmokeFromLives(0.2, 1.0, 0.6)
	b.Update(0.3)
	if b.Finished() {
		t.Fatal("finished with two particles alive")
	}
	if got := len(b.Particles()); got != 2 {
		t.Fatalf("expected 2 visible particles, got %d", got)
	}
	b.Update(0.4)
	if b.Finished() {
		t.Fatal("finished with the longest particle alive")
	}
	b.Update(0.4)
	if !b.Finished() {
		t.Fatal("burst should finish after the last particle expired")
	}
	if len(b.Particles()) != 0 {
		t.Fatal("finished burst should render nothing")
	}
}

func TestSmokeBurst_Grows_And_Fades(t *testing.T) {
	b := newSmokeFromLives(1.0)
	before := b.Particles()[0]
	b.Update(0.5)
	after := b.Particles()[0]
	if after.Scale <= before.Scale {
		t.Fatalf("scale should grow: %f -> %f", before.Scale, after.Scale)
	}
	if after.Opacity >= before.Opacity {
		t.Fatalf("opacity should fade: %f -> %f", before.Opacity, after.Opacity)
	}
	if before.Opacity > smokeMaxOpacity+1e-9 {
		t.Fatalf("opacity above cap: %f", before.Opacity)
	}
}

func TestSmokeBurst_Seeded_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- deterministic test
	for i := 0; i < 20; i++ {
		b := NewSmokeBurst(rng, Vec3{1, 0, 1}, "smoke")
		n := len(b.particles)
		if n < smokeMinParticles || n > smokeMaxParticles {
			t.Fatalf("particle count %d outside [%d,%d]", n, smokeMinParticles, smokeMaxParticles)
		}
		for _, p := range b.particles {
			if p.maxLife < 0.9 || p.maxLife > 1.7 {
				t.Fatalf("life %f outside [0.9,1.7]", p.maxLife)
			}
			if p.vel[1] < 0.6 || p.vel[1] > 1.6 {
				t.Fatalf("upward velocity %f outside [0.6,1.6]", p.vel[1])
			}
		}
	}
}

func TestSparkleBurst_Finishes_At_Duration(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- deterministic test
	b := NewSparkleBurst(rng, Vec3{})
	if b.Opacity() != 1 {
		t.Fatalf("fresh sparkle should be opaque, got %f", b.Opacity())
	}
	b.Update(0.75)
	if got := b.Opacity(); got < 0.74 || got > 0.76 {
		t.Fatalf("expected opacity 0.75 at half time, got %f", got)
	}
	b.Update(0.75)
	if !b.Finished() {
		t.Fatal("sparkle should finish at its duration")
	}
}

func TestMenuDrift_Wraps_And_Only_Moves_When_Active(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- deterministic test
	d := NewMenuDrift(rng)
	start := d.pos[0]
	d.Update(10)
	if d.pos[0] != start {
		t.Fatal("inactive drift should not move")
	}
	d.Activate()
	d.pos[0] = Vec3{menuDriftSpread/2 - 0.01, 0, 0}
	d.vel[0] = Vec3{0.1, 0, 0}
	d.Update(1)
	if d.pos[0][0] > 0 {
		t.Fatalf("particle should wrap to the far edge, got x=%f", d.pos[0][0])
	}
	if d.Finished() {
		t.Fatal("menu drift never finishes")
	}
}
