package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

func newTestCamera() *Camera {
	cfg := tuning.MustDefault()
	return NewCamera(cfg.Camera, cfg.Player.Height)
}

func TestCamera_Pitch_Is_Clamped(t *testing.T) {
	c := newTestCamera()
	assert.InDelta(t, math.Pi/6, c.Theta, 1e-9)

	c.Rotate(0, 1e6, 1)
	assert.InDelta(t, math.Pi/2.5, c.Theta, 1e-9)
	c.Rotate(0, -1e6, 1)
	assert.InDelta(t, -math.Pi/3, c.Theta, 1e-9)
}

func TestCamera_Rotate_Scales_With_Sensitivity(t *testing.T) {
	c := newTestCamera()
	c.Rotate(100, 0, 2)
	assert.InDelta(t, -100*0.005*2, c.Phi, 1e-9)
}

func TestCamera_Offset(t *testing.T) {
	c := newTestCamera()
	c.Theta = 0
	off := c.Offset()
	assert.InDelta(t, 0, off[0], 1e-9)
	assert.InDelta(t, 1.8, off[1], 1e-9)
	assert.InDelta(t, 6, off[2], 1e-9)
}

func TestCamera_Basis(t *testing.T) {
	c := newTestCamera()
	f := c.Forward()
	assert.InDelta(t, -1, f[2], 1e-9)
	r := c.Right()
	assert.InDelta(t, -1, r[0], 1e-9)
	assert.InDelta(t, 0, r.Dot(f), 1e-9)

	c.Phi = math.Pi / 2
	f = c.Forward()
	assert.InDelta(t, -1, f[0], 1e-9)
	assert.InDelta(t, 0, f[1], 1e-9)
}

func TestCamera_Follow_Eases(t *testing.T) {
	c := newTestCamera()
	c.Snap(Vec3{})
	start := c.Pos
	c.Follow(1.0/60, Vec3{10, 0, 0})
	moved := c.Pos[0] - start[0]
	assert.InDelta(t, 1.0, moved, 1e-6, "one frame closes a tenth of the gap")

	for i := 0; i < 600; i++ {
		c.Follow(1.0/60, Vec3{10, 0, 0})
	}
	assert.InDelta(t, 10+c.Offset()[0], c.Pos[0], 1e-6)
	assert.Equal(t, c.LookAt(Vec3{10, 0, 0}), c.Target)
}

func TestCamera_Reset(t *testing.T) {
	c := newTestCamera()
	c.Rotate(300, -200, 1)
	c.Reset(Vec3{0, 0, 5})
	assert.Zero(t, c.Phi)
	assert.InDelta(t, math.Pi/6, c.Theta, 1e-9)
	assert.Equal(t, Vec3{0, 0, 5}.Add(c.Offset()), c.Pos)
}
