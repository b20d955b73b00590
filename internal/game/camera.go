package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

// Camera is the third-person follow camera. Phi is the orbit yaw around
// the player and Theta the pitch above the horizon.
type Camera struct {
	cfg      tuning.Camera
	height   float64 // player height, for the look-at point
	minPitch float64
	maxPitch float64

	Phi    float64
	Theta  float64
	Pos    Vec3
	Target Vec3
}

func NewCamera(cfg tuning.Camera, playerHeight float64) *Camera {
	c := &Camera{
		cfg:      cfg,
		height:   playerHeight,
		minPitch: mgl64.DegToRad(cfg.MinPitchDeg),
		maxPitch: mgl64.DegToRad(cfg.MaxPitchDeg),
	}
	c.Theta = mgl64.DegToRad(cfg.InitialPitchDeg)
	return c
}

// Rotate applies a pointer delta scaled by sensitivity.
func (c *Camera) Rotate(dx, dy, sensitivity float64) {
	speed := c.cfg.BaseRotationSpeed * sensitivity
	c.Phi -= dx * speed
	c.Theta = clampf(c.Theta+dy*speed, c.minPitch, c.maxPitch)
}

// Offset is the camera position relative to the player.
func (c *Camera) Offset() Vec3 {
	d := c.cfg.Distance
	return Vec3{
		d * math.Sin(c.Phi) * math.Cos(c.Theta),
		d*math.Sin(c.Theta) + c.cfg.Height,
		d * math.Cos(c.Phi) * math.Cos(c.Theta),
	}
}

// LookAt is the point on the player the camera aims at.
func (c *Camera) LookAt(player Vec3) Vec3 {
	return player.Add(Vec3{0, c.height * 0.7, 0})
}

// Follow eases the camera toward its orbit position around player. Lag is
// the fraction of the gap closed per 60 Hz frame.
func (c *Camera) Follow(dt float64, player Vec3) {
	want := player.Add(c.Offset())
	t := 1 - math.Pow(1-clampf(c.cfg.Lag, 0, 1), dt*60)
	c.Pos = c.Pos.Add(want.Sub(c.Pos).Mul(t))
	c.Target = c.LookAt(player)
}

// Snap places the camera without easing.
func (c *Camera) Snap(player Vec3) {
	c.Pos = player.Add(c.Offset())
	c.Target = c.LookAt(player)
}

// Reset restores the initial orbit and snaps to player.
func (c *Camera) Reset(player Vec3) {
	c.Phi = 0
	c.Theta = mgl64.DegToRad(c.cfg.InitialPitchDeg)
	c.Snap(player)
}

// Forward is the horizontal unit direction the camera looks along.
func (c *Camera) Forward() Vec3 {
	return Vec3{-math.Sin(c.Phi), 0, -math.Cos(c.Phi)}
}

// Right is up × forward, which points to screen left for this camera; the
// movement keys are mapped to match.
func (c *Camera) Right() Vec3 {
	f := c.Forward()
	return worldUp.Cross(f)
}

// Orbit moves the camera on the slow menu circle around the origin.
func (c *Camera) Orbit(t float64) {
	c.Pos = Vec3{
		math.Sin(t*0.05) * 20,
		10 + math.Sin(t*0.03)*2,
		math.Cos(t*0.05) * 20,
	}
	c.Target = Vec3{}
}
