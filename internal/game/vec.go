package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the world-space vector type. Y is up; the ground plane is XZ.
type Vec3 = mgl64.Vec3

var worldUp = Vec3{0, 1, 0}

// Horizontal drops the Y component.
func Horizontal(v Vec3) Vec3 {
	return Vec3{v[0], 0, v[2]}
}

// HorizontalDist is the distance between a and b on the ground plane.
func HorizontalDist(a, b Vec3) float64 {
	dx := a[0] - b[0]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dz*dz)
}

// YawForward returns the unit ground-plane direction a model faces at the
// given yaw. Yaw 0 faces +Z.
func YawForward(yaw float64) Vec3 {
	return Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// YawTo is the yaw that faces from o toward t.
func YawTo(o, t Vec3) float64 {
	return math.Atan2(t[0]-o[0], t[2]-o[2])
}

// yawQuat is the orientation for a yaw about the world up axis.
func yawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, worldUp)
}

// SlerpYaw rotates the current yaw toward target along the shortest arc.
// t is clamped to [0,1].
func SlerpYaw(current, target, t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	from, to := yawQuat(current), yawQuat(target)
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	q := mgl64.QuatSlerp(from, to, t)
	f := q.Rotate(Vec3{0, 0, 1})
	return math.Atan2(f[0], f[2])
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func clampf(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}
