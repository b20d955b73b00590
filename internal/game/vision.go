package game

import "math"

// Cone describes a melee or sight arc centred on a facing yaw.
type Cone struct {
	Range float64 // inclusive reach in world units
	Angle float64 // radians, total arc width
}

// AngleTo returns the unsigned ground-plane angle between the facing at yaw
// and the direction from o to t. A target at zero horizontal distance is
// reported as straight ahead.
func AngleTo(yaw float64, o, t Vec3) float64 {
	dx := t[0] - o[0]
	dz := t[2] - o[2]
	if dx*dx+dz*dz < 1e-12 {
		return 0
	}
	return math.Abs(normalizeAngle(math.Atan2(dx, dz) - yaw))
}

// Contains reports whether t is inside the cone of an observer at o facing
// yaw. Distance is measured in 3D, the bearing on the ground plane. Both
// bounds are inclusive.
func (c Cone) Contains(yaw float64, o, t Vec3) bool {
	if o.Sub(t).Len() > c.Range {
		return false
	}
	return AngleTo(yaw, o, t) <= c.Angle/2
}

// TurnToward rotates yaw toward target by at most maxStep radians.
func TurnToward(yaw, target, maxStep float64) float64 {
	diff := normalizeAngle(target - yaw)
	if math.Abs(diff) <= maxStep {
		return target
	}
	if diff > 0 {
		return normalizeAngle(yaw + maxStep)
	}
	return normalizeAngle(yaw - maxStep)
}
