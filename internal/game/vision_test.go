package game

import (
	"math"
	"testing"
)

func TestCone_Directly_Ahead(t *testing.T) {
	c := Cone{Range: 2, Angle: math.Pi / 2}
	if !c.Contains(0, Vec3{}, Vec3{0, 0, 1}) {
		t.Fatal("target directly in front should be in cone")
	}
}

func TestCone_Behind_Observer(t *testing.T) {
	c := Cone{Range: 2, Angle: math.Pi / 2}
	if c.Contains(0, Vec3{}, Vec3{0, 0, -1}) {
		t.Fatal("target directly behind should not be in cone")
	}
}

func TestCone_Range_Boundary_Is_Inclusive(t *testing.T) {
	c := Cone{Range: 2, Angle: math.Pi / 2}
	if !c.Contains(0, Vec3{}, Vec3{0, 0, 2}) {
		t.Fatal("target at exactly range should be in cone")
	}
	if c.Contains(0, Vec3{}, Vec3{0, 0, 2.0001}) {
		t.Fatal("target just beyond range should not be in cone")
	}
}

func TestCone_Edge_Of_Arc(t *testing.T) {
	c := Cone{Range: 10, Angle: math.Pi / 2}
	half := c.Angle / 2
	in := Vec3{math.Sin(half - 0.001), 0, math.Cos(half - 0.001)}
	if !c.Contains(0, Vec3{}, in) {
		t.Fatal("target just inside arc edge should be in cone")
	}
	out := Vec3{math.Sin(half + 0.001), 0, math.Cos(half + 0.001)}
	if c.Contains(0, Vec3{}, out) {
		t.Fatal("target just outside arc edge should not be in cone")
	}
}

func TestCone_Ten_And_Hundred_Degrees(t *testing.T) {
	c := Cone{Range: 2, Angle: math.Pi / 2}
	at := func(deg float64) Vec3 {
		r := deg * math.Pi / 180
		return Vec3{math.Sin(r), 0, math.Cos(r)}
	}
	if !c.Contains(0, Vec3{}, at(10)) {
		t.Fatal("enemy at 1.0 and 10 degrees should be hit")
	}
	if c.Contains(0, Vec3{}, at(100)) {
		t.Fatal("enemy at 1.0 and 100 degrees should be missed")
	}
}

func TestCone_Zero_Distance_Counts_As_Ahead(t *testing.T) {
	c := Cone{Range: 2, Angle: math.Pi / 2}
	if !c.Contains(1.3, Vec3{5, 0, 5}, Vec3{5, 0, 5}) {
		t.Fatal("overlapping target should be in cone")
	}
}

func TestTurnToward_SmallDiff_Snaps(t *testing.T) {
	got := TurnToward(0, 0.05, 0.1)
	if got != 0.05 {
		t.Fatalf("expected snap to 0.05, got %f", got)
	}
}

func TestTurnToward_Wraps_Short_Way(t *testing.T) {
	got := TurnToward(math.Pi-0.05, -math.Pi+0.05, 0.2)
	if math.Abs(normalizeAngle(got-(-math.Pi+0.05))) > 1e-9 {
		t.Fatalf("expected to cross the pi seam, got %f", got)
	}
}

func TestSlerpYaw_Halfway(t *testing.T) {
	got := SlerpYaw(0, math.Pi/2, 0.5)
	if math.Abs(got-math.Pi/4) > 1e-6 {
		t.Fatalf("expected pi/4, got %f", got)
	}
}

func TestYawTo_Faces_Target(t *testing.T) {
	yaw := YawTo(Vec3{}, Vec3{1, 0, 0})
	if math.Abs(yaw-math.Pi/2) > 1e-9 {
		t.Fatalf("expected pi/2, got %f", yaw)
	}
}
