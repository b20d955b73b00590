package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

func TestView_Forward_Is_Screen_Up(t *testing.T) {
	v := view{center: Vec2{400, 300}, scale: 10}

	ahead := v.project(game.Vec3{0, 0, -5})
	assert.InDelta(t, 400, ahead.X, 1e-9)
	assert.InDelta(t, 250, ahead.Y, 1e-9)

	right := v.project(game.Vec3{5, 0, 0})
	assert.InDelta(t, 450, right.X, 1e-9)

	// quarter turn: the camera looks down -x
	v.phi = math.Pi / 2
	ahead = v.project(game.Vec3{-5, 0, 0})
	assert.InDelta(t, 400, ahead.X, 1e-9)
	assert.InDelta(t, 250, ahead.Y, 1e-9)
}

func TestView_Matches_Camera_Basis(t *testing.T) {
	cam := game.NewCamera(tuning.MustDefault().Camera, 1.8)
	cam.Phi = 0.7
	v := view{center: Vec2{0, 0}, scale: 1, phi: cam.Phi}

	f := v.project(cam.Forward())
	assert.InDelta(t, 0, f.X, 1e-9)
	assert.InDelta(t, -1, f.Y, 1e-9)

	// Camera.Right is screen left for this camera
	r := v.project(cam.Right())
	assert.InDelta(t, -1, r.X, 1e-9)
}

func TestView_ScreenYaw(t *testing.T) {
	v := view{center: Vec2{100, 100}, scale: 10}
	// yaw pi faces -z, which is screen up
	assert.InDelta(t, -math.Pi/2, v.screenYaw(math.Pi), 1e-9)
}

func TestButtonLayout_And_Hit(t *testing.T) {
	rects := buttonLayout(3, 800, 600)
	require.Len(t, rects, 3)
	for i := 1; i < len(rects); i++ {
		assert.False(t, rects[i].Overlaps(rects[i-1]))
		assert.Equal(t, rects[0].Min.X, rects[i].Min.X)
	}
	c := rects[1].Min.Add(rects[1].Size().Div(2))
	assert.Equal(t, 1, hit(rects, c.X, c.Y))
	assert.Equal(t, -1, hit(rects, 0, 0))
}

func TestInventoryLayout_Grid(t *testing.T) {
	rects := inventoryLayout(12, 6, 800, 600)
	require.Len(t, rects, 12)
	assert.Equal(t, rects[0].Min.X, rects[6].Min.X)
	assert.Greater(t, rects[6].Min.Y, rects[0].Min.Y)
	assert.Len(t, hotbarLayout(800, 600), game.HotbarSlots)
}

func TestKeyNames_Cover_Game_Controls(t *testing.T) {
	want := map[string]bool{"w": false, "a": false, "s": false, "d": false, "space": false, "escape": false, "i": false, "6": false}
	for _, n := range keyNames {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		assert.True(t, seen, n)
	}
}
