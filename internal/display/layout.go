package display

import (
	"image"
	"math"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

// view maps ground-plane world positions to screen pixels. The camera's
// horizontal forward always points up the screen.
type view struct {
	center Vec2
	focus  game.Vec3
	scale  float64 // pixels per world unit
	phi    float64
}

// Vec2 is a screen position in pixels.
type Vec2 struct{ X, Y float64 }

func (v view) project(p game.Vec3) Vec2 {
	dx, dz := p[0]-v.focus[0], p[2]-v.focus[2]
	sin, cos := math.Sincos(v.phi)
	// screen right is (cos, -sin) and screen up (-sin, -cos) on the x/z plane
	right := dx*cos - dz*sin
	up := -dx*sin - dz*cos
	return Vec2{v.center.X + right*v.scale, v.center.Y - up*v.scale}
}

// screenYaw converts an entity yaw to a screen-space angle for drawing a
// facing line, measured from +x toward +y.
func (v view) screenYaw(yaw float64) float64 {
	f := game.YawForward(yaw)
	a := v.project(v.focus.Add(f))
	return math.Atan2(a.Y-v.center.Y, a.X-v.center.X)
}

const (
	buttonW   = 260
	buttonH   = 38
	buttonGap = 10
	slotSize  = 52
	slotGap   = 6
)

// buttonLayout stacks n buttons in a centred column below the panel title.
func buttonLayout(n, w, h int) []image.Rectangle {
	total := n*buttonH + (n-1)*buttonGap
	y := h/2 - total/2 + 30
	x := w/2 - buttonW/2
	out := make([]image.Rectangle, n)
	for i := range out {
		out[i] = image.Rect(x, y, x+buttonW, y+buttonH)
		y += buttonH + buttonGap
	}
	return out
}

// hotbarLayout is the row of quick slots along the bottom edge.
func hotbarLayout(w, h int) []image.Rectangle {
	n := game.HotbarSlots
	total := n*slotSize + (n-1)*slotGap
	x := w/2 - total/2
	y := h - slotSize - 34
	out := make([]image.Rectangle, n)
	for i := range out {
		out[i] = image.Rect(x, y, x+slotSize, y+slotSize)
		x += slotSize + slotGap
	}
	return out
}

// inventoryLayout is a centred grid of cols columns.
func inventoryLayout(n, cols, w, h int) []image.Rectangle {
	rows := (n + cols - 1) / cols
	gw := cols*slotSize + (cols-1)*slotGap
	gh := rows*slotSize + (rows-1)*slotGap
	x0, y0 := w/2-gw/2, h/2-gh/2
	out := make([]image.Rectangle, n)
	for i := range out {
		x := x0 + (i%cols)*(slotSize+slotGap)
		y := y0 + (i/cols)*(slotSize+slotGap)
		out[i] = image.Rect(x, y, x+slotSize, y+slotSize)
	}
	return out
}

// hit returns the index of the rectangle containing (x, y), or -1.
func hit(rects []image.Rectangle, x, y int) int {
	p := image.Pt(x, y)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}
