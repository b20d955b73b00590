package game

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

// Tree is a static obstacle with a circular collider.
type Tree struct {
	Pos    Vec3
	Scale  float64
	Yaw    float64
	Radius float64
}

// GrassBlade is pure decoration.
type GrassBlade struct {
	Pos   Vec3
	Scale float64
	Yaw   float64
}

// Environment is the flat bounded ground plane and its scattered props.
type Environment struct {
	cfg        tuning.World
	rng        *rand.Rand
	trees      []Tree
	grass      []GrassBlade
	treeModel  *Future[*assets.Model]
	grassModel *Future[*assets.Model]
	scattered  bool
}

func NewEnvironment(cfg tuning.World, rng *rand.Rand) *Environment {
	return &Environment{cfg: cfg, rng: rng}
}

// Bind attaches the prop models. Scattering waits until both have
// resolved; a failed model only drops its own props.
func (e *Environment) Bind(tree, grass *Future[*assets.Model]) {
	e.treeModel, e.grassModel = tree, grass
	e.scattered = false
	e.trees, e.grass = nil, nil
}

// Update scatters once both prop loads have resolved. It reports whether
// scattering happened on this call.
func (e *Environment) Update() bool {
	if e.scattered || e.treeModel == nil || e.grassModel == nil {
		return false
	}
	if !e.treeModel.Resolved() || !e.grassModel.Resolved() {
		return false
	}
	if _, ok := e.treeModel.Value(); ok {
		e.scatterTrees()
	}
	if _, ok := e.grassModel.Value(); ok {
		e.scatterGrass()
	}
	e.scattered = true
	return true
}

func (e *Environment) Scattered() bool { return e.scattered }

func (e *Environment) scatterTrees() {
	c := e.cfg
	e.trees = make([]Tree, 0, c.TreeCount)
	for attempts := 0; len(e.trees) < c.TreeCount && attempts < c.TreeCount*20; attempts++ {
		x := (e.rng.Float64()*2 - 1) * c.TreeSpread
		z := (e.rng.Float64()*2 - 1) * c.TreeSpread
		if math.Hypot(x, z) < c.TreeClearRadius {
			continue
		}
		scale := (c.TreeScaleMin + e.rng.Float64()*(c.TreeScaleMax-c.TreeScaleMin)) * c.TreeScaleBase
		e.trees = append(e.trees, Tree{
			Pos:    Vec3{x, e.GroundHeight(x, z), z},
			Scale:  scale,
			Yaw:    e.rng.Float64() * 2 * math.Pi,
			Radius: c.TreeColliderRadius,
		})
	}
}

func (e *Environment) scatterGrass() {
	c := e.cfg
	e.grass = make([]GrassBlade, 0, c.GrassPatches*c.GrassBlades)
	for i := 0; i < c.GrassPatches; i++ {
		cx := (e.rng.Float64()*2 - 1) * c.GrassSpread
		cz := (e.rng.Float64()*2 - 1) * c.GrassSpread
		for j := 0; j < c.GrassBlades; j++ {
			a := e.rng.Float64() * 2 * math.Pi
			r := e.rng.Float64() * c.GrassPatchRadius
			x, z := cx+math.Cos(a)*r, cz+math.Sin(a)*r
			e.grass = append(e.grass, GrassBlade{
				Pos:   Vec3{x, e.GroundHeight(x, z), z},
				Scale: c.GrassScaleMin + e.rng.Float64()*(c.GrassScaleMax-c.GrassScaleMin),
				Yaw:   e.rng.Float64() * 2 * math.Pi,
			})
		}
	}
}

// PlaceTrees replaces the scattered trees, for tests and fixed layouts.
func (e *Environment) PlaceTrees(trees ...Tree) {
	e.trees = append(e.trees[:0], trees...)
	e.scattered = true
}

func (e *Environment) Trees() []Tree       { return e.trees }
func (e *Environment) Grass() []GrassBlade { return e.grass }
func (e *Environment) HalfExtent() float64 { return e.cfg.HalfExtent }

// GroundHeight is flat everywhere.
func (e *Environment) GroundHeight(x, z float64) float64 { return 0 }

// ClampToBounds keeps a body of the given radius inside the ground square
// and zeroes the velocity component that hit the edge.
func (e *Environment) ClampToBounds(pos, vel *Vec3, radius float64) {
	limit := e.cfg.HalfExtent - radius
	for _, axis := range []int{0, 2} {
		if pos[axis] > limit {
			pos[axis] = limit
			vel[axis] = 0
		} else if pos[axis] < -limit {
			pos[axis] = -limit
			vel[axis] = 0
		}
	}
}

// ResolveTrees pushes a body out of every overlapping tree and halves the
// velocity component pointing into it.
func (e *Environment) ResolveTrees(pos, vel *Vec3, radius float64) {
	for _, t := range e.trees {
		dx := pos[0] - t.Pos[0]
		dz := pos[2] - t.Pos[2]
		dist := math.Hypot(dx, dz)
		minDist := radius + t.Radius
		if dist >= minDist || dist < 1e-9 {
			continue
		}
		nx, nz := dx/dist, dz/dist
		push := minDist - dist
		pos[0] += nx * push
		pos[2] += nz * push
		if into := vel[0]*nx + vel[2]*nz; into < 0 {
			vel[0] -= into * nx * 0.5
			vel[2] -= into * nz * 0.5
		}
	}
}
