package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

func testEnvironment(t *testing.T) *Environment {
	t.Helper()
	return NewEnvironment(tuning.MustDefault().World, rand.New(rand.NewSource(7))) // #nosec G404 -- deterministic test
}

func TestEnvironment_Scatter_Waits_For_Both_Models(t *testing.T) {
	env := testEnvironment(t)
	tree := &Future[*assets.Model]{name: "tree"}
	grass := &Future[*assets.Model]{name: "grass"}
	env.Bind(tree, grass)

	tree.settle(&assets.Model{Name: "tree"}, nil)
	if env.Update() {
		t.Fatal("should not scatter while grass is pending")
	}
	grass.settle(&assets.Model{Name: "grass"}, nil)
	if !env.Update() {
		t.Fatal("should scatter once both models resolved")
	}
	if env.Update() {
		t.Fatal("scatter runs once")
	}
	cfg := tuning.MustDefault().World
	if len(env.Trees()) != cfg.TreeCount {
		t.Fatalf("expected %d trees, got %d", cfg.TreeCount, len(env.Trees()))
	}
	if len(env.Grass()) != cfg.GrassPatches*cfg.GrassBlades {
		t.Fatalf("expected %d grass blades, got %d", cfg.GrassPatches*cfg.GrassBlades, len(env.Grass()))
	}
	for _, tr := range env.Trees() {
		if math.Hypot(tr.Pos[0], tr.Pos[2]) < cfg.TreeClearRadius {
			t.Fatalf("tree at %v inside the clear radius", tr.Pos)
		}
		if math.Abs(tr.Pos[0]) > cfg.TreeSpread || math.Abs(tr.Pos[2]) > cfg.TreeSpread {
			t.Fatalf("tree at %v outside the spread", tr.Pos)
		}
	}
}

func TestEnvironment_Failed_Tree_Model_Is_Skipped(t *testing.T) {
	env := testEnvironment(t)
	env.Bind(
		FailedFuture[*assets.Model]("tree", errors.New("boom")),
		ResolvedFuture("grass", &assets.Model{Name: "grass"}),
	)
	if !env.Update() {
		t.Fatal("should scatter when both loads resolved")
	}
	if len(env.Trees()) != 0 {
		t.Fatalf("failed tree model should leave no trees, got %d", len(env.Trees()))
	}
	if len(env.Grass()) == 0 {
		t.Fatal("grass should still scatter")
	}
}

func TestEnvironment_ClampToBounds(t *testing.T) {
	env := testEnvironment(t)
	pos := Vec3{60, 0, -55}
	vel := Vec3{3, 0, -2}
	env.ClampToBounds(&pos, &vel, 0.4)
	if pos[0] != 49.6 || pos[2] != -49.6 {
		t.Fatalf("expected clamp to ±49.6, got %v", pos)
	}
	if vel[0] != 0 || vel[2] != 0 {
		t.Fatalf("velocity into the wall should be zeroed, got %v", vel)
	}
}

func TestEnvironment_ResolveTrees_Pushes_Out(t *testing.T) {
	env := testEnvironment(t)
	env.PlaceTrees(Tree{Pos: Vec3{0, 0, 0}, Radius: 0.8})
	pos := Vec3{1.0, 0, 0}
	vel := Vec3{-4, 0, 0}
	env.ResolveTrees(&pos, &vel, 0.4)
	if math.Abs(pos[0]-1.2) > 1e-9 {
		t.Fatalf("expected push to x=1.2, got %v", pos[0])
	}
	if math.Abs(vel[0]+2) > 1e-9 {
		t.Fatalf("velocity into the tree should halve, got %v", vel[0])
	}

	away := Vec3{1.0, 0, 0}
	out := Vec3{4, 0, 0}
	env.ResolveTrees(&away, &out, 0.4)
	if out[0] != 4 {
		t.Fatalf("velocity away from the tree should be kept, got %v", out[0])
	}
}

func TestEnvironment_GroundIsFlat(t *testing.T) {
	env := testEnvironment(t)
	if env.GroundHeight(12, -30) != 0 {
		t.Fatal("ground height should be 0")
	}
}
