package game

import (
	"context"
	"sort"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
)

// ModelSource loads model descriptors; assets.Catalog implements it.
type ModelSource interface {
	LoadModel(ctx context.Context, name string) (*assets.Model, error)
}

// Model names used by the game.
const (
	ModelKnight   = "knight"
	ModelSkeleton = "skeleton"
	ModelTree     = "tree"
	ModelGrass    = "grass"
)

// SmokeTexture is the sprite key every smoke burst shares.
const SmokeTexture = "smoke_particle"

// placeholderSize is the fallback box for characters without a model.
var placeholderSize = [3]float64{0.8, 1.8, 0.8}

// ResourceRegistry owns resources shared between entities: one model load
// per name and the smoke sprite key.
type ResourceRegistry struct {
	loader *Loader
	source ModelSource
	models map[string]*Future[*assets.Model]
}

func NewResourceRegistry(loader *Loader, source ModelSource) *ResourceRegistry {
	return &ResourceRegistry{
		loader: loader,
		source: source,
		models: make(map[string]*Future[*assets.Model]),
	}
}

// Model returns the shared future for name, starting the load on first use.
// Without a source every model fails straight away and callers use their
// placeholder.
func (r *ResourceRegistry) Model(name string) *Future[*assets.Model] {
	if f, ok := r.models[name]; ok {
		return f
	}
	var f *Future[*assets.Model]
	if r.source == nil {
		f = FailedFuture[*assets.Model](name, assets.ErrNotFound)
	} else {
		f = Request[*assets.Model](r.loader, name, r.source.LoadModel)
	}
	r.models[name] = f
	return f
}

func (r *ResourceRegistry) SmokeTexture() string { return SmokeTexture }

// Loaded lists model names whose loads succeeded.
func (r *ResourceRegistry) Loaded() []string {
	var out []string
	for name, f := range r.models {
		if f.State() == LoadReady {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
