// Package assets serves the embedded model descriptors and sound files.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed models/*.yaml sounds/*.wav
var embedded embed.FS

// ErrNotFound is returned for names the catalog does not hold.
var ErrNotFound = errors.New("asset not found")

// Clip is one named animation with its playback length.
type Clip struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
}

// Model describes a loadable character or prop.
type Model struct {
	Name        string     `yaml:"name"`
	Size        [3]float64 `yaml:"size,flow"`
	Tint        [3]uint8   `yaml:"tint,flow"`
	Clips       []Clip     `yaml:"clips"`
	Placeholder bool       `yaml:"-"`
}

// Clip looks up a clip by exact name.
func (m *Model) Clip(name string) (Clip, bool) {
	for _, c := range m.Clips {
		if c.Name == name {
			return c, true
		}
	}
	return Clip{}, false
}

// Placeholder is the box stand-in used when a model cannot be loaded.
func Placeholder(name string, size [3]float64) *Model {
	return &Model{
		Name:        name,
		Size:        size,
		Tint:        [3]uint8{200, 40, 40},
		Placeholder: true,
	}
}

// Catalog loads models and sounds from a file system laid out as
// models/<name>.yaml and sounds/<name>.wav.
type Catalog struct {
	fsys    fs.FS
	latency time.Duration
}

type CatalogOption func(*Catalog)

// WithLatency delays every load, which mimics a slow network fetch.
func WithLatency(d time.Duration) CatalogOption {
	return func(c *Catalog) { c.latency = d }
}

// WithFS replaces the embedded files.
func WithFS(fsys fs.FS) CatalogOption {
	return func(c *Catalog) { c.fsys = fsys }
}

func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{fsys: embedded}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Catalog) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// LoadModel decodes models/<name>.yaml.
func (c *Catalog) LoadModel(ctx context.Context, name string) (*Model, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(c.fsys, path.Join("models", name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("model %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("model %q: %w", name, err)
	}
	var m Model
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("model %q: %w", name, err)
	}
	if m.Name == "" {
		m.Name = name
	}
	for _, clip := range m.Clips {
		if clip.Duration <= 0 {
			return nil, fmt.Errorf("model %q: clip %q has no duration", name, clip.Name)
		}
	}
	return &m, nil
}

// OpenSound opens sounds/<name>.wav. The caller closes the reader.
func (c *Catalog) OpenSound(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	f, err := c.fsys.Open(path.Join("sounds", name+".wav"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("sound %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("sound %q: %w", name, err)
	}
	return f, nil
}

// Models lists the model names in the catalog.
func (c *Catalog) Models() []string {
	entries, err := fs.Glob(c.fsys, "models/*.yaml")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		base := path.Base(e)
		out = append(out, base[:len(base)-len(".yaml")])
	}
	sort.Strings(out)
	return out
}
