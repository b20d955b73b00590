// Package audio plays the game's music and effects through beep.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundSource opens encoded sound files by name.
type SoundSource interface {
	OpenSound(ctx context.Context, name string) (io.ReadCloser, error)
}

// OutputFunc starts streaming s to a device.
type OutputFunc func(sr beep.SampleRate, s beep.Streamer) error

func speakerOutput(sr beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Engine is the beep-backed game.AudioSystem. Every sound is decoded into
// memory at load time and mixed into one speaker stream.
type Engine struct {
	mu      sync.Mutex
	src     SoundSource
	log     *slog.Logger
	output  OutputFunc
	mixer   *beep.Mixer
	resumed bool
}

var _ game.AudioSystem = (*Engine)(nil)

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithOutput replaces the speaker, mostly for tests.
func WithOutput(fn OutputFunc) Option { return func(e *Engine) { e.output = fn } }

func NewEngine(src SoundSource, opts ...Option) *Engine {
	e := &Engine{
		src:    src,
		log:    slog.Default(),
		output: speakerOutput,
		mixer:  &beep.Mixer{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// LoadSound decodes sounds/<name>.wav. Names without a file get a
// synthesized stand-in so every cue is audible.
func (e *Engine) LoadSound(ctx context.Context, name string, loop bool) (game.Sound, error) {
	buf, err := e.decode(ctx, name)
	switch {
	case errors.Is(err, assets.ErrNotFound):
		e.log.Debug("synthesizing sound", "name", name)
		buf = synthesize(name)
	case err != nil:
		return nil, err
	}
	return &Track{engine: e, name: name, buf: buf, loop: loop, volume: 1}, nil
}

func (e *Engine) decode(ctx context.Context, name string) (*beep.Buffer, error) {
	rc, err := e.src.OpenSound(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	s, f, err := wav.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer s.Close()

	var stream beep.Streamer = s
	if f.SampleRate != sampleRate {
		stream = beep.Resample(4, f.SampleRate, sampleRate, s)
	}
	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: empty stream", name)
	}
	return buf, nil
}

// Resume opens the output device. It is idempotent.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.resumed {
		return nil
	}
	if err := e.output(sampleRate, e.mixer); err != nil {
		return fmt.Errorf("open audio output: %w", err)
	}
	e.resumed = true
	e.log.Info("audio output started", "sample_rate", int(sampleRate))
	return nil
}

func (e *Engine) Resumed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resumed
}

// Close drops every active stream.
func (e *Engine) Close() {
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}

// Track is one loaded sound. Play restarts it unless it is paused, in
// which case playback continues where it left off.
type Track struct {
	engine *Engine
	name   string
	buf    *beep.Buffer
	loop   bool

	volume float64
	ctrl   *beep.Ctrl
	gain   *effects.Volume
	done   atomic.Bool
}

var _ game.Sound = (*Track)(nil)

func (t *Track) Name() string { return t.name }

// Len is the decoded length in samples.
func (t *Track) Len() int { return t.buf.Len() }

func (t *Track) Play() {
	speaker.Lock()
	defer speaker.Unlock()

	if t.ctrl != nil && t.ctrl.Paused && !t.done.Load() {
		t.ctrl.Paused = false
		return
	}
	if t.ctrl != nil {
		t.ctrl.Streamer = nil
	}

	var s beep.Streamer = t.buf.Streamer(0, t.buf.Len())
	if t.loop {
		s = beep.Loop(-1, t.buf.Streamer(0, t.buf.Len()))
	}
	t.done.Store(false)
	s = beep.Seq(s, beep.Callback(func() { t.done.Store(true) }))
	t.gain = &effects.Volume{Streamer: s, Base: 2}
	t.applyVolume()
	t.ctrl = &beep.Ctrl{Streamer: t.gain}
	t.engine.mixer.Add(t.ctrl)
}

func (t *Track) Stop() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Streamer = nil
		t.ctrl = nil
	}
	t.gain = nil
}

func (t *Track) Pause() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Paused = true
	}
}

// SetVolume takes a linear gain in [0,1].
func (t *Track) SetVolume(v float64) {
	speaker.Lock()
	defer speaker.Unlock()
	t.volume = math.Max(0, math.Min(1, v))
	t.applyVolume()
}

func (t *Track) applyVolume() {
	if t.gain == nil {
		return
	}
	t.gain.Silent = t.volume <= 0
	if !t.gain.Silent {
		t.gain.Volume = math.Log2(t.volume)
	}
}

func (t *Track) Playing() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return t.ctrl != nil && !t.ctrl.Paused && !t.done.Load()
}
