package audio

import (
	"context"
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

// captureOutput records the mixer instead of opening a device.
type captureOutput struct {
	stream beep.Streamer
	err    error
}

func (c *captureOutput) open(_ beep.SampleRate, s beep.Streamer) error {
	if c.err != nil {
		return c.err
	}
	c.stream = s
	return nil
}

// peak pulls n samples from the captured mixer and returns the loudest.
func (c *captureOutput) peak(n int) float64 {
	buf := make([][2]float64, 512)
	var top float64
	for n > 0 {
		k := min(n, len(buf))
		c.stream.Stream(buf[:k])
		for _, s := range buf[:k] {
			top = math.Max(top, math.Abs(s[0]))
		}
		n -= k
	}
	return top
}

func newTestEngine(t *testing.T) (*Engine, *captureOutput) {
	t.Helper()
	out := &captureOutput{}
	e := NewEngine(assets.NewCatalog(), WithOutput(out.open))
	require.NoError(t, e.Resume())
	return e, out
}

func TestEngine_Decodes_Embedded_Wav(t *testing.T) {
	e, _ := newTestEngine(t)
	s, err := e.LoadSound(context.Background(), game.SoundUIClick, false)
	require.NoError(t, err)
	tr := s.(*Track)
	// 22.05 kHz source resampled to 44.1 kHz roughly doubles the length.
	assert.Greater(t, tr.Len(), 1000)
}

func TestEngine_Synthesizes_Missing_Sounds(t *testing.T) {
	e, _ := newTestEngine(t)
	for _, name := range []string{
		game.SoundMenuMusic, game.SoundGameMusic, game.SoundJump,
		game.SoundEnemyAttack, game.SoundSkeletonSwing, game.SoundPlayerAttack,
	} {
		s, err := e.LoadSound(context.Background(), name, false)
		require.NoError(t, err, name)
		assert.Positive(t, s.(*Track).Len(), name)
	}
}

func TestEngine_Corrupt_File_Fails(t *testing.T) {
	fsys := fstest.MapFS{"sounds/bad.wav": {Data: []byte("not a wav")}}
	e := NewEngine(assets.NewCatalog(assets.WithFS(fsys)))
	_, err := e.LoadSound(context.Background(), "bad", false)
	assert.Error(t, err)
}

func TestEngine_Resume_Error_Keeps_Suspended(t *testing.T) {
	out := &captureOutput{err: errors.New("no device")}
	e := NewEngine(assets.NewCatalog(), WithOutput(out.open))
	assert.Error(t, e.Resume())
	assert.False(t, e.Resumed())

	out.err = nil
	require.NoError(t, e.Resume())
	assert.True(t, e.Resumed())
	assert.NoError(t, e.Resume())
}

func TestTrack_OneShot_Finishes(t *testing.T) {
	e, out := newTestEngine(t)
	s, err := e.LoadSound(context.Background(), game.SoundJump, false)
	require.NoError(t, err)

	s.Play()
	assert.True(t, s.Playing())
	assert.Greater(t, out.peak(s.(*Track).Len()+1024), 0.05)
	assert.False(t, s.Playing())
}

func TestTrack_Loop_Keeps_Playing(t *testing.T) {
	e, out := newTestEngine(t)
	s, err := e.LoadSound(context.Background(), game.SoundJump, true)
	require.NoError(t, err)
	s.Play()
	out.peak(3 * s.(*Track).Len())
	assert.True(t, s.Playing())
	s.Stop()
	assert.False(t, s.Playing())
}

func TestTrack_Volume_Zero_Is_Silent(t *testing.T) {
	e, out := newTestEngine(t)
	s, err := e.LoadSound(context.Background(), game.SoundEnemyAttack, false)
	require.NoError(t, err)
	s.SetVolume(0)
	s.Play()
	assert.Zero(t, out.peak(2048))
}

func TestTrack_Pause_Then_Play_Resumes(t *testing.T) {
	e, out := newTestEngine(t)
	s, err := e.LoadSound(context.Background(), game.SoundMenuMusic, true)
	require.NoError(t, err)
	tr := s.(*Track)

	s.Play()
	ctrl := tr.ctrl
	s.Pause()
	assert.False(t, s.Playing())
	assert.Zero(t, out.peak(1024), "paused track is muted")

	s.Play()
	assert.Same(t, ctrl, tr.ctrl, "play after pause continues the same stream")
	assert.True(t, s.Playing())
}
