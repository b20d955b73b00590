package game

import "context"

//go:generate mockgen -destination=mock/mock_audio.go -package=gamemock github.com/Garsondee/Skeleton-Glade/internal/game Sound,AudioSystem

// Sound names the game asks the audio system for.
const (
	SoundMenuMusic     = "menu_music"
	SoundGameMusic     = "game_music"
	SoundJump          = "jump"
	SoundEnemyAttack   = "enemy_attack"
	SoundSkeletonSwing = "skeleton_swing"
	SoundPlayerAttack  = "player_attack"
	SoundUIClick       = "ui_click"
)

// Sound is a playable handle.
type Sound interface {
	Play()
	Stop()
	Pause()
	SetVolume(v float64)
	Playing() bool
}

// AudioSystem loads sounds and owns the output device. Output stays
// suspended until Resume, which the game calls on the first interaction.
type AudioSystem interface {
	LoadSound(ctx context.Context, name string, loop bool) (Sound, error)
	Resume() error
	Resumed() bool
}

// silentAudio is the AudioSystem used when none is configured. Its sounds
// track play state so headless sessions can still assert on music.
type silentAudio struct{ resumed bool }

func (a *silentAudio) LoadSound(_ context.Context, name string, _ bool) (Sound, error) {
	return &silentSound{name: name}, nil
}

func (a *silentAudio) Resume() error {
	a.resumed = true
	return nil
}

func (a *silentAudio) Resumed() bool { return a.resumed }

type silentSound struct {
	name    string
	playing bool
	volume  float64
}

func (s *silentSound) Play()               { s.playing = true }
func (s *silentSound) Stop()               { s.playing = false }
func (s *silentSound) Pause()              { s.playing = false }
func (s *silentSound) SetVolume(v float64) { s.volume = v }
func (s *silentSound) Playing() bool       { return s.playing }

// soundSlot is a sound whose handle may still be loading.
type soundSlot struct {
	future *Future[Sound]
	volume float64
}

func (s *soundSlot) sound() (Sound, bool) {
	if s == nil || s.future == nil {
		return nil, false
	}
	return s.future.Value()
}
