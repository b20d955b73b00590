package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSession_Starting_States(t *testing.T) {
	for _, s := range []GameState{StateMenu, StatePlaying, StatePaused, StateGameOver} {
		ts := NewTestSession(WithState(s))
		assert.Equal(t, s, ts.State(), s.String())
	}
}

func TestTestSession_Placement(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{3, 0, 3}),
		WithEnemyAt(Vec3{0, 0, -10}), WithEnemyAt(Vec3{10, 0, 0}))
	require.Len(t, ts.Enemies(), 2)
	assert.Equal(t, "S1", ts.Enemy(1).Label)
	assert.Equal(t, Vec3{3, 0, 3}, ts.Player().Pos)
	assert.Equal(t, "Eliminate the skeletons: 2 remaining", ts.Game.Objective())
}

func TestTestSession_AimCamera_Steers_Forward(t *testing.T) {
	ts := NewTestSession(WithoutWave(), WithPlayerAt(Vec3{}))
	ts.AimCamera(Vec3{10, 0, 0})
	ts.Press("w")
	ts.RunFor(1)
	assert.Greater(t, ts.Player().Pos[0], 4.0)
	assert.InDelta(t, 0, ts.Player().Pos[2], 0.01)
}

func TestTestSession_Tap_Twice_Is_Two_Presses(t *testing.T) {
	ts := NewTestSession(WithState(StatePlaying))
	start := ts.CurrentTick()
	ts.Tap("escape")
	require.Equal(t, StatePaused, ts.State())
	ts.Tap("escape")
	assert.Equal(t, StatePlaying, ts.State())
	assert.Equal(t, start+4, ts.CurrentTick(), "each tap spans a press frame and a release frame")
}

func TestTestSession_RunUntil(t *testing.T) {
	ts := NewTestSession(WithStep(0.05))
	at := ts.RunUntil(func(s *TestSession) bool { return s.CurrentTick() >= 10 }, 5)
	assert.InDelta(t, 0.5, at, 1e-9)
	assert.Equal(t, -1.0, ts.RunUntil(func(*TestSession) bool { return false }, 0.2))
	assert.InDelta(t, 0.7, ts.Elapsed(), 1e-9)
}

func TestTestSession_Snapshot(t *testing.T) {
	ts := NewTestSession(WithSeed(4))
	ts.RunTicks(2)
	snap := ts.Snapshot()
	assert.Equal(t, 2, snap.Tick)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, "P", snap.Player.Label)
	require.Len(t, snap.Enemies, 5)
	assert.True(t, snap.Enemies[0].Alive)
}
