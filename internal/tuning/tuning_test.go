package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesGameConstants(t *testing.T) {
	tu, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 100.0, tu.Player.MaxHealth)
	assert.Equal(t, 50.0, tu.Player.MaxMana)
	assert.Equal(t, 5.0, tu.Player.AttackManaCost)
	assert.Equal(t, 72.0, tu.Player.AttackAngleDeg)
	assert.Equal(t, [3]float64{0, 0, 5}, tu.Player.Start)
	assert.Equal(t, 12, tu.Player.InventorySlots)
	assert.Equal(t, 0.5, tu.Enemy.WindUp)
	assert.Equal(t, 5, tu.Wave.Count)
	assert.Equal(t, [3]float64{0, 0, -15}, tu.Wave.Center)
	assert.Equal(t, 90, tu.World.TreeCount)
	assert.Equal(t, 0.25, tu.Audio.GameMusicVolume)
	require.Len(t, tu.StartingItems, 1)
	assert.Equal(t, "health_potion", tu.StartingItems[0].ID)
}

func TestOverlay_KeepsUnsetDefaults(t *testing.T) {
	base := MustDefault()
	tu, err := Overlay(base, []byte("enemy:\n  speed: 3\nwave:\n  count: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 3.0, tu.Enemy.Speed)
	assert.Equal(t, 2, tu.Wave.Count)
	assert.Equal(t, base.Enemy.MaxHealth, tu.Enemy.MaxHealth)
	assert.Equal(t, base.Player, tu.Player)
}

func TestOverlay_EmptyDocumentIsDefaults(t *testing.T) {
	base := MustDefault()
	tu, err := Overlay(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, tu)
}

func TestOverlay_RejectsSchemaViolations(t *testing.T) {
	base := MustDefault()
	cases := map[string]string{
		"negative health":      "player:\n  max_health: -1\n",
		"reduction too strong": "player:\n  defense_damage_reduction: 1.0\n",
		"volume above one":     "audio:\n  ui_click_volume: 1.5\n",
		"empty item id":        "starting_items:\n  - id: \"\"\n    name: X\n    quantity: 1\n    max_stack: 1\n",
		"inverted pitch":       "camera:\n  min_pitch_deg: 50\n  max_pitch_deg: 10\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Overlay(base, []byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, base, got)
		})
	}
}

func TestOverlay_RejectsUnknownKeys(t *testing.T) {
	_, err := Overlay(MustDefault(), []byte("player:\n  max_helth: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tuning.yaml")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  attack_damage: 40\n"), 0o600))

	tu, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, tu.Player.AttackDamage)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
