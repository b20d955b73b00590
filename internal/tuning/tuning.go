// Package tuning loads gameplay constants from YAML and validates them
// against an embedded JSON Schema.
package tuning

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

//go:embed tuning.schema.json
var schemaJSON string

// ErrInvalid wraps every schema violation.
var ErrInvalid = errors.New("invalid tuning")

type Tuning struct {
	Player        Player `yaml:"player"`
	Enemy         Enemy  `yaml:"enemy"`
	Camera        Camera `yaml:"camera"`
	World         World  `yaml:"world"`
	Wave          Wave   `yaml:"wave"`
	Audio         Audio  `yaml:"audio"`
	StartingItems []Item `yaml:"starting_items"`
}

type Player struct {
	MaxHealth              float64    `yaml:"max_health"`
	MaxMana                float64    `yaml:"max_mana"`
	AttackManaCost         float64    `yaml:"attack_mana_cost"`
	AttackDamage           float64    `yaml:"attack_damage"`
	AttackRange            float64    `yaml:"attack_range"`
	AttackAngleDeg         float64    `yaml:"attack_angle_deg"`
	AttackCooldown         float64    `yaml:"attack_cooldown"`
	DefenseDamageReduction float64    `yaml:"defense_damage_reduction"`
	ManaRegenRate          float64    `yaml:"mana_regen_rate"`
	ManaRegenCooldown      float64    `yaml:"mana_regen_cooldown"`
	Radius                 float64    `yaml:"radius"`
	Height                 float64    `yaml:"height"`
	MoveSpeed              float64    `yaml:"move_speed"`
	JumpVelocity           float64    `yaml:"jump_velocity"`
	Gravity                float64    `yaml:"gravity"`
	RotationSpeed          float64    `yaml:"rotation_speed"`
	FallbackAttackDuration float64    `yaml:"fallback_attack_duration"`
	Start                  [3]float64 `yaml:"start,flow"`
	InventorySlots         int        `yaml:"inventory_slots"`
	PotionHeal             float64    `yaml:"potion_heal"`
}

type Enemy struct {
	MaxHealth              float64 `yaml:"max_health"`
	Speed                  float64 `yaml:"speed"`
	AttackRange            float64 `yaml:"attack_range"`
	SightRange             float64 `yaml:"sight_range"`
	AttackDamage           float64 `yaml:"attack_damage"`
	AttackCooldown         float64 `yaml:"attack_cooldown"`
	WindUp                 float64 `yaml:"wind_up"`
	DeliveryRangeFactor    float64 `yaml:"delivery_range_factor"`
	DeliveryAngleDeg       float64 `yaml:"delivery_angle_deg"`
	Radius                 float64 `yaml:"radius"`
	DamageFlash            float64 `yaml:"damage_flash"`
	FallbackAttackDuration float64 `yaml:"fallback_attack_duration"`
}

type Camera struct {
	Distance          float64 `yaml:"distance"`
	Height            float64 `yaml:"height"`
	Lag               float64 `yaml:"lag"`
	BaseRotationSpeed float64 `yaml:"base_rotation_speed"`
	MinPitchDeg       float64 `yaml:"min_pitch_deg"`
	MaxPitchDeg       float64 `yaml:"max_pitch_deg"`
	InitialPitchDeg   float64 `yaml:"initial_pitch_deg"`
}

type World struct {
	HalfExtent         float64 `yaml:"half_extent"`
	TreeCount          int     `yaml:"tree_count"`
	TreeSpread         float64 `yaml:"tree_spread"`
	TreeClearRadius    float64 `yaml:"tree_clear_radius"`
	TreeScaleMin       float64 `yaml:"tree_scale_min"`
	TreeScaleMax       float64 `yaml:"tree_scale_max"`
	TreeScaleBase      float64 `yaml:"tree_scale_base"`
	TreeColliderRadius float64 `yaml:"tree_collider_radius"`
	GrassPatches       int     `yaml:"grass_patches"`
	GrassSpread        float64 `yaml:"grass_spread"`
	GrassBlades        int     `yaml:"grass_blades"`
	GrassPatchRadius   float64 `yaml:"grass_patch_radius"`
	GrassScaleMin      float64 `yaml:"grass_scale_min"`
	GrassScaleMax      float64 `yaml:"grass_scale_max"`
}

type Wave struct {
	Count  int        `yaml:"count"`
	Center [3]float64 `yaml:"center,flow"`
	Radius float64    `yaml:"radius"`
}

type Audio struct {
	MenuMusicVolume     float64 `yaml:"menu_music_volume"`
	GameMusicVolume     float64 `yaml:"game_music_volume"`
	JumpVolume          float64 `yaml:"jump_volume"`
	EnemyAttackVolume   float64 `yaml:"enemy_attack_volume"`
	SkeletonSwingVolume float64 `yaml:"skeleton_swing_volume"`
	PlayerAttackVolume  float64 `yaml:"player_attack_volume"`
	UIClickVolume       float64 `yaml:"ui_click_volume"`
}

// Item seeds one inventory stack at session start.
type Item struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
	MaxStack int    `yaml:"max_stack"`
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("tuning.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Default returns the embedded tuning.
func Default() (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(defaultYAML, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// MustDefault is Default for callers that embed no user config. The embedded
// file is covered by tests, so a failure here is a build defect.
func MustDefault() Tuning {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Load overlays the YAML file at path onto the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Tuning, error) {
	t, err := Default()
	if err != nil {
		return t, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	return Overlay(t, raw)
}

// Overlay decodes raw over base and validates the result.
func Overlay(base Tuning, raw []byte) (Tuning, error) {
	t := base
	if len(base.StartingItems) > 0 {
		t.StartingItems = append([]Item(nil), base.StartingItems...)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Validate checks the effective tuning against the embedded schema.
func (t Tuning) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("tuning schema: %w", err)
	}
	doc, err := toJSONValue(t)
	if err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("tuning.yaml: %w: %v", ErrInvalid, err)
	}
	if t.Camera.MinPitchDeg > t.Camera.MaxPitchDeg {
		return fmt.Errorf("tuning.yaml: %w: camera min_pitch_deg above max_pitch_deg", ErrInvalid)
	}
	return nil
}

// toJSONValue re-encodes t the way encoding/json would decode it, which is
// the value shape the schema validator expects.
func toJSONValue(t Tuning) (any, error) {
	raw, err := yaml.Marshal(t)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	b, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
