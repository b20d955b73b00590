package game

import (
	"fmt"
	"math"
	"strings"
)

// ShadowQuality selects the shadow-map resolution.
type ShadowQuality int

const (
	ShadowsDisabled ShadowQuality = iota
	ShadowsLow
	ShadowsMedium
	ShadowsHigh
)

var shadowNames = [...]string{"disabled", "low", "medium", "high"}

func (q ShadowQuality) String() string {
	if q < ShadowsDisabled || q > ShadowsHigh {
		return fmt.Sprintf("ShadowQuality(%d)", int(q))
	}
	return shadowNames[q]
}

// MapSize is the shadow-map edge in texels; 0 means shadows are off.
func (q ShadowQuality) MapSize() int {
	switch q {
	case ShadowsLow:
		return 1024
	case ShadowsMedium:
		return 2048
	case ShadowsHigh:
		return 4096
	default:
		return 0
	}
}

func ParseShadowQuality(s string) (ShadowQuality, error) {
	for i, n := range shadowNames {
		if strings.EqualFold(s, n) {
			return ShadowQuality(i), nil
		}
	}
	return ShadowsMedium, fmt.Errorf("unknown shadow quality %q", s)
}

// Settings are the session-only player preferences.
type Settings struct {
	Volume      float64 // master music volume in [0,1]
	Sensitivity float64 // mouse look multiplier
	Shadows     ShadowQuality
}

func DefaultSettings() Settings {
	return Settings{Volume: 1, Sensitivity: 1, Shadows: ShadowsMedium}
}

const (
	volumeStep      = 0.1
	sensitivityStep = 0.25
)

// SettingsControls are the adjustment buttons a settings panel shows above
// its Back button. Each button carries the already-stepped value.
func SettingsControls(s Settings) []MenuButton {
	return []MenuButton{
		{fmt.Sprintf("Volume - (%.0f%%)", s.Volume*100), SetVolume(s.Volume - volumeStep)},
		{fmt.Sprintf("Volume + (%.0f%%)", s.Volume*100), SetVolume(s.Volume + volumeStep)},
		{fmt.Sprintf("Sensitivity - (%.2f)", s.Sensitivity), SetSensitivity(math.Max(sensitivityStep, s.Sensitivity-sensitivityStep))},
		{fmt.Sprintf("Sensitivity + (%.2f)", s.Sensitivity), SetSensitivity(s.Sensitivity + sensitivityStep)},
		{"Shadows: " + s.Shadows.String(), SetShadowQuality((s.Shadows + 1) % (ShadowsHigh + 1))},
	}
}
