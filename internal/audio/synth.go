package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveNoise
)

// tone sweeps from freq to freq+sweep over its length with an exponential
// decay envelope.
type tone struct {
	freq, sweep float64
	decay       float64
	gain        float64
	wave        wave
	length      int
	pos         int
	phase       float64
	seed        uint32
}

func newTone(freq, sweep float64, d time.Duration, w wave, decay, gain float64) *tone {
	return &tone{freq: freq, sweep: sweep, length: sampleRate.N(d), wave: w, decay: decay, gain: gain, seed: 22222}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		p := float64(g.pos) / float64(g.length)
		t := float64(g.pos) / float64(sampleRate)

		var v float64
		switch g.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * g.phase)
		case waveSquare:
			v = 1
			if g.phase >= 0.5 {
				v = -1
			}
		case waveNoise:
			g.seed = g.seed*1664525 + 1013904223
			v = float64(g.seed)/float64(math.MaxUint32)*2 - 1
		}
		v *= g.gain * math.Exp(-t*g.decay)

		samples[i][0] = v
		samples[i][1] = v
		g.phase += (g.freq + g.sweep*p) / float64(sampleRate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// arpeggio is a looping minor-key pad for the music stand-ins.
func arpeggio(root float64, step time.Duration) beep.Streamer {
	ratios := []float64{1, 1.2, 1.5, 1.2, 0.75, 1, 1.2, 0.9}
	parts := make([]beep.Streamer, len(ratios))
	for i, r := range ratios {
		parts[i] = newTone(root*r, 0, step, waveSine, 1.5, 0.2)
	}
	return beep.Seq(parts...)
}

// synthesize builds a stand-in for a sound with no file.
func synthesize(name string) *beep.Buffer {
	var s beep.Streamer
	switch name {
	case game.SoundMenuMusic:
		s = arpeggio(220, 500*time.Millisecond)
	case game.SoundGameMusic:
		s = arpeggio(147, 300*time.Millisecond)
	case game.SoundJump:
		s = newTone(220, 440, 180*time.Millisecond, waveSine, 8, 0.5)
	case game.SoundSkeletonSwing:
		s = newTone(0, 0, 220*time.Millisecond, waveNoise, 12, 0.35)
	case game.SoundEnemyAttack:
		s = newTone(110, -60, 200*time.Millisecond, waveSquare, 14, 0.3)
	case game.SoundPlayerAttack:
		d := 150 * time.Millisecond
		s = beep.Take(sampleRate.N(d), beep.Mix(
			newTone(0, 0, d, waveNoise, 18, 0.3),
			newTone(180, -80, d, waveSine, 10, 0.4),
		))
	default:
		s = newTone(1000, 0, 40*time.Millisecond, waveSine, 60, 0.4)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}
