package game

import (
	"math"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
)

//go:generate mockgen -destination=mock/mock_animator.go -package=gamemock github.com/Garsondee/Skeleton-Glade/internal/game Animator

// PlayOptions controls how a clip enters the mix.
type PlayOptions struct {
	Loop    bool
	Clamp   bool    // hold the last frame when a once-clip ends
	FadeIn  float64 // seconds to reach full weight
	FadeOut float64 // seconds for the previous clip to leave
}

// Animator is the playback capability an animation backend provides.
type Animator interface {
	Has(clip string) bool
	Play(clip string, opts PlayOptions) bool
	Stop(clip string)
	// Update advances playback and returns the once-clips that ended.
	Update(dt float64) []string
}

// AnimState is the entity-level animation intent.
type AnimState int

const (
	AnimNone AnimState = iota
	AnimIdle
	AnimWalk
	AnimJump
	AnimDefend
	AnimAttack
	AnimDeath
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimDefend:
		return "defend"
	case AnimAttack:
		return "attack"
	case AnimDeath:
		return "death"
	default:
		return "none"
	}
}

// AnimInputs is what the priority selection looks at.
type AnimInputs struct {
	Attacking bool
	Defending bool
	Airborne  bool
	Moving    bool
}

// SelectAnimState applies the fixed priority
// attack > defend > airborne jump > walk > idle.
func SelectAnimState(in AnimInputs) AnimState {
	switch {
	case in.Attacking:
		return AnimAttack
	case in.Defending:
		return AnimDefend
	case in.Airborne:
		return AnimJump
	case in.Moving:
		return AnimWalk
	default:
		return AnimIdle
	}
}

// ClipTable lists candidate clip names per state, best first.
type ClipTable map[AnimState][]string

var playerClips = ClipTable{
	AnimIdle:   {"Idle", "Stand"},
	AnimWalk:   {"Walking_A", "Walking_B", "Walking_C", "Walk", "walk", "Running_A", "Running_B", "Run", "run"},
	AnimJump:   {"Jump_Idle", "Jump"},
	AnimAttack: {"1H_Melee_Attack_Slice_Diagonal"},
	AnimDefend: {"Defend", "Block"},
	AnimDeath:  {"Death_A"},
}

var skeletonClips = ClipTable{
	AnimIdle:   {"Idle", "Stand"},
	AnimWalk:   {"Walking_A", "Walking_B", "Walking_C", "Walk", "walk"},
	AnimAttack: {"1H_Melee_Attack_Chop"},
	AnimDeath: {
		"Death_A", "Death_B", "Death_C_Skeleton", "Death_C_Skeletons",
		"Death_A_Pose", "Death_B_Pose", "Death_C_Pose",
	},
}

var blendFor = map[AnimState]PlayOptions{
	AnimIdle:   {Loop: true, FadeIn: 0.3, FadeOut: 0.3},
	AnimWalk:   {Loop: true, FadeIn: 0.3, FadeOut: 0.3},
	AnimJump:   {Clamp: true, FadeIn: 0.2, FadeOut: 0.2},
	AnimDefend: {Loop: true, FadeIn: 0.2, FadeOut: 0.2},
	AnimAttack: {Clamp: true, FadeIn: 0.1, FadeOut: 0.1},
	AnimDeath:  {Clamp: true, FadeIn: 0.2, FadeOut: 0.2},
}

// AnimationFSM turns AnimState changes into backend Play calls. It plays
// only on a state change and resolves clip names through the table's
// fallback lists once, at bind time.
type AnimationFSM struct {
	animator Animator
	clips    map[AnimState]string
	byClip   map[string]AnimState
	current  AnimState
}

// NewAnimationFSM binds a backend. firstClip is used for idle when no idle
// name matches; pass "" to skip that fallback.
func NewAnimationFSM(a Animator, table ClipTable, firstClip string) *AnimationFSM {
	f := &AnimationFSM{
		animator: a,
		clips:    make(map[AnimState]string),
		byClip:   make(map[string]AnimState),
	}
	for state, names := range table {
		for _, n := range names {
			if a.Has(n) {
				f.clips[state] = n
				break
			}
		}
	}
	if _, ok := f.clips[AnimIdle]; !ok && firstClip != "" && a.Has(firstClip) {
		f.clips[AnimIdle] = firstClip
	}
	if _, ok := f.clips[AnimDefend]; !ok {
		if idle, ok := f.clips[AnimIdle]; ok {
			f.clips[AnimDefend] = idle
		}
	}
	for state, clip := range f.clips {
		if _, taken := f.byClip[clip]; !taken || state == AnimIdle {
			f.byClip[clip] = state
		}
	}
	return f
}

// Has reports whether the state resolved to a clip.
func (f *AnimationFSM) Has(s AnimState) bool {
	_, ok := f.clips[s]
	return ok
}

// Clip is the resolved clip name for s.
func (f *AnimationFSM) Clip(s AnimState) string { return f.clips[s] }

func (f *AnimationFSM) Current() AnimState { return f.current }

// Set switches to s. States without a clip keep the current clip playing.
func (f *AnimationFSM) Set(s AnimState) {
	if s == f.current {
		return
	}
	clip, ok := f.clips[s]
	if !ok {
		return
	}
	if f.animator.Play(clip, blendFor[s]) {
		f.current = s
	}
}

// Restart replays s from the start even if it is current.
func (f *AnimationFSM) Restart(s AnimState) {
	f.current = AnimNone
	f.Set(s)
}

// Update advances the backend and reports which states' once-clips ended.
func (f *AnimationFSM) Update(dt float64) []AnimState {
	done := f.animator.Update(dt)
	if len(done) == 0 {
		return nil
	}
	out := make([]AnimState, 0, len(done))
	for _, clip := range done {
		for state, c := range f.clips {
			if c == clip && (state == AnimAttack || state == AnimJump || state == AnimDeath) {
				out = append(out, state)
			}
		}
	}
	return out
}

type action struct {
	clip     assets.Clip
	time     float64
	weight   float64
	target   float64
	rate     float64
	loop     bool
	clamp    bool
	running  bool
	finished bool
}

// ClipMixer is a pure-Go Animator driven by clip durations. It keeps a
// weight per clip and cross-fades them linearly.
type ClipMixer struct {
	clips   map[string]assets.Clip
	actions map[string]*action
	current string
}

func NewClipMixer(model *assets.Model) *ClipMixer {
	m := &ClipMixer{
		clips:   make(map[string]assets.Clip),
		actions: make(map[string]*action),
	}
	if model != nil {
		for _, c := range model.Clips {
			m.clips[c.Name] = c
		}
	}
	return m
}

func (m *ClipMixer) Has(clip string) bool {
	_, ok := m.clips[clip]
	return ok
}

func (m *ClipMixer) Play(clip string, opts PlayOptions) bool {
	c, ok := m.clips[clip]
	if !ok {
		return false
	}
	for name, a := range m.actions {
		if name == clip {
			continue
		}
		fadeOut(a, opts.FadeOut)
	}
	a := m.actions[clip]
	if a == nil {
		a = &action{clip: c}
		m.actions[clip] = a
	}
	a.time = 0
	a.loop = opts.Loop
	a.clamp = opts.Clamp
	a.running = true
	a.finished = false
	a.target = 1
	if opts.FadeIn <= 0 || m.current == "" {
		a.weight = 1
		a.rate = 0
	} else {
		a.rate = 1 / opts.FadeIn
	}
	m.current = clip
	return true
}

func fadeOut(a *action, d float64) {
	a.target = 0
	if d <= 0 {
		a.weight = 0
		a.rate = 0
		return
	}
	a.rate = 1 / d
}

func (m *ClipMixer) Stop(clip string) {
	if a, ok := m.actions[clip]; ok {
		a.running = false
		a.weight = 0
		a.target = 0
	}
	if m.current == clip {
		m.current = ""
	}
}

func (m *ClipMixer) Update(dt float64) []string {
	var done []string
	for name, a := range m.actions {
		if a.rate > 0 {
			step := a.rate * dt
			if a.weight < a.target {
				a.weight = math.Min(a.target, a.weight+step)
			} else {
				a.weight = math.Max(a.target, a.weight-step)
			}
		}
		if !a.running {
			continue
		}
		a.time += dt
		if a.time < a.clip.Duration {
			continue
		}
		if a.loop {
			a.time = math.Mod(a.time, a.clip.Duration)
			continue
		}
		a.time = a.clip.Duration
		a.running = false
		if !a.clamp {
			a.weight, a.target = 0, 0
		}
		if !a.finished {
			a.finished = true
			done = append(done, name)
		}
	}
	return done
}

// Current is the clip most recently started.
func (m *ClipMixer) Current() string { return m.current }

// Weight is the blend weight of clip in [0,1].
func (m *ClipMixer) Weight(clip string) float64 {
	if a, ok := m.actions[clip]; ok {
		return a.weight
	}
	return 0
}

// Progress is the normalised playback position of clip.
func (m *ClipMixer) Progress(clip string) float64 {
	a, ok := m.actions[clip]
	if !ok || a.clip.Duration <= 0 {
		return 0
	}
	return a.time / a.clip.Duration
}
