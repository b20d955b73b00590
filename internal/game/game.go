package game

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"

	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

// maxFrameDT caps one update so a stalled frame cannot tunnel entities.
const maxFrameDT = 0.1

// GameState is the top-level mode. Exactly one is active.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

func WithTuning(t tuning.Tuning) Option { return func(g *Game) { g.cfg = t } }

func WithLogger(l *slog.Logger) Option { return func(g *Game) { g.log = l } }

// WithPresenter replaces the built-in HUD model.
func WithPresenter(p Presenter) Option { return func(g *Game) { g.presenter = p } }

func WithAudio(a AudioSystem) Option { return func(g *Game) { g.audio = a } }

// WithModelSource sets where models load from. Without one every entity
// keeps its placeholder body.
func WithModelSource(src ModelSource) Option { return func(g *Game) { g.source = src } }

func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) } // #nosec G404 -- gameplay randomness
}

func WithPointer(p PointerController) Option { return func(g *Game) { g.pointer = p } }

func WithSimLog(l *SimLog) Option { return func(g *Game) { g.simlog = l } }

// Game owns the session: state machine, entities, effects, audio and the
// presenter. Everything runs on the caller's update goroutine.
type Game struct {
	cfg       tuning.Tuning
	log       *slog.Logger
	rng       *rand.Rand
	state     GameState
	quit      bool
	tick      int
	clock     float64
	presenter Presenter
	pointer   PointerController
	source    ModelSource

	audio  AudioSystem
	sounds map[string]*soundSlot

	loader    *Loader
	registry  *ResourceRegistry
	scheduler *Scheduler
	input     *Input
	camera    *Camera
	env       *Environment
	player    *Player
	enemies   []*Enemy
	effects   []Effect
	drift     *MenuDrift
	settings  Settings

	feed      *EventFeed
	simlog    *SimLog
	prevKeys  map[string]bool
	objective string
}

// New builds a session in the Menu state and starts every asset load.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:      tuning.MustDefault(),
		log:      slog.Default(),
		rng:      rand.New(rand.NewSource(1)), // #nosec G404 -- gameplay randomness
		feed:     NewEventFeed(),
		prevKeys: make(map[string]bool),
		sounds:   make(map[string]*soundSlot),
	}
	for _, o := range opts {
		o(g)
	}
	if g.presenter == nil {
		g.presenter = NewHUD()
	}
	if g.audio == nil {
		g.audio = &silentAudio{}
	}
	if g.simlog == nil {
		g.simlog = NewSimLog(false)
	}

	g.loader = NewLoader(g.log)
	g.registry = NewResourceRegistry(g.loader, g.source)
	g.scheduler = NewScheduler()
	g.input = NewInput(g.pointer)
	g.input.OnFirstInteraction(g.resumeAudio)
	g.camera = NewCamera(g.cfg.Camera, g.cfg.Player.Height)
	g.env = NewEnvironment(g.cfg.World, g.rng)
	g.env.Bind(g.registry.Model(ModelTree), g.registry.Model(ModelGrass))
	g.player = NewPlayer(g.cfg.Player, g.registry.Model(ModelKnight))
	g.player.Reset(g.cfg.StartingItems)
	g.drift = NewMenuDrift(g.rng)
	g.effects = []Effect{g.drift}

	g.settings = DefaultSettings()
	g.settings.Volume = g.cfg.Audio.MenuMusicVolume
	g.loadSounds()

	g.presenter.SetControlsHint(ControlsHint)
	g.camera.Snap(g.player.Pos)
	g.enterMenu()
	return g
}

type soundSpec struct {
	name   string
	volume float64
	loop   bool
}

func (g *Game) soundSpecs() []soundSpec {
	a := g.cfg.Audio
	return []soundSpec{
		{SoundMenuMusic, a.MenuMusicVolume, true},
		{SoundGameMusic, a.GameMusicVolume, true},
		{SoundJump, a.JumpVolume, false},
		{SoundEnemyAttack, a.EnemyAttackVolume, false},
		{SoundSkeletonSwing, a.SkeletonSwingVolume, false},
		{SoundPlayerAttack, a.PlayerAttackVolume, false},
		{SoundUIClick, a.UIClickVolume, false},
	}
}

func (g *Game) loadSounds() {
	audio := g.audio
	for _, spec := range g.soundSpecs() {
		f := Request[Sound](g.loader, spec.name, func(ctx context.Context, name string) (Sound, error) {
			return audio.LoadSound(ctx, name, spec.loop)
		})
		g.sounds[spec.name] = &soundSlot{future: f, volume: spec.volume}
		f.OnReady(func(s Sound) {
			s.SetVolume(g.readyVolume(spec))
			switch {
			case spec.name == SoundMenuMusic && g.state == StateMenu:
				g.playMusic(SoundMenuMusic)
			case spec.name == SoundGameMusic && g.state == StatePlaying:
				g.playMusic(SoundGameMusic)
			}
		})
	}
}

// readyVolume is the level a sound starts at once loaded. Music follows the
// volume setting, which may have moved while the track was loading.
func (g *Game) readyVolume(spec soundSpec) float64 {
	if spec.name == SoundMenuMusic || spec.name == SoundGameMusic {
		return g.settings.Volume
	}
	return spec.volume
}

// resumeAudio unlocks the output device. It runs once on the first user
// interaction and again before UI clicks.
func (g *Game) resumeAudio() {
	if g.audio.Resumed() {
		return
	}
	if err := g.audio.Resume(); err != nil {
		g.log.Warn("audio resume failed", "error", err)
		return
	}
	if g.state == StateMenu {
		g.playMusic(SoundMenuMusic)
	}
}

// playSound restarts a one-shot effect. Nothing plays before audio resumes.
func (g *Game) playSound(name string) {
	if !g.audio.Resumed() {
		return
	}
	s, ok := g.sounds[name].sound()
	if !ok {
		return
	}
	if s.Playing() {
		s.Stop()
	}
	s.Play()
}

func (g *Game) playMusic(name string) {
	if !g.audio.Resumed() {
		return
	}
	if s, ok := g.sounds[name].sound(); ok && !s.Playing() {
		s.Play()
	}
}

func (g *Game) stopMusic(name string) {
	if s, ok := g.sounds[name].sound(); ok {
		s.Stop()
	}
}

func (g *Game) pauseMusic(name string) {
	if s, ok := g.sounds[name].sound(); ok {
		s.Pause()
	}
}

// Sound returns a loaded sound handle.
func (g *Game) Sound(name string) (Sound, bool) { return g.sounds[name].sound() }

func (g *Game) setState(s GameState) {
	if g.state == s {
		return
	}
	old := g.state
	g.state = s
	g.log.Debug("state change", "from", old, "to", s)
	g.Emit(Event{Kind: EventStateChanged, Actor: "--", Detail: fmt.Sprintf("%s -> %s", old, s)})
}

func (g *Game) enterMenu() {
	g.setState(StateMenu)
	g.presenter.ShowMainMenu()
	g.presenter.HideGameUI()
	g.player.Visible = false
	for _, e := range g.enemies {
		e.Visible = false
	}
	g.scheduler.Reset()
	g.drift.Activate()
	g.stopMusic(SoundGameMusic)
	g.playMusic(SoundMenuMusic)
	g.setObjective("")
}

// StartGame leaves the menu for a fresh session.
func (g *Game) StartGame() bool {
	if g.state != StateMenu {
		return false
	}
	g.presenter.HideMainMenu()
	g.presenter.HideSettingsPanel()
	g.presenter.ShowGameUI()
	g.drift.Deactivate()
	g.resetSession()
	g.setState(StatePlaying)
	g.stopMusic(SoundMenuMusic)
	g.playMusic(SoundGameMusic)
	g.input.LockPointer()
	g.updateObjective()
	return true
}

// Pause is valid only while Playing.
func (g *Game) Pause() bool {
	if g.state != StatePlaying {
		return false
	}
	g.presenter.ShowPauseMenu()
	g.presenter.HideSettingsPanel()
	g.input.UnlockPointer()
	g.pauseMusic(SoundGameMusic)
	g.setState(StatePaused)
	return true
}

// Resume is valid only while Paused.
func (g *Game) Resume() bool {
	if g.state != StatePaused {
		return false
	}
	g.presenter.HidePauseMenu()
	g.presenter.HideSettingsPanel()
	g.input.LockPointer()
	g.setState(StatePlaying)
	g.playMusic(SoundGameMusic)
	return true
}

// GameOver ends a Playing session. Calling it again is a no-op.
func (g *Game) GameOver() bool {
	if g.state != StatePlaying {
		return false
	}
	g.presenter.ShowGameOverScreen()
	g.presenter.HideGameUI()
	g.stopMusic(SoundMenuMusic)
	g.stopMusic(SoundGameMusic)
	g.drift.Deactivate()
	g.input.UnlockPointer()
	g.setState(StateGameOver)
	return true
}

// Restart begins a new wave from GameOver or mid-game.
func (g *Game) Restart() bool {
	if g.state != StateGameOver && g.state != StatePlaying {
		return false
	}
	g.presenter.HideGameOverScreen()
	g.presenter.ShowGameUI()
	g.resetSession()
	g.setState(StatePlaying)
	g.stopMusic(SoundMenuMusic)
	g.playMusic(SoundGameMusic)
	g.updateObjective()
	return true
}

// ExitToMenu returns to the main menu from Paused or GameOver.
func (g *Game) ExitToMenu() bool {
	if g.state != StatePaused && g.state != StateGameOver {
		return false
	}
	g.presenter.HidePauseMenu()
	g.presenter.HideSettingsPanel()
	g.presenter.HideGameOverScreen()
	g.input.UnlockPointer()
	g.enterMenu()
	return true
}

// resetSession puts the player back at the start, clears transient state
// and spawns a new wave.
func (g *Game) resetSession() {
	g.scheduler.Reset()
	g.input.Reset()
	g.player.Reset(g.cfg.StartingItems)
	g.player.ResetControls(g.camera)
	g.player.Visible = true
	g.effects = []Effect{g.drift}
	g.enemies = nil
	g.SpawnWave()
	g.syncHUD()
	items := g.player.Inventory().Items()
	g.presenter.UpdateInventoryDisplay(items)
	g.presenter.UpdateHotbar(items[:min(HotbarSlots, len(items))])
}

// SpawnWave places the configured number of skeletons evenly on a circle,
// each announced with a smoke burst.
func (g *Game) SpawnWave() {
	w := g.cfg.Wave
	center := Vec3{w.Center[0], w.Center[1], w.Center[2]}
	for i := 0; i < w.Count; i++ {
		a := float64(i) * 2 * math.Pi / float64(w.Count)
		g.SpawnEnemy(center.Add(Vec3{math.Cos(a) * w.Radius, 0, math.Sin(a) * w.Radius}))
	}
	g.Emit(Event{Kind: EventWaveSpawned, Actor: "--", Pos: center, Amount: float64(w.Count)})
}

// SpawnEnemy adds one skeleton at pos facing the origin.
func (g *Game) SpawnEnemy(pos Vec3) *Enemy {
	label := fmt.Sprintf("S%d", len(g.enemies))
	e := NewEnemy(g.cfg.Enemy, label, pos, g.registry.Model(ModelSkeleton), g.rng)
	e.Yaw = YawTo(pos, Vec3{})
	g.enemies = append(g.enemies, e)
	g.SpawnSmoke(pos)
	return e
}

// Update advances one frame.
func (g *Game) Update(dt float64) {
	dt = clampf(dt, 0, maxFrameDT)
	g.tick++
	g.clock += dt
	g.loader.Poll()
	g.env.Update()
	g.handleKeys()

	switch g.state {
	case StateMenu:
		g.camera.Orbit(g.clock)
		g.updateEffects(dt)
	case StatePlaying:
		g.scheduler.Advance(dt)
		g.player.Update(dt, g.input.Snapshot(), g.camera, g.settings.Sensitivity, g)
		for _, e := range g.enemies {
			e.Update(dt, g)
		}
		g.updateEffects(dt)
		if g.state == StatePlaying {
			g.syncHUD()
		}
	case StateGameOver:
		g.scheduler.Advance(dt)
		g.player.Update(dt, InputState{MouseButton: MouseNone}, g.camera, g.settings.Sensitivity, g)
		g.updateEffects(dt)
	case StatePaused:
	}
	g.input.ResetMouseDelta()
}

func (g *Game) handleKeys() {
	in := g.input.Snapshot()
	pressed := func(name string) bool { return in.Keys[name] && !g.prevKeys[name] }

	switch {
	case pressed("escape") && g.state == StatePlaying:
		g.Pause()
	case pressed("escape") && g.state == StatePaused:
		g.Resume()
	}
	if g.state == StatePlaying {
		if pressed("i") {
			if g.presenter.ToggleInventoryPanel() {
				g.presenter.UpdateInventoryDisplay(g.player.Inventory().Items())
				g.input.UnlockPointer()
			}
		}
		for slot := 0; slot < HotbarSlots; slot++ {
			if pressed(fmt.Sprint(slot + 1)) {
				g.UseItem(slot)
			}
		}
	}
	g.prevKeys = in.Keys
}

// UseItem uses the hotbar slot and refreshes the inventory views.
func (g *Game) UseItem(slot int) bool {
	if g.state != StatePlaying || !g.player.UseItem(slot, g) {
		return false
	}
	items := g.player.Inventory().Items()
	g.presenter.UpdateInventoryDisplay(items)
	g.presenter.UpdateHotbar(items[:min(HotbarSlots, len(items))])
	return true
}

func (g *Game) updateEffects(dt float64) {
	for _, e := range g.effects {
		e.Update(dt)
	}
	g.effects = slices.DeleteFunc(g.effects, Effect.Finished)
}

func (g *Game) syncHUD() {
	g.presenter.UpdateHealth(g.player.Health(), g.player.MaxHealth())
	g.presenter.UpdateMana(g.player.Mana(), g.player.MaxMana())
}

// Objective is the text the objective line should show.
func (g *Game) Objective() string { return g.objective }

func (g *Game) updateObjective() {
	if g.state != StatePlaying {
		g.setObjective("")
		return
	}
	live := g.LiveEnemies()
	switch {
	case live > 0:
		g.setObjective(fmt.Sprintf("Eliminate the skeletons: %d remaining", live))
	case len(g.enemies) > 0:
		g.setObjective("All skeletons eliminated! Objective complete!")
	default:
		g.setObjective("")
	}
}

func (g *Game) setObjective(text string) {
	g.objective = text
	g.presenter.UpdateObjective(text)
}

// LiveEnemies counts skeletons still fighting.
func (g *Game) LiveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// HandleUIAction applies a menu button or slider change.
func (g *Game) HandleUIAction(a UIAction) {
	switch a.Kind {
	case ActionSetVolume:
		g.settings.Volume = clampf(a.Value, 0, 1)
		for _, name := range []string{SoundMenuMusic, SoundGameMusic} {
			if s, ok := g.sounds[name].sound(); ok {
				s.SetVolume(g.settings.Volume)
			}
		}
		return
	case ActionSetSensitivity:
		if a.Value > 0 {
			g.settings.Sensitivity = a.Value
		}
		return
	}

	g.resumeAudio()
	g.playSound(SoundUIClick)
	switch a.Kind {
	case ActionStart:
		g.StartGame()
	case ActionSettings:
		g.presenter.ShowSettingsPanel()
	case ActionExit:
		g.quit = true
	case ActionResume:
		g.Resume()
	case ActionPauseSettings:
		if g.state == StatePaused {
			g.presenter.HidePauseMenu()
			g.presenter.ShowSettingsPanel()
		}
	case ActionExitToMenu:
		g.ExitToMenu()
	case ActionRestart:
		g.Restart()
	case ActionSettingsBack:
		g.presenter.HideSettingsPanel()
		if g.state == StatePaused {
			g.presenter.ShowPauseMenu()
		}
	case ActionSetShadowQuality:
		g.settings.Shadows = a.Shadows
	default:
		g.log.Warn("unknown ui action", "action", a.Kind)
	}
}

// Emit records ev and applies its side effects: sound, HUD and state.
func (g *Game) Emit(ev Event) {
	g.feed.Add(g.tick, ev)
	g.simlog.Add(g.tick, ev.Actor, ev.Kind.Category(), ev.Kind.String(), ev.Detail, ev.Amount)
	g.log.Debug("event", "kind", ev.Kind, "actor", ev.Actor, "amount", ev.Amount)

	switch ev.Kind {
	case EventPlayerAttack:
		g.playSound(SoundPlayerAttack)
		g.presenter.UpdateMana(g.player.Mana(), g.player.MaxMana())
	case EventPlayerJump:
		g.playSound(SoundJump)
	case EventEnemySwing:
		g.playSound(SoundSkeletonSwing)
	case EventPlayerHit:
		g.playSound(SoundEnemyAttack)
		g.presenter.UpdateHealth(g.player.Health(), g.player.MaxHealth())
	case EventItemUsed:
		g.presenter.UpdateHealth(g.player.Health(), g.player.MaxHealth())
	case EventEnemyDefeated, EventEnemyRemoved:
		g.updateObjective()
	case EventPlayerDied:
		g.GameOver()
	case EventAssetFailed:
		g.log.Warn("using placeholder", "actor", ev.Actor, "model", ev.Detail)
	}
}

func (g *Game) After(delay float64, fn func()) { g.scheduler.After(delay, fn) }

func (g *Game) SpawnEffect(e Effect) { g.effects = append(g.effects, e) }

func (g *Game) SpawnSmoke(at Vec3) Effect {
	b := NewSmokeBurst(g.rng, at, g.registry.SmokeTexture())
	g.SpawnEffect(b)
	return b
}

func (g *Game) SpawnSparkle(at Vec3) { g.SpawnEffect(NewSparkleBurst(g.rng, at)) }

// WaitForAssets blocks until every pending load settles and applies them.
func (g *Game) WaitForAssets(ctx context.Context) error {
	if err := g.loader.Drain(ctx); err != nil {
		return fmt.Errorf("wait for assets: %w", err)
	}
	g.env.Update()
	return nil
}

// Close stops outstanding loads.
func (g *Game) Close() { g.loader.Close() }

func (g *Game) State() GameState            { return g.state }
func (g *Game) Quit() bool                  { return g.quit }
func (g *Game) Tick() int                   { return g.tick }
func (g *Game) Clock() float64              { return g.clock }
func (g *Game) Tuning() tuning.Tuning       { return g.cfg }
func (g *Game) Presenter() Presenter        { return g.presenter }
func (g *Game) Input() *Input               { return g.input }
func (g *Game) Camera() *Camera             { return g.camera }
func (g *Game) Env() *Environment           { return g.env }
func (g *Game) Player() *Player             { return g.player }
func (g *Game) Enemies() []*Enemy           { return g.enemies }
func (g *Game) Effects() []Effect           { return g.effects }
func (g *Game) Settings() Settings          { return g.settings }
func (g *Game) Feed() *EventFeed            { return g.feed }
func (g *Game) SimLog() *SimLog             { return g.simlog }
func (g *Game) Registry() *ResourceRegistry { return g.registry }
func (g *Game) PendingCallbacks() int       { return g.scheduler.Len() }
func (g *Game) AudioResumed() bool          { return g.audio.Resumed() }
func (g *Game) Pending() int                { return g.loader.Pending() }
func (g *Game) Drift() *MenuDrift           { return g.drift }

// HUD returns the built-in HUD model, or nil when a custom presenter is set.
func (g *Game) HUD() *HUD {
	h, _ := g.presenter.(*HUD)
	return h
}

var _ Arena = (*Game)(nil)
