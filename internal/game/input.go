package game

import "strings"

//go:generate mockgen -destination=mock/mock_pointer.go -package=gamemock github.com/Garsondee/Skeleton-Glade/internal/game PointerController

// Mouse buttons as reported in InputState.MouseButton.
const (
	MouseNone      = -1
	MousePrimary   = 0
	MouseSecondary = 2
)

// PointerController is the device side of pointer capture.
type PointerController interface {
	LockPointer()
	UnlockPointer()
}

// InputState is the polled view the simulation reads each frame.
type InputState struct {
	Keys          map[string]bool
	MouseDX       float64
	MouseDY       float64
	MouseButton   int
	PointerLocked bool
}

// Key reports whether any of the named keys is held.
func (s InputState) Key(names ...string) bool {
	for _, n := range names {
		if s.Keys[n] {
			return true
		}
	}
	return false
}

// Input turns device events into held keys, a held mouse button and
// accumulated pointer motion. Frontends feed it; the game polls Snapshot.
type Input struct {
	keys        map[string]bool
	dx, dy      float64
	button      int
	locked      bool
	dragging    bool
	touchActive bool
	touchX      float64
	touchY      float64
	pointer     PointerController
	interacted  bool
	onFirst     []func()
}

func NewInput(pointer PointerController) *Input {
	return &Input{
		keys:    make(map[string]bool),
		button:  MouseNone,
		pointer: pointer,
	}
}

// OnFirstInteraction registers fn to run on the first key, mouse or touch
// event. Audio resume hangs off this.
func (in *Input) OnFirstInteraction(fn func()) {
	if in.interacted {
		fn()
		return
	}
	in.onFirst = append(in.onFirst, fn)
}

func (in *Input) touch() {
	if in.interacted {
		return
	}
	in.interacted = true
	for _, fn := range in.onFirst {
		fn()
	}
	in.onFirst = nil
}

func (in *Input) KeyDown(name string) {
	in.touch()
	name = strings.ToLower(name)
	in.keys[name] = true
	if name == "escape" && in.locked {
		in.UnlockPointer()
	}
}

func (in *Input) KeyUp(name string) {
	delete(in.keys, strings.ToLower(name))
}

// MouseDown holds button. The secondary button also captures the pointer.
func (in *Input) MouseDown(button int) {
	in.touch()
	in.button = button
	in.dragging = true
	if button == MouseSecondary && !in.locked {
		in.LockPointer()
	}
}

func (in *Input) MouseUp(button int) {
	if in.button == button {
		in.button = MouseNone
	}
	in.dragging = false
}

// MouseMove accumulates motion while the pointer is captured or a button
// is held.
func (in *Input) MouseMove(dx, dy float64) {
	if !in.locked && !in.dragging {
		return
	}
	in.dx += dx
	in.dy += dy
}

// TouchStart begins a drag that behaves like the primary button.
func (in *Input) TouchStart(x, y float64) {
	in.touch()
	in.touchActive = true
	in.touchX, in.touchY = x, y
	in.button = MousePrimary
}

func (in *Input) TouchMove(x, y float64) {
	if !in.touchActive {
		return
	}
	in.dx += x - in.touchX
	in.dy += y - in.touchY
	in.touchX, in.touchY = x, y
}

func (in *Input) TouchEnd() {
	in.touchActive = false
	in.button = MouseNone
}

func (in *Input) LockPointer() {
	in.locked = true
	if in.pointer != nil {
		in.pointer.LockPointer()
	}
}

func (in *Input) UnlockPointer() {
	in.locked = false
	if in.pointer != nil {
		in.pointer.UnlockPointer()
	}
}

func (in *Input) PointerLocked() bool { return in.locked }

// ResetMouseDelta clears accumulated motion; the game calls it once per
// frame after reading.
func (in *Input) ResetMouseDelta() { in.dx, in.dy = 0, 0 }

// Reset releases every key and button.
func (in *Input) Reset() {
	in.keys = make(map[string]bool)
	in.button = MouseNone
	in.dragging = false
	in.touchActive = false
	in.ResetMouseDelta()
}

// Snapshot copies the current state.
func (in *Input) Snapshot() InputState {
	keys := make(map[string]bool, len(in.keys))
	for k, v := range in.keys {
		keys[k] = v
	}
	return InputState{
		Keys:          keys,
		MouseDX:       in.dx,
		MouseDY:       in.dy,
		MouseButton:   in.button,
		PointerLocked: in.locked,
	}
}
