package game

import "testing"

type fakePointer struct{ locks, unlocks int }

func (p *fakePointer) LockPointer()   { p.locks++ }
func (p *fakePointer) UnlockPointer() { p.unlocks++ }

func TestInput_Keys_Are_Lowercased(t *testing.T) {
	in := NewInput(nil)
	in.KeyDown("W")
	if !in.Snapshot().Key("w") {
		t.Fatal("expected w held after KeyDown(W)")
	}
	in.KeyUp("w")
	if in.Snapshot().Key("w") {
		t.Fatal("expected w released")
	}
}

func TestInput_Secondary_Button_Locks_And_Escape_Unlocks(t *testing.T) {
	p := &fakePointer{}
	in := NewInput(p)
	in.MouseDown(MouseSecondary)
	if !in.PointerLocked() || p.locks != 1 {
		t.Fatalf("expected pointer locked once, locked=%v locks=%d", in.PointerLocked(), p.locks)
	}
	in.MouseUp(MouseSecondary)
	in.KeyDown("Escape")
	if in.PointerLocked() || p.unlocks != 1 {
		t.Fatalf("expected escape to unlock, locked=%v unlocks=%d", in.PointerLocked(), p.unlocks)
	}
}

func TestInput_Mouse_Delta_Accumulates_Only_When_Captured(t *testing.T) {
	in := NewInput(nil)
	in.MouseMove(5, 5)
	if s := in.Snapshot(); s.MouseDX != 0 || s.MouseDY != 0 {
		t.Fatalf("free pointer should not accumulate, got %v,%v", s.MouseDX, s.MouseDY)
	}
	in.LockPointer()
	in.MouseMove(3, -1)
	in.MouseMove(2, -1)
	s := in.Snapshot()
	if s.MouseDX != 5 || s.MouseDY != -2 {
		t.Fatalf("expected delta 5,-2, got %v,%v", s.MouseDX, s.MouseDY)
	}
	in.ResetMouseDelta()
	if s := in.Snapshot(); s.MouseDX != 0 || s.MouseDY != 0 {
		t.Fatal("reset should clear the delta")
	}
}

func TestInput_Touch_Drags_Like_Primary(t *testing.T) {
	in := NewInput(nil)
	in.TouchStart(10, 10)
	in.TouchMove(14, 7)
	s := in.Snapshot()
	if s.MouseButton != MousePrimary {
		t.Fatalf("touch should hold the primary button, got %d", s.MouseButton)
	}
	if s.MouseDX != 4 || s.MouseDY != -3 {
		t.Fatalf("expected delta 4,-3, got %v,%v", s.MouseDX, s.MouseDY)
	}
	in.TouchEnd()
	if in.Snapshot().MouseButton != MouseNone {
		t.Fatal("touch end should release the button")
	}
}

func TestInput_First_Interaction_Fires_Once(t *testing.T) {
	in := NewInput(nil)
	calls := 0
	in.OnFirstInteraction(func() { calls++ })
	in.KeyDown("a")
	in.MouseDown(MousePrimary)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	in.OnFirstInteraction(func() { calls++ })
	if calls != 2 {
		t.Fatal("late registration should run immediately")
	}
}

func TestInput_Snapshot_Is_A_Copy(t *testing.T) {
	in := NewInput(nil)
	in.KeyDown("a")
	s := in.Snapshot()
	s.Keys["b"] = true
	if in.Snapshot().Key("b") {
		t.Fatal("snapshot must not alias the live key map")
	}
}
