package game

import "testing"

func TestScheduler_FiresAtDueTime(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0.5, func() { fired = true })

	s.Advance(0.25)
	if fired {
		t.Fatal("callback fired before its delay elapsed")
	}
	s.Advance(0.25)
	if !fired {
		t.Fatal("callback should fire once the delay has elapsed")
	}
	if s.Len() != 0 {
		t.Fatalf("expected no pending timers, got %d", s.Len())
	}
}

func TestScheduler_Orders_By_Due_Then_Insertion(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(0.3, func() { order = append(order, "c") })
	s.After(0.1, func() { order = append(order, "a") })
	s.After(0.1, func() { order = append(order, "b") })

	s.Advance(1)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected firing order %v", order)
	}
}

func TestScheduler_Callback_Scheduled_While_Firing_Waits(t *testing.T) {
	s := NewScheduler()
	inner := false
	s.After(0, func() {
		s.After(0, func() { inner = true })
	})
	s.Advance(0.016)
	if inner {
		t.Fatal("nested callback should not run in the same Advance")
	}
	s.Advance(0.016)
	if !inner {
		t.Fatal("nested callback should run on the next Advance")
	}
}

func TestScheduler_Reset_Drops_Pending(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0.1, func() { fired = true })
	s.Reset()
	s.Advance(1)
	if fired {
		t.Fatal("reset timer should never fire")
	}
}
