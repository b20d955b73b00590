package game

import "sort"

type timer struct {
	due float64
	seq int
	fn  func()
}

// Scheduler runs one-shot callbacks on the simulation clock. Callbacks are
// never cancelled individually; each one re-checks the world when it fires.
type Scheduler struct {
	now    float64
	seq    int
	timers []timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now is the simulation time in seconds.
func (s *Scheduler) Now() float64 { return s.now }

// After schedules fn to run delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.timers = append(s.timers, timer{due: s.now + delay, seq: s.seq, fn: fn})
}

// Advance moves the clock forward and fires every due callback in due
// order. Callbacks scheduled while firing run on a later Advance.
func (s *Scheduler) Advance(dt float64) int {
	s.now += dt
	if len(s.timers) == 0 {
		return 0
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due != s.timers[j].due {
			return s.timers[i].due < s.timers[j].due
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	n := 0
	for n < len(s.timers) && s.timers[n].due <= s.now {
		n++
	}
	if n == 0 {
		return 0
	}
	due := make([]timer, n)
	copy(due, s.timers[:n])
	s.timers = append(s.timers[:0], s.timers[n:]...)
	for _, t := range due {
		t.fn()
	}
	return n
}

// Len is the number of pending callbacks.
func (s *Scheduler) Len() int { return len(s.timers) }

// Reset drops every pending callback. The clock keeps running.
func (s *Scheduler) Reset() {
	s.timers = s.timers[:0]
}
