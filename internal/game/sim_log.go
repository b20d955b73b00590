package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a session.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P", "S0".."Sn", or "--" for global events
	Category string  // combat, move, wave, item, asset, state, stats
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] S3   combat    enemy_hit        15
func (e SimLogEntry) String() string {
	v := e.Value
	if v == "" && e.NumVal != 0 {
		v = fmt.Sprintf("%.1f", e.NumVal)
	}
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, v)
}

// SimLog collects structured events for tests and batch reports. Unlike
// EventFeed it is unbounded.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position and
// stat samples are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

func (sl *SimLog) Verbose() bool { return sl.verbose }

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for one actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session.
func (sl *SimLog) Summary(g *Game) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d (%s) ---\n", g.Tick(), g.State())

	p := g.Player()
	fmt.Fprintf(&sb, "Player: hp=%.0f/%.0f  mana=%.0f/%.0f  pos=(%.1f,%.1f)  alive=%t\n",
		p.Health(), p.MaxHealth(), p.Mana(), p.MaxMana(), p.Pos[0], p.Pos[2], p.Alive())

	var alive, dying, removed int
	for _, e := range g.Enemies() {
		switch {
		case e.Alive():
			alive++
		case e.Removed():
			removed++
		default:
			dying++
		}
	}
	fmt.Fprintf(&sb, "Skeletons: alive=%d  dying=%d  removed=%d\n", alive, dying, removed)

	fmt.Fprintf(&sb, "Combat: attacks=%d  hits=%d  kills=%d  swings=%d  misses=%d  player_hits=%d\n",
		sl.Count("combat", EventPlayerAttack.String()),
		sl.Count("combat", EventEnemyHit.String()),
		sl.Count("combat", EventEnemyDefeated.String()),
		sl.Count("combat", EventEnemySwing.String()),
		sl.Count("combat", EventEnemyMissed.String()),
		sl.Count("combat", EventPlayerHit.String()))

	if obj := g.Objective(); obj != "" {
		fmt.Fprintf(&sb, "Objective: %s\n", obj)
	}
	return sb.String()
}
