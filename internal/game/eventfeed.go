package game

import "fmt"

const feedMaxEntries = 60

// FeedEntry is one line of the in-game event feed.
type FeedEntry struct {
	Tick    int
	Label   string // "P", "S3", or "--"
	Kind    EventKind
	Message string
}

func (e FeedEntry) String() string {
	return fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message)
}

// EventFeed is a ring buffer of recent gameplay events for on-screen display.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends ev, overwriting the oldest entry once full.
func (f *EventFeed) Add(tick int, ev Event) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Label:   ev.Actor,
		Kind:    ev.Kind,
		Message: describe(ev),
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Last returns up to n of the newest entries, oldest first.
func (f *EventFeed) Last(n int) []FeedEntry {
	all := f.Recent()
	if n < len(all) {
		return all[len(all)-n:]
	}
	return all
}

func (f *EventFeed) Len() int { return f.count }

func describe(ev Event) string {
	switch ev.Kind {
	case EventPlayerAttack:
		return fmt.Sprintf("attacks (mana %.0f)", ev.Amount)
	case EventInsufficientMana:
		return "not enough mana"
	case EventEnemyHit:
		return fmt.Sprintf("hit for %.0f", ev.Amount)
	case EventEnemyDefeated:
		return "defeated"
	case EventEnemySwing:
		return "swings"
	case EventEnemyMissed:
		return "misses"
	case EventPlayerHit:
		return fmt.Sprintf("takes %.1f damage", ev.Amount)
	case EventPlayerDied:
		return "has fallen"
	case EventEnemyRemoved:
		return "crumbles to dust"
	case EventWaveSpawned:
		return fmt.Sprintf("%.0f skeletons rise", ev.Amount)
	case EventItemUsed:
		return fmt.Sprintf("uses %s (+%.0f)", ev.Detail, ev.Amount)
	case EventStateChanged:
		return ev.Detail
	case EventAssetFailed:
		return "missing model " + ev.Detail
	default:
		return ev.Kind.String()
	}
}
