package game

import (
	"strings"
	"testing"
)

func TestSimLog_Filters(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "P", "combat", "player_attack", "", 45)
	sl.Add(2, "S0", "combat", "enemy_hit", "", 15)
	sl.Add(5, "S1", "combat", "enemy_hit", "", 15)
	sl.Add(6, "--", "wave", "wave_spawned", "5 skeletons", 5)
	sl.AddVerbose(6, "P", "move", "position", "(0,0,0)", 0)

	if n := len(sl.Entries()); n != 4 {
		t.Fatalf("verbose entry recorded while quiet: %d entries", n)
	}
	if sl.Count("combat", "enemy_hit") != 2 {
		t.Fatal("expected two hits")
	}
	if len(sl.Filter("combat", "")) != 3 {
		t.Fatal("category-only filter")
	}
	if len(sl.FilterActor("S1")) != 1 {
		t.Fatal("actor filter")
	}
	if len(sl.FilterTickRange(2, 5)) != 2 {
		t.Fatal("tick range is inclusive")
	}
	last, ok := sl.LastOf("combat", "enemy_hit")
	if !ok || last.Actor != "S1" {
		t.Fatalf("LastOf = %+v ok=%t", last, ok)
	}
	if _, ok := sl.LastOf("item", "item_used"); ok {
		t.Fatal("LastOf should miss")
	}
	if !sl.HasEntry("wave", "", "skeletons") || sl.HasEntry("wave", "", "dragons") {
		t.Fatal("HasEntry substring match")
	}
	if !strings.Contains(sl.FormatRange(6, 6), "wave_spawned") {
		t.Fatal("FormatRange")
	}
	if lines := strings.Count(sl.Format(), "\n"); lines != 4 {
		t.Fatalf("Format lines = %d", lines)
	}
}

func TestSimLog_Entry_String_Uses_NumVal(t *testing.T) {
	e := SimLogEntry{Tick: 42, Actor: "S3", Category: "combat", Key: "enemy_hit", NumVal: 15}
	if got := e.String(); !strings.HasPrefix(got, "[T=042] S3") || !strings.HasSuffix(got, "15.0") {
		t.Fatalf("line = %q", got)
	}
}

func TestSimLog_Verbose_Session_Samples(t *testing.T) {
	ts := NewTestSession(WithVerbose(true), WithoutWave(), WithEnemyAt(Vec3{0, 0, -30}))
	ts.RunTicks(3)
	if got := len(ts.SimLog.FilterActor("S0")); got < 3 {
		t.Fatalf("expected per-tick skeleton samples, got %d", got)
	}
	if ts.SimLog.Count("stats", "mana") != 3 {
		t.Fatal("expected one mana sample per tick")
	}
}

func TestSimLog_Summary(t *testing.T) {
	ts := NewTestSession()
	ts.Enemy(0).TakeDamage(1000, ts.Game)
	s := ts.SimLog.Summary(ts.Game)
	for _, want := range []string{"(playing)", "hp=100/100", "alive=4  dying=1  removed=0", "Objective: Eliminate"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}
