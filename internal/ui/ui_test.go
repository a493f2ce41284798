package ui

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Cross-Fire/internal/game"
	"github.com/Garsondee/Cross-Fire/internal/replay"
)

func TestPlayerInputs_Mapping(t *testing.T) {
	pressed := map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeyI: true, ebiten.KeyEnter: true}
	got := playerInputs(func(k ebiten.Key) bool { return pressed[k] })
	want := []replay.Input{replay.Move(game.DirRight), replay.Fire(game.DirUp), replay.Restart()}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("input %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPlayerInputs_NothingPressed(t *testing.T) {
	if got := playerInputs(func(ebiten.Key) bool { return false }); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestEventFeed_RingKeepsNewest(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(game.SimLogEntry{Tick: i})
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("len=%d, want %d", len(got), feedMaxEntries)
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("oldest=%d newest=%d", got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventFeed_PullFilters(t *testing.T) {
	log := game.NewSimLog(true)
	log.Add(1, "P", "move", "position", "(0,0)", 0)
	log.Add(1, "E1", "state", "change", "hidden_up → to_wait_up", 0)
	log.Add(2, "E1", "state", "change", "waiting_up → attacking", 0)
	log.Add(3, "E1", "kill", "shot_down", "by P, kills=1", 1)

	f := NewEventFeed()
	f.Pull(log)
	got := f.Recent()
	if len(got) != 2 || got[0].Key != "change" || got[1].Category != "kill" {
		t.Fatalf("unexpected feed %v", got)
	}

	f.Pull(log) // nothing new
	if len(f.Recent()) != 2 {
		t.Fatal("pull repeated old entries")
	}
}

func TestGame_ReportAndLayout(t *testing.T) {
	s, err := game.NewSession(game.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	g := New(s, Options{})
	w, h := g.Layout(0, 0)
	if w != 544+feedPanelWidth || h != 448+hudHeight {
		t.Fatalf("layout %dx%d", w, h)
	}
	if !strings.HasPrefix(g.report(), "T=0 outcome=in_progress") {
		t.Fatalf("report: %q", g.report())
	}
	if !strings.Contains(g.report(), "level") {
		t.Fatal("report should include the level event")
	}
	if g.rec != nil {
		t.Fatal("recording should be off without a path")
	}
}
