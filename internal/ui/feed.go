package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Cross-Fire/internal/game"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 60
	feedLineHeight = 14
)

// feedCategories are the SimLog categories worth showing to a player.
var feedCategories = map[string]bool{
	"level":   true,
	"kill":    true,
	"hit":     true,
	"crash":   true,
	"pool":    true,
	"outcome": true,
	"state":   true,
}

// EventFeed is a ring buffer of recent session events rendered beside the field.
type EventFeed struct {
	entries []game.SimLogEntry
	head    int
	count   int
	cursor  int // SimLog entries already consumed
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]game.SimLogEntry, feedMaxEntries)}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(e game.SimLogEntry) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Pull copies entries recorded since the last call. Only state changes that
// matter to the player (attacking, destroyed) make it through.
func (f *EventFeed) Pull(log *game.SimLog) {
	if log.Len() < f.cursor {
		f.cursor = 0 // log was replaced
	}
	for _, e := range log.Since(f.cursor) {
		if !feedCategories[e.Category] {
			continue
		}
		if e.Category == "state" && e.Key != "destroyed" && !strings.HasSuffix(e.Value, "attacking") {
			continue
		}
		f.Add(e)
	}
	f.cursor = log.Len()
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []game.SimLogEntry {
	out := make([]game.SimLogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		out[i] = f.entries[idx]
	}
	return out
}

// Draw renders the feed panel at panelX, newest entries at the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 10, B: 16, A: 255}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, color.RGBA{R: 50, G: 50, B: 90, A: 255}, false)
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, 16, color.RGBA{R: 20, G: 20, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 30, B: 50, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, actorColor(e.Actor), false)
		ebitenutil.DebugPrintAt(screen, feedLine(e), panelX+12, y-1)
		y += feedLineHeight
	}
}

func feedLine(e game.SimLogEntry) string {
	line := e.Actor + " " + e.Key + " " + e.Value
	if len(line) > 38 {
		line = line[:38]
	}
	return line
}

func actorColor(actor string) color.RGBA {
	switch {
	case actor == "P":
		return colPlayer
	case actor == "--":
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	default:
		return colOpponent
	}
}
