// Package ui is the Ebiten front end: it maps keys to player intent, steps
// the session once per frame and draws terrain, units, projectiles, the HUD
// and a recent-event feed.
package ui

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Cross-Fire/internal/game"
	"github.com/Garsondee/Cross-Fire/internal/replay"
)

// hudHeight is the strip under the field that holds the HUD line.
const hudHeight = 40

// statusFrames is how long a status message stays on the HUD (~2s at 60 TPS).
const statusFrames = 120

var (
	colWall     = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colOpen     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colConveyor = color.RGBA{R: 220, G: 200, B: 0, A: 255}
	colPit      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	colPlayer   = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	colOpponent = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colBullet   = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	colUnowned  = color.RGBA{R: 255, G: 120, B: 0, A: 255}
)

// Options configures the window front end.
type Options struct {
	// SnapshotPath is where F5 writes a session snapshot. Empty disables it.
	SnapshotPath string
	// RecordPath is where the input recording is written on Close. Empty
	// disables recording.
	RecordPath string
}

// Game implements ebiten.Game around one session.
type Game struct {
	session *game.Session
	rec     *replay.Recorder
	feed    *EventFeed
	opts    Options

	fieldW int
	fieldH int
	width  int
	height int

	status      string
	statusTimer int
}

// New wraps a session. Inputs are recorded when opts.RecordPath is set and
// the session is fresh (tick 0), since a recording always replays from a new
// session.
func New(s *game.Session, opts Options) *Game {
	cfg := s.Config()
	g := &Game{
		session: s,
		feed:    NewEventFeed(),
		opts:    opts,
		fieldW:  int(cfg.FieldWidth()),
		fieldH:  int(cfg.FieldHeight()),
	}
	g.width = g.fieldW + feedPanelWidth
	g.height = g.fieldH + hudHeight
	if opts.RecordPath != "" && s.TickCount() == 0 {
		g.rec = replay.NewRecorder(cfg)
	}
	g.feed.Pull(s.Log())
	return g
}

// Size returns the logical screen size.
func (g *Game) Size() (int, int) { return g.width, g.height }

// Update applies key edges and steps the session one tick.
func (g *Game) Update() error {
	for _, in := range playerInputs(inpututil.IsKeyJustPressed) {
		if g.rec != nil {
			g.rec.Apply(g.session, in)
		} else {
			replay.Apply(g.session, in)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.saveSnapshot()
	}

	if g.rec != nil {
		g.rec.Tick(g.session)
	} else {
		g.session.Tick()
	}
	g.feed.Pull(g.session.Log())

	if g.statusTimer > 0 {
		g.statusTimer--
	}
	return nil
}

// Close writes the input recording, if enabled.
func (g *Game) Close() error {
	if g.rec == nil {
		return nil
	}
	return replay.Save(g.opts.RecordPath, g.rec.Recording())
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTimer = statusFrames
}

// report is the text placed on the clipboard: the summary and recent events.
func (g *Game) report() string {
	var sb strings.Builder
	sb.WriteString(g.session.Summary().String())
	sb.WriteByte('\n')
	for _, e := range g.feed.Recent() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Game) copyReport() {
	if err := clipboard.WriteAll(g.report()); err != nil {
		g.setStatus("clipboard: " + err.Error())
		return
	}
	g.setStatus("copied report")
}

func (g *Game) saveSnapshot() {
	if g.opts.SnapshotPath == "" {
		g.setStatus("no -snapshot path")
		return
	}
	snap, err := g.session.Snapshot()
	if err == nil {
		var b []byte
		if b, err = game.EncodeSnapshot(snap); err == nil {
			err = os.WriteFile(g.opts.SnapshotPath, b, 0o600)
		}
	}
	if err != nil {
		g.setStatus("snapshot: " + err.Error())
		return
	}
	g.setStatus("saved " + g.opts.SnapshotPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 18, A: 255})

	for _, c := range g.session.Terrain().Cells() {
		fillRect(screen, c.Rect, cellColor(c.Kind))
	}

	for _, e := range g.session.Opponents() {
		fillRect(screen, e.Rect(), colOpponent)
		for _, b := range e.Bullets() {
			fillRect(screen, b.Rect, colBullet)
		}
	}
	p := g.session.Player()
	fillRect(screen, p.Rect(), colPlayer)
	for _, b := range p.Bullets() {
		fillRect(screen, b.Rect, colBullet)
	}
	for _, b := range g.session.Unowned() {
		fillRect(screen, b.Rect, colUnowned)
	}

	g.drawHUD(screen)
	g.drawBanner(screen)
	g.feed.Draw(screen, g.fieldW, g.height)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	y := float32(g.fieldH)
	vector.FillRect(screen, 0, y, float32(g.fieldW), hudHeight, color.RGBA{R: 6, G: 6, B: 20, A: 255}, false)
	vector.StrokeLine(screen, 0, y, float32(g.fieldW), y, 1, color.RGBA{R: 60, G: 60, B: 140, A: 255}, false)

	s := g.session
	line := fmt.Sprintf("LIVES %d   KILLS %d   CRASHES %d   LEFT %d   T=%d",
		s.Player().Lives(), s.Kills(), s.Crashes(), len(s.Opponents()), s.TickCount())
	text.Draw(screen, line, basicfont.Face7x13, 8, g.fieldH+16, color.White)

	help := "WASD move  SPACE stop  IJKL fire  P pause  C copy"
	if g.statusTimer > 0 {
		help = g.status
	}
	text.Draw(screen, help, basicfont.Face7x13, 8, g.fieldH+32, color.RGBA{R: 160, G: 160, B: 200, A: 255})
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	var msg string
	var col color.Color
	switch {
	case g.session.Paused():
		msg, col = "PAUSED", color.White
	case g.session.Outcome() == game.OutcomeWin:
		msg, col = "YOU WIN - ENTER TO PLAY AGAIN", colPlayer
	case g.session.Outcome() == game.OutcomeLoss:
		msg, col = "GAME OVER - ENTER TO RETRY", colOpponent
	default:
		return
	}

	const charW, boxH = 7, 32
	boxW := len(msg)*charW + 24
	bx := (g.fieldW - boxW) / 2
	by := (g.fieldH - boxH) / 2
	vector.FillRect(screen, float32(bx), float32(by), float32(boxW), boxH, color.RGBA{A: 220}, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(boxW), boxH, 2, col, false)
	text.Draw(screen, msg, basicfont.Face7x13, bx+12, by+20, col)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func fillRect(screen *ebiten.Image, r game.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func cellColor(k game.CellKind) color.RGBA {
	switch k {
	case game.CellWall:
		return colWall
	case game.CellPit:
		return colPit
	case game.CellConveyor:
		return colConveyor
	default:
		return colOpen
	}
}
