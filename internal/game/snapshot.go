package game

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion is bumped whenever the encoded layout changes.
const snapshotVersion = 1

// ErrSnapshotDice is returned when a session runs on injected dice whose
// state cannot be captured.
var ErrSnapshotDice = errors.New("session dice cannot be snapshotted")

// RectState is the encoded form of a Rect.
type RectState struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

// ProjectileState is the encoded form of a Projectile.
type ProjectileState struct {
	Body RectState `msgpack:"body"`
	Dir  Direction `msgpack:"dir"`
}

// CellState is the encoded form of a terrain Cell.
type CellState struct {
	Body RectState `msgpack:"body"`
	Kind CellKind  `msgpack:"kind"`
	Col  int       `msgpack:"col"`
	Row  int       `msgpack:"row"`
}

// UnitState is the encoded form of a Unit.
type UnitState struct {
	Label       string            `msgpack:"label"`
	Body        RectState         `msgpack:"body"`
	StartX      float64           `msgpack:"start_x"`
	StartY      float64           `msgpack:"start_y"`
	Dir         Direction         `msgpack:"dir"`
	NextDir     Direction         `msgpack:"next_dir"`
	Speed       float64           `msgpack:"speed"`
	Lives       int               `msgpack:"lives"`
	BulletSpeed float64           `msgpack:"bullet_speed"`
	MaxBullets  int               `msgpack:"max_bullets"`
	Bullets     []ProjectileState `msgpack:"bullets"`
	FireDir     Direction         `msgpack:"fire_dir"`
	State       BehaviorState     `msgpack:"state"`
}

// Snapshot is a complete, self-contained copy of a session, including the
// dice state, so a restored session plays the next tick exactly like the
// captured one would.
type Snapshot struct {
	Version   int               `msgpack:"version"`
	Config    Config            `msgpack:"config"`
	Cells     []CellState       `msgpack:"cells"`
	Player    UnitState         `msgpack:"player"`
	Opponents []UnitState       `msgpack:"opponents"`
	Unowned   []ProjectileState `msgpack:"unowned"`
	Kills     int               `msgpack:"kills"`
	Crashes   int               `msgpack:"crashes"`
	Paused    bool              `msgpack:"paused"`
	Over      bool              `msgpack:"over"`
	Won       bool              `msgpack:"won"`
	Tick      int               `msgpack:"tick"`
	Dice      []byte            `msgpack:"dice"`
}

func rectState(r Rect) RectState { return RectState{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func (r RectState) rect() Rect { return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func projectileStates(ps []Projectile) []ProjectileState {
	out := make([]ProjectileState, len(ps))
	for i, p := range ps {
		out[i] = ProjectileState{Body: rectState(p.Rect), Dir: p.Dir}
	}
	return out
}

func projectilesFrom(ps []ProjectileState) []Projectile {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Projectile, len(ps))
	for i, p := range ps {
		out[i] = Projectile{Rect: p.Body.rect(), Dir: p.Dir}
	}
	return out
}

func unitState(u *Unit) UnitState {
	return UnitState{
		Label:       u.label,
		Body:        rectState(u.body),
		StartX:      u.startX,
		StartY:      u.startY,
		Dir:         u.dir,
		NextDir:     u.nextDir,
		Speed:       u.speed,
		Lives:       u.lives,
		BulletSpeed: u.bulletSpeed,
		MaxBullets:  u.maxBullets,
		Bullets:     projectileStates(u.bullets),
		FireDir:     u.fireDir,
		State:       u.state,
	}
}

func (us UnitState) unit() *Unit {
	return &Unit{
		label:       us.Label,
		body:        us.Body.rect(),
		startX:      us.StartX,
		startY:      us.StartY,
		dir:         us.Dir,
		nextDir:     us.NextDir,
		speed:       us.Speed,
		lives:       us.Lives,
		bulletSpeed: us.BulletSpeed,
		maxBullets:  us.MaxBullets,
		bullets:     projectilesFrom(us.Bullets),
		fireDir:     us.FireDir,
		state:       us.State,
	}
}

// Snapshot captures the session.
func (s *Session) Snapshot() (Snapshot, error) {
	if s.seeded == nil {
		return Snapshot{}, ErrSnapshotDice
	}
	dice, err := s.seeded.state()
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot dice: %w", err)
	}

	cells := make([]CellState, len(s.terrain.cells))
	for i, c := range s.terrain.cells {
		cells[i] = CellState{Body: rectState(c.Rect), Kind: c.Kind, Col: c.Col, Row: c.Row}
	}
	opps := make([]UnitState, len(s.opponents))
	for i, e := range s.opponents {
		opps[i] = unitState(e)
	}

	return Snapshot{
		Version:   snapshotVersion,
		Config:    s.cfg,
		Cells:     cells,
		Player:    unitState(s.player),
		Opponents: opps,
		Unowned:   projectileStates(s.unowned),
		Kills:     s.kills,
		Crashes:   s.crashes,
		Paused:    s.paused,
		Over:      s.over,
		Won:       s.won,
		Tick:      s.tick,
		Dice:      dice,
	}, nil
}

// RestoreSession rebuilds a session from a snapshot. The restored session
// starts with an empty event log.
func RestoreSession(snap Snapshot) (*Session, error) {
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("restore session: unsupported snapshot version %d", snap.Version)
	}
	if err := snap.Config.Validate(); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	seeded := newSeededDice(snap.Config.Seed)
	if err := seeded.restore(snap.Dice); err != nil {
		return nil, fmt.Errorf("restore session dice: %w", err)
	}

	cells := make([]Cell, len(snap.Cells))
	for i, c := range snap.Cells {
		cells[i] = Cell{Rect: c.Body.rect(), Kind: c.Kind, Col: c.Col, Row: c.Row}
	}
	opps := make([]*Unit, len(snap.Opponents))
	for i, us := range snap.Opponents {
		opps[i] = us.unit()
	}

	return &Session{
		cfg:       snap.Config,
		terrain:   &Terrain{cells: cells},
		player:    snap.Player.unit(),
		opponents: opps,
		unowned:   projectilesFrom(snap.Unowned),
		kills:     snap.Kills,
		crashes:   snap.Crashes,
		paused:    snap.Paused,
		over:      snap.Over,
		won:       snap.Won,
		tick:      snap.Tick,
		dice:      seeded,
		seeded:    seeded,
		log:       NewSimLog(false),
	}, nil
}

// EncodeSnapshot serialises a snapshot with msgpack.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a msgpack-encoded snapshot.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
