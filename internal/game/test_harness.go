package game

import "fmt"

// TestSim is a headless session builder used by tests and the headless
// report. It mirrors the windowed game loop without any Ebiten dependency and
// supports deterministic seeding, scripted dice and hand-built levels.
type TestSim struct {
	Session *Session
	Policy  Policy

	cfg       Config
	dice      Dice
	verbose   bool
	openField bool
	cells     map[[2]int]CellKind
	player    *[2]int
	opponents []opponentSpawn
	customOps bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config, seed, dice and terrain; applied first
	simOptUnit                       // player and opponent placement
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the whole config. Later infra options still apply.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithSeed sets the dice seed for deterministic runs.
func WithSeed(seed uint64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
	}}
}

// WithDice injects scripted rolls. Such sessions cannot be snapshotted.
func WithDice(d Dice) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.dice = d
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithOpenField replaces the arcade layout with open floor inside a wall border.
func WithOpenField() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.openField = true
	}}
}

// WithCell overrides the kind of one cell.
func WithCell(col, row int, kind CellKind) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		if ts.cells == nil {
			ts.cells = map[[2]int]CellKind{}
		}
		ts.cells[[2]int{col, row}] = kind
	}}
}

// WithPolicy sets the autopilot that writes player intent each tick.
func WithPolicy(p Policy) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Policy = p
	}}
}

// WithPlayerAt moves the player spawn to a cell.
func WithPlayerAt(col, row int) SimOption {
	return SimOption{simOptUnit, func(ts *TestSim) {
		ts.player = &[2]int{col, row}
	}}
}

// WithOpponentAt adds an opponent at a cell. Using it at least once drops the
// default opponent clusters.
func WithOpponentAt(col, row int, state BehaviorState) SimOption {
	return SimOption{simOptUnit, func(ts *TestSim) {
		ts.customOps = true
		ts.opponents = append(ts.opponents, opponentSpawn{col: col, row: row, state: state})
	}}
}

// WithNoOpponents empties the opponent collection.
func WithNoOpponents() SimOption {
	return SimOption{simOptUnit, func(ts *TestSim) {
		ts.customOps = true
		ts.opponents = nil
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (config, seed, dice, terrain overrides, policy)
//  2. Units (player spawn, opponents)
//
// It panics on an invalid config, since that is a broken test.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{cfg: DefaultConfig(), Policy: IdlePolicy{}}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptUnit {
			o.fn(ts)
		}
	}

	s, err := NewSession(ts.cfg)
	if err != nil {
		panic(fmt.Sprintf("test sim: %v", err))
	}
	if ts.dice != nil {
		s.dice = ts.dice
		s.seeded = nil
	}
	s.log = NewSimLog(ts.verbose)
	ts.Session = s
	ts.rebuild()
	return ts
}

// rebuild applies terrain and unit overrides to the freshly created level.
func (ts *TestSim) rebuild() {
	s := ts.Session
	cfg := s.cfg

	if ts.openField || len(ts.cells) > 0 {
		cells := s.terrain.cells
		for i := range cells {
			c := &cells[i]
			if ts.openField {
				c.Kind = CellOpen
				if c.Col == 0 || c.Row == 0 || c.Col == cfg.Cols-1 || c.Row == cfg.Rows-1 {
					c.Kind = CellWall
				}
			}
			if k, ok := ts.cells[[2]int{c.Col, c.Row}]; ok {
				c.Kind = k
			}
		}
	}

	if ts.player != nil {
		x := float64(ts.player[0]) * cfg.CellW
		y := float64(ts.player[1]) * cfg.CellH
		s.player = newUnit("P", x, y, cfg, cfg.PlayerLives, StateManual)
	}

	if ts.customOps {
		s.opponents = s.opponents[:0]
		for i, sp := range ts.opponents {
			x := float64(sp.col) * cfg.CellW
			y := float64(sp.row) * cfg.CellH
			s.opponents = append(s.opponents, newUnit(opponentLabel(i), x, y, cfg, cfg.OpponentLives, sp.state))
		}
	}
}

// Log returns the session event log.
func (ts *TestSim) Log() *SimLog { return ts.Session.log }

// Step lets the policy act and runs one tick. Reports whether the tick ran.
func (ts *TestSim) Step() bool {
	if ts.Policy != nil {
		ts.Policy.Act(ts.Session)
	}
	return ts.Session.Tick()
}

// RunTicks advances the simulation up to n ticks, stopping early once the
// session is over.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		if !ts.Step() {
			return
		}
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if !ts.Step() {
			break
		}
		if predicate(ts) {
			return ts.Session.tick
		}
	}
	return -1
}

// Opponent returns the live opponent with the given label, or nil.
func (ts *TestSim) Opponent(label string) *Unit {
	for _, e := range ts.Session.opponents {
		if e.label == label {
			return e
		}
	}
	return nil
}
