package game

import "fmt"

// Session is the whole mutable state of one game: terrain, units, the unowned
// projectile pool, counters and flags. The driver (Tick) is its only writer;
// presentation code reads it between ticks and writes player intent.
type Session struct {
	cfg     Config
	terrain *Terrain

	player    *Unit
	opponents []*Unit
	unowned   []Projectile // projectiles whose owner was destroyed

	kills   int // opponents shot down by the player
	crashes int // opponent contacts
	paused  bool
	over    bool
	won     bool
	tick    int

	dice   Dice
	seeded *seededDice // backing source of dice, nil when a test injects rolls
	log    *SimLog
}

// NewSession validates cfg and builds the first level.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	seeded := newSeededDice(cfg.Seed)
	s := &Session{
		cfg:    cfg,
		dice:   seeded,
		seeded: seeded,
		log:    NewSimLog(false),
	}
	s.CreateLevel()
	return s, nil
}

// CreateLevel resets the session to the initial terrain, units and counters.
// The dice stream is not rewound, so a restart plays out differently.
func (s *Session) CreateLevel() {
	s.paused, s.over, s.won = false, false, false
	s.kills, s.crashes = 0, 0
	s.tick = 0
	s.unowned = nil

	s.terrain = GenerateLevel(s.cfg)

	px := float64(s.cfg.PlayerCol) * s.cfg.CellW
	py := float64(s.cfg.PlayerRow) * s.cfg.CellH
	s.player = newUnit("P", px, py, s.cfg, s.cfg.PlayerLives, StateManual)

	spawns := levelSpawns(s.cfg.Cols)
	s.opponents = make([]*Unit, 0, len(spawns))
	for i, sp := range spawns {
		x := float64(sp.col) * s.cfg.CellW
		y := float64(sp.row) * s.cfg.CellH
		s.opponents = append(s.opponents, newUnit(opponentLabel(i), x, y, s.cfg, s.cfg.OpponentLives, sp.state))
	}

	s.log.Add(0, "--", "level", "create",
		fmt.Sprintf("%dx%d cells, %d opponents", s.cfg.Cols, s.cfg.Rows, len(s.opponents)), float64(len(s.opponents)))
}

// Tick advances the simulation by one step and reports whether it ran.
// A paused or finished session is left untouched.
//
//	movement -> spawn -> projectile motion -> projectile collisions ->
//	unit collisions -> behaviour -> outcome
func (s *Session) Tick() bool {
	if s.paused || s.over {
		return false
	}
	s.tick++

	s.moveUnits()
	s.spawnProjectiles()
	s.moveProjectiles()
	s.collideProjectiles()
	s.collideUnits()
	s.stepOpponents()
	s.checkOutcome()

	if s.log.verbose {
		s.logPositions()
	}
	return true
}

func (s *Session) logPositions() {
	p := s.player.body
	s.log.AddVerbose(s.tick, s.player.label, "move", "position", fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y), 0)
	for _, e := range s.opponents {
		s.log.AddVerbose(s.tick, e.label, "move", "position", fmt.Sprintf("(%.1f,%.1f)", e.body.X, e.body.Y), 0)
	}
}

// --- Read accessors ---

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Terrain returns the level terrain.
func (s *Session) Terrain() *Terrain { return s.terrain }

// Player returns the player unit.
func (s *Session) Player() *Unit { return s.player }

// Opponents returns the live opponents in spawn order.
func (s *Session) Opponents() []*Unit {
	out := make([]*Unit, len(s.opponents))
	copy(out, s.opponents)
	return out
}

// Unowned returns a copy of the unowned projectile pool.
func (s *Session) Unowned() []Projectile {
	out := make([]Projectile, len(s.unowned))
	copy(out, s.unowned)
	return out
}

// Kills returns the number of opponents shot down by the player.
func (s *Session) Kills() int { return s.kills }

// Crashes returns the number of opponent contacts.
func (s *Session) Crashes() int { return s.crashes }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Over reports whether the session reached a terminal state.
func (s *Session) Over() bool { return s.over }

// Won reports whether the terminal state is a win.
func (s *Session) Won() bool { return s.won }

// TickCount returns the number of ticks run since the level was created.
func (s *Session) TickCount() int { return s.tick }

// Log returns the session event log.
func (s *Session) Log() *SimLog { return s.log }

// SetLog replaces the event log, e.g. with a verbose one.
func (s *Session) SetLog(l *SimLog) { s.log = l }

// --- Player intent ---

// QueueMove queues a player heading. Sending the already-queued heading again
// clears it ("tap again to stop"); DirNone on its own changes nothing.
func (s *Session) QueueMove(dir Direction) {
	switch {
	case s.player.nextDir == dir:
		s.player.nextDir = DirNone
	case dir != DirNone:
		s.player.nextDir = dir
	}
}

// Stop clears the queued heading by re-sending it.
func (s *Session) Stop() {
	s.QueueMove(s.player.nextDir)
}

// Fire sets the player's pending fire direction.
func (s *Session) Fire(dir Direction) {
	s.player.fireDir = dir
}

// TogglePause flips the pause flag.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.log.Add(s.tick, "--", "level", "pause", fmt.Sprintf("paused=%t", s.paused), 0)
}
