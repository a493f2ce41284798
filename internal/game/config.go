package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) when a Config cannot drive a session.
var ErrInvalidConfig = errors.New("invalid config")

// Layout constants for the fixed level. The layout code indexes cells up to
// these bounds, so the grid must be at least this large.
const (
	minCols = 17
	minRows = 14
)

// Config holds the tunables of one session. Distances are in field pixels,
// speeds in pixels per tick, chances are "1 in N" per tick.
type Config struct {
	Seed uint64

	CellW float64
	CellH float64
	Cols  int
	Rows  int

	PlayerCol   int
	PlayerRow   int
	PlayerLives int

	OpponentLives int

	UnitSpeed   float64
	BulletSpeed float64
	BulletW     float64
	BulletH     float64
	MaxBullets  int

	EmergeChance  int // hidden opponent starts to emerge
	RetreatChance int // waiting opponent goes back into hiding
	AttackChance  int // waiting opponent starts to attack
}

// DefaultConfig returns the classic arcade tuning on a 17x14 grid of 32px cells.
func DefaultConfig() Config {
	return Config{
		Seed:          1,
		CellW:         32,
		CellH:         32,
		Cols:          17,
		Rows:          14,
		PlayerCol:     9,
		PlayerRow:     11,
		PlayerLives:   3,
		OpponentLives: 3,
		UnitSpeed:     2,
		BulletSpeed:   4,
		BulletW:       8,
		BulletH:       8,
		MaxBullets:    1,
		EmergeChance:  500,
		RetreatChance: 1000,
		AttackChance:  200,
	}
}

// FieldWidth is the playfield width in pixels.
func (c Config) FieldWidth() float64 { return float64(c.Cols) * c.CellW }

// FieldHeight is the playfield height in pixels.
func (c Config) FieldHeight() float64 { return float64(c.Rows) * c.CellH }

// Validate checks that the config keeps every position on an exact grid of
// speed-sized steps. The behaviour automaton compares positions for exact
// equality, so a speed that does not divide the cell size would strand units.
func (c Config) Validate() error {
	switch {
	case c.CellW <= 0 || c.CellH <= 0:
		return fmt.Errorf("%w: cell size %gx%g must be positive", ErrInvalidConfig, c.CellW, c.CellH)
	case c.Cols < minCols || c.Rows < minRows:
		return fmt.Errorf("%w: grid %dx%d smaller than %dx%d", ErrInvalidConfig, c.Cols, c.Rows, minCols, minRows)
	case c.UnitSpeed <= 0 || c.BulletSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case !divides(c.UnitSpeed, c.CellW) || !divides(c.UnitSpeed, c.CellH):
		return fmt.Errorf("%w: unit speed %g does not divide cell size %gx%g", ErrInvalidConfig, c.UnitSpeed, c.CellW, c.CellH)
	case c.BulletW <= 0 || c.BulletH <= 0:
		return fmt.Errorf("%w: projectile size must be positive", ErrInvalidConfig)
	case c.MaxBullets < 1:
		return fmt.Errorf("%w: max bullets %d must be at least 1", ErrInvalidConfig, c.MaxBullets)
	case c.PlayerLives < 1 || c.OpponentLives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	case c.PlayerCol < 0 || c.PlayerCol >= c.Cols || c.PlayerRow < 0 || c.PlayerRow >= c.Rows:
		return fmt.Errorf("%w: player cell (%d,%d) outside grid", ErrInvalidConfig, c.PlayerCol, c.PlayerRow)
	case c.EmergeChance < 1 || c.RetreatChance < 1 || c.AttackChance < 1:
		return fmt.Errorf("%w: chances are 1-in-N and need N >= 1", ErrInvalidConfig)
	}
	return nil
}

func divides(step, size float64) bool {
	n := size / step
	return n == math.Trunc(n)
}
