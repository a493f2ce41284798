package game

import "fmt"

// Projectile is a bullet in flight. Its heading never changes.
type Projectile struct {
	Rect
	Dir Direction
}

// Unit is the shared shape of the player and every opponent. Only the driver
// differs: the player is steered by input, opponents by the behaviour automaton.
type Unit struct {
	body   Rect
	startX float64
	startY float64
	label  string

	dir     Direction // heading applied this tick
	nextDir Direction // queued heading, adopted when the resolver allows it
	speed   float64
	lives   int

	bulletSpeed float64
	maxBullets  int
	bullets     []Projectile
	fireDir     Direction // pending shot, cleared when a projectile spawns

	state BehaviorState
}

// newUnit places a unit at (x,y) with the session's speeds and caps.
func newUnit(label string, x, y float64, cfg Config, lives int, state BehaviorState) *Unit {
	return &Unit{
		body:        Rect{X: x, Y: y, W: cfg.CellW, H: cfg.CellH},
		startX:      x,
		startY:      y,
		label:       label,
		speed:       cfg.UnitSpeed,
		lives:       lives,
		bulletSpeed: cfg.BulletSpeed,
		maxBullets:  cfg.MaxBullets,
		state:       state,
	}
}

func opponentLabel(i int) string { return fmt.Sprintf("E%d", i) }

// Rect returns the unit's bounding rectangle.
func (u *Unit) Rect() Rect { return u.body }

// Start returns the spawn position.
func (u *Unit) Start() (x, y float64) { return u.startX, u.startY }

// Label returns the short log label, "P" for the player.
func (u *Unit) Label() string { return u.label }

// Dir returns the heading applied on the last tick.
func (u *Unit) Dir() Direction { return u.dir }

// NextDir returns the queued heading.
func (u *Unit) NextDir() Direction { return u.nextDir }

// FireDir returns the pending fire direction.
func (u *Unit) FireDir() Direction { return u.fireDir }

// Lives returns the remaining lives.
func (u *Unit) Lives() int { return u.lives }

// State returns the behaviour state.
func (u *Unit) State() BehaviorState { return u.state }

// MaxBullets returns the live-projectile cap.
func (u *Unit) MaxBullets() int { return u.maxBullets }

// Bullets returns a copy of the unit's live projectiles.
func (u *Unit) Bullets() []Projectile {
	out := make([]Projectile, len(u.bullets))
	copy(out, u.bullets)
	return out
}

// BulletCount returns the number of live projectiles.
func (u *Unit) BulletCount() int { return len(u.bullets) }

// atStart reports whether the unit sits exactly on its spawn position.
func (u *Unit) atStart() bool {
	return u.body.X == u.startX && u.body.Y == u.startY
}

// respawn moves the unit back to its spawn position. Heading is kept.
func (u *Unit) respawn() {
	u.body.X = u.startX
	u.body.Y = u.startY
}

// loseLife takes one life if any remain and reports whether it did.
func (u *Unit) loseLife() bool {
	if u.lives <= 0 {
		return false
	}
	u.lives--
	return true
}

// releaseBullets hands every live projectile to the caller and empties the
// unit's collection.
func (u *Unit) releaseBullets() []Projectile {
	out := u.bullets
	u.bullets = nil
	return out
}
