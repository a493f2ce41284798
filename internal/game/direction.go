package game

import "fmt"

// Direction is a cardinal heading for units and projectiles.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// ProbeMode maps a heading to the hit-test mode that detects an obstacle
// touching the moving rectangle on that side. DirNone probes the interior only.
func (d Direction) ProbeMode() HitTestMode {
	switch d {
	case DirUp:
		return HitUp
	case DirDown:
		return HitDown
	case DirLeft:
		return HitLeft
	case DirRight:
		return HitRight
	default:
		return HitInner
	}
}

// Delta returns the unit step for the heading.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// mustBeConcrete panics when a heading is required but none was given.
func mustBeConcrete(d Direction, what string) {
	if d == DirNone || d < DirNone || d > DirRight {
		panic(fmt.Sprintf("game: %s needs a concrete direction, got %s", what, d))
	}
}
