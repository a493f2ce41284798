package game

// HitTestMode selects which edge comparisons of an overlap test are inclusive.
type HitTestMode int

const (
	HitFull  HitTestMode = iota // every edge inclusive: overlap or touch
	HitInner                    // every edge exclusive: strict interior overlap
	HitLeft                     // only the left edge pair inclusive
	HitRight                    // only the right edge pair inclusive
	HitUp                       // only the top edge pair inclusive
	HitDown                     // only the bottom edge pair inclusive
)

func (m HitTestMode) String() string {
	switch m {
	case HitFull:
		return "full"
	case HitInner:
		return "inner"
	case HitLeft:
		return "left"
	case HitRight:
		return "right"
	case HitUp:
		return "up"
	case HitDown:
		return "down"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in field pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether r and other intersect under the given mode.
//
// The directional modes answer "is other touching r from that side": with
// HitLeft a rectangle whose right edge sits exactly on other's left edge counts,
// while the perpendicular axis still needs strict overlap, so a diagonal
// neighbour never blocks.
func (r Rect) Overlaps(other Rect, mode HitTestMode) bool {
	var left, right, up, down bool

	if mode == HitFull || mode == HitLeft {
		left = r.Right() >= other.X
	} else {
		left = r.Right() > other.X
	}
	if mode == HitFull || mode == HitRight {
		right = r.X <= other.Right()
	} else {
		right = r.X < other.Right()
	}
	if mode == HitFull || mode == HitUp {
		up = r.Bottom() >= other.Y
	} else {
		up = r.Bottom() > other.Y
	}
	if mode == HitFull || mode == HitDown {
		down = r.Y <= other.Bottom()
	} else {
		down = r.Y < other.Bottom()
	}

	return left && right && up && down
}

// SharesColumn reports whether the horizontal spans of r and other overlap
// strictly, i.e. one could shoot the other straight up or down.
func (r Rect) SharesColumn(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// SharesRow reports whether the vertical spans of r and other overlap strictly.
func (r Rect) SharesRow(other Rect) bool {
	return r.Y < other.Bottom() && r.Bottom() > other.Y
}
