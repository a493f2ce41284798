package game

// BehaviorState is the automaton state of a unit. The player is always
// StateManual; opponents cycle hidden -> waiting -> attacking, with the
// Left/Up variants naming the direction they step out of hiding.
type BehaviorState int

const (
	StateManual BehaviorState = iota
	StateHiddenLeft
	StateHiddenUp
	StateMovingToWaitLeft
	StateMovingToWaitUp
	StateWaitingLeft
	StateWaitingUp
	StateMovingToHideLeft
	StateMovingToHideUp
	StateAttacking
)

func (s BehaviorState) String() string {
	switch s {
	case StateManual:
		return "manual"
	case StateHiddenLeft:
		return "hidden_left"
	case StateHiddenUp:
		return "hidden_up"
	case StateMovingToWaitLeft:
		return "to_wait_left"
	case StateMovingToWaitUp:
		return "to_wait_up"
	case StateWaitingLeft:
		return "waiting_left"
	case StateWaitingUp:
		return "waiting_up"
	case StateMovingToHideLeft:
		return "to_hide_left"
	case StateMovingToHideUp:
		return "to_hide_up"
	case StateAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// chances bundles the 1-in-N rolls of the automaton.
type chances struct {
	emerge  int
	retreat int
	attack  int
}

// decide runs one automaton step for opponent e and returns its next state and
// queued heading. Terrain and the player are read only.
func decide(e *Unit, player *Unit, t *Terrain, cell Rect, dice Dice, ch chances) (BehaviorState, Direction) {
	state, next := e.state, e.nextDir

	switch e.state {
	case StateManual:
		// Player-driven; never stepped here.

	case StateHiddenLeft, StateHiddenUp:
		next = DirNone
		if roll(dice, ch.emerge) {
			if e.state == StateHiddenLeft {
				state, next = StateMovingToWaitLeft, DirLeft
			} else {
				state, next = StateMovingToWaitUp, DirUp
			}
		}

	case StateMovingToWaitLeft:
		if e.body.X == e.startX-cell.W {
			state, next = StateWaitingLeft, DirNone
		}

	case StateMovingToWaitUp:
		if e.body.Y == e.startY-cell.H {
			state, next = StateWaitingUp, DirNone
		}

	case StateWaitingLeft:
		switch {
		case roll(dice, ch.retreat):
			state, next = StateMovingToHideLeft, DirRight
		case roll(dice, ch.attack):
			state, next = StateAttacking, DirDown
		}

	case StateWaitingUp:
		switch {
		case roll(dice, ch.retreat):
			state, next = StateMovingToHideUp, DirDown
		case roll(dice, ch.attack):
			state = StateAttacking
			if player.body.X > e.body.X {
				next = DirRight
			} else {
				next = DirLeft
			}
		}

	case StateMovingToHideLeft:
		if e.atStart() {
			state, next = StateHiddenLeft, DirNone
		}

	case StateMovingToHideUp:
		if e.atStart() {
			state, next = StateHiddenUp, DirNone
		}

	case StateAttacking:
		onOpen := t.touchesKind(e.body, CellOpen, HitInner)
		onConveyor := t.touchesKind(e.body, CellConveyor, HitInner)
		if onOpen && !onConveyor {
			if dir, ok := closeIn(e.body, player.body, dice); ok {
				next = dir
			}
		}
	}

	return state, next
}

// closeIn picks the heading that closes the gap between a and target. When
// both axes are apart the axis is a coin flip. ok is false when a already
// overlaps target on both axes.
func closeIn(a, target Rect, dice Dice) (Direction, bool) {
	horiz, vert := DirNone, DirNone
	if a.X > target.Right() {
		horiz = DirLeft
	}
	if a.Right() < target.X {
		horiz = DirRight
	}
	if a.Y > target.Bottom() {
		vert = DirUp
	}
	if a.Bottom() < target.Y {
		vert = DirDown
	}

	switch {
	case horiz != DirNone && vert != DirNone:
		if dice.IntN(2) == 0 {
			return horiz, true
		}
		return vert, true
	case horiz != DirNone:
		return horiz, true
	case vert != DirNone:
		return vert, true
	}
	return DirNone, false
}

// aimAt returns the fire direction for a shooter lined up with target: along
// the shared column, then along the shared row, else DirNone.
func aimAt(shooter, target Rect) Direction {
	switch {
	case shooter.SharesColumn(target):
		if shooter.Y > target.Y {
			return DirUp
		}
		return DirDown
	case shooter.SharesRow(target):
		if shooter.X > target.X {
			return DirLeft
		}
		return DirRight
	}
	return DirNone
}

// stepOpponents runs the automaton for every opponent and refreshes its fire
// intent. The fire intent replaces whatever was pending.
func (s *Session) stepOpponents() {
	cell := Rect{W: s.cfg.CellW, H: s.cfg.CellH}
	ch := chances{emerge: s.cfg.EmergeChance, retreat: s.cfg.RetreatChance, attack: s.cfg.AttackChance}

	for _, e := range s.opponents {
		state, next := decide(e, s.player, s.terrain, cell, s.dice, ch)
		if state != e.state {
			s.log.Add(s.tick, e.label, "state", "change", e.state.String()+" → "+state.String(), 0)
		}
		e.state, e.nextDir = state, next
		e.fireDir = aimAt(e.body, s.player.body)
	}
}
