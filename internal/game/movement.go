package game

// moveUnit resolves one tick of movement for u against the terrain.
//
// Opponents are never treated as sliding: conveyors only affect the player.
// On open ground the queued heading is adopted whenever its probe is clear and
// the unit stops dead when it is not. On a conveyor the current heading holds
// until something blocks it, and then the unit is bounced back the way it
// came. Reversing is always allowed.
func moveUnit(u *Unit, t *Terrain, isPlayer bool) {
	slid := isPlayer && t.touchesKind(u.body, CellConveyor, HitInner)

	nextMode := u.nextDir.ProbeMode()
	curMode := u.dir.ProbeMode()
	blockedNext, blockedCur := false, false
	for i := range t.cells {
		c := &t.cells[i]
		if !c.Kind.blocksUnit(isPlayer) {
			continue
		}
		if c.Overlaps(u.body, nextMode) {
			blockedNext = true
		}
		if c.Overlaps(u.body, curMode) {
			blockedCur = true
		}
	}

	opposite := u.dir.Opposite()
	dir, next := u.dir, u.nextDir
	if !slid || u.nextDir == opposite {
		dir = next
		if blockedNext {
			dir, next = DirNone, DirNone
		}
	} else if blockedCur {
		dir, next = opposite, DirNone
	}

	u.dir, u.nextDir = dir, next
	dx, dy := dir.Delta()
	u.body.X += dx * u.speed
	u.body.Y += dy * u.speed
}

// moveUnits runs the resolver for the player and then every opponent, all
// against the same terrain.
func (s *Session) moveUnits() {
	moveUnit(s.player, s.terrain, true)
	for _, e := range s.opponents {
		moveUnit(e, s.terrain, false)
	}
}
