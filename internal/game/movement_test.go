package game

import "testing"

func TestMove_OpenGroundAdoptsQueuedHeading(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5))
	s := ts.Session
	s.QueueMove(DirRight)
	ts.Step()

	p := s.Player()
	if p.Rect().X != 5*32+2 || p.Rect().Y != 5*32 {
		t.Fatalf("player at (%g,%g), want (162,160)", p.Rect().X, p.Rect().Y)
	}
	if p.Dir() != DirRight || p.NextDir() != DirRight {
		t.Fatalf("dir=%s next=%s, want right/right", p.Dir(), p.NextDir())
	}
}

func TestMove_BlockedQueuedHeadingStops(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5), WithCell(6, 5, CellWall))
	s := ts.Session
	s.QueueMove(DirRight)
	ts.Step()

	p := s.Player()
	if p.Rect().X != 160 {
		t.Fatalf("player moved into wall: x=%g", p.Rect().X)
	}
	if p.Dir() != DirNone || p.NextDir() != DirNone {
		t.Fatalf("dir=%s next=%s, want none/none", p.Dir(), p.NextDir())
	}
}

func TestMove_ReverseAwayFromWall(t *testing.T) {
	for _, under := range []CellKind{CellOpen, CellConveyor} {
		t.Run(under.String(), func(t *testing.T) {
			ts := quietSim(WithPlayerAt(5, 5), WithCell(6, 5, CellWall), WithCell(5, 5, under))
			p := ts.Session.player
			p.dir, p.nextDir = DirRight, DirLeft

			moveUnit(p, ts.Session.terrain, true)

			if p.dir != DirLeft {
				t.Fatalf("dir=%s, want left", p.dir)
			}
			if p.body.X != 158 {
				t.Fatalf("x=%g, want 158", p.body.X)
			}
		})
	}
}

func TestMove_PitBlocksPlayerOnly(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5), WithCell(6, 5, CellPit), WithCell(6, 7, CellPit))
	s := ts.Session

	s.QueueMove(DirRight)
	moveUnit(s.player, s.terrain, true)
	if s.player.body.X != 160 {
		t.Fatalf("player crossed a pit: x=%g", s.player.body.X)
	}

	e := newUnit("E9", 5*32, 7*32, s.cfg, 1, StateAttacking)
	e.nextDir = DirRight
	moveUnit(e, s.terrain, false)
	if e.body.X != 162 {
		t.Fatalf("opponent stopped at a pit: x=%g", e.body.X)
	}
}

func TestMove_WallBlocksOpponent(t *testing.T) {
	ts := quietSim(WithCell(6, 7, CellWall))
	e := newUnit("E9", 5*32, 7*32, ts.Session.cfg, 1, StateAttacking)
	e.nextDir = DirRight
	moveUnit(e, ts.Session.terrain, false)
	if e.body.X != 160 || e.dir != DirNone {
		t.Fatalf("opponent entered wall: x=%g dir=%s", e.body.X, e.dir)
	}
}

func TestMove_ConveyorHoldsHeadingThenBounces(t *testing.T) {
	ts := quietSim(
		WithPlayerAt(5, 5),
		WithCell(5, 5, CellConveyor),
		WithCell(6, 5, CellConveyor),
		WithCell(7, 5, CellConveyor),
		WithCell(8, 5, CellWall),
	)
	s := ts.Session
	p := s.player
	p.dir, p.nextDir = DirRight, DirUp

	// 32 ticks carry the player from x=160 to the wall at x=224.
	for i := 0; i < 32; i++ {
		ts.Step()
		if p.dir != DirRight {
			dumpLog(t, ts)
			t.Fatalf("tick %d: conveyor let the player turn %s", i+1, p.dir)
		}
	}
	if p.body.X != 224 || p.body.Y != 160 {
		t.Fatalf("player at (%g,%g), want (224,160)", p.body.X, p.body.Y)
	}

	ts.Step()
	if p.dir != DirLeft || p.nextDir != DirNone {
		t.Fatalf("after bounce dir=%s next=%s, want left/none", p.dir, p.nextDir)
	}
	if p.body.X != 222 {
		t.Fatalf("x=%g after bounce, want 222", p.body.X)
	}
}

func TestMove_MidCellTurnIntoWallStops(t *testing.T) {
	// Half way across a cell the perpendicular probe sees the wall diagonal
	// to the start cell, so the turn is refused and the unit stops.
	ts := quietSim(WithPlayerAt(5, 5), WithCell(5, 4, CellWall), WithCell(6, 4, CellOpen))
	s := ts.Session
	p := s.player
	s.QueueMove(DirRight)
	for i := 0; i < 8; i++ {
		ts.Step()
	}
	if p.body.X != 176 {
		t.Fatalf("x=%g, want 176", p.body.X)
	}
	s.QueueMove(DirUp)
	ts.Step()
	if p.dir != DirNone || p.body.Y != 160 || p.body.X != 176 {
		t.Fatalf("turn into wall: dir=%s at (%g,%g)", p.dir, p.body.X, p.body.Y)
	}
}
