package game

import "testing"

func TestFire_SpawnOffsets(t *testing.T) {
	// Player body is (160,160)-(192,192). Positions are after one 4px step.
	tests := []struct {
		dir  Direction
		x, y float64
	}{
		{DirLeft, 160 - 8 - 4, 172},
		{DirRight, 192 + 8 + 4, 172},
		{DirUp, 172, 160 - 8 - 4},
		{DirDown, 172, 192 + 8 + 4},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			ts := quietSim(WithPlayerAt(5, 5))
			s := ts.Session
			s.Fire(tt.dir)
			ts.Step()

			bs := s.Player().Bullets()
			if len(bs) != 1 {
				t.Fatalf("got %d projectiles, want 1", len(bs))
			}
			if bs[0].X != tt.x || bs[0].Y != tt.y || bs[0].Dir != tt.dir {
				t.Fatalf("projectile at (%g,%g) %s, want (%g,%g) %s",
					bs[0].X, bs[0].Y, bs[0].Dir, tt.x, tt.y, tt.dir)
			}
			if s.Player().FireDir() != DirNone {
				t.Fatalf("fire intent not cleared: %s", s.Player().FireDir())
			}
		})
	}
}

func TestFire_CapHoldsShotPending(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5))
	s := ts.Session
	s.Fire(DirRight)
	ts.Step()
	s.Fire(DirRight)
	ts.Step()

	if n := s.Player().BulletCount(); n != 1 {
		t.Fatalf("bullet count=%d, want 1", n)
	}
	if s.Player().FireDir() != DirRight {
		t.Fatalf("capped shot should stay pending, got %s", s.Player().FireDir())
	}
	if got := ts.Log().CountCategory("fire", "shot"); got != 1 {
		t.Fatalf("fire log entries=%d, want 1", got)
	}
}

func TestFire_WallOnFiringSideBlocks(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5), WithCell(6, 5, CellWall))
	s := ts.Session
	s.Fire(DirRight)
	ts.Step()

	if n := s.Player().BulletCount(); n != 0 {
		t.Fatalf("fired through a wall: %d projectiles", n)
	}
	if s.Player().FireDir() != DirRight {
		t.Fatalf("blocked shot should stay pending, got %s", s.Player().FireDir())
	}

	// The other side is clear.
	s.Fire(DirLeft)
	ts.Step()
	if n := s.Player().BulletCount(); n != 1 {
		t.Fatalf("left shot not fired: %d projectiles", n)
	}
}

func TestFire_PitDoesNotBlock(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5), WithCell(6, 5, CellPit))
	ts.Session.Fire(DirRight)
	ts.Step()
	if n := ts.Session.Player().BulletCount(); n != 1 {
		t.Fatalf("pit blocked fire: %d projectiles", n)
	}
}

func TestProjectile_DestroyedByWall(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5), WithCell(8, 5, CellWall))
	s := ts.Session
	s.Fire(DirRight)
	ts.Step()
	if s.Player().BulletCount() != 1 {
		t.Fatal("expected a projectile in flight")
	}
	ts.RunTicks(20)
	if n := s.Player().BulletCount(); n != 0 {
		t.Fatalf("projectile survived the wall: %d", n)
	}
	if s.Player().Lives() != 3 {
		t.Fatalf("lives=%d, want 3", s.Player().Lives())
	}
}

func TestProjectile_LeavesField(t *testing.T) {
	ts := quietSim(WithPlayerAt(5, 5))
	s := ts.Session
	p := s.player
	p.bullets = []Projectile{{Rect: Rect{X: s.cfg.FieldWidth() - 2, Y: 172, W: 8, H: 8}, Dir: DirRight}}
	s.moveProjectiles()
	s.collideProjectiles()
	if len(p.bullets) != 0 {
		t.Fatal("projectile outside the field should be removed")
	}
}

func TestSpawnOrigin_NonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for DirNone")
		}
	}()
	spawnOrigin(Rect{W: 32, H: 32}, DirNone, 8, 8)
}

func TestFire_OpponentAimsAtAlignedPlayer(t *testing.T) {
	ts := NewTestSim(
		WithOpenField(),
		WithDice(&scriptedDice{}),
		WithPlayerAt(5, 5),
		WithOpponentAt(5, 10, StateHiddenUp),
	)
	ts.Step()
	e := ts.Opponent("E0")
	if e.FireDir() != DirUp {
		t.Fatalf("opponent below player aims %s, want up", e.FireDir())
	}
	ts.Step()
	if e.BulletCount() != 1 {
		t.Fatalf("opponent bullet count=%d, want 1", e.BulletCount())
	}
	if !ts.Log().HasEntry("fire", "shot", "up") {
		dumpLog(t, ts)
		t.Fatal("missing opponent fire entry")
	}
}
