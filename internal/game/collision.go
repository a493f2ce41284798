package game

import (
	"fmt"
	"sort"
)

// indexSet collects indices into one collection during a read-only scan.
// Duplicates collapse; sorted() yields ascending order for removeAt.
type indexSet map[int]struct{}

func (s indexSet) add(i int) { s[i] = struct{}{} }

func (s indexSet) sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// removeAt deletes the elements at the given ascending, unique indices while
// preserving the relative order of the survivors. Each removal shifts later
// elements down by one, so every index is corrected by the number already
// removed. Vacated tail slots are zeroed.
func removeAt[T any](items []T, idx []int) []T {
	removed := 0
	for _, i := range idx {
		j := i - removed
		copy(items[j:], items[j+1:])
		var zero T
		items[len(items)-1] = zero
		items = items[:len(items)-1]
		removed++
	}
	return items
}

// outOfField reports whether a projectile origin has left the playfield.
func (s *Session) outOfField(p Projectile) bool {
	return p.X < 0 || p.X > s.cfg.FieldWidth() || p.Y < 0 || p.Y > s.cfg.FieldHeight()
}

// wreckedProjectiles marks projectiles that left the field or are inside a wall.
func (s *Session) wreckedProjectiles(ps []Projectile) indexSet {
	doomed := indexSet{}
	for i, p := range ps {
		if s.outOfField(p) || s.terrain.inWall(p.Rect) {
			doomed.add(i)
		}
	}
	return doomed
}

// firstStrike returns the index of the first projectile strictly inside target.
// A target takes at most one projectile per collection per tick.
func firstStrike(ps []Projectile, target Rect) (int, bool) {
	for i := range ps {
		if target.Overlaps(ps[i].Rect, HitInner) {
			return i, true
		}
	}
	return 0, false
}

// collideProjectiles resolves projectile hits for one tick: player shots
// first, then the unowned pool, then each opponent's shots. Each collection is
// scanned completely before anything is removed from it. Opponents killed by
// the player lose their surviving projectiles to the unowned pool.
func (s *Session) collideProjectiles() {
	playerHit := false
	killed := indexSet{}

	// 1. Player projectiles: bounds, walls, opponents, the player itself.
	doomed := s.wreckedProjectiles(s.player.bullets)
	for ei, e := range s.opponents {
		if bi, ok := firstStrike(s.player.bullets, e.body); ok {
			doomed.add(bi)
			killed.add(ei)
			s.kills++
			s.log.Add(s.tick, e.label, "kill", "shot_down", fmt.Sprintf("by P, kills=%d", s.kills), float64(s.kills))
		}
	}
	if bi, ok := firstStrike(s.player.bullets, s.player.body); ok {
		doomed.add(bi)
		playerHit = true
		s.log.Add(s.tick, s.player.label, "hit", "self", "own projectile", 0)
	}
	s.player.bullets = removeAt(s.player.bullets, doomed.sorted())

	// 2. Unowned pool: bounds, walls, the player.
	doomed = s.wreckedProjectiles(s.unowned)
	if bi, ok := firstStrike(s.unowned, s.player.body); ok {
		doomed.add(bi)
		playerHit = true
		s.log.Add(s.tick, s.player.label, "hit", "stray", "unowned projectile", 0)
	}
	s.unowned = removeAt(s.unowned, doomed.sorted())

	// 3. Each opponent's projectiles, independently.
	for _, e := range s.opponents {
		doomed = s.wreckedProjectiles(e.bullets)
		if bi, ok := firstStrike(e.bullets, s.player.body); ok {
			doomed.add(bi)
			playerHit = true
			s.log.Add(s.tick, s.player.label, "hit", "shot", "by "+e.label, 0)
		}
		e.bullets = removeAt(e.bullets, doomed.sorted())
	}

	s.removeOpponents(killed.sorted())

	if playerHit {
		s.hitPlayer(true)
	}
}

// collideUnits resolves unit contact for one tick. Every opponent touching
// another opponent or the player is destroyed; each contact counts as a crash.
// Touching the player also costs the player a life, without a respawn.
func (s *Session) collideUnits() {
	crashed := indexSet{}
	playerHit := false

	for i, a := range s.opponents {
		for j, b := range s.opponents {
			if i == j {
				continue
			}
			if a.body.Overlaps(b.body, HitInner) {
				crashed.add(i)
				s.crashes++
				s.log.Add(s.tick, a.label, "crash", "opponent", "into "+b.label, float64(s.crashes))
			}
		}
		if a.body.Overlaps(s.player.body, HitInner) {
			crashed.add(i)
			s.crashes++
			playerHit = true
			s.log.Add(s.tick, a.label, "crash", "player", "into P", float64(s.crashes))
		}
	}

	s.removeOpponents(crashed.sorted())

	if playerHit {
		s.hitPlayer(false)
	}
}

// removeOpponents drops the opponents at the given ascending indices. Their
// live projectiles move to the unowned pool first so they keep flying.
func (s *Session) removeOpponents(idx []int) {
	removed := 0
	for _, i := range idx {
		e := s.opponents[i-removed]
		if n := len(e.bullets); n > 0 {
			s.unowned = append(s.unowned, e.releaseBullets()...)
			s.log.Add(s.tick, e.label, "pool", "transfer", fmt.Sprintf("%d projectile(s) unowned", n), float64(n))
		}
		s.log.Add(s.tick, e.label, "state", "destroyed", e.state.String(), 0)
		removed++
	}
	s.opponents = removeAt(s.opponents, idx)
}

// hitPlayer costs the player one life if any remain, optionally sending it
// back to its spawn position.
func (s *Session) hitPlayer(respawn bool) {
	if !s.player.loseLife() {
		return
	}
	if respawn {
		s.player.respawn()
	}
	s.log.Add(s.tick, s.player.label, "hit", "life_lost",
		fmt.Sprintf("lives=%d respawn=%t", s.player.lives, respawn), float64(s.player.lives))
}
