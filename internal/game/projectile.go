package game

// spawnOrigin returns the top-left corner of a projectile fired from body in
// dir. Left and up shots sit flush with the firing edge; right and down shots
// leave a one-projectile gap. The perpendicular axis is centred.
func spawnOrigin(body Rect, dir Direction, bw, bh float64) (x, y float64) {
	mustBeConcrete(dir, "projectile spawn")
	switch dir {
	case DirLeft:
		return body.X - bw, body.CenterY() - bh/2
	case DirRight:
		return body.Right() + bw, body.CenterY() - bh/2
	case DirUp:
		return body.CenterX() - bw/2, body.Y - bh
	default: // DirDown
		return body.CenterX() - bw/2, body.Bottom() + bh
	}
}

// tryFire spawns a projectile for u when it has a pending shot, is under its
// cap and no wall touches it on the firing side. A blocked or capped shot
// stays pending and is retried next tick. Reports whether a shot was fired.
func tryFire(u *Unit, t *Terrain, bw, bh float64) bool {
	if len(u.bullets) >= u.maxBullets {
		return false
	}
	if u.fireDir == DirNone {
		return false
	}
	if t.fireBlocked(u.body, u.fireDir) {
		return false
	}

	x, y := spawnOrigin(u.body, u.fireDir, bw, bh)
	u.bullets = append(u.bullets, Projectile{
		Rect: Rect{X: x, Y: y, W: bw, H: bh},
		Dir:  u.fireDir,
	})
	u.fireDir = DirNone
	return true
}

// advanceProjectiles moves every projectile one step along its heading.
func advanceProjectiles(ps []Projectile, speed float64) {
	for i := range ps {
		dx, dy := ps[i].Dir.Delta()
		ps[i].X += dx * speed
		ps[i].Y += dy * speed
	}
}

// spawnProjectiles gives the player and then each opponent a chance to fire.
func (s *Session) spawnProjectiles() {
	bw, bh := s.cfg.BulletW, s.cfg.BulletH
	if dir := s.player.fireDir; tryFire(s.player, s.terrain, bw, bh) {
		s.log.Add(s.tick, s.player.label, "fire", "shot", dir.String(), 0)
	}
	for _, e := range s.opponents {
		if dir := e.fireDir; tryFire(e, s.terrain, bw, bh) {
			s.log.Add(s.tick, e.label, "fire", "shot", dir.String(), 0)
		}
	}
}

// moveProjectiles advances owned projectiles at their owner's speed and the
// unowned pool at the player's projectile speed.
func (s *Session) moveProjectiles() {
	advanceProjectiles(s.player.bullets, s.player.bulletSpeed)
	for _, e := range s.opponents {
		advanceProjectiles(e.bullets, e.bulletSpeed)
	}
	advanceProjectiles(s.unowned, s.player.bulletSpeed)
}
