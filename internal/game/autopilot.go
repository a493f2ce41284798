package game

import (
	"fmt"
	"math"
)

// Policy writes player intent before a tick. Headless runs use it in place
// of keyboard input.
type Policy interface {
	Name() string
	Act(s *Session)
}

// IdlePolicy never moves or fires.
type IdlePolicy struct{}

func (IdlePolicy) Name() string { return "idle" }

func (IdlePolicy) Act(*Session) {}

// SentryPolicy holds position and shoots the nearest opponent it is lined
// up with, using the same alignment rule as opponents.
type SentryPolicy struct{}

func (SentryPolicy) Name() string { return "sentry" }

func (SentryPolicy) Act(s *Session) {
	if s.player.BulletCount() >= s.player.maxBullets {
		return
	}
	best, bestDist := DirNone, math.Inf(1)
	p := s.player.body
	for _, e := range s.opponents {
		dir := aimAt(p, e.body)
		if dir == DirNone {
			continue
		}
		d := math.Abs(e.body.X-p.X) + math.Abs(e.body.Y-p.Y)
		if d < bestDist {
			best, bestDist = dir, d
		}
	}
	if best != DirNone {
		s.Fire(best)
	}
}

// PolicyByName resolves a policy flag value.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "idle":
		return IdlePolicy{}, nil
	case "sentry":
		return SentryPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (supported: idle, sentry)", name)
	}
}
