package game

import "fmt"

// Outcome is the result of a session.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Outcome returns the current result.
func (s *Session) Outcome() Outcome {
	switch {
	case !s.over:
		return OutcomeInProgress
	case s.won:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

// checkOutcome ends the session when the player is out of lives (loss) or no
// opponents remain (win). Losing takes precedence.
func (s *Session) checkOutcome() {
	switch {
	case s.player.lives <= 0:
		s.over, s.won = true, false
	case len(s.opponents) == 0:
		s.over, s.won = true, true
	default:
		return
	}
	s.log.Add(s.tick, "--", "outcome", s.Outcome().String(),
		fmt.Sprintf("kills=%d crashes=%d lives=%d", s.kills, s.crashes, s.player.lives), float64(s.kills))
}

// Summary is a compact view of a session for reports and the clipboard.
type Summary struct {
	Tick      int
	Outcome   Outcome
	Lives     int
	Kills     int
	Crashes   int
	Opponents int
	Unowned   int
}

// Summary returns the current counters.
func (s *Session) Summary() Summary {
	return Summary{
		Tick:      s.tick,
		Outcome:   s.Outcome(),
		Lives:     s.player.lives,
		Kills:     s.kills,
		Crashes:   s.crashes,
		Opponents: len(s.opponents),
		Unowned:   len(s.unowned),
	}
}

func (sm Summary) String() string {
	return fmt.Sprintf("T=%d outcome=%s lives=%d kills=%d crashes=%d opponents=%d unowned=%d",
		sm.Tick, sm.Outcome, sm.Lives, sm.Kills, sm.Crashes, sm.Opponents, sm.Unowned)
}
