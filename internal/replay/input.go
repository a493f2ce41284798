// Package replay records the player inputs of a session and plays them back
// deterministically against a fresh session built from the same config.
package replay

import "github.com/Garsondee/Cross-Fire/internal/game"

// Kind identifies one player command.
type Kind uint8

const (
	KindMove Kind = iota + 1
	KindStop
	KindFire
	KindPause
	KindRestart
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindStop:
		return "stop"
	case KindFire:
		return "fire"
	case KindPause:
		return "pause"
	case KindRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Input is one player command. Dir is only meaningful for move and fire.
type Input struct {
	Kind Kind           `msgpack:"kind"`
	Dir  game.Direction `msgpack:"dir,omitempty"`
}

// Move queues a heading; sending the queued heading again clears it.
func Move(d game.Direction) Input { return Input{Kind: KindMove, Dir: d} }

// Stop clears the queued heading.
func Stop() Input { return Input{Kind: KindStop} }

// Fire sets the pending fire direction.
func Fire(d game.Direction) Input { return Input{Kind: KindFire, Dir: d} }

func Pause() Input { return Input{Kind: KindPause} }

func Restart() Input { return Input{Kind: KindRestart} }

func (in Input) String() string {
	if in.Kind == KindMove || in.Kind == KindFire {
		return in.Kind.String() + " " + in.Dir.String()
	}
	return in.Kind.String()
}

// Apply writes the input to the session. Restart only takes effect once the
// session is over.
func Apply(s *game.Session, in Input) {
	switch in.Kind {
	case KindMove:
		s.QueueMove(in.Dir)
	case KindStop:
		s.Stop()
	case KindFire:
		s.Fire(in.Dir)
	case KindPause:
		s.TogglePause()
	case KindRestart:
		if s.Over() {
			s.CreateLevel()
		}
	}
}
