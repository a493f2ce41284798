package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Garsondee/Cross-Fire/internal/game"
)

const recordingVersion = 1

// ErrBadRecording is returned (wrapped) for recordings that cannot be played.
var ErrBadRecording = errors.New("bad recording")

// Event is an input applied before the given frame's tick.
type Event struct {
	Frame int   `msgpack:"frame"`
	Input Input `msgpack:"input"`
}

// Recording is everything needed to reproduce a session: the config (seed
// included), the ordered inputs and the number of frames stepped.
type Recording struct {
	Version int         `msgpack:"version"`
	ID      string      `msgpack:"id"`
	Config  game.Config `msgpack:"config"`
	Events  []Event     `msgpack:"events"`
	Frames  int         `msgpack:"frames"`
}

// Recorder captures inputs while a session is driven frame by frame. A frame
// is one call to Tick, whether or not the session advanced, so pauses and
// restarts replay at the right moment.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a session built from cfg.
func NewRecorder(cfg game.Config) *Recorder {
	return &Recorder{rec: Recording{
		Version: recordingVersion,
		ID:      uuid.NewString(),
		Config:  cfg,
	}}
}

// ID returns the recording identifier.
func (r *Recorder) ID() string { return r.rec.ID }

// Frame returns the number of frames stepped so far.
func (r *Recorder) Frame() int { return r.rec.Frames }

// Apply records the input and applies it to s.
func (r *Recorder) Apply(s *game.Session, in Input) {
	r.rec.Events = append(r.rec.Events, Event{Frame: r.rec.Frames, Input: in})
	Apply(s, in)
}

// Tick steps the session one frame and reports whether it advanced.
func (r *Recorder) Tick(s *game.Session) bool {
	r.rec.Frames++
	return s.Tick()
}

// Recording returns a copy of what has been captured so far.
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Events = append([]Event(nil), r.rec.Events...)
	return out
}

// Validate checks that a recording can be played back.
func (rec Recording) Validate() error {
	if rec.Version != recordingVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadRecording, rec.Version)
	}
	if _, err := uuid.Parse(rec.ID); err != nil {
		return fmt.Errorf("%w: id: %v", ErrBadRecording, err)
	}
	last := 0
	for i, ev := range rec.Events {
		if ev.Frame < last || ev.Frame >= rec.Frames {
			return fmt.Errorf("%w: event %d at frame %d out of order", ErrBadRecording, i, ev.Frame)
		}
		last = ev.Frame
	}
	return nil
}

// Play rebuilds the session from the recording's config and replays every
// frame. The result matches the recorded session tick for tick.
func Play(rec Recording) (*game.Session, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	s, err := game.NewSession(rec.Config)
	if err != nil {
		return nil, fmt.Errorf("play %s: %w", rec.ID, err)
	}
	next := 0
	for frame := 0; frame < rec.Frames; frame++ {
		for next < len(rec.Events) && rec.Events[next].Frame == frame {
			Apply(s, rec.Events[next].Input)
			next++
		}
		s.Tick()
	}
	return s, nil
}

// Encode serialises a recording with msgpack.
func Encode(rec Recording) ([]byte, error) {
	b, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("encode recording: %w", err)
	}
	return b, nil
}

// Decode parses a msgpack-encoded recording.
func Decode(b []byte) (Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return Recording{}, fmt.Errorf("decode recording: %w", err)
	}
	return rec, nil
}

// Save writes the encoded recording to path.
func Save(path string, rec Recording) error {
	b, err := Encode(rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	return nil
}

// Load reads a recording written by Save.
func Load(path string) (Recording, error) {
	b, err := os.ReadFile(path) // #nosec G304 -- path comes from a flag
	if err != nil {
		return Recording{}, fmt.Errorf("load recording: %w", err)
	}
	return Decode(b)
}
