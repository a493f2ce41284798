package game

import "math/rand/v2"

// Dice is the randomness the behaviour automaton consumes.
// *rand.Rand satisfies it; tests swap in scripted rolls.
type Dice interface {
	IntN(n int) int
}

// seededDice is a PCG-backed Dice whose state can be saved and restored,
// which snapshots rely on to reproduce the next tick exactly.
type seededDice struct {
	src *rand.PCG
	rng *rand.Rand
}

func newSeededDice(seed uint64) *seededDice {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &seededDice{src: src, rng: rand.New(src)} // #nosec G404 -- game only
}

func (d *seededDice) IntN(n int) int { return d.rng.IntN(n) }

func (d *seededDice) state() ([]byte, error) { return d.src.MarshalBinary() }

func (d *seededDice) restore(b []byte) error { return d.src.UnmarshalBinary(b) }

// roll reports a 1-in-n success.
func roll(d Dice, n int) bool {
	return d.IntN(n) == 0
}
