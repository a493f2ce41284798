package game

import "testing"

// scriptedDice replays fixed rolls, then fails every roll (n-1) once the
// script runs out.
type scriptedDice struct {
	rolls []int
	calls int
}

func (d *scriptedDice) IntN(n int) int {
	d.calls++
	if len(d.rolls) > 0 {
		v := d.rolls[0]
		d.rolls = d.rolls[1:]
		if v >= n {
			v = n - 1
		}
		return v
	}
	if n <= 1 {
		return 0
	}
	return n - 1
}

// quietSim builds an open-field session with one parked opponent in the far
// corner, so the session does not end on the first tick, and dice that never
// succeed unless scripted.
func quietSim(opts ...SimOption) *TestSim {
	base := []SimOption{
		WithOpenField(),
		WithDice(&scriptedDice{}),
		WithOpponentAt(15, 12, StateHiddenLeft),
	}
	return NewTestSim(append(base, opts...)...)
}

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// cellKindAt returns the kind of the cell at (col,row).
func cellKindAt(t *testing.T, tr *Terrain, col, row int) CellKind {
	t.Helper()
	for _, c := range tr.cells {
		if c.Col == col && c.Row == row {
			return c.Kind
		}
	}
	t.Fatalf("no cell at (%d,%d)", col, row)
	return CellOpen
}
