package game

// CellKind identifies the surface of one terrain cell.
type CellKind uint8

const (
	CellOpen     CellKind = iota // passable to all, does not stop fire
	CellPit                      // stops the player only
	CellWall                     // stops every unit and every projectile
	CellConveyor                 // passable, but the player keeps sliding on it
)

func (k CellKind) String() string {
	switch k {
	case CellOpen:
		return "open"
	case CellPit:
		return "pit"
	case CellWall:
		return "wall"
	case CellConveyor:
		return "conveyor"
	default:
		return "unknown"
	}
}

// blocksUnit reports whether the cell kind stops a unit from entering.
func (k CellKind) blocksUnit(isPlayer bool) bool {
	switch k {
	case CellWall:
		return true
	case CellPit:
		return isPlayer
	default:
		return false
	}
}

// blocksFire reports whether the cell kind stops projectiles.
func (k CellKind) blocksFire() bool {
	return k == CellWall
}

// Cell is one fixed tile of the terrain grid.
type Cell struct {
	Rect
	Kind CellKind
	Col  int
	Row  int
}

// Terrain is the immutable cell set of a level. It is built once by
// GenerateLevel (or a test harness) and only read during ticks.
type Terrain struct {
	cells []Cell
}

// NewTerrain wraps a cell list. The slice is copied so callers cannot mutate
// the level afterwards.
func NewTerrain(cells []Cell) *Terrain {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return &Terrain{cells: out}
}

// Cells returns a copy of every cell, in generation order.
func (t *Terrain) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)
	return out
}

// Len returns the number of cells.
func (t *Terrain) Len() int { return len(t.cells) }

// touchesKind reports whether any cell of the given kind overlaps r under mode.
func (t *Terrain) touchesKind(r Rect, kind CellKind, mode HitTestMode) bool {
	for i := range t.cells {
		c := &t.cells[i]
		if c.Kind == kind && c.Overlaps(r, mode) {
			return true
		}
	}
	return false
}

// fireBlocked reports whether a wall touches r on the probe side of dir.
func (t *Terrain) fireBlocked(r Rect, dir Direction) bool {
	mode := dir.ProbeMode()
	for i := range t.cells {
		c := &t.cells[i]
		if c.Kind.blocksFire() && c.Overlaps(r, mode) {
			return true
		}
	}
	return false
}

// inWall reports whether r strictly overlaps any wall cell.
func (t *Terrain) inWall(r Rect) bool {
	return t.touchesKind(r, CellWall, HitInner)
}

// levelKind returns the cell kind of the fixed arcade layout at (col,row).
//
//	walls on the border and on every even/even cell, pits elsewhere;
//	inside the arena block pits turn into open floor on odd/odd cells and
//	conveyors on the rest.
func levelKind(col, row, cols, rows int) CellKind {
	kind := CellPit
	if col%2 == 0 && row%2 == 0 {
		kind = CellWall
	}

	inArena := col >= 3 && row >= 3 && col <= cols-4 && row <= rows-3
	if inArena && kind == CellPit {
		if col%2 == 0 || row%2 == 0 {
			kind = CellConveyor
		} else {
			kind = CellOpen
		}
	}

	if col == 0 || col == cols-1 || row == 0 || row == rows-1 {
		kind = CellWall
	}
	return kind
}

// opponentSpawn is one opponent start cell and its hidden state.
type opponentSpawn struct {
	col, row int
	state    BehaviorState
}

// levelSpawns lists the three opponent clusters: a row above the arena that
// slides out sideways, a column on the left and a column on the right that
// step out upward.
func levelSpawns(cols int) []opponentSpawn {
	spawns := make([]opponentSpawn, 0, 11)
	for i := 0; i < 6; i++ {
		spawns = append(spawns, opponentSpawn{col: i*2 + 4, row: 1, state: StateHiddenLeft})
	}
	for i := 0; i < 3; i++ {
		spawns = append(spawns, opponentSpawn{col: 1, row: i*4 + 4, state: StateHiddenUp})
	}
	for i := 0; i < 2; i++ {
		spawns = append(spawns, opponentSpawn{col: cols - 2, row: i*4 + 6, state: StateHiddenUp})
	}
	return spawns
}

// GenerateLevel builds the fixed arcade terrain for cfg, column by column.
func GenerateLevel(cfg Config) *Terrain {
	cells := make([]Cell, 0, cfg.Cols*cfg.Rows)
	for col := 0; col < cfg.Cols; col++ {
		for row := 0; row < cfg.Rows; row++ {
			cells = append(cells, Cell{
				Rect: Rect{
					X: float64(col) * cfg.CellW,
					Y: float64(row) * cfg.CellH,
					W: cfg.CellW,
					H: cfg.CellH,
				},
				Kind: levelKind(col, row, cfg.Cols, cfg.Rows),
				Col:  col,
				Row:  row,
			})
		}
	}
	return &Terrain{cells: cells}
}
