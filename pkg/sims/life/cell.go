package life

// CellState is the state of a single cell. The numeric values double as the
// exported 0/1 representation and as the live-neighbor weight.
type CellState uint8

const (
	Dead  CellState = 0
	Alive CellState = 1
)

// Alive reports whether the cell is alive.
func (c CellState) Alive() bool { return c == Alive }

// String renders the cell the way Grid.String does.
func (c CellState) String() string {
	if c == Alive {
		return "■"
	}
	return "□"
}

// cellStateOf maps an external 0/1 value onto a CellState.
func cellStateOf(v int) (CellState, bool) {
	switch v {
	case 0:
		return Dead, true
	case 1:
		return Alive, true
	}
	return Dead, false
}

// next applies B3/S23 to a cell given its live-neighbor count.
func next(c CellState, n int) CellState {
	switch {
	case c == Dead && n == 3:
		return Alive
	case c == Alive && (n == 2 || n == 3):
		return Alive
	}
	return Dead
}
