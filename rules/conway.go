package rules

// CellState is the liveness of a single cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns the state name.
func (s CellState) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Next returns the state following current for a cell with n live neighbors.
func Next(current CellState, n int) CellState {
	if ApplyConwayRules(n, current == Alive) {
		return Alive
	}
	return Dead
}
