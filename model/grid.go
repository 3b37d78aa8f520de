package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/rules"
)

// CellState is the liveness of a cell, shared with the rule table.
type CellState = rules.CellState

const (
	Dead  = rules.Dead
	Alive = rules.Alive
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions is returned for a negative width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// Coordinate identifies a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Source supplies the shape and initial liveness of a grid.
type Source interface {
	Dimensions() (width, height int)
	IsLive(c Coordinate) bool
}

// Grid is a bounded board of cell states. Its dimensions and neighbor
// topology are fixed at construction; only the states change.
type Grid struct {
	width  int
	height int
	states []CellState

	// neighbors[i] holds the in-range Moore neighbors of cell i as flat indices.
	neighbors [][]int
}

// NewGrid creates a width x height grid, asking alive for the initial
// state of every cell. A nil alive starts every cell dead.
func NewGrid(width, height int, alive func(Coordinate) bool) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		states: make([]CellState, width*height),
	}
	if alive != nil {
		for row := range height {
			for col := range width {
				if alive(Coordinate{Row: row, Col: col}) {
					g.states[g.index(row, col)] = Alive
				}
			}
		}
	}
	g.buildNeighbors()

	return g, nil
}

// NewGridFrom creates a grid from a configuration source.
func NewGridFrom(src Source) (*Grid, error) {
	width, height := src.Dimensions()
	return NewGrid(width, height, src.IsLive)
}

func (g *Grid) buildNeighbors() {
	g.neighbors = make([][]int, len(g.states))
	for row := range g.height {
		for col := range g.width {
			adj := make([]int, 0, 8)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					r, c := row+dr, col+dc
					if r < 0 || r >= g.height || c < 0 || c >= g.width {
						continue
					}
					adj = append(adj, g.index(r, c))
				}
			}
			g.neighbors[g.index(row, col)] = adj
		}
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

func (g *Grid) coordinate(i int) Coordinate {
	return Coordinate{Row: i / g.width, Col: i % g.width}
}

// Dimensions returns the width and height of the grid.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func (g *Grid) checkBounds(op string, c Coordinate) error {
	if g.InBounds(c) {
		return nil
	}
	return errors.Wrapf(ErrOutOfBounds, "[%s] %v outside %dx%d grid", op, c, g.width, g.height)
}

// StateAt returns the current state of c.
func (g *Grid) StateAt(c Coordinate) (CellState, error) {
	if err := g.checkBounds("StateAt", c); err != nil {
		return Dead, err
	}
	return g.states[g.index(c.Row, c.Col)], nil
}

// SetStateAt overwrites the state of c.
func (g *Grid) SetStateAt(c Coordinate, state CellState) error {
	if err := g.checkBounds("SetStateAt", c); err != nil {
		return err
	}
	g.states[g.index(c.Row, c.Col)] = state
	return nil
}

// LiveNeighborCount returns how many of the neighbors of c are alive right now.
func (g *Grid) LiveNeighborCount(c Coordinate) (int, error) {
	if err := g.checkBounds("LiveNeighborCount", c); err != nil {
		return 0, err
	}
	return g.liveNeighbors(g.index(c.Row, c.Col)), nil
}

func (g *Grid) liveNeighbors(i int) int {
	count := 0
	for _, n := range g.neighbors[i] {
		if g.states[n] == Alive {
			count++
		}
	}
	return count
}

// Neighbors returns the in-range neighbors of c in (dr, dc) enumeration order.
func (g *Grid) Neighbors(c Coordinate) ([]Coordinate, error) {
	if err := g.checkBounds("Neighbors", c); err != nil {
		return nil, err
	}
	adj := g.neighbors[g.index(c.Row, c.Col)]
	out := make([]Coordinate, len(adj))
	for i, n := range adj {
		out[i] = g.coordinate(n)
	}
	return out, nil
}

// Clone returns an independent copy of the grid. The topology is shared
// since it never changes.
func (g *Grid) Clone() *Grid {
	states := make([]CellState, len(g.states))
	copy(states, g.states)
	return &Grid{
		width:     g.width,
		height:    g.height,
		states:    states,
		neighbors: g.neighbors,
	}
}

// Population returns the number of living cells.
func (g *Grid) Population() (count int) {
	for _, s := range g.states {
		if s == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current states.
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.states))
	for i, s := range g.states {
		if s == Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
