package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-conway/rules"
)

// Simulator advances a Grid one generation at a time.
type Simulator struct {
	grid    *Grid
	workers int
	counts  []uint8
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithWorkers sets how many goroutines count neighbors during a step.
// Values below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		s.workers = n
	}
}

// NewSimulator returns a sequential Simulator for grid unless configured otherwise.
func NewSimulator(grid *Grid, opts ...Option) *Simulator {
	s := &Simulator{
		grid:    grid,
		workers: 1,
		counts:  make([]uint8, len(grid.states)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the grid the simulator drives.
func (s *Simulator) Grid() *Grid {
	return s.grid
}

// Step advances the grid by exactly one generation. Every live-neighbor
// count is taken from the current generation before any state is written.
// If counting fails the grid is left untouched.
func (s *Simulator) Step() error {
	if err := s.countNeighbors(); err != nil {
		return errors.Wrap(err, "[Step] neighbor count failed")
	}

	g := s.grid
	for i, n := range s.counts {
		g.states[i] = rules.Next(g.states[i], int(n))
	}
	return nil
}

// countNeighbors fills s.counts from the unmodified grid. Rows are split
// across workers; each worker writes a disjoint band of counts.
func (s *Simulator) countNeighbors() error {
	g := s.grid
	if s.workers <= 1 || g.height < 2 {
		for i := range s.counts {
			s.counts[i] = uint8(g.liveNeighbors(i))
		}
		return nil
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(s.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for idx := startRow * g.width; idx < endRow*g.width; idx++ {
				s.counts[idx] = uint8(g.liveNeighbors(idx))
			}
			return nil
		})
	}

	// Wait is the barrier between counting and commit.
	return eg.Wait()
}
