// Package game runs a simulation for a number of generations, displaying
// each one.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/utils"
)

// ErrUserInterrupt is returned when the run was stopped from outside.
var ErrUserInterrupt = errors.New("user interrupt")

// Renderer shows a generation.
type Renderer interface {
	Display(g *model.Grid) error
}

// Game drives a Simulator and hands every generation to a Renderer.
type Game struct {
	sim      *model.Simulator
	renderer Renderer
	stats    *utils.Stats
	history  *model.History

	// Iterations bounds the number of steps; 0 runs until the context ends.
	Iterations int
	Delay      time.Duration
}

// New returns a Game over sim. A nil renderer displays nothing.
func New(sim *model.Simulator, renderer Renderer, iterations int, delay time.Duration) *Game {
	return &Game{
		sim:        sim,
		renderer:   renderer,
		stats:      utils.NewStats(),
		Iterations: iterations,
		Delay:      delay,
	}
}

// StopOnStagnation ends the run once a generation repeats one of the last
// historySize generations.
func (g *Game) StopOnStagnation(historySize int) {
	g.history = model.NewHistory(historySize)
}

// Grid returns the grid being simulated.
func (g *Game) Grid() *model.Grid {
	return g.sim.Grid()
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Run displays the initial grid and then steps and displays each generation.
// Cancellation is only observed between steps, so the grid always holds a
// complete generation when Run returns ErrUserInterrupt.
func (g *Game) Run(ctx context.Context) error {
	grid := g.sim.Grid()
	if err := g.display(grid); err != nil {
		return err
	}

	lastFrame := time.Now()
	for generation := 1; g.Iterations == 0 || generation <= g.Iterations; generation++ {
		if ctx.Err() != nil {
			return ErrUserInterrupt
		}

		if g.history != nil {
			g.history.Record(grid)
		}

		if err := g.sim.Step(); err != nil {
			return errors.Wrapf(err, "[Run] generation %d", generation)
		}

		frameStart := time.Now()
		g.stats.Update(generation, grid.Population(), frameStart.Sub(lastFrame))
		lastFrame = frameStart

		if err := g.sleep(ctx); err != nil {
			return err
		}
		if err := g.display(grid); err != nil {
			return err
		}

		if g.history != nil {
			if period := g.history.Period(grid); period > 0 {
				g.stats.StopReason = stagnationReason(period)
				return nil
			}
		}
	}

	return nil
}

func (g *Game) display(grid *model.Grid) error {
	if g.renderer == nil {
		return nil
	}
	return errors.Wrap(g.renderer.Display(grid), "[Run] display failed")
}

func (g *Game) sleep(ctx context.Context) error {
	if g.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ErrUserInterrupt
	case <-timer.C:
		return nil
	}
}

func stagnationReason(period int) string {
	if period == 1 {
		return "still life"
	}
	return fmt.Sprintf("oscillating with period %d", period)
}
