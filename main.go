package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-conway/game"
	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/screen"
	"github.com/sheikhrachel/go-conway/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "go-conway: ", 0)

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Println(err)
		return 2
	}

	config, err := loadConfig(opts)
	if err != nil {
		logger.Println(err)
		return 1
	}

	grid, err := buildGrid(config)
	if err != nil {
		logger.Println(err)
		return 1
	}

	var (
		renderer game.Renderer
		scr      *screen.Renderer
	)
	if config.UseScreen {
		scr, err = screen.NewTerminal(utils.Rune(config.AliveGlyph), utils.Rune(config.DeadGlyph))
		if err != nil {
			logger.Println(err)
			return 1
		}
		renderer = scr
	} else {
		terminal := model.NewTerminalRenderer(textRenderer(config), config.ClearScreen)
		terminal.Out = stdout
		renderer = terminal
	}

	g := game.New(model.NewSimulator(grid, model.WithWorkers(config.Workers)), renderer, config.Iterations, config.Delay)
	if config.StopOnStagnation {
		g.StopOnStagnation(config.HistorySize)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	err = runGame(g, sigChan, scr)
	if scr != nil {
		scr.Close()
	}

	switch {
	case errors.Is(err, game.ErrUserInterrupt):
		fmt.Fprint(stdout, "User Interrupt Encountered\n")
		displayFinalStats(stdout, g.Stats())
		return 0
	case err != nil:
		logger.Println(err)
		return 1
	}

	if g.Stats().StopReason != "" {
		displayFinalStats(stdout, g.Stats())
	}
	return 0
}

// runGame runs g until it finishes or an interrupt arrives, from a signal
// or a quit key on the full-screen view.
func runGame(g *game.Game, sigChan <-chan os.Signal, scr *screen.Renderer) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return g.Run(ctx)
	})
	eg.Go(func() error {
		select {
		case <-sigChan:
			return game.ErrUserInterrupt
		case <-ctx.Done():
			return nil
		}
	})
	if scr != nil {
		eg.Go(func() error {
			if scr.AwaitQuit(ctx) {
				return game.ErrUserInterrupt
			}
			return nil
		})
	}

	return eg.Wait()
}
