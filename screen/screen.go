// Package screen draws generations full-screen in the terminal.
package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
)

const (
	statusRow = 0
	wakeRetry = 10 * time.Millisecond
)

// Renderer draws each generation onto a tcell screen, below a status line.
type Renderer struct {
	screen     tcell.Screen
	alive      rune
	dead       rune
	style      tcell.Style
	generation int
}

// New initialises s and returns a Renderer drawing onto it.
// Close must be called to restore the terminal.
func New(s tcell.Screen, alive, dead rune) (*Renderer, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "[screen.New] failed to initialise terminal")
	}
	s.HideCursor()
	s.Clear()
	return &Renderer{
		screen: s,
		alive:  alive,
		dead:   dead,
		style:  tcell.StyleDefault,
	}, nil
}

// NewTerminal opens the controlling terminal.
func NewTerminal(alive, dead rune) (*Renderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[screen.NewTerminal] failed to open terminal")
	}
	return New(s, alive, dead)
}

// Display draws g. Cells beyond the terminal size are clipped.
func (r *Renderer) Display(g *model.Grid) error {
	width, height := g.Dimensions()

	r.screen.Clear()
	status := fmt.Sprintf("Gen: %d | Living: %d | %dx%d | q/Esc/Ctrl+C to quit",
		r.generation, g.Population(), width, height)
	for x, ch := range []rune(status) {
		r.screen.SetContent(x, statusRow, ch, nil, r.style)
	}

	for row := range height {
		for col := range width {
			state, err := g.StateAt(model.Coordinate{Row: row, Col: col})
			if err != nil {
				return err
			}
			ch := r.dead
			if state == model.Alive {
				ch = r.alive
			}
			r.screen.SetContent(col, statusRow+1+row, ch, nil, r.style)
		}
	}

	r.screen.Show()
	r.generation++
	return nil
}

// AwaitQuit blocks until the user presses a quit key, returning true, or
// ctx ends, returning false.
func (r *Renderer) AwaitQuit(ctx context.Context) bool {
	done := make(chan struct{})
	defer close(done)
	stop := context.AfterFunc(ctx, func() { r.wake(done) })
	defer stop()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return false
			}
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return true
			}
		}
	}
}

// wake posts an interrupt so PollEvent returns, retrying while the event
// queue is full until it succeeds or done is closed.
func (r *Renderer) wake(done <-chan struct{}) {
	ticker := time.NewTicker(wakeRetry)
	defer ticker.Stop()

	for r.screen.PostEvent(tcell.NewEventInterrupt(nil)) != nil {
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Close restores the terminal.
func (r *Renderer) Close() {
	r.screen.Fini()
}
