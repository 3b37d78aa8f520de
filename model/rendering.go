package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	glyphAlive = 'O'
	glyphDead  = '.'

	clearCmd = "clear"
)

// TextRenderer formats a grid as one line per row.
type TextRenderer struct {
	Alive     rune
	Dead      rune
	Delimiter string
}

// DefaultTextRenderer uses "O" for live cells, "." for dead ones and newline rows.
func DefaultTextRenderer() TextRenderer {
	return TextRenderer{Alive: glyphAlive, Dead: glyphDead, Delimiter: "\n"}
}

// Render returns the grid text, each row followed by the delimiter.
// An empty grid renders as the empty string.
func (r TextRenderer) Render(g *Grid) string {
	var sb strings.Builder
	for row := range g.height {
		for col := range g.width {
			if g.states[g.index(row, col)] == Alive {
				sb.WriteRune(r.Alive)
			} else {
				sb.WriteRune(r.Dead)
			}
		}
		sb.WriteString(r.Delimiter)
	}
	return sb.String()
}

// TerminalRenderer writes each frame to an output stream
type TerminalRenderer struct {
	Out         io.Writer
	Text        TextRenderer
	ClearScreen bool
}

// NewTerminalRenderer writes frames to stdout.
func NewTerminalRenderer(text TextRenderer, clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Text: text, ClearScreen: clearScreen}
}

// Display writes the grid framed by blank lines.
func (r *TerminalRenderer) Display(g *Grid) error {
	if r.ClearScreen {
		r.Clear()
	}
	_, err := fmt.Fprint(r.Out, "\n"+r.Text.Render(g)+"\n")
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
