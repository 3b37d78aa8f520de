package model_test

import (
	"bytes"
	"testing"

	"github.com/sheikhrachel/go-conway/model"
)

func TestTextRendererCustomGlyphs(t *testing.T) {
	g := mustGrid(t, "O.\n.O\n")
	r := model.TextRenderer{Alive: '#', Dead: ' ', Delimiter: "|"}
	if got, want := r.Render(g), "# | #|"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	g := mustGrid(t, scenarioOneInput)

	var buf bytes.Buffer
	r := &model.TerminalRenderer{Out: &buf, Text: model.DefaultTextRenderer()}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got, want := buf.String(), "\n"+scenarioOneInput+"\n"; got != want {
		t.Fatalf("Display wrote %q, want %q", got, want)
	}
}
