package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
)

const oscillatorInput = "..O.....\n" +
	"O..O....\n" +
	"O..O....\n" +
	".O....O.\n" +
	".....O.O\n" +
	"......O.\n"

func TestDimensions(t *testing.T) {
	in, err := FromString(oscillatorInput, DefaultLiveMarker, DefaultDelimiter)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if w, h := in.Dimensions(); w != 8 || h != 6 {
		t.Fatalf("Dimensions() = (%d,%d), want (8,6)", w, h)
	}
}

func TestLiveMarker(t *testing.T) {
	in, err := FromString(oscillatorInput, DefaultLiveMarker, DefaultDelimiter)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if in.IsLiveMarker('.') {
		t.Fatal("'.' must be dead")
	}
	if !in.IsLiveMarker('O') {
		t.Fatal("'O' must be alive")
	}
	if !in.IsLive(model.Coordinate{Row: 0, Col: 2}) {
		t.Fatal("cell (0,2) must be alive")
	}
	if in.IsLive(model.Coordinate{Row: 0, Col: 0}) {
		t.Fatal("cell (0,0) must be dead")
	}
	if in.IsLive(model.Coordinate{Row: 6, Col: 0}) {
		t.Fatal("out of range cell must be dead")
	}
}

func TestEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n", "  \n "} {
		in, err := FromString(text, DefaultLiveMarker, DefaultDelimiter)
		if err != nil {
			t.Fatalf("FromString(%q): %v", text, err)
		}
		if w, h := in.Dimensions(); w != 0 || h != 0 {
			t.Fatalf("FromString(%q).Dimensions() = (%d,%d), want (0,0)", text, w, h)
		}
	}
}

func TestMalformedRows(t *testing.T) {
	_, err := FromString("OO.\nO.\n", DefaultLiveMarker, DefaultDelimiter)
	if !errors.Is(err, ErrMalformedConfiguration) {
		t.Fatalf("err = %v, want ErrMalformedConfiguration", err)
	}
}

func TestCustomMarkerAndDelimiter(t *testing.T) {
	in, err := FromString("#-#|---", '#', "|")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if w, h := in.Dimensions(); w != 3 || h != 2 {
		t.Fatalf("Dimensions() = (%d,%d), want (3,2)", w, h)
	}
	if !in.IsLive(model.Coordinate{Row: 0, Col: 2}) || in.IsLive(model.Coordinate{Row: 1, Col: 2}) {
		t.Fatal("unexpected liveness with custom marker")
	}
}

func TestSpaceDeadGlyph(t *testing.T) {
	in, err := FromString("  O\nO  \n", DefaultLiveMarker, DefaultDelimiter)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if w, h := in.Dimensions(); w != 3 || h != 2 {
		t.Fatalf("Dimensions() = (%d,%d), want (3,2)", w, h)
	}
	if !in.IsLive(model.Coordinate{Row: 0, Col: 2}) || !in.IsLive(model.Coordinate{Row: 1, Col: 0}) {
		t.Fatal("live cells shifted by trimming")
	}
	if in.IsLive(model.Coordinate{Row: 0, Col: 0}) {
		t.Fatal("leading space must be a dead cell")
	}
}

func TestBlankRowIsMalformed(t *testing.T) {
	_, err := FromString("O.\n\nO.\n", DefaultLiveMarker, DefaultDelimiter)
	if !errors.Is(err, ErrMalformedConfiguration) {
		t.Fatalf("err = %v, want ErrMalformedConfiguration", err)
	}
}

func TestSurroundingBlankLinesIgnored(t *testing.T) {
	in, err := FromString("\n\nO.\n.O\n\n", DefaultLiveMarker, DefaultDelimiter)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if w, h := in.Dimensions(); w != 2 || h != 2 {
		t.Fatalf("Dimensions() = (%d,%d), want (2,2)", w, h)
	}
}

func TestCRLFRows(t *testing.T) {
	in, err := FromString("O.\r\n.O\r\n", DefaultLiveMarker, DefaultDelimiter)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if w, h := in.Dimensions(); w != 2 || h != 2 {
		t.Fatalf("Dimensions() = (%d,%d), want (2,2)", w, h)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(oscillatorInput), 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := FromFile(path, DefaultLiveMarker, DefaultDelimiter)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if w, h := in.Dimensions(); w != 8 || h != 6 {
		t.Fatalf("Dimensions() = (%d,%d), want (8,6)", w, h)
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultLiveMarker, DefaultDelimiter); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestUnescapeRows(t *testing.T) {
	got := UnescapeRows(`O.\n.O`)
	if got != "O.\n.O" {
		t.Fatalf("UnescapeRows = %q", got)
	}
}
