// Package input turns configuration text into grid sources.
package input

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
)

const (
	DefaultLiveMarker = 'O'
	DefaultDelimiter  = "\n"
)

// ErrMalformedConfiguration is returned when the rows are not all the same length.
var ErrMalformedConfiguration = errors.New("malformed configuration")

// StringInput is a rectangular block of text where each LiveMarker
// character is a live cell and anything else is dead.
type StringInput struct {
	rows       [][]rune
	liveMarker rune
}

// FromString parses text into rows split on delimiter. Line breaks and
// delimiters around the block are ignored; spaces inside rows are cells.
// Text that is only whitespace yields a 0x0 source. Blank rows inside the
// block are not skipped, so they fail the equal-length check.
func FromString(text string, liveMarker rune, delimiter string) (*StringInput, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	in := &StringInput{liveMarker: liveMarker}

	if strings.TrimSpace(text) == "" {
		return in, nil
	}
	text = strings.Trim(text, "\r\n"+delimiter)

	for i, line := range strings.Split(text, delimiter) {
		row := []rune(strings.TrimSuffix(line, "\r"))
		if i > 0 && len(row) != len(in.rows[0]) {
			return nil, errors.Wrapf(ErrMalformedConfiguration,
				"[FromString] row %d has %d cells, expected %d", i, len(row), len(in.rows[0]))
		}
		in.rows = append(in.rows, row)
	}

	return in, nil
}

// FromFile reads and parses a configuration file.
func FromFile(path string, liveMarker rune, delimiter string) (*StringInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[FromFile] failed to read file: %+v", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.Wrapf(ErrMalformedConfiguration, "[FromFile] %s is not valid UTF-8", path)
	}

	in, err := FromString(string(data), liveMarker, delimiter)
	if err != nil {
		return nil, errors.Wrapf(err, "[FromFile] %s", path)
	}
	return in, nil
}

// UnescapeRows turns literal "\n" sequences typed on a command line into newlines.
func UnescapeRows(s string) string {
	s = strings.ReplaceAll(s, `\r\n`, "\n")
	return strings.ReplaceAll(s, `\n`, "\n")
}

// Dimensions returns the row length and row count.
func (in *StringInput) Dimensions() (width, height int) {
	if len(in.rows) == 0 {
		return 0, 0
	}
	return len(in.rows[0]), len(in.rows)
}

// IsLive reports whether the character at c is the live marker.
func (in *StringInput) IsLive(c model.Coordinate) bool {
	if c.Row < 0 || c.Row >= len(in.rows) {
		return false
	}
	row := in.rows[c.Row]
	if c.Col < 0 || c.Col >= len(row) {
		return false
	}
	return in.IsLiveMarker(row[c.Col])
}

// IsLiveMarker reports whether ch marks a live cell.
func (in *StringInput) IsLiveMarker(ch rune) bool {
	return ch == in.liveMarker
}
