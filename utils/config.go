package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a run
type Config struct {
	Iterations       int           `json:"iterations"` // 0 runs until interrupted
	Delay            time.Duration `json:"delay"`
	InputFile        string        `json:"input_file"`
	InputString      string        `json:"input_string"`
	LiveMarker       string        `json:"live_marker"`
	Delimiter        string        `json:"delimiter"`
	AliveGlyph       string        `json:"alive_glyph"`
	DeadGlyph        string        `json:"dead_glyph"`
	Workers          int           `json:"workers"` // 0 uses every CPU
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	HistorySize      int           `json:"history_size"`
	ClearScreen      bool          `json:"clear_screen"`
	UseScreen        bool          `json:"use_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LiveMarker:  "O",
		Delimiter:   "\n",
		AliveGlyph:  "O",
		DeadGlyph:   ".",
		Workers:     1,
		HistorySize: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the config describes a runnable game.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] iterations must be >= 0, got %d", c.Iterations)
	}
	if c.Delay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] delay must be >= 0, got %v", c.Delay)
	}
	for name, glyph := range map[string]string{
		"live_marker": c.LiveMarker,
		"alive_glyph": c.AliveGlyph,
		"dead_glyph":  c.DeadGlyph,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] %s must be a single character, got %q", name, glyph)
		}
	}
	if c.Delimiter == "" {
		return errors.Wrap(ErrInvalidConfig, "[Validate] delimiter must not be empty")
	}
	if c.InputFile != "" && c.InputString != "" {
		return errors.Wrap(ErrInvalidConfig, "[Validate] input_file and input_string are mutually exclusive")
	}
	return nil
}

// Rune returns the single character of a validated glyph setting.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}
