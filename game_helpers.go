package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/input"
	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/utils"
)

const defaultConfigFile = "config.json"

// options are the command line settings, applied over the config file
type options struct {
	configFile   string
	cycles       int
	inputFile    string
	inputStr     string
	delaySeconds float64
	workers      int
	screen       bool
	stopStagnant bool
	clear        bool

	set map[string]bool
}

// parseFlags reads args into options. Short and long spellings share a value.
func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}

	flags := flag.NewFlagSet("go-conway", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&opts.configFile, "config", defaultConfigFile, "JSON config file; a missing default file is ignored")
	for _, name := range []string{"c", "cycles"} {
		flags.IntVar(&opts.cycles, name, 0, "Number of iterations to execute. Default is infinite. Press ctrl+c to stop.")
	}
	for _, name := range []string{"f", "inputfile"} {
		flags.StringVar(&opts.inputFile, name, "", "Local file to pull initial configuration.")
	}
	for _, name := range []string{"s", "inputstr"} {
		flags.StringVar(&opts.inputStr, name, "", `Initial state inline. Use '\n' to separate rows.`)
	}
	for _, name := range []string{"d", "delay"} {
		flags.Float64Var(&opts.delaySeconds, name, 0, "Delay between generations, in seconds.")
	}
	flags.IntVar(&opts.workers, "workers", 1, "Goroutines counting neighbors per generation; 0 uses every CPU.")
	flags.BoolVar(&opts.screen, "screen", false, "Draw full-screen in the terminal.")
	flags.BoolVar(&opts.stopStagnant, "stop-stagnant", false, "Stop once the board is a still life or short oscillator.")
	flags.BoolVar(&opts.clear, "clear", false, "Clear the terminal before each generation.")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, errors.Errorf("[parseFlags] unexpected arguments: %v", flags.Args())
	}
	flags.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, nil
}

func (o *options) isSet(names ...string) bool {
	for _, name := range names {
		if o.set[name] {
			return true
		}
	}
	return false
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(opts *options) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		if opts.isSet("config") || !errors.Is(err, fs.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	if opts.isSet("c", "cycles") {
		config.Iterations = opts.cycles
	}
	if opts.isSet("f", "inputfile") {
		config.InputFile = opts.inputFile
		config.InputString = ""
	}
	if opts.isSet("s", "inputstr") {
		config.InputString = opts.inputStr
		config.InputFile = ""
	}
	if opts.isSet("d", "delay") {
		config.Delay = time.Duration(opts.delaySeconds * float64(time.Second))
	}
	if opts.isSet("workers") {
		config.Workers = opts.workers
	}
	if opts.isSet("screen") {
		config.UseScreen = opts.screen
	}
	if opts.isSet("stop-stagnant") {
		config.StopOnStagnation = opts.stopStagnant
	}
	if opts.isSet("clear") {
		config.ClearScreen = opts.clear
	}

	return config, config.Validate()
}

// buildGrid parses the configured initial state
func buildGrid(config utils.Config) (*model.Grid, error) {
	var (
		src        *input.StringInput
		err        error
		liveMarker = utils.Rune(config.LiveMarker)
	)
	if config.InputFile != "" {
		src, err = input.FromFile(config.InputFile, liveMarker, config.Delimiter)
	} else {
		src, err = input.FromString(input.UnescapeRows(config.InputString), liveMarker, config.Delimiter)
	}
	if err != nil {
		return nil, err
	}

	return model.NewGridFrom(src)
}

// textRenderer builds the display format from the config
func textRenderer(config utils.Config) model.TextRenderer {
	return model.TextRenderer{
		Alive:     utils.Rune(config.AliveGlyph),
		Dead:      utils.Rune(config.DeadGlyph),
		Delimiter: config.Delimiter,
	}
}

// displayFinalStats prints the run summary
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %s\n", stats.Summary())
}
