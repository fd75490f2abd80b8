package flags

import (
	"log"
	"time"

	"github.com/spf13/pflag"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/errors"
)

const usage = `Usage: shparse [flags...] [file...]

Parses the given shell script files (or stdin when no file is given)
into a syntax tree and renders the tree in the selected output format.
Nothing is ever executed.

Example: 'shparse --format json deploy.sh' prints the tree of deploy.sh
as indented JSON. 'shparse --format bash deploy.sh' prints the script
re-synthesized from its tree in canonical formatting.

Options:
`

var (
	Version  bool
	Help     bool
	Format   string
	Tokens   bool
	Watch    bool
	Verbose  bool
	Silent   bool
	Color    bool
	Output   string
	MaxDepth int
	Interval time.Duration
)

func init() {
	pflag.Usage = func() {
		log.Print(usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVar(&Version, "version", false, "Show shparse version.")
	pflag.BoolVarP(&Help, "help", "h", false, "Shows shparse usage.")
	pflag.StringVarP(&Format, "format", "f", "tree", "Sets output format: [tree|bash|roundtrip|json|yaml|dot|summary|spew].")
	pflag.BoolVarP(&Tokens, "tokens", "t", false, "Prints the token stream instead of a tree render.")
	pflag.BoolVarP(&Watch, "watch", "w", false, "Re-parses and re-renders whenever an input file changes.")
	pflag.BoolVarP(&Verbose, "verbose", "v", false, "Enables verbose mode.")
	pflag.BoolVarP(&Silent, "silent", "s", false, "Disables echoing of file names between renders.")
	pflag.BoolVarP(&Color, "color", "c", true, "Colored output. Enabled by default. Set flag to false or use NO_COLOR=1 to disable.")
	pflag.StringVarP(&Output, "output", "o", "", "Writes the render to the given file instead of stdout.")
	pflag.IntVar(&MaxDepth, "max-depth", shparse.DefaultMaxDepth, "Block nesting depth at which parsing fails instead of recursing further.")
	pflag.DurationVarP(&Interval, "interval", "I", 0, "Interval to wait between watch re-renders.")

	pflag.Parse()
}

func Validate() error {
	if Interval != 0 && !Watch {
		return errors.New("shparse: You can't set --interval without --watch")
	}

	if MaxDepth <= 0 {
		return errors.New("shparse: --max-depth must be positive")
	}

	if Tokens && Format != "tree" && pflag.CommandLine.Changed("format") {
		return errors.New("shparse: You can't set both --tokens and --format")
	}

	return nil
}

// Args returns the positional file arguments.
func Args() []string {
	return pflag.Args()
}
