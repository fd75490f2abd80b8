// Package render holds the read-only tree views: every renderer takes
// a finished syntax tree (or token stream) and writes a
// representation of it, never touching the parser internals and never
// mutating the tree.
package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/sajari/fuzzy"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
	"github.com/go-shparse/shparse/errors"
)

var formats = []string{
	"tree",
	"bash",
	"roundtrip",
	"json",
	"yaml",
	"dot",
	"summary",
	"spew",
}

// Formats lists the recognized format names.
func Formats() []string {
	return slices.Clone(formats)
}

// Render writes script to w in the given format. An unrecognized
// format name yields an UnknownFormatError carrying the closest match.
func Render(w io.Writer, format string, script *ast.Script) error {
	switch format {
	case "tree":
		return Tree(w, script)
	case "bash":
		_, err := fmt.Fprintln(w, shparse.Serialize(script))
		return err
	case "roundtrip":
		_, err := fmt.Fprint(w, shparse.RoundTrip(script))
		return err
	case "json":
		return JSON(w, script)
	case "yaml":
		return YAML(w, script)
	case "dot":
		return DOT(w, script)
	case "summary":
		return Summary(w, script)
	case "spew":
		return Spew(w, script)
	default:
		return errors.UnknownFormatError{Format: format, DidYouMean: suggest(format)}
	}
}

// suggest returns the closest known format name, or "" when nothing is
// close enough.
func suggest(format string) string {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.Train(formats)
	guess := model.SpellCheck(format)
	if slices.Contains(formats, guess) {
		return guess
	}
	return ""
}
