package render

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/go-shparse/shparse/ast"
)

// Spew writes a deep dump of the raw tree structs, spans included. It
// is the view of last resort when the other renders hide a detail you
// are chasing.
func Spew(w io.Writer, script *ast.Script) error {
	conf := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	conf.Fdump(w, script)
	return nil
}
