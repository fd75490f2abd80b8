package render

import (
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/go-shparse/shparse/ast"
)

// Summary tallies how many nodes of each type the tree contains and
// writes one line per type, in first-encounter order.
func Summary(w io.Writer, script *ast.Script) error {
	v := &tallyVisitor{counts: orderedmap.NewOrderedMap[string, int]()}
	if err := ast.Walk(script, v); err != nil {
		return err
	}
	for key, count := range v.counts.AllFromFront() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", key, count); err != nil {
			return err
		}
	}
	return nil
}

// tallyVisitor counts node types through the read-only visitor hook.
type tallyVisitor struct {
	counts *orderedmap.OrderedMap[string, int]
}

func (v *tallyVisitor) bump(t ast.NodeType) error {
	key := t.String()
	count, _ := v.counts.Get(key)
	v.counts.Set(key, count+1)
	return nil
}

func (v *tallyVisitor) VisitScript(n *ast.Script) error           { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitCommand(n *ast.Command) error         { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitPipeline(n *ast.Pipeline) error       { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitRedirect(n *ast.Redirect) error       { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitConditional(n *ast.Conditional) error { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitLoop(n *ast.Loop) error               { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitAssignment(n *ast.Assignment) error   { return v.bump(n.Type()) }
func (v *tallyVisitor) VisitSubshell(n *ast.Subshell) error       { return v.bump(n.Type()) }
