package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
)

// A treeVertex is one node of the Graphviz view.
type treeVertex struct {
	ID    string
	Label string
}

func vertexHash(v *treeVertex) string {
	return v.ID
}

// DOT writes the tree in Graphviz DOT syntax, one vertex per node with
// parent-to-child edges, for rendering with dot or any compatible
// visualizer.
func DOT(w io.Writer, script *ast.Script) error {
	g := graph.New(vertexHash, graph.Directed(), graph.Rooted())
	d := &dotBuilder{g: g}
	if _, err := d.add(script); err != nil {
		return err
	}
	return draw.DOT(g, w)
}

type dotBuilder struct {
	g    graph.Graph[string, *treeVertex]
	next int
}

// add inserts n and its children and returns n's vertex ID.
func (d *dotBuilder) add(n ast.Node) (string, error) {
	id := fmt.Sprintf("n%d", d.next)
	d.next++
	v := &treeVertex{ID: id, Label: vertexLabel(n)}
	if err := d.g.AddVertex(v, graph.VertexAttribute("label", v.Label)); err != nil {
		return "", err
	}

	link := func(child ast.Node) error {
		childID, err := d.add(child)
		if err != nil {
			return err
		}
		return d.g.AddEdge(id, childID)
	}

	switch n := n.(type) {
	case *ast.Script:
		for _, stmt := range n.Statements {
			if err := link(stmt); err != nil {
				return "", err
			}
		}
	case *ast.Command:
		for _, r := range n.Redirects {
			if err := link(r); err != nil {
				return "", err
			}
		}
	case *ast.Pipeline:
		for _, c := range n.Commands {
			if err := link(c); err != nil {
				return "", err
			}
		}
	case *ast.Conditional:
		if err := link(n.Condition); err != nil {
			return "", err
		}
		if err := link(n.Then); err != nil {
			return "", err
		}
		if n.Else != nil {
			if err := link(n.Else); err != nil {
				return "", err
			}
		}
	case *ast.Loop:
		if n.Condition != nil {
			if err := link(n.Condition); err != nil {
				return "", err
			}
		}
		if err := link(n.Body); err != nil {
			return "", err
		}
	case *ast.Subshell:
		if err := link(n.Script); err != nil {
			return "", err
		}
	}
	return id, nil
}

func vertexLabel(n ast.Node) string {
	var label string
	switch n := n.(type) {
	case *ast.Command:
		label = shparse.SerializeNode(n)
	case *ast.Redirect:
		label = n.Kind.String() + " " + n.Target
	case *ast.Loop:
		label = n.Kind.String()
	case *ast.Assignment:
		label = n.Name + "=" + n.Value
	default:
		label = n.Type().String()
	}
	// DOT attributes are double quoted, so embedded quotes have to go.
	return strings.ReplaceAll(label, `"`, `'`)
}
