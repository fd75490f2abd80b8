package render

import (
	"encoding/json"
	"io"

	yaml "go.yaml.in/yaml/v3"

	"github.com/go-shparse/shparse/ast"
)

// dumpNode is the serializable shape shared by the JSON and YAML
// renders. Field order is fixed by the struct, which keeps both
// outputs deterministic.
type dumpNode struct {
	Type       string      `json:"type" yaml:"type"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Args       []string    `json:"args,omitempty" yaml:"args,omitempty"`
	Op         string      `json:"op,omitempty" yaml:"op,omitempty"`
	Target     string      `json:"target,omitempty" yaml:"target,omitempty"`
	Variable   string      `json:"variable,omitempty" yaml:"variable,omitempty"`
	Items      []string    `json:"items,omitempty" yaml:"items,omitempty"`
	Value      string      `json:"value,omitempty" yaml:"value,omitempty"`
	Line       int         `json:"line,omitempty" yaml:"line,omitempty"`
	Column     int         `json:"column,omitempty" yaml:"column,omitempty"`
	Statements []*dumpNode `json:"statements,omitempty" yaml:"statements,omitempty"`
	Commands   []*dumpNode `json:"commands,omitempty" yaml:"commands,omitempty"`
	Redirects  []*dumpNode `json:"redirects,omitempty" yaml:"redirects,omitempty"`
	Condition  *dumpNode   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Then       *dumpNode   `json:"then,omitempty" yaml:"then,omitempty"`
	Else       *dumpNode   `json:"else,omitempty" yaml:"else,omitempty"`
	Body       *dumpNode   `json:"body,omitempty" yaml:"body,omitempty"`
	Script     *dumpNode   `json:"script,omitempty" yaml:"script,omitempty"`
}

// JSON writes the tree as indented JSON.
func JSON(w io.Writer, script *ast.Script) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// Redirect operators must come out as < and >, not <.
	enc.SetEscapeHTML(false)
	return enc.Encode(toDump(script))
}

// YAML writes the tree as YAML.
func YAML(w io.Writer, script *ast.Script) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(toDump(script))
}

func toDump(n ast.Node) *dumpNode {
	if n == nil {
		return nil
	}
	d := &dumpNode{Type: n.Type().String()}
	if span := n.Position(); span != nil {
		d.Line = span.Line
		d.Column = span.Column
	}

	switch n := n.(type) {
	case *ast.Script:
		for _, stmt := range n.Statements {
			d.Statements = append(d.Statements, toDump(stmt))
		}
	case *ast.Command:
		d.Name = n.Name
		d.Args = n.Args
		for _, r := range n.Redirects {
			d.Redirects = append(d.Redirects, toDump(r))
		}
	case *ast.Pipeline:
		for _, c := range n.Commands {
			d.Commands = append(d.Commands, toDump(c))
		}
	case *ast.Redirect:
		d.Op = n.Kind.String()
		d.Target = n.Target
	case *ast.Conditional:
		d.Condition = toDump(n.Condition)
		d.Then = toDump(n.Then)
		if n.Else != nil {
			d.Else = toDump(n.Else)
		}
	case *ast.Loop:
		d.Op = n.Kind.String()
		if n.Kind == ast.LoopFor {
			d.Variable = n.Variable
			d.Items = n.Items
		} else {
			d.Condition = toDump(n.Condition)
		}
		d.Body = toDump(n.Body)
	case *ast.Assignment:
		d.Name = n.Name
		d.Value = n.Value
	case *ast.Subshell:
		d.Script = toDump(n.Script)
	default:
		d.Type = "unknown"
	}
	return d
}
