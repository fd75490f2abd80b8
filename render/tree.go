package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
)

// Tree writes a human-readable outline of the tree, one node per line,
// nested by two-space indentation. Node types are colored when color
// output is enabled.
func Tree(w io.Writer, script *ast.Script) error {
	return writeTree(w, script, 0)
}

func writeTree(w io.Writer, n ast.Node, depth int) error {
	pad := strings.Repeat("  ", depth)

	switch n := n.(type) {
	case *ast.Script:
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, color.CyanString("script")); err != nil {
			return err
		}
		for _, stmt := range n.Statements {
			if err := writeTree(w, stmt, depth+1); err != nil {
				return err
			}
		}

	case *ast.Command:
		if _, err := fmt.Fprintf(w, "%s%s %s\n", pad, color.CyanString("command"), shparse.SerializeNode(n)); err != nil {
			return err
		}

	case *ast.Pipeline:
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, color.CyanString("pipeline")); err != nil {
			return err
		}
		for _, c := range n.Commands {
			if err := writeTree(w, c, depth+1); err != nil {
				return err
			}
		}

	case *ast.Redirect:
		if _, err := fmt.Fprintf(w, "%s%s %s %s\n", pad, color.CyanString("redirect"), n.Kind, n.Target); err != nil {
			return err
		}

	case *ast.Conditional:
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, color.CyanString("conditional")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s  %s %s\n", pad, color.YellowString("condition"), shparse.SerializeNode(n.Condition)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", pad, color.YellowString("then")); err != nil {
			return err
		}
		for _, stmt := range n.Then.Statements {
			if err := writeTree(w, stmt, depth+2); err != nil {
				return err
			}
		}
		if n.Else != nil {
			if _, err := fmt.Fprintf(w, "%s  %s\n", pad, color.YellowString("else")); err != nil {
				return err
			}
			for _, stmt := range n.Else.Statements {
				if err := writeTree(w, stmt, depth+2); err != nil {
					return err
				}
			}
		}

	case *ast.Loop:
		switch n.Kind {
		case ast.LoopFor:
			header := "for " + n.Variable + " in " + strings.Join(n.Items, " ")
			if _, err := fmt.Fprintf(w, "%s%s %s\n", pad, color.CyanString("loop"), strings.TrimSpace(header)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s%s while\n", pad, color.CyanString("loop")); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s  %s %s\n", pad, color.YellowString("condition"), shparse.SerializeNode(n.Condition)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", pad, color.YellowString("body")); err != nil {
			return err
		}
		for _, stmt := range n.Body.Statements {
			if err := writeTree(w, stmt, depth+2); err != nil {
				return err
			}
		}

	case *ast.Assignment:
		if _, err := fmt.Fprintf(w, "%s%s %s=%s\n", pad, color.CyanString("assignment"), n.Name, n.Value); err != nil {
			return err
		}

	case *ast.Subshell:
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, color.CyanString("subshell")); err != nil {
			return err
		}
		return writeTree(w, n.Script, depth+1)

	default:
		// Closed node set; anything else gets a visible marker rather
		// than a crash.
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, color.RedString("unknown node")); err != nil {
			return err
		}
	}
	return nil
}
