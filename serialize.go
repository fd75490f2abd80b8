package shparse

import (
	"strings"

	"github.com/go-shparse/shparse/ast"
)

// Serialize rebuilds bash text purely from tree structure, ignoring any
// captured spans. The output is canonical rather than identical to the
// original: arguments containing whitespace or shell metacharacters are
// double quoted, statements join with "; " at the top level and with
// newlines inside block bodies, and a block collapses to its
// single-line form when its body has no internal newline.
func Serialize(s *ast.Script) string {
	return synthScript(s, true)
}

// SerializeNode renders a single node with the synthesis policy. Nodes
// outside the known set render as a visible marker instead of
// panicking.
func SerializeNode(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Script:
		return synthScript(n, false)
	case *ast.Command:
		return synthCommand(n)
	case *ast.Pipeline:
		return synthPipeline(n)
	case *ast.Redirect:
		return n.Kind.String() + " " + n.Target
	case *ast.Conditional:
		return synthConditional(n)
	case *ast.Loop:
		return synthLoop(n)
	case *ast.Assignment:
		return n.Name + "=" + quoteArg(n.Value)
	case *ast.Subshell:
		return "(" + synthScript(n.Script, true) + ")"
	default:
		return "<unknown node>"
	}
}

func synthScript(s *ast.Script, top bool) string {
	if s == nil {
		return ""
	}
	parts := make([]string, 0, len(s.Statements))
	for _, stmt := range s.Statements {
		parts = append(parts, SerializeNode(stmt))
	}
	if top {
		return strings.Join(parts, "; ")
	}
	return strings.Join(parts, "\n")
}

func synthCommand(c *ast.Command) string {
	if c == nil {
		return ""
	}
	parts := make([]string, 0, 1+len(c.Args)+len(c.Redirects))
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	for _, r := range c.Redirects {
		parts = append(parts, r.Kind.String()+" "+r.Target)
	}
	return strings.Join(parts, " ")
}

func synthPipeline(p *ast.Pipeline) string {
	parts := make([]string, 0, len(p.Commands))
	for _, c := range p.Commands {
		parts = append(parts, synthCommand(c))
	}
	return strings.Join(parts, " | ")
}

func synthConditional(c *ast.Conditional) string {
	cond := synthCommand(c.Condition)
	then := synthScript(c.Then, false)
	elseBody := ""
	hasElse := c.Else != nil && !c.Else.Empty()
	if hasElse {
		elseBody = synthScript(c.Else, false)
	}

	if !strings.Contains(then, "\n") && !strings.Contains(elseBody, "\n") {
		var b strings.Builder
		b.WriteString("if " + cond + "; then")
		if then != "" {
			b.WriteString(" " + then)
		}
		if hasElse {
			b.WriteString("; else " + elseBody)
		}
		b.WriteString("; fi")
		return b.String()
	}

	var b strings.Builder
	b.WriteString("if " + cond + "; then\n" + indent(then))
	if hasElse {
		b.WriteString("\nelse\n" + indent(elseBody))
	}
	b.WriteString("\nfi")
	return b.String()
}

func synthLoop(l *ast.Loop) string {
	var header string
	if l.Kind == ast.LoopFor {
		header = "for " + l.Variable + " in"
		for _, item := range l.Items {
			header += " " + quoteArg(item)
		}
	} else {
		header = "while " + synthCommand(l.Condition)
	}

	body := synthScript(l.Body, false)
	if !strings.Contains(body, "\n") {
		if body == "" {
			return header + "; do; done"
		}
		return header + "; do " + body + "; done"
	}
	return header + "; do\n" + indent(body) + "\ndone"
}

// indent prefixes every line of s with two spaces.
func indent(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

// quoteArg wraps an argument in double quotes when it contains
// whitespace or a shell metacharacter. Variables and command
// substitutions are emitted as-is so they survive a re-parse.
func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.HasPrefix(arg, "$") {
		return arg
	}
	// Pipe words folded out of a loop condition stay bare.
	if arg == "|" {
		return arg
	}
	if strings.ContainsAny(arg, " \t\n;|<>&") {
		return `"` + arg + `"`
	}
	return arg
}
