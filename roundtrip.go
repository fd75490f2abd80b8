package shparse

import (
	"strings"

	"github.com/go-shparse/shparse/ast"
)

// RoundTrip reproduces source text for a tree, emitting each node's
// captured span verbatim and falling back to synthesis for subtrees
// whose spans are empty. A script that came straight out of Parse has
// its root span seeded with the full input, so the result is
// byte-identical to what was parsed. Trees assembled or rewritten by
// hand degrade to Serialize output, which is guaranteed to re-parse but
// not to match any particular original text.
func RoundTrip(s *ast.Script) string {
	return roundTripNode(s)
}

func roundTripNode(n ast.Node) string {
	if n == nil {
		return ""
	}
	if span := n.Position(); !span.Empty() {
		return span.Text
	}
	if s, ok := n.(*ast.Script); ok {
		parts := make([]string, 0, len(s.Statements))
		for _, stmt := range s.Statements {
			parts = append(parts, roundTripNode(stmt))
		}
		return strings.Join(parts, "\n")
	}
	return SerializeNode(n)
}
