package render_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
	"github.com/go-shparse/shparse/render"
)

func init() {
	// Golden fixtures hold plain text.
	color.NoColor = true
}

func mustParse(t *testing.T, input string) *ast.Script {
	t.Helper()
	script, err := shparse.Parse(input)
	require.NoError(t, err)
	return script
}

func TestTreeGolden(t *testing.T) {
	tests := []struct {
		fixture string
		input   string
	}{
		{
			fixture: "tree-conditional",
			input:   "if [ -f a.txt ]; then cat a.txt | wc -l; else echo missing; fi",
		},
		{
			fixture: "tree-loops",
			input:   "for f in a b; do echo $f; done\nwhile read line; do echo $line; done < input.txt",
		},
		{
			fixture: "tree-assignment",
			input:   "x=5; echo $x > out.txt",
		},
	}
	for _, test := range tests {
		t.Run(test.fixture, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.Tree(&buf, mustParse(t, test.input)))

			g := goldie.New(t)
			g.Assert(t, test.fixture, buf.Bytes())
		})
	}
}

func TestTreeSubshell(t *testing.T) {
	script := &ast.Script{Statements: []ast.Node{
		&ast.Subshell{Script: &ast.Script{Statements: []ast.Node{
			&ast.Command{Name: "pwd"},
		}}},
	}}

	var buf bytes.Buffer
	require.NoError(t, render.Tree(&buf, script))
	assert.Equal(t, "script\n  subshell\n    script\n      command pwd\n", buf.String())
}

// oddNode is a node type the renderers do not know about.
type oddNode struct{}

func (oddNode) Type() ast.NodeType  { return ast.NodeType(42) }
func (oddNode) Position() *ast.Span { return nil }

func TestTreeUnknownNodeMarker(t *testing.T) {
	script := &ast.Script{Statements: []ast.Node{oddNode{}}}

	var buf bytes.Buffer
	require.NoError(t, render.Tree(&buf, script))
	assert.Equal(t, "script\n  unknown node\n", buf.String())
}
