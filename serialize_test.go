package shparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
)

func script(statements ...ast.Node) *ast.Script {
	return &ast.Script{Statements: statements}
}

func TestSerializeCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tree *ast.Script
		want string
	}{
		{
			name: "plain command",
			tree: script(&ast.Command{Name: "ls", Args: []string{"-la", "/tmp"}}),
			want: "ls -la /tmp",
		},
		{
			name: "argument with whitespace is quoted",
			tree: script(&ast.Command{Name: "echo", Args: []string{"hello world"}}),
			want: `echo "hello world"`,
		},
		{
			name: "argument with metacharacters is quoted",
			tree: script(&ast.Command{Name: "echo", Args: []string{"a|b;c"}}),
			want: `echo "a|b;c"`,
		},
		{
			name: "variables stay unquoted",
			tree: script(&ast.Command{Name: "echo", Args: []string{"$HOME"}}),
			want: "echo $HOME",
		},
		{
			name: "substitutions stay as-is",
			tree: script(&ast.Command{Name: "echo", Args: []string{"$(ls | wc -l)"}}),
			want: "echo $(ls | wc -l)",
		},
		{
			name: "redirects follow arguments",
			tree: script(&ast.Command{
				Name: "sort",
				Args: []string{"-u"},
				Redirects: []*ast.Redirect{
					{Kind: ast.RedirectInput, Target: "in.txt"},
					{Kind: ast.RedirectAppend, Target: "log.txt"},
				},
			}),
			want: "sort -u < in.txt >> log.txt",
		},
		{
			name: "statements join with semicolons at the top level",
			tree: script(
				&ast.Command{Name: "cd", Args: []string{"/tmp"}},
				&ast.Command{Name: "ls"},
			),
			want: "cd /tmp; ls",
		},
		{
			name: "pipeline",
			tree: script(&ast.Pipeline{Commands: []*ast.Command{
				{Name: "ls", Args: []string{"-la"}},
				{Name: "grep", Args: []string{".ex"}},
			}}),
			want: "ls -la | grep .ex",
		},
		{
			name: "assignment",
			tree: script(&ast.Assignment{Name: "greeting", Value: "hello world"}),
			want: `greeting="hello world"`,
		},
		{
			name: "subshell",
			tree: script(&ast.Subshell{Script: script(
				&ast.Command{Name: "cd", Args: []string{"/tmp"}},
				&ast.Command{Name: "ls"},
			)}),
			want: "(cd /tmp; ls)",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, shparse.Serialize(test.tree))
		})
	}
}

func TestSerializeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single statement body stays on one line",
			input: "if a; then b; fi",
			want:  "if test a; then b; fi",
		},
		{
			name:  "conditional with else on one line",
			input: "if [ -f x ]; then cat x; else echo no; fi",
			want:  "if test -f x; then cat x; else echo no; fi",
		},
		{
			name:  "multi statement body goes multiline",
			input: "if a; then b; c; fi",
			want:  "if test a; then\n  b\n  c\nfi",
		},
		{
			name:  "nested blocks indent per level",
			input: "if a; then if b; then c; d; fi; fi",
			want:  "if test a; then\n  if test b; then\n    c\n    d\n  fi\nfi",
		},
		{
			name:  "for loop single line",
			input: "for f in a.txt b.txt; do echo $f; done",
			want:  "for f in a.txt b.txt; do echo $f; done",
		},
		{
			name:  "for loop multiline",
			input: "for f in a b; do echo $f; rm $f; done",
			want:  "for f in a b; do\n  echo $f\n  rm $f\ndone",
		},
		{
			name:  "while loop with hoisted redirect",
			input: "while read line; do echo $line; done < input.txt",
			want:  "while read line < input.txt; do echo $line; done",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tree := mustParse(t, test.input)
			assert.Equal(t, test.want, shparse.Serialize(tree))
		})
	}
}

// unknownNode exercises the closed-set contract: renderers must mark
// node types they do not know instead of crashing.
type unknownNode struct{}

func (unknownNode) Type() ast.NodeType  { return ast.NodeType(99) }
func (unknownNode) Position() *ast.Span { return nil }

func TestSerializeUnknownNodeMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<unknown node>", shparse.SerializeNode(unknownNode{}))
}

func TestSerializeMultilineBlockReparses(t *testing.T) {
	t.Parallel()

	// The multiline block form separates body statements with newlines
	// only; those newlines must survive a re-parse as statement breaks.
	first := mustParse(t, "if a; then b; c; fi")
	second := mustParse(t, shparse.Serialize(first))

	require.Len(t, second.Statements, 1)
	cond := second.Statements[0].(*ast.Conditional)
	require.Len(t, cond.Then.Statements, 2)
	assert.Equal(t, "b", cond.Then.Statements[0].(*ast.Command).Name)
	assert.Equal(t, "c", cond.Then.Statements[1].(*ast.Command).Name)
}

func TestSynthesisReparse(t *testing.T) {
	t.Parallel()

	// Serializing a tree and parsing the result must preserve the
	// statement count and top-level node types, whatever the original
	// formatting was.
	inputs := []string{
		"ls -la",
		"ls -la | grep .ex",
		"cat < in.txt > out.txt",
		"x=5; echo $x",
		"if [ -f a ]; then cat a; else echo no; fi",
		"if a; then b; c; fi",
		"for f in a b c; do echo $f; done",
		"while read line; do echo $line; done < input.txt",
		"if a; then if b; then c; fi; fi",
		"echo start; for i in 1 2; do date; done; echo end",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			first := mustParse(t, input)
			second := mustParse(t, shparse.Serialize(first))

			require.Len(t, second.Statements, len(first.Statements))
			for i := range first.Statements {
				assert.Equal(t,
					first.Statements[i].Type(),
					second.Statements[i].Type(),
					"statement %d changed type", i)
			}
		})
	}
}
