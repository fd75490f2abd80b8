package shparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
	"github.com/go-shparse/shparse/errors"
)

func mustParse(t *testing.T, input string) *ast.Script {
	t.Helper()
	script, err := shparse.Parse(input)
	require.NoError(t, err)
	require.NotNil(t, script)
	return script
}

func TestParseEmptyScript(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   \n\t "} {
		script := mustParse(t, input)
		assert.Empty(t, script.Statements)
	}
}

func TestParseSimpleCommand(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "ls -la /tmp")
	require.Len(t, script.Statements, 1)

	cmd, ok := script.Statements[0].(*ast.Command)
	require.True(t, ok, "a lone command must be a bare Command node")
	assert.Equal(t, "ls", cmd.Name)
	assert.Equal(t, []string{"-la", "/tmp"}, cmd.Args)
	assert.Empty(t, cmd.Redirects)
}

func TestParsePipeline(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "ls -la | grep .ex")
	require.Len(t, script.Statements, 1)

	pipeline, ok := script.Statements[0].(*ast.Pipeline)
	require.True(t, ok)
	require.Len(t, pipeline.Commands, 2)
	assert.Equal(t, "ls", pipeline.Commands[0].Name)
	assert.Equal(t, []string{"-la"}, pipeline.Commands[0].Args)
	assert.Equal(t, "grep", pipeline.Commands[1].Name)
	assert.Equal(t, []string{".ex"}, pipeline.Commands[1].Args)
}

func TestParsePipelineNonDegeneracy(t *testing.T) {
	t.Parallel()

	// A pipeline node always carries at least two commands.
	script := mustParse(t, "ls; ls | wc; ls | wc | sort")
	require.Len(t, script.Statements, 3)

	assert.IsType(t, &ast.Command{}, script.Statements[0])
	assert.IsType(t, &ast.Pipeline{}, script.Statements[1])
	assert.Len(t, script.Statements[1].(*ast.Pipeline).Commands, 2)
	assert.Len(t, script.Statements[2].(*ast.Pipeline).Commands, 3)
}

func TestParseRedirectOrdering(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "cat < in.txt > out.txt")
	require.Len(t, script.Statements, 1)

	cmd := script.Statements[0].(*ast.Command)
	assert.Equal(t, "cat", cmd.Name)
	require.Len(t, cmd.Redirects, 2)
	assert.Equal(t, ast.RedirectInput, cmd.Redirects[0].Kind)
	assert.Equal(t, "in.txt", cmd.Redirects[0].Target)
	assert.Equal(t, ast.RedirectOutput, cmd.Redirects[1].Kind)
	assert.Equal(t, "out.txt", cmd.Redirects[1].Target)
}

func TestParseAppendRedirect(t *testing.T) {
	t.Parallel()

	cmd := mustParse(t, "echo hi >> log.txt").Statements[0].(*ast.Command)
	require.Len(t, cmd.Redirects, 1)
	assert.Equal(t, ast.RedirectAppend, cmd.Redirects[0].Kind)
	assert.Equal(t, "log.txt", cmd.Redirects[0].Target)
}

func TestParseConditional(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "if [ -f a.txt ]; then cat a.txt; else echo missing; fi")
	require.Len(t, script.Statements, 1)

	cond, ok := script.Statements[0].(*ast.Conditional)
	require.True(t, ok)

	// The condition is normalized into a synthetic test command with
	// the bracket expression flattened into its arguments.
	assert.Equal(t, "test", cond.Condition.Name)
	assert.Equal(t, []string{"-f", "a.txt"}, cond.Condition.Args)

	require.Len(t, cond.Then.Statements, 1)
	assert.Equal(t, "cat", cond.Then.Statements[0].(*ast.Command).Name)

	require.NotNil(t, cond.Else)
	require.Len(t, cond.Else.Statements, 1)
	assert.Equal(t, "echo", cond.Else.Statements[0].(*ast.Command).Name)
}

func TestParseConditionalTestWordNotDoubled(t *testing.T) {
	t.Parallel()

	cond := mustParse(t, "if test -d /tmp; then ls /tmp; fi").Statements[0].(*ast.Conditional)
	assert.Equal(t, "test", cond.Condition.Name)
	assert.Equal(t, []string{"-d", "/tmp"}, cond.Condition.Args)
	assert.Nil(t, cond.Else)
}

func TestParseNestedConditional(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "if a; then if b; then c; fi; fi")
	require.Len(t, script.Statements, 1, "exactly one top-level conditional")

	outer := script.Statements[0].(*ast.Conditional)
	require.Len(t, outer.Then.Statements, 1)

	inner, ok := outer.Then.Statements[0].(*ast.Conditional)
	require.True(t, ok, "the then-branch must contain the nested conditional")
	require.Len(t, inner.Then.Statements, 1)
	assert.Equal(t, "c", inner.Then.Statements[0].(*ast.Command).Name)
}

func TestParseForLoop(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "for f in a.txt b.txt; do echo $f; done")
	require.Len(t, script.Statements, 1)

	loop, ok := script.Statements[0].(*ast.Loop)
	require.True(t, ok)
	assert.Equal(t, ast.LoopFor, loop.Kind)
	assert.Equal(t, "f", loop.Variable)
	assert.Equal(t, []string{"a.txt", "b.txt"}, loop.Items)

	require.Len(t, loop.Body.Statements, 1)
	body := loop.Body.Statements[0].(*ast.Command)
	assert.Equal(t, "echo", body.Name)
	assert.Equal(t, []string{"$f"}, body.Args)
}

func TestParseForLoopEmptyItems(t *testing.T) {
	t.Parallel()

	loop := mustParse(t, "for f in; do echo none; done").Statements[0].(*ast.Loop)
	assert.Equal(t, "f", loop.Variable)
	assert.Empty(t, loop.Items)
	assert.Len(t, loop.Body.Statements, 1)
}

func TestParseForLoopSubstitutionItems(t *testing.T) {
	t.Parallel()

	loop := mustParse(t, "for f in $(ls /etc); do echo $f; done").Statements[0].(*ast.Loop)
	assert.Equal(t, []string{"$(ls /etc)"}, loop.Items)
}

func TestParseWhileLoop(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "while true; do date; done")
	loop := script.Statements[0].(*ast.Loop)
	assert.Equal(t, ast.LoopWhile, loop.Kind)
	assert.Equal(t, "true", loop.Condition.Name)
	require.Len(t, loop.Body.Statements, 1)
}

func TestParseWhileLoopHoistsTrailingInputRedirect(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "while read line; do echo $line; done < input.txt")
	require.Len(t, script.Statements, 1)

	loop := script.Statements[0].(*ast.Loop)
	assert.Equal(t, "read", loop.Condition.Name)
	assert.Equal(t, []string{"line"}, loop.Condition.Args)
	require.Len(t, loop.Condition.Redirects, 1)
	assert.Equal(t, ast.RedirectInput, loop.Condition.Redirects[0].Kind)
	assert.Equal(t, "input.txt", loop.Condition.Redirects[0].Target)
}

func TestParseNestedLoops(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "for a in 1 2; do for b in 3 4; do echo $a$b; done; done")
	require.Len(t, script.Statements, 1)

	outer := script.Statements[0].(*ast.Loop)
	require.Len(t, outer.Body.Statements, 1)
	inner, ok := outer.Body.Statements[0].(*ast.Loop)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Variable)
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		name  string
		value string
	}{
		{input: "x=5", name: "x", value: "5"},
		{input: `greeting="hello world"`, name: "greeting", value: "hello world"},
		{input: "dir=$(pwd)", name: "dir", value: "$(pwd)"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			script := mustParse(t, test.input)
			require.Len(t, script.Statements, 1)
			a, ok := script.Statements[0].(*ast.Assignment)
			require.True(t, ok)
			assert.Equal(t, test.name, a.Name)
			assert.Equal(t, test.value, a.Value)
		})
	}
}

func TestParseAssignmentInArgumentPositionFolds(t *testing.T) {
	t.Parallel()

	cmd := mustParse(t, `make target="all tests"`).Statements[0].(*ast.Command)
	assert.Equal(t, "make", cmd.Name)
	assert.Equal(t, []string{`target=all tests`}, cmd.Args)
}

func TestParseCommandSubstitutionStaysOpaque(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "echo $(ls | wc -l)")
	require.Len(t, script.Statements, 1)

	cmd := script.Statements[0].(*ast.Command)
	assert.Equal(t, []string{"$(ls | wc -l)"}, cmd.Args)
}

func TestParseMalformedInputDegrades(t *testing.T) {
	t.Parallel()

	t.Run("missing fi", func(t *testing.T) {
		t.Parallel()
		script := mustParse(t, "if a; then b")
		require.Len(t, script.Statements, 1)
		cond := script.Statements[0].(*ast.Conditional)
		require.Len(t, cond.Then.Statements, 1)
		assert.Nil(t, cond.Else)
	})

	t.Run("stray closers are skipped", func(t *testing.T) {
		t.Parallel()
		script := mustParse(t, "fi; done; echo ok")
		require.Len(t, script.Statements, 1)
		assert.Equal(t, "echo", script.Statements[0].(*ast.Command).Name)
	})

	t.Run("missing done", func(t *testing.T) {
		t.Parallel()
		script := mustParse(t, "while true; do echo looping")
		require.Len(t, script.Statements, 1)
		loop := script.Statements[0].(*ast.Loop)
		assert.Len(t, loop.Body.Statements, 1)
	})
}

func TestParseRecursionLimit(t *testing.T) {
	t.Parallel()

	input := "if a; then if b; then if c; then d; fi; fi; fi"

	_, err := shparse.ParseWithOptions(input, shparse.WithMaxDepth(2))
	require.Error(t, err)

	var limitErr errors.RecursionLimitExceededError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 2, limitErr.Limit)
	assert.Equal(t, errors.CodeRecursionLimitExceeded, limitErr.Code())

	// The same input parses fine with the default limit.
	_, err = shparse.Parse(input)
	require.NoError(t, err)
}

func TestParseNewlineSeparatesStatements(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "echo a\necho b")
	require.Len(t, script.Statements, 2)

	first := script.Statements[0].(*ast.Command)
	assert.Equal(t, "echo", first.Name)
	assert.Equal(t, []string{"a"}, first.Args)

	second := script.Statements[1].(*ast.Command)
	assert.Equal(t, "echo", second.Name)
	assert.Equal(t, []string{"b"}, second.Args)
}

func TestParseWhileLoopPipelineCondition(t *testing.T) {
	t.Parallel()

	script := mustParse(t, "while ls | grep x; do date; done")
	require.Len(t, script.Statements, 1)

	// The condition stays a single command node; the pipeline's
	// remaining words fold into its arguments instead of being dropped.
	loop := script.Statements[0].(*ast.Loop)
	assert.Equal(t, "ls", loop.Condition.Name)
	assert.Equal(t, []string{"|", "grep", "x"}, loop.Condition.Args)
	assert.Equal(t, "ls | grep x", loop.Condition.Span.Text)

	assert.Equal(t, "while ls | grep x; do date; done", shparse.Serialize(script))
}

func TestParseStatementSpans(t *testing.T) {
	t.Parallel()

	input := "echo hi; ls -la\ncat f.txt"
	script := mustParse(t, input)
	require.Len(t, script.Statements, 3)

	assert.Equal(t, "echo hi", script.Statements[0].Position().Text)
	assert.Equal(t, "ls -la", script.Statements[1].Position().Text)
	assert.Equal(t, "cat f.txt", script.Statements[2].Position().Text)
	assert.Equal(t, 2, script.Statements[2].Position().Line)
	assert.Equal(t, 1, script.Statements[2].Position().Column)

	// The root span is seeded with the whole input.
	assert.Equal(t, input, script.Span.Text)
}
