package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-shparse/shparse/ast"
)

func TestNewSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		text          string
		line, column  int
		endLine       int
		endColumn     int
	}{
		{"single line", "ls -la", 1, 1, 1, 7},
		{"mid line", "grep .ex", 1, 10, 1, 18},
		{"empty", "", 3, 5, 3, 5},
		{"two lines", "echo a\necho b", 1, 1, 2, 7},
		{"trailing newline", "echo a\n", 2, 4, 3, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := ast.NewSpan(test.text, test.line, test.column)
			assert.Equal(t, test.text, s.Text)
			assert.Equal(t, test.line, s.Line)
			assert.Equal(t, test.column, s.Column)
			assert.Equal(t, test.endLine, s.EndLine)
			assert.Equal(t, test.endColumn, s.EndColumn)
		})
	}
}

func TestSpanFromRange(t *testing.T) {
	t.Parallel()

	src := "echo hi\ncat f.txt"

	s := ast.SpanFromRange(src, 8, 17)
	assert.Equal(t, "cat f.txt", s.Text)
	assert.Equal(t, 2, s.Line)
	assert.Equal(t, 1, s.Column)
	assert.Equal(t, 2, s.EndLine)
	assert.Equal(t, 10, s.EndColumn)

	s = ast.SpanFromRange(src, 5, 7)
	assert.Equal(t, "hi", s.Text)
	assert.Equal(t, 1, s.Line)
	assert.Equal(t, 6, s.Column)
}

func TestSpanFromRangeClamps(t *testing.T) {
	t.Parallel()

	src := "ls"

	assert.Equal(t, "ls", ast.SpanFromRange(src, -3, 99).Text)

	s := ast.SpanFromRange(src, 1, 0)
	assert.Equal(t, "", s.Text)
	assert.True(t, s.Empty())
}

func TestSpanEmpty(t *testing.T) {
	t.Parallel()

	var nilSpan *ast.Span
	assert.True(t, nilSpan.Empty())
	assert.True(t, ast.NewSpan("", 1, 1).Empty())
	assert.False(t, ast.NewSpan("x", 1, 1).Empty())
}

func TestSpanDeepCopy(t *testing.T) {
	t.Parallel()

	var nilSpan *ast.Span
	assert.Nil(t, nilSpan.DeepCopy())

	orig := ast.NewSpan("ls -la", 2, 3)
	clone := orig.DeepCopy()
	assert.Equal(t, orig, clone)

	clone.Text = "changed"
	assert.Equal(t, "ls -la", orig.Text)
}
