package snippet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"

	"github.com/go-shparse/shparse/ast"
)

const (
	lineIndicator   = ">"
	columnIndicator = "^"
)

type (
	Option  func(*Snippet)
	Snippet struct {
		lines   []string
		start   int
		end     int
		line    int
		column  int
		padding int
	}
)

// New creates a snippet of the given script source centered on a line
// and column, with the source syntax highlighted as bash. The line and
// column are 1-indexed. The padding determines the number of lines to
// include before and after the chosen line.
func New(b []byte, opts ...Option) *Snippet {
	snippet := &Snippet{}
	for _, opt := range opts {
		opt(snippet)
	}

	// Syntax highlight the input and split it into lines
	buf := &bytes.Buffer{}
	if err := quick.Highlight(buf, string(b), "bash", "terminal", "native"); err != nil {
		buf.Reset()
		buf.WriteString(string(b))
	}
	lines := strings.Split(buf.String(), "\n")

	// Work out the start and end lines of the snippet
	snippet.start = max(snippet.line-snippet.padding, 1)
	snippet.end = min(snippet.line+snippet.padding, len(lines))
	if snippet.end < snippet.start {
		snippet.end = snippet.start
	}
	if snippet.start <= len(lines) {
		snippet.lines = lines[snippet.start-1 : snippet.end]
	}

	return snippet
}

// WithSpan centers the snippet on a node's source position.
func WithSpan(span *ast.Span) Option {
	return func(snippet *Snippet) {
		if span == nil {
			return
		}
		snippet.line = span.Line
		snippet.column = span.Column
	}
}

func WithLine(line int) Option {
	return func(snippet *Snippet) {
		snippet.line = line
	}
}

func WithColumn(column int) Option {
	return func(snippet *Snippet) {
		snippet.column = column
	}
}

func WithPadding(padding int) Option {
	return func(snippet *Snippet) {
		snippet.padding = padding
	}
}

func (snippet *Snippet) String() string {
	buf := &bytes.Buffer{}

	maxLineNumberDigits := digits(snippet.end)
	lineNumberFormat := fmt.Sprintf("%%%dd", maxLineNumberDigits)
	lineNumberSpacer := strings.Repeat(" ", maxLineNumberDigits)
	lineIndicatorSpacer := strings.Repeat(" ", len(lineIndicator))
	columnSpacer := strings.Repeat(" ", max(snippet.column-1, 0))

	for i, line := range snippet.lines {
		if i > 0 {
			fmt.Fprintln(buf)
		}

		currentLine := snippet.start + i
		lineNumber := fmt.Sprintf(lineNumberFormat, currentLine)

		// If this is a padding line, print it as normal
		if currentLine != snippet.line {
			fmt.Fprintf(buf, "%s %s | %s", lineIndicatorSpacer, lineNumber, line)
			continue
		}

		// Otherwise, print the line with indicators
		fmt.Fprintf(buf, "%s %s | %s", color.RedString(lineIndicator), lineNumber, line)
		if snippet.column > 0 {
			fmt.Fprintf(buf, "\n%s %s | %s%s", lineIndicatorSpacer, lineNumberSpacer, columnSpacer, color.RedString(columnIndicator))
		}
	}

	return buf.String()
}

func digits(number int) int {
	count := 0
	for number != 0 {
		number /= 10
		count += 1
	}
	return count
}
