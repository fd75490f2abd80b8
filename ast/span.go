package ast

import "strings"

// A Span records the original source text of a node together with its
// position in the input. Lines and columns are 1-based. End positions
// point one past the last character, so a span for "ls" starting at 1:1
// ends at 1:3.
//
// A span with empty Text marks a node that was synthesized during
// parsing (for example a normalized condition command). The serializer
// falls back to structural synthesis for such nodes.
type Span struct {
	Text      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// NewSpan builds a span for text starting at the given position. The end
// position is derived from the text itself by counting embedded newlines
// and measuring the final line.
func NewSpan(text string, line, column int) *Span {
	s := &Span{
		Text:   text,
		Line:   line,
		Column: column,
	}
	if n := strings.Count(text, "\n"); n > 0 {
		last := text[strings.LastIndexByte(text, '\n')+1:]
		s.EndLine = line + n
		s.EndColumn = len(last) + 1
	} else {
		s.EndLine = line
		s.EndColumn = column + len(text)
	}
	return s
}

// SpanFromRange slices original[start:end) and derives both endpoints by
// scanning original. start and end are byte offsets.
func SpanFromRange(original string, start, end int) *Span {
	if start < 0 {
		start = 0
	}
	if end > len(original) {
		end = len(original)
	}
	if end < start {
		end = start
	}
	line, column := position(original, start)
	return NewSpan(original[start:end], line, column)
}

// position converts a byte offset into a 1-based line/column pair.
func position(text string, offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Empty reports whether the span carries no captured text.
func (s *Span) Empty() bool {
	return s == nil || s.Text == ""
}

func (s *Span) DeepCopy() *Span {
	if s == nil {
		return nil
	}
	return &Span{
		Text:      s.Text,
		Line:      s.Line,
		Column:    s.Column,
		EndLine:   s.EndLine,
		EndColumn: s.EndColumn,
	}
}
