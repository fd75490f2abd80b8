package ast

// A Subshell wraps a script that would run in its own shell. The
// tokenizer treats parentheses as ordinary word characters, so the
// parser never produces this node; it exists so that trees built or
// rewritten by tools can still be serialized and visited.
type Subshell struct {
	Script *Script
	Span   *Span
}

func (s *Subshell) Type() NodeType { return NodeSubshell }

func (s *Subshell) Position() *Span { return s.Span }

func (s *Subshell) DeepCopy() *Subshell {
	if s == nil {
		return nil
	}
	return &Subshell{
		Script: s.Script.DeepCopy(),
		Span:   s.Span.DeepCopy(),
	}
}
