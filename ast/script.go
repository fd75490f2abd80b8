package ast

// A Script is an ordered sequence of statements. Order is significant:
// it is the order the statements would execute in. A script may be
// empty.
type Script struct {
	Statements []Node
	Span       *Span
}

func (s *Script) Type() NodeType { return NodeScript }

func (s *Script) Position() *Span { return s.Span }

// Empty reports whether the script contains no statements.
func (s *Script) Empty() bool {
	return s == nil || len(s.Statements) == 0
}

func (s *Script) DeepCopy() *Script {
	if s == nil {
		return nil
	}
	statements := make([]Node, len(s.Statements))
	for i, stmt := range s.Statements {
		statements[i] = copyNode(stmt)
	}
	return &Script{
		Statements: statements,
		Span:       s.Span.DeepCopy(),
	}
}

func copyNode(n Node) Node {
	switch n := n.(type) {
	case *Script:
		return n.DeepCopy()
	case *Command:
		return n.DeepCopy()
	case *Pipeline:
		return n.DeepCopy()
	case *Redirect:
		return n.DeepCopy()
	case *Conditional:
		return n.DeepCopy()
	case *Loop:
		return n.DeepCopy()
	case *Assignment:
		return n.DeepCopy()
	case *Subshell:
		return n.DeepCopy()
	default:
		return n
	}
}
