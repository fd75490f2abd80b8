package ast

// An Assignment is a name=value statement. It is only lifted into its
// own node when the name= pattern starts a statement; in argument
// position the pair is folded back into a single name=value argument.
type Assignment struct {
	Name  string
	Value string
	Span  *Span
}

func (a *Assignment) Type() NodeType { return NodeAssignment }

func (a *Assignment) Position() *Span { return a.Span }

func (a *Assignment) DeepCopy() *Assignment {
	if a == nil {
		return nil
	}
	return &Assignment{
		Name:  a.Name,
		Value: a.Value,
		Span:  a.Span.DeepCopy(),
	}
}
