package ast

// A Conditional is an if/then/else/fi block. The condition is always
// normalized into a single synthetic command named "test" whose
// arguments are the flattened condition words; bracket expressions
// ([ ... ]) and compound test syntax are captured this way instead of
// through a separate boolean-expression grammar. Else is nil when the
// block has no else branch.
type Conditional struct {
	Condition *Command
	Then      *Script
	Else      *Script
	Span      *Span
}

func (c *Conditional) Type() NodeType { return NodeConditional }

func (c *Conditional) Position() *Span { return c.Span }

func (c *Conditional) DeepCopy() *Conditional {
	if c == nil {
		return nil
	}
	return &Conditional{
		Condition: c.Condition.DeepCopy(),
		Then:      c.Then.DeepCopy(),
		Else:      c.Else.DeepCopy(),
		Span:      c.Span.DeepCopy(),
	}
}
