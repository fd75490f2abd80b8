package ast

import "github.com/go-shparse/shparse/internal/deepcopy"

// A Command is a simple command: a name followed by its arguments and
// redirections in encounter order. Arguments keep their literal source
// text, including unexpanded variables ($x) and raw command
// substitution text ($(...)).
//
// Name is empty only for the internal null-command sentinel used while
// parsing degraded input.
type Command struct {
	Name      string
	Args      []string
	Redirects []*Redirect
	Span      *Span
}

func (c *Command) Type() NodeType { return NodeCommand }

func (c *Command) Position() *Span { return c.Span }

func (c *Command) DeepCopy() *Command {
	if c == nil {
		return nil
	}
	return &Command{
		Name:      c.Name,
		Args:      deepcopy.Slice(c.Args),
		Redirects: deepcopy.Slice(c.Redirects),
		Span:      c.Span.DeepCopy(),
	}
}
