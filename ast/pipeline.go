package ast

import "github.com/go-shparse/shparse/internal/deepcopy"

// A Pipeline chains two or more commands with |. A lone command is
// always represented as a bare *Command, never a one-element Pipeline.
type Pipeline struct {
	Commands []*Command
	Span     *Span
}

func (p *Pipeline) Type() NodeType { return NodePipeline }

func (p *Pipeline) Position() *Span { return p.Span }

func (p *Pipeline) DeepCopy() *Pipeline {
	if p == nil {
		return nil
	}
	return &Pipeline{
		Commands: deepcopy.Slice(p.Commands),
		Span:     p.Span.DeepCopy(),
	}
}
