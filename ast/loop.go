package ast

import "github.com/go-shparse/shparse/internal/deepcopy"

// LoopKind distinguishes for loops from while loops.
type LoopKind int

const (
	LoopFor LoopKind = iota
	LoopWhile
)

func (k LoopKind) String() string {
	switch k {
	case LoopFor:
		return "for"
	case LoopWhile:
		return "while"
	default:
		return "unknown"
	}
}

// A Loop is a for or while block.
//
// For loops iterate Variable over Items; an item keeps its literal
// source text, so a command substitution stays as "$(...)". While loops
// re-run Condition before each pass; a trailing "done < file" input
// redirect is hoisted onto the condition command during parsing.
// Variable and Items are only set for LoopFor, Condition only for
// LoopWhile.
type Loop struct {
	Kind      LoopKind
	Variable  string
	Items     []string
	Condition *Command
	Body      *Script
	Span      *Span
}

func (l *Loop) Type() NodeType { return NodeLoop }

func (l *Loop) Position() *Span { return l.Span }

func (l *Loop) DeepCopy() *Loop {
	if l == nil {
		return nil
	}
	return &Loop{
		Kind:      l.Kind,
		Variable:  l.Variable,
		Items:     deepcopy.Slice(l.Items),
		Condition: l.Condition.DeepCopy(),
		Body:      l.Body.DeepCopy(),
		Span:      l.Span.DeepCopy(),
	}
}
