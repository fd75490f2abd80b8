// Package ast declares the syntax tree produced by parsing a shell
// script. Nodes are built bottom-up during a single parse call and are
// never mutated afterwards; consumers that need a private copy should
// use the DeepCopy methods.
package ast

// NodeType identifies the concrete type of a tree node. The set of
// types is closed: renderers and visitors dispatch on it exhaustively
// and must surface an "unknown node" marker for anything else rather
// than panic.
type NodeType int

const (
	NodeScript NodeType = iota
	NodeCommand
	NodePipeline
	NodeRedirect
	NodeConditional
	NodeLoop
	NodeAssignment
	NodeSubshell
)

func (t NodeType) String() string {
	switch t {
	case NodeScript:
		return "script"
	case NodeCommand:
		return "command"
	case NodePipeline:
		return "pipeline"
	case NodeRedirect:
		return "redirect"
	case NodeConditional:
		return "conditional"
	case NodeLoop:
		return "loop"
	case NodeAssignment:
		return "assignment"
	case NodeSubshell:
		return "subshell"
	default:
		return "unknown"
	}
}

// Node is implemented by every syntax tree node.
type Node interface {
	Type() NodeType
	Position() *Span
}
