package ast

// A Visitor receives one callback per node type. Walk drives a Visitor
// over a tree in source order. Visitors must treat the tree as
// immutable.
//
// Every node type listed in this package has a method here; a renderer
// built on a plain type switch instead of this interface must emit an
// "unknown node" marker for types it does not handle.
type Visitor interface {
	VisitScript(*Script) error
	VisitCommand(*Command) error
	VisitPipeline(*Pipeline) error
	VisitRedirect(*Redirect) error
	VisitConditional(*Conditional) error
	VisitLoop(*Loop) error
	VisitAssignment(*Assignment) error
	VisitSubshell(*Subshell) error
}

// Walk dispatches v over n and then over n's children, depth first, in
// source order. It stops at the first error and returns it.
func Walk(n Node, v Visitor) error {
	switch n := n.(type) {
	case *Script:
		if err := v.VisitScript(n); err != nil {
			return err
		}
		for _, stmt := range n.Statements {
			if err := Walk(stmt, v); err != nil {
				return err
			}
		}
	case *Command:
		if err := v.VisitCommand(n); err != nil {
			return err
		}
		for _, r := range n.Redirects {
			if err := Walk(r, v); err != nil {
				return err
			}
		}
	case *Pipeline:
		if err := v.VisitPipeline(n); err != nil {
			return err
		}
		for _, c := range n.Commands {
			if err := Walk(c, v); err != nil {
				return err
			}
		}
	case *Redirect:
		return v.VisitRedirect(n)
	case *Conditional:
		if err := v.VisitConditional(n); err != nil {
			return err
		}
		if err := Walk(n.Condition, v); err != nil {
			return err
		}
		if err := Walk(n.Then, v); err != nil {
			return err
		}
		if n.Else != nil {
			return Walk(n.Else, v)
		}
	case *Loop:
		if err := v.VisitLoop(n); err != nil {
			return err
		}
		if n.Condition != nil {
			if err := Walk(n.Condition, v); err != nil {
				return err
			}
		}
		return Walk(n.Body, v)
	case *Assignment:
		return v.VisitAssignment(n)
	case *Subshell:
		if err := v.VisitSubshell(n); err != nil {
			return err
		}
		return Walk(n.Script, v)
	}
	return nil
}
