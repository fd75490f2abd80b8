package ast

// RedirectKind is the direction of an I/O redirection.
type RedirectKind int

const (
	RedirectInput  RedirectKind = iota // <
	RedirectOutput                     // >
	RedirectAppend                     // >>
)

func (k RedirectKind) String() string {
	switch k {
	case RedirectInput:
		return "<"
	case RedirectOutput:
		return ">"
	case RedirectAppend:
		return ">>"
	default:
		return "?"
	}
}

// A Redirect attaches a file target to a command. Target is never
// empty on a well-formed tree.
type Redirect struct {
	Kind   RedirectKind
	Target string
	Span   *Span
}

func (r *Redirect) Type() NodeType { return NodeRedirect }

func (r *Redirect) Position() *Span { return r.Span }

func (r *Redirect) DeepCopy() *Redirect {
	if r == nil {
		return nil
	}
	return &Redirect{
		Kind:   r.Kind,
		Target: r.Target,
		Span:   r.Span.DeepCopy(),
	}
}
