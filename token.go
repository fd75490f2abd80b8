// Package shparse turns shell-script source text into an inspectable
// syntax tree and back, without executing anything. The tree keeps the
// source span of every statement so that a parse can be reproduced
// byte-for-byte; trees built or rewritten by hand serialize through a
// deterministic synthesis policy instead.
package shparse

// TokenType classifies a lexical token.
type TokenType int

const (
	TokenCommand TokenType = iota
	TokenString
	TokenOption
	TokenVariable
	TokenCommandSub
	TokenPipe
	TokenRedirectOut
	TokenRedirectAppend
	TokenRedirectIn
	TokenSemicolon
)

func (t TokenType) String() string {
	switch t {
	case TokenCommand:
		return "COMMAND"
	case TokenString:
		return "STRING"
	case TokenOption:
		return "OPTION"
	case TokenVariable:
		return "VARIABLE"
	case TokenCommandSub:
		return "COMMAND_SUB"
	case TokenPipe:
		return "PIPE"
	case TokenRedirectOut:
		return "REDIRECT_OUT"
	case TokenRedirectAppend:
		return "REDIRECT_APPEND"
	case TokenRedirectIn:
		return "REDIRECT_IN"
	case TokenSemicolon:
		return "SEMICOLON"
	default:
		return "UNKNOWN"
	}
}

// A Token is one lexical unit of the input. Literal holds the token's
// text with surrounding quotes stripped; Pos and End are byte offsets
// into the source covering the token including its quotes, so the
// parser can slice exact spans. Whitespace and newlines produce no
// token. Tokens are transient: they are consumed during parsing and
// never retained in the tree.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
	End     int
}

func (t Token) String() string {
	return t.Type.String() + "(" + t.Literal + ")"
}

// keywords are the control words that always lex as TokenCommand, no
// matter where they appear.
var keywords = map[string]bool{
	"if":    true,
	"then":  true,
	"else":  true,
	"elif":  true,
	"fi":    true,
	"for":   true,
	"in":    true,
	"do":    true,
	"done":  true,
	"while": true,
	"until": true,
}

// isKeyword reports whether tok is a TokenCommand with the given
// literal.
func isKeyword(tok Token, word string) bool {
	return tok.Type == TokenCommand && tok.Literal == word
}
