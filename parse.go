package shparse

import (
	"regexp"
	"strings"

	"github.com/go-shparse/shparse/ast"
	"github.com/go-shparse/shparse/errors"
)

// DefaultMaxDepth is the nesting depth at which parsing gives up with a
// RecursionLimitExceededError instead of growing the stack without
// bound.
const DefaultMaxDepth = 1000

// A ParseOption configures a single parse call.
type ParseOption func(*parser)

// WithMaxDepth overrides the block nesting depth limit.
func WithMaxDepth(n int) ParseOption {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parse turns shell-script text into a syntax tree. It never fails on
// malformed input: unterminated quotes and missing block terminators
// degrade to a best-effort tree. The only returned error is a
// RecursionLimitExceededError for input nested past the depth limit.
//
// The returned tree is exclusively owned by the caller and is safe to
// read concurrently; separate Parse calls share no state.
func Parse(text string) (*ast.Script, error) {
	return ParseWithOptions(text)
}

// ParseWithOptions is Parse with per-call configuration.
func ParseWithOptions(text string, opts ...ParseOption) (*ast.Script, error) {
	p := &parser{src: text, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	statements, err := p.parseStatements(Tokenize(text), 0)
	if err != nil {
		return nil, err
	}
	// The root span is seeded with the full input so that a whole
	// script round-trips byte-for-byte.
	return &ast.Script{
		Statements: statements,
		Span:       ast.NewSpan(text, 1, 1),
	}, nil
}

type parser struct {
	src      string
	maxDepth int
}

// strayKeywords are block keywords that a statement loop simply skips
// when they show up unconsumed, instead of failing. They are left
// behind by best-effort parses of malformed blocks.
var strayKeywords = map[string]bool{
	"then": true,
	"else": true,
	"fi":   true,
	"do":   true,
	"done": true,
}

// assignmentName matches the name= prefix the tokenizer leaves when an
// assignment value is quoted, e.g. x="a b" lexes as [x=] [a b].
var assignmentName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=$`)

// assignmentPair matches a self-contained name=value word.
var assignmentPair = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=[^=]+$`)

// parseStatements peels statements off the front of tokens until none
// remain.
func (p *parser) parseStatements(tokens []Token, depth int) ([]ast.Node, error) {
	if depth > p.maxDepth {
		return nil, errors.RecursionLimitExceededError{Limit: p.maxDepth}
	}
	var statements []ast.Node
	for len(tokens) > 0 {
		tok := tokens[0]
		if tok.Type == TokenSemicolon {
			tokens = tokens[1:]
			continue
		}
		if tok.Type == TokenCommand && strayKeywords[tok.Literal] {
			tokens = tokens[1:]
			continue
		}

		var (
			node ast.Node
			rest []Token
			err  error
		)
		switch {
		case isKeyword(tok, "if"):
			node, rest, err = p.parseConditional(tokens, depth)
		case isKeyword(tok, "for"):
			node, rest, err = p.parseForLoop(tokens, depth)
		case isKeyword(tok, "while"), isKeyword(tok, "until"):
			node, rest, err = p.parseWhileLoop(tokens, depth)
		case p.startsAssignment(tokens):
			node, rest = p.parseAssignment(tokens)
		default:
			node, rest = p.parseCommandOrPipeline(tokens)
		}
		if err != nil {
			return nil, err
		}
		if node != nil {
			statements = append(statements, node)
		}
		if len(rest) == len(tokens) {
			// A parse that consumed nothing must not stall the loop.
			rest = tokens[1:]
		}
		tokens = rest
	}
	return statements, nil
}

// startsAssignment reports whether the next statement is an assignment:
// either a single name=value word or a name= word followed by its
// quoted value.
func (p *parser) startsAssignment(tokens []Token) bool {
	lit := tokens[0].Literal
	if assignmentPair.MatchString(lit) && !strings.HasPrefix(lit, "$") {
		return true
	}
	return assignmentName.MatchString(lit) && len(tokens) > 1 && isValueToken(tokens[1])
}

func isValueToken(tok Token) bool {
	switch tok.Type {
	case TokenString, TokenVariable, TokenCommandSub, TokenOption, TokenCommand:
		return true
	}
	return false
}

func (p *parser) parseAssignment(tokens []Token) (ast.Node, []Token) {
	lit := tokens[0].Literal
	if i := strings.IndexByte(lit, '='); i < len(lit)-1 {
		return &ast.Assignment{
			Name:  lit[:i],
			Value: lit[i+1:],
			Span:  p.spanFor(tokens[:1]),
		}, tokens[1:]
	}
	return &ast.Assignment{
		Name:  strings.TrimSuffix(lit, "="),
		Value: tokens[1].Literal,
		Span:  p.spanFor(tokens[:2]),
	}, tokens[2:]
}

// parseCommandOrPipeline parses one simple command and, if a pipe
// follows, keeps going to collect the whole pipeline. A lone command is
// returned bare, never as a one-element pipeline.
func (p *parser) parseCommandOrPipeline(tokens []Token) (ast.Node, []Token) {
	all := tokens
	var commands []*ast.Command
	for {
		cmd, rest := p.parseSimpleCommand(tokens)
		commands = append(commands, cmd)
		tokens = rest
		if len(tokens) > 0 && tokens[0].Type == TokenPipe {
			tokens = tokens[1:]
			continue
		}
		break
	}
	if len(commands) == 1 {
		return commands[0], tokens
	}
	return &ast.Pipeline{
		Commands: commands,
		Span:     p.spanFor(all[:len(all)-len(tokens)]),
	}, tokens
}

// parseSimpleCommand reads a command name and then its arguments and
// redirects. On empty input it returns the null-command sentinel so
// that callers never have to special-case a missing command.
func (p *parser) parseSimpleCommand(tokens []Token) (*ast.Command, []Token) {
	if len(tokens) == 0 {
		return &ast.Command{Span: &ast.Span{Line: 1, Column: 1, EndLine: 1, EndColumn: 1}}, nil
	}
	all := tokens
	cmd := &ast.Command{Name: tokens[0].Literal}
	rest := p.parseArgsAndRedirects(cmd, tokens[1:])
	cmd.Span = p.spanFor(all[:len(all)-len(rest)])
	return cmd, rest
}

// parseArgsAndRedirects consumes argument and redirect tokens for cmd
// until a statement boundary. Boundary tokens (semicolon, pipe, any
// word in command position) are only peeked so the caller can resume on
// them.
func (p *parser) parseArgsAndRedirects(cmd *ast.Command, tokens []Token) []Token {
	for len(tokens) > 0 {
		tok := tokens[0]
		if tok.Type == TokenSemicolon || tok.Type == TokenPipe {
			break
		}
		if tok.Type == TokenCommand {
			// A word in command position starts the next statement or
			// closes the enclosing block.
			return tokens
		}

		switch tok.Type {
		case TokenRedirectOut, TokenRedirectAppend, TokenRedirectIn:
			if len(tokens) < 2 {
				// Dangling operator at end of input; drop it.
				return tokens[1:]
			}
			cmd.Redirects = append(cmd.Redirects, &ast.Redirect{
				Kind:   redirectKind(tok.Type),
				Target: tokens[1].Literal,
				Span:   p.spanFor(tokens[:2]),
			})
			tokens = tokens[2:]

		case TokenCommandSub:
			// Substitutions stay opaque literal text, they are not
			// parsed into nested trees.
			cmd.Args = append(cmd.Args, tok.Literal)
			tokens = tokens[1:]

		default:
			switch {
			case tok.Literal == "[":
				var arg string
				arg, tokens = flattenBracket(tokens)
				cmd.Args = append(cmd.Args, arg)
			case assignmentName.MatchString(tok.Literal) && len(tokens) > 1 && isValueToken(tokens[1]):
				// In argument position the pair folds back into a
				// single word.
				cmd.Args = append(cmd.Args, tok.Literal+tokens[1].Literal)
				tokens = tokens[2:]
			default:
				cmd.Args = append(cmd.Args, tok.Literal)
				tokens = tokens[1:]
			}
		}
	}
	return tokens
}

// flattenBracket joins a [ ... ] test expression into one argument
// string. The scan stops early at statement boundaries so a missing ]
// cannot swallow the rest of the input.
func flattenBracket(tokens []Token) (string, []Token) {
	parts := []string{tokens[0].Literal}
	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Type == TokenSemicolon || tok.Type == TokenPipe {
			break
		}
		if tok.Type == TokenCommand && strayKeywords[tok.Literal] {
			break
		}
		parts = append(parts, tok.Literal)
		i++
		if tok.Literal == "]" {
			break
		}
	}
	return strings.Join(parts, " "), tokens[i:]
}

func redirectKind(t TokenType) ast.RedirectKind {
	switch t {
	case TokenRedirectAppend:
		return ast.RedirectAppend
	case TokenRedirectIn:
		return ast.RedirectInput
	default:
		return ast.RedirectOutput
	}
}

// parseConditional parses if <cond> then <body> [else <body>] fi. A
// missing then or fi degrades to a best-effort node built from
// whatever was captured.
func (p *parser) parseConditional(tokens []Token, depth int) (ast.Node, []Token, error) {
	all := tokens
	tokens = tokens[1:] // if

	condTokens, rest := extractUntil(tokens, "then")
	cond := p.normalizeCondition(condTokens)
	if len(rest) > 0 {
		rest = rest[1:] // then
	}

	thenTokens, rest := extractUntil(rest, "else", "fi")
	thenScript, err := p.parseScript(thenTokens, depth+1)
	if err != nil {
		return nil, nil, err
	}

	var elseScript *ast.Script
	if len(rest) > 0 && isKeyword(rest[0], "else") {
		var elseTokens []Token
		elseTokens, rest = extractUntil(rest[1:], "fi")
		elseScript, err = p.parseScript(elseTokens, depth+1)
		if err != nil {
			return nil, nil, err
		}
	}
	if len(rest) > 0 && isKeyword(rest[0], "fi") {
		rest = rest[1:]
	}

	return &ast.Conditional{
		Condition: cond,
		Then:      thenScript,
		Else:      elseScript,
		Span:      p.spanFor(all[:len(all)-len(rest)]),
	}, rest, nil
}

// normalizeCondition flattens condition tokens into one synthetic
// command named "test". A leading "test" word is dropped to avoid
// doubling it; a bracket expression contributes everything between the
// brackets. The node is synthetic, so its span carries no text and the
// serializer rebuilds it structurally.
func (p *parser) normalizeCondition(tokens []Token) *ast.Command {
	span := &ast.Span{Line: 1, Column: 1, EndLine: 1, EndColumn: 1}
	if len(tokens) > 0 {
		at := ast.SpanFromRange(p.src, tokens[0].Pos, tokens[0].Pos)
		span = at
	}

	var literals []string
	for _, tok := range tokens {
		if tok.Type == TokenSemicolon {
			continue
		}
		literals = append(literals, tok.Literal)
	}
	if len(literals) > 0 {
		switch literals[0] {
		case "test":
			literals = literals[1:]
		case "[":
			literals = literals[1:]
			if n := len(literals); n > 0 && literals[n-1] == "]" {
				literals = literals[:n-1]
			}
		}
	}
	return &ast.Command{Name: "test", Args: literals, Span: span}
}

// parseForLoop parses for <var> in <items...> do <body> done. An empty
// item list is valid.
func (p *parser) parseForLoop(tokens []Token, depth int) (ast.Node, []Token, error) {
	all := tokens
	tokens = tokens[1:] // for

	var variable string
	if len(tokens) > 0 && !isKeyword(tokens[0], "in") {
		variable = tokens[0].Literal
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && isKeyword(tokens[0], "in") {
		tokens = tokens[1:]
	}

	itemTokens, rest := extractUntil(tokens, "do")
	var items []string
	for _, tok := range itemTokens {
		if tok.Type == TokenSemicolon {
			continue
		}
		items = append(items, tok.Literal)
	}
	if len(rest) > 0 {
		rest = rest[1:] // do
	}

	bodyTokens, rest := extractUntil(rest, "done")
	body, err := p.parseScript(bodyTokens, depth+1)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) > 0 && isKeyword(rest[0], "done") {
		rest = rest[1:]
	}

	return &ast.Loop{
		Kind:     ast.LoopFor,
		Variable: variable,
		Items:    items,
		Body:     body,
		Span:     p.spanFor(all[:len(all)-len(rest)]),
	}, rest, nil
}

// parseWhileLoop parses while <cond> do <body> done, treating until the
// same way. A trailing "done < file" input redirect is hoisted onto the
// condition command, modelling the while ... done < file idiom.
func (p *parser) parseWhileLoop(tokens []Token, depth int) (ast.Node, []Token, error) {
	all := tokens
	tokens = tokens[1:] // while

	condTokens, rest := extractUntil(tokens, "do")
	cond, leftover := p.parseSimpleCommand(condTokens)
	// A pipeline condition folds into the one condition command, pipe
	// words included, so that no condition text is lost.
	if len(leftover) > 0 {
		for _, tok := range leftover {
			if tok.Type == TokenSemicolon {
				continue
			}
			cond.Args = append(cond.Args, tok.Literal)
		}
		trimmed := condTokens
		for len(trimmed) > 0 && trimmed[len(trimmed)-1].Type == TokenSemicolon {
			trimmed = trimmed[:len(trimmed)-1]
		}
		cond.Span = p.spanFor(trimmed)
	}
	if len(rest) > 0 {
		rest = rest[1:] // do
	}

	bodyTokens, rest := extractUntil(rest, "done")
	body, err := p.parseScript(bodyTokens, depth+1)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) > 0 && isKeyword(rest[0], "done") {
		rest = rest[1:]
	}
	// while read line; do ...; done < input.txt
	if len(rest) > 1 && rest[0].Type == TokenRedirectIn {
		cond.Redirects = append(cond.Redirects, &ast.Redirect{
			Kind:   ast.RedirectInput,
			Target: rest[1].Literal,
			Span:   p.spanFor(rest[:2]),
		})
		rest = rest[2:]
	}

	return &ast.Loop{
		Kind:      ast.LoopWhile,
		Condition: cond,
		Body:      body,
		Span:      p.spanFor(all[:len(all)-len(rest)]),
	}, rest, nil
}

// parseScript wraps a token slice into a Script node with its own span.
func (p *parser) parseScript(tokens []Token, depth int) (*ast.Script, error) {
	statements, err := p.parseStatements(tokens, depth)
	if err != nil {
		return nil, err
	}
	return &ast.Script{
		Statements: statements,
		Span:       p.spanFor(tokens),
	}, nil
}

// spanFor slices the exact source range covered by a token run.
func (p *parser) spanFor(tokens []Token) *ast.Span {
	if len(tokens) == 0 {
		return &ast.Span{Line: 1, Column: 1, EndLine: 1, EndColumn: 1}
	}
	return ast.SpanFromRange(p.src, tokens[0].Pos, tokens[len(tokens)-1].End)
}
