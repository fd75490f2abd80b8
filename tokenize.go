package shparse

import "strings"

// Tokenize splits text into an ordered token sequence in a single
// left-to-right pass. It never fails: an unterminated quote or command
// substitution flushes whatever was accumulated as a literal and the
// scan continues from the end of input.
//
// Whether a bare word lexes as TokenCommand or TokenString depends on
// context: a word is a command when it is a control keyword, when it is
// the first token, when it starts a new line, when the previous token
// is a pipe, a semicolon, or a keyword that introduces a command
// position (then, else, do, if, elif, while, until). Everything else is
// a plain string. This is what makes "grep" a command in "ls | grep x"
// while "x" stays a string, and what makes a newline separate
// statements the way a semicolon does.
func Tokenize(text string) []Token {
	var tokens []Token
	lineStart := true
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '\n' {
			lineStart = true
			i++
			continue
		}
		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}

		switch {
		case c == '|':
			tokens = append(tokens, Token{Type: TokenPipe, Literal: "|", Pos: i, End: i + 1})
			i++

		case c == ';':
			tokens = append(tokens, Token{Type: TokenSemicolon, Literal: ";", Pos: i, End: i + 1})
			i++

		case c == '>':
			// >> has to win over > here.
			if i+1 < len(text) && text[i+1] == '>' {
				tokens = append(tokens, Token{Type: TokenRedirectAppend, Literal: ">>", Pos: i, End: i + 2})
				i += 2
			} else {
				tokens = append(tokens, Token{Type: TokenRedirectOut, Literal: ">", Pos: i, End: i + 1})
				i++
			}

		case c == '<':
			tokens = append(tokens, Token{Type: TokenRedirectIn, Literal: "<", Pos: i, End: i + 1})
			i++

		case c == '$' && i+1 < len(text) && text[i+1] == '(':
			end := scanSubstitution(text, i)
			tokens = append(tokens, Token{Type: TokenCommandSub, Literal: text[i:end], Pos: i, End: end})
			i = end

		case c == '"':
			lit, end := scanDoubleQuote(text, i+1)
			tokens = append(tokens, Token{Type: TokenString, Literal: lit, Pos: i, End: end})
			i = end

		case c == '\'':
			lit, end := scanSingleQuote(text, i+1)
			tokens = append(tokens, Token{Type: TokenString, Literal: lit, Pos: i, End: end})
			i = end

		case c == '$':
			word, end := scanWord(text, i)
			tokens = append(tokens, Token{Type: TokenVariable, Literal: word, Pos: i, End: end})
			i = end

		case c == '-':
			word, end := scanWord(text, i)
			tokens = append(tokens, Token{Type: TokenOption, Literal: word, Pos: i, End: end})
			i = end

		default:
			word, end := scanWord(text, i)
			if end == i {
				// Unscannable byte, skip it so the pass always advances.
				i++
				continue
			}
			tokens = append(tokens, Token{
				Type:    classifyWord(word, tokens, lineStart),
				Literal: word,
				Pos:     i,
				End:     end,
			})
			i = end
		}
		lineStart = false
	}
	return tokens
}

// classifyWord decides between TokenCommand and TokenString from the
// word itself, the tokens emitted so far, and whether the word is the
// first token on its line.
func classifyWord(word string, emitted []Token, lineStart bool) TokenType {
	if keywords[word] {
		return TokenCommand
	}
	if lineStart || len(emitted) == 0 {
		return TokenCommand
	}
	prev := emitted[len(emitted)-1]
	switch prev.Type {
	case TokenPipe, TokenSemicolon:
		return TokenCommand
	case TokenCommand:
		// then/else/do introduce a body command; if/elif/while/until
		// introduce a condition command.
		switch prev.Literal {
		case "then", "else", "do", "if", "elif", "while", "until":
			return TokenCommand
		}
	}
	return TokenString
}

// isWordBreak reports whether c terminates a bare word.
func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '|', ';', '<', '>', '"', '\'':
		return true
	}
	return false
}

// scanWord reads a maximal bare word starting at i and returns it with
// the offset one past its last byte.
func scanWord(text string, i int) (string, int) {
	j := i
	for j < len(text) && !isWordBreak(text[j]) {
		j++
	}
	return text[i:j], j
}

// scanDoubleQuote accumulates a double-quoted literal starting just
// after the opening quote. Escape sequences are not interpreted: a \"
// pair is copied through verbatim so that the escaped quote does not
// close the string. Returns the literal and the offset one past the
// closing quote, or one past the end of input if the quote never
// closes.
func scanDoubleQuote(text string, i int) (string, int) {
	var b strings.Builder
	for i < len(text) {
		c := text[i]
		if c == '\\' && i+1 < len(text) && text[i+1] == '"' {
			b.WriteByte('\\')
			b.WriteByte('"')
			i += 2
			continue
		}
		if c == '"' {
			return b.String(), i + 1
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), i
}

// scanSingleQuote accumulates a single-quoted literal. No escapes are
// recognized at all, matching shell semantics for single quotes.
func scanSingleQuote(text string, i int) (string, int) {
	j := i
	for j < len(text) && text[j] != '\'' {
		j++
	}
	if j < len(text) {
		return text[i:j], j + 1
	}
	return text[i:j], j
}

// scanSubstitution reads a full $(...) span starting at the dollar
// sign, tracking parenthesis depth. Quoted substrings are skipped with
// their own balanced scan so that parentheses inside quotes do not
// perturb the depth count. Returns the offset one past the closing
// parenthesis, or the end of input when the substitution never closes.
func scanSubstitution(text string, i int) int {
	depth := 0
	j := i + 1
	for j < len(text) {
		switch text[j] {
		case '(':
			depth++
			j++
		case ')':
			depth--
			j++
			if depth == 0 {
				return j
			}
		case '"':
			j = skipQuoted(text, j, '"')
		case '\'':
			j = skipQuoted(text, j, '\'')
		default:
			j++
		}
	}
	return j
}

// skipQuoted returns the offset one past the quoted region opening at
// i. Inside double quotes a backslash escapes the closing quote.
func skipQuoted(text string, i int, quote byte) int {
	j := i + 1
	for j < len(text) {
		if quote == '"' && text[j] == '\\' && j+1 < len(text) {
			j += 2
			continue
		}
		if text[j] == quote {
			return j + 1
		}
		j++
	}
	return j
}
