package shparse

// blockFamily tags an entry on the extractor's keyword stack.
type blockFamily int

const (
	familyIf blockFamily = iota
	familyLoop
)

// extractUntil scans tokens for the first stop keyword that sits at the
// current nesting level and returns the prefix before it together with
// the remaining tokens starting at the terminator itself.
//
// Nesting is tracked with an explicit stack: if/for/while/until push,
// fi pops an if, done pops a loop. A stop keyword only terminates the
// scan while the stack is empty; inside a nested block it belongs to
// that block. A closer with an empty or mismatched stack is ignored
// rather than treated as an error, which keeps the scan usable on
// malformed input. If no terminator is found the whole input is the
// prefix and the remainder is nil.
func extractUntil(tokens []Token, stop ...string) (prefix, rest []Token) {
	var stack []blockFamily
	for i, tok := range tokens {
		if tok.Type != TokenCommand {
			continue
		}
		if len(stack) == 0 {
			for _, s := range stop {
				if tok.Literal == s {
					return tokens[:i], tokens[i:]
				}
			}
		}
		switch tok.Literal {
		case "if":
			stack = append(stack, familyIf)
		case "for", "while", "until":
			stack = append(stack, familyLoop)
		case "fi":
			if len(stack) > 0 && stack[len(stack)-1] == familyIf {
				stack = stack[:len(stack)-1]
			}
		case "done":
			if len(stack) > 0 && stack[len(stack)-1] == familyLoop {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return tokens, nil
}
