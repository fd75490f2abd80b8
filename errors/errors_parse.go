package errors

import "fmt"

// RecursionLimitExceededError is returned when parsing descends past the
// configured depth limit. This is the only hard parse failure: malformed
// input degrades to a best-effort tree, but unbounded nesting would
// otherwise grow the stack without limit.
type RecursionLimitExceededError struct {
	Limit int
}

func (err RecursionLimitExceededError) Error() string {
	return fmt.Sprintf("shparse: Recursion limit of %d exceeded while parsing nested blocks", err.Limit)
}

func (err RecursionLimitExceededError) Code() int {
	return CodeRecursionLimitExceeded
}
