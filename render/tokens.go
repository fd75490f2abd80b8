package render

import (
	"fmt"
	"io"

	"github.com/Ladicle/tabwriter"

	"github.com/go-shparse/shparse"
)

// Tokens writes the token stream as an aligned table, one token per
// line. It is a debugging view over Tokenize, bypassing the parser
// entirely.
func Tokens(w io.Writer, tokens []shparse.Token) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tTYPE\tLITERAL")
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", tok.Pos, tok.Type, tok.Literal)
	}
	return tw.Flush()
}
