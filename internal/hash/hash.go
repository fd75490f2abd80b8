package hash

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Content returns a stable hex digest of the given script bytes. Watch
// mode uses it to skip re-rendering when a file event did not actually
// change the content.
func Content(b []byte) string {
	h := xxh3.Hash128(b)
	return fmt.Sprintf("%x%x", h.Hi, h.Lo)
}
