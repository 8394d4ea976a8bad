// Package runtime carries the JavaScript support library emitted programs
// link against. The printer references its members through the fixed
// Chime$$ namespace; nothing validates at emit time that a member exists,
// the prelude is simply prepended (or shipped separately) and trusted.
package runtime

import _ "embed"

//go:embed chime.js
var source string

// Source returns the runtime prelude text.
func Source() string {
	return source
}
