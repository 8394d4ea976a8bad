package printer

import (
	"strconv"
	"strings"
)

// escapePrefix marks identifiers that collided with a reserved word. It is
// prepended before character normalization, so it must itself be made of
// characters normalization passes through. A raw name that already starts
// with the prefix skips the reserved-word check, which keeps the encoder
// idempotent on its own output. The flip side is that a front-end name
// deliberately starting with "__" and spelling a reserved word after it
// would collide with that word's escape; the front end never generates
// such names.
const escapePrefix = "__"

// reservedWords are the target-language keywords (including the
// future-reserved set) plus host globals that must never be shadowed.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "implements": true,
	"import": true, "in": true, "instanceof": true, "interface": true,
	"let": true, "new": true, "null": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"static": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,

	// Host globals.
	"arguments": true, "eval": true, "undefined": true,
	"NaN": true, "Infinity": true,
}

// Fixed compiler-internal names with dedicated output tokens. The @ prefix
// cannot appear in front-end identifiers, so these cannot collide with
// user names.
var fixedNames = map[string]string{
	"@tmp":   "$_",   // scratch variable shared with the runtime
	"@force": "_",    // thunk forcer defined by the runtime
	"@this":  "this", // current-instance self-reference
}

// EncodeIdentifier converts raw identifier text into a token valid in the
// target identifier grammar. Total and deterministic; any input is
// representable.
func EncodeIdentifier(raw string) string {
	if tok, ok := fixedNames[raw]; ok {
		return tok
	}
	if strings.HasPrefix(raw, escapePrefix) {
		return normalize(raw)
	}
	if reservedWords[raw] {
		return normalize(escapePrefix + raw)
	}
	return normalize(raw)
}

func isIdentChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// normalize replaces every character outside [A-Za-z0-9_] with
// $<decimal-codepoint>$. Unreadable, but collision-free: a literal $ in
// the output only ever delimits such a run.
func normalize(name string) string {
	// Fast path: most compiler-generated names are already clean.
	clean := true
	for _, r := range name {
		if !isIdentChar(r) {
			clean = false
			break
		}
	}
	if clean {
		return name
	}

	var sb strings.Builder
	sb.Grow(len(name) + 8)
	for _, r := range name {
		if isIdentChar(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('$')
			sb.WriteString(strconv.FormatInt(int64(r), 10))
			sb.WriteByte('$')
		}
	}
	return sb.String()
}
