package printer

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/funvibe/chime/internal/ast"
)

func TestQuoteString_Escapes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", `"hello"`},
		{`a"b`, `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"\x00", `"\u0000"`},
		{"\x1f", `"\u001F"`},
		{"\u2028", `"\u2028"`},
		{"\u2029", `"\u2029"`},
		{"\ufeff", `"\uFEFF"`},
		{"héllo", `"héllo"`},
	}
	for _, tt := range tests {
		if got := QuoteString(tt.in); got != tt.want {
			t.Errorf("QuoteString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// Every string literal must re-parse to the same value with a standard
// parser for the target format.
func TestQuoteString_RoundTrip(t *testing.T) {
	inputs := []string{
		"", "plain", "with \"quotes\" and \\slashes\\",
		"controls \x00\x01\x1f\b\f\n\r\t",
		"unicode héllo λ écrit 漢字", "emoji 🎉 pair",
		"line seps \u2028\u2029 bom \ufeff",
	}
	for _, in := range inputs {
		var out string
		if err := json.Unmarshal([]byte(QuoteString(in)), &out); err != nil {
			t.Fatalf("QuoteString(%q) is not parseable: %v", in, err)
		}
		if out != in {
			t.Errorf("round trip of %q gave %q", in, out)
		}
	}
}

func TestPrintLit_RoundTrip(t *testing.T) {
	ints := []int64{0, 5, -7, 1 << 40}
	for _, v := range ints {
		got := PrintLit(&ast.LitInt{Value: v})
		back, err := strconv.ParseInt(got, 10, 64)
		if err != nil || back != v {
			t.Errorf("int %d printed as %q (parsed back %d, %v)", v, got, back, err)
		}
	}

	floats := []float64{0, 1.5, -2.25, 1e21, 1e-7, 3.141592653589793}
	for _, v := range floats {
		got := PrintLit(&ast.LitFloat{Value: v})
		back, err := strconv.ParseFloat(got, 64)
		if err != nil || back != v {
			t.Errorf("float %g printed as %q (parsed back %g, %v)", v, got, back, err)
		}
	}

	if PrintLit(&ast.LitBool{Value: true}) != "true" || PrintLit(&ast.LitBool{Value: false}) != "false" {
		t.Error("boolean literals must print as the fixed tokens")
	}

	// A char escapes identically to a one-character string.
	if PrintLit(&ast.LitChar{Value: '"'}) != QuoteString(`"`) {
		t.Error("char literal must escape like a one-character string")
	}
	if got := PrintLit(&ast.LitChar{Value: 'a'}); got != `"a"` {
		t.Errorf("char 'a' printed as %s", got)
	}
}

func TestPrintLit_NonfiniteFloats(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := PrintLit(&ast.LitFloat{Value: tt.in}); got != tt.want {
			t.Errorf("float %v printed as %q, want %q", tt.in, got, tt.want)
		}
	}
}
