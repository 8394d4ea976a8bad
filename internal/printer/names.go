package printer

import (
	"fmt"
	"strconv"

	"github.com/funvibe/chime/internal/ast"
	"github.com/funvibe/chime/internal/config"
)

// qualSeparator joins a module component to a member. Encoder output
// contains $ only as the delimiters of a $<digits>$ run, so a complete
// encoded identifier can never equal <module>$$<member>: a qualified
// reference never collides with an unqualified one.
const qualSeparator = "$$"

// runtimeMembers maps each constructor kind with a fixed spelling to its
// member in the runtime support module. Tuples are derived in
// runtimeMember because their name depends on arity and boxing.
var runtimeMembers = map[ast.CtorKind]string{
	ast.CtorUnit: "unit",
	ast.CtorNil:  "nil",
	ast.CtorFun:  "fun",
	ast.CtorCons: "cons",
	ast.CtorSolo: "solo",
}

// runtimeMember returns the runtime module member name for a special
// constructor. Boxed tuples are tuple<N>, unboxed tuple<N>u, so the two
// spellings differ only by the trailing flag.
func runtimeMember(b *ast.Builtin) string {
	if b.Kind == ast.CtorTuple {
		name := "tuple" + strconv.Itoa(b.Arity)
		if !b.Boxed {
			name += "u"
		}
		return name
	}
	if m, ok := runtimeMembers[b.Kind]; ok {
		return m
	}
	panic(fmt.Sprintf("printer: unknown constructor kind %d", b.Kind))
}

// PrintQName renders a qualified name. The module component is encoded as
// well as the member: an unescaped module name could itself spell a
// keyword.
func PrintQName(q ast.QName) string {
	switch n := q.(type) {
	case *ast.Unqual:
		return EncodeIdentifier(n.Name.Text)
	case *ast.Qual:
		return EncodeIdentifier(n.Module.Text) + qualSeparator + EncodeIdentifier(n.Member.Text)
	case *ast.Builtin:
		return config.RuntimeGlobal + qualSeparator + runtimeMember(n)
	default:
		panic(fmt.Sprintf("printer: unknown qualified name %T", q))
	}
}
