// Package ast defines the JavaScript-side syntax tree the Chime back end
// produces and the emitter renders. Every node is an immutable value built
// by the front end; the printer only reads them. The variant sets are
// closed: the printer switches over them exhaustively and a new variant
// must be handled there before it can be emitted.
package ast

// Name is a compiler-internal identifier, either a plain identifier token
// or a symbolic (operator-style) token. Text may contain any character and
// must pass through identifier encoding before it reaches output.
type Name struct {
	Text     string
	Operator bool
}

// QName is a possibly module-qualified reference.
type QName interface {
	qnameNode()
}

// Unqual is a bare, unqualified name.
type Unqual struct {
	Name Name
}

// Qual is a name qualified by its defining module.
type Qual struct {
	Module Name
	Member Name
}

// CtorKind enumerates the built-in value constructors with dedicated
// runtime representations.
type CtorKind int

const (
	CtorUnit  CtorKind = iota // the unit value
	CtorNil                   // empty list
	CtorFun                   // function-type marker
	CtorTuple                 // tuple of Arity, boxed or unboxed
	CtorCons                  // list cons cell
	CtorSolo                  // unboxed single value
)

// Builtin references one of the special constructors. Arity and Boxed are
// meaningful only for CtorTuple.
type Builtin struct {
	Kind  CtorKind
	Arity int
	Boxed bool
}

func (*Unqual) qnameNode()  {}
func (*Qual) qnameNode()    {}
func (*Builtin) qnameNode() {}

// Lit is a literal value.
type Lit interface {
	litNode()
}

// LitChar is a single character; it is escaped like a one-character string.
type LitChar struct {
	Value rune
}

type LitString struct {
	Value string
}

type LitInt struct {
	Value int64
}

type LitFloat struct {
	Value float64
}

type LitBool struct {
	Value bool
}

func (*LitChar) litNode()   {}
func (*LitString) litNode() {}
func (*LitInt) litNode()    {}
func (*LitFloat) litNode()  {}
func (*LitBool) litNode()   {}

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	exprNode()
}
