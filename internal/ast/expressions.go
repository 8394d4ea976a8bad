package ast

// ERaw is pre-rendered text passed through verbatim.
type ERaw struct {
	Text string
}

// EThrow is a throw in expression position. The printer wraps it in an
// immediately-invoked function whose body is the throw statement.
type EThrow struct {
	Value Expr
}

// EFunc is a function literal. Ret, when non-nil, is a trailing return
// expression emitted after Body inside the braces.
type EFunc struct {
	Params []Name
	Body   []Stmt
	Ret    Expr
}

// ENull is the null literal.
type ENull struct{}

// ESeq is a comma sequence of expressions. The front end wraps it in an
// EParen where the grammar requires grouping.
type ESeq struct {
	Items []Expr
}

// EName references a possibly qualified name.
type EName struct {
	Name QName
}

// EApp applies a callee to ordered arguments.
type EApp struct {
	Callee Expr
	Args   []Expr
}

// ELit is a literal value.
type ELit struct {
	Value Lit
}

// EParen wraps its inner expression in parentheses.
type EParen struct {
	Inner Expr
}

// ETernary is the conditional operator.
type ETernary struct {
	Cond Expr
	Then Expr
	Else Expr
}

// EList is an array literal.
type EList struct {
	Items []Expr
}

// ENew invokes a constructor with new.
type ENew struct {
	Class QName
	Args  []Expr
}

// EInstanceOf tests a value against a class or constructor name.
type EInstanceOf struct {
	Value Expr
	Class QName
}

// EIndex is a fixed positional lookup. Index is printed as a decimal
// integer, never as an encoded name.
type EIndex struct {
	Value Expr
	Index int
}

// EEq is strict equality of two expressions.
type EEq struct {
	Left  Expr
	Right Expr
}

// EDot is dotted property access; Prop goes through identifier encoding.
type EDot struct {
	Value Expr
	Prop  Name
}

// ELookup is a dynamic bracket-indexed lookup.
type ELookup struct {
	Value Expr
	Key   Expr
}

// EExternGet reads an external member by literal name. The property is
// emitted as a quoted string in bracket form and never encoded, so it can
// name host API members that are reserved words or invalid identifiers.
type EExternGet struct {
	Value Expr
	Prop  string
}

// EExternSet updates an external member by literal name, same bracket form
// as EExternGet.
type EExternSet struct {
	Value Expr
	Prop  string
	To    Expr
}

// EBin applies a raw infix operator token to two expressions. The token is
// emitted verbatim with single-space separation; grouping is the caller's
// responsibility via EParen.
type EBin struct {
	Op    string
	Left  Expr
	Right Expr
}

// Field is one object-literal entry. Keys are data, not identifiers: they
// are emitted as quoted strings with no identifier encoding.
type Field struct {
	Key   string
	Value Expr
}

// EObject is an object literal with ordered fields.
type EObject struct {
	Fields []Field
}

func (*ERaw) exprNode()        {}
func (*EThrow) exprNode()      {}
func (*EFunc) exprNode()       {}
func (*ENull) exprNode()       {}
func (*ESeq) exprNode()        {}
func (*EName) exprNode()       {}
func (*EApp) exprNode()        {}
func (*ELit) exprNode()        {}
func (*EParen) exprNode()      {}
func (*ETernary) exprNode()    {}
func (*EList) exprNode()       {}
func (*ENew) exprNode()        {}
func (*EInstanceOf) exprNode() {}
func (*EIndex) exprNode()      {}
func (*EEq) exprNode()         {}
func (*EDot) exprNode()        {}
func (*ELookup) exprNode()     {}
func (*EExternGet) exprNode()  {}
func (*EExternSet) exprNode()  {}
func (*EBin) exprNode()        {}
func (*EObject) exprNode()     {}
