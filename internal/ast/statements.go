package ast

// SBlock is a braced sequence of statements.
type SBlock struct {
	Body []Stmt
}

// SVarDecl declares a variable and binds its initializer.
type SVarDecl struct {
	Name Name
	Init Expr
}

// SAssign assigns to a name.
type SAssign struct {
	Name  Name
	Value Expr
}

// SPropAssign assigns to a named property of an expression.
type SPropAssign struct {
	Target Expr
	Prop   Name
	Value  Expr
}

// SIf is a conditional. Else may be empty, in which case no else branch is
// emitted at all.
type SIf struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// SReturn is an early return.
type SReturn struct {
	Value Expr
}

// SThrow throws its value.
type SThrow struct {
	Value Expr
}

// SWhile is a while loop.
type SWhile struct {
	Cond Expr
	Body []Stmt
}

// SContinue carries no payload.
type SContinue struct{}

func (*SBlock) stmtNode()      {}
func (*SVarDecl) stmtNode()    {}
func (*SAssign) stmtNode()     {}
func (*SPropAssign) stmtNode() {}
func (*SIf) stmtNode()         {}
func (*SReturn) stmtNode()     {}
func (*SThrow) stmtNode()      {}
func (*SWhile) stmtNode()      {}
func (*SContinue) stmtNode()   {}
