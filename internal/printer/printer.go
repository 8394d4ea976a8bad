// Package printer renders the JavaScript-side AST to program text. The
// pass is a single depth-first traversal: total, deterministic, no state
// beyond the output buffer. Output carries no indentation or line breaks;
// a minifier runs downstream.
package printer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/funvibe/chime/internal/ast"
)

type Printer struct {
	buf bytes.Buffer
}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) String() string {
	return p.buf.String()
}

func (p *Printer) write(s string) {
	p.buf.WriteString(s)
}

// PrintProgram renders an ordered statement sequence, one statement after
// another in input order.
func PrintProgram(stmts []ast.Stmt) string {
	p := New()
	p.printStmts(stmts)
	return p.String()
}

// PrintStmt renders a single statement.
func PrintStmt(s ast.Stmt) string {
	p := New()
	p.printStmt(s)
	return p.String()
}

// PrintExpr renders a single expression.
func PrintExpr(e ast.Expr) string {
	p := New()
	p.printExpr(e)
	return p.String()
}

func (p *Printer) printStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		p.printStmt(s)
	}
}

// printBlock wraps a statement sequence in braces with a leading space.
func (p *Printer) printBlock(stmts []ast.Stmt) {
	p.write(" {")
	p.printStmts(stmts)
	p.write("}")
}

func (p *Printer) printStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.SBlock:
		p.printBlock(s.Body)
	case *ast.SVarDecl:
		p.write("var ")
		p.write(EncodeIdentifier(s.Name.Text))
		p.write(" = ")
		p.printExpr(s.Init)
		p.write(";")
	case *ast.SAssign:
		p.write(EncodeIdentifier(s.Name.Text))
		p.write(" = ")
		p.printExpr(s.Value)
		p.write(";")
	case *ast.SPropAssign:
		p.printExpr(s.Target)
		p.write(".")
		p.write(EncodeIdentifier(s.Prop.Text))
		p.write(" = ")
		p.printExpr(s.Value)
		p.write(";")
	case *ast.SIf:
		p.write("if (")
		p.printExpr(s.Cond)
		p.write(")")
		p.printBlock(s.Then)
		// An empty else-sequence produces no else clause at all.
		if len(s.Else) > 0 {
			p.write(" else")
			p.printBlock(s.Else)
		}
	case *ast.SReturn:
		p.write("return ")
		p.printExpr(s.Value)
		p.write(";")
	case *ast.SThrow:
		p.write("throw ")
		p.printExpr(s.Value)
		p.write(";")
	case *ast.SWhile:
		p.write("while (")
		p.printExpr(s.Cond)
		p.write(")")
		p.printBlock(s.Body)
	case *ast.SContinue:
		p.write("continue;")
	default:
		panic(fmt.Sprintf("printer: unknown statement %T", stmt))
	}
}

func (p *Printer) printExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.ERaw:
		p.write(e.Text)
	case *ast.EThrow:
		// throw is a statement in the target grammar; wrap it in an
		// immediately-invoked argument-less function.
		p.printExpr(&ast.EApp{
			Callee: &ast.EFunc{Body: []ast.Stmt{&ast.SThrow{Value: e.Value}}},
		})
	case *ast.EFunc:
		p.printFunc(e)
	case *ast.ENull:
		p.write("null")
	case *ast.ESeq:
		for i, item := range e.Items {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(item)
		}
	case *ast.EName:
		p.write(PrintQName(e.Name))
	case *ast.EApp:
		// A function literal in callee position must be parenthesized
		// or the target grammar reads its body as a block.
		if _, isFunc := e.Callee.(*ast.EFunc); isFunc {
			p.write("(")
			p.printExpr(e.Callee)
			p.write(")")
		} else {
			p.printExpr(e.Callee)
		}
		p.write("(")
		for i, arg := range e.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(arg)
		}
		p.write(")")
	case *ast.ELit:
		p.write(PrintLit(e.Value))
	case *ast.EParen:
		p.write("(")
		p.printExpr(e.Inner)
		p.write(")")
	case *ast.ETernary:
		p.printExpr(e.Cond)
		p.write(" ? ")
		p.printExpr(e.Then)
		p.write(" : ")
		p.printExpr(e.Else)
	case *ast.EList:
		p.write("[")
		for i, item := range e.Items {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(item)
		}
		p.write("]")
	case *ast.ENew:
		p.write("new ")
		p.write(PrintQName(e.Class))
		p.write("(")
		for i, arg := range e.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(arg)
		}
		p.write(")")
	case *ast.EInstanceOf:
		p.printExpr(e.Value)
		p.write(" instanceof ")
		p.write(PrintQName(e.Class))
	case *ast.EIndex:
		p.printExpr(e.Value)
		p.write("[")
		p.write(strconv.Itoa(e.Index))
		p.write("]")
	case *ast.EEq:
		p.printExpr(e.Left)
		p.write(" === ")
		p.printExpr(e.Right)
	case *ast.EDot:
		p.printExpr(e.Value)
		p.write(".")
		p.write(EncodeIdentifier(e.Prop.Text))
	case *ast.ELookup:
		p.printExpr(e.Value)
		p.write("[")
		p.printExpr(e.Key)
		p.write("]")
	case *ast.EExternGet:
		p.printExpr(e.Value)
		p.write("[")
		p.write(QuoteString(e.Prop))
		p.write("]")
	case *ast.EExternSet:
		p.printExpr(e.Value)
		p.write("[")
		p.write(QuoteString(e.Prop))
		p.write("] = ")
		p.printExpr(e.To)
	case *ast.EBin:
		p.printExpr(e.Left)
		p.write(" ")
		p.write(e.Op)
		p.write(" ")
		p.printExpr(e.Right)
	case *ast.EObject:
		p.write("{")
		for i, f := range e.Fields {
			if i > 0 {
				p.write(", ")
			}
			p.write(QuoteString(f.Key))
			p.write(": ")
			p.printExpr(f.Value)
		}
		p.write("}")
	default:
		panic(fmt.Sprintf("printer: unknown expression %T", expr))
	}
}

func (p *Printer) printFunc(e *ast.EFunc) {
	p.write("function (")
	for i, param := range e.Params {
		if i > 0 {
			p.write(", ")
		}
		p.write(EncodeIdentifier(param.Text))
	}
	p.write(") {")
	p.printStmts(e.Body)
	if e.Ret != nil {
		p.write("return ")
		p.printExpr(e.Ret)
		p.write(";")
	}
	p.write("}")
}

// PrintLit renders a literal value. Integers use base-10; floats use the
// shortest form that re-parses to the same value; a char escapes exactly
// like a one-character string.
func PrintLit(lit ast.Lit) string {
	switch l := lit.(type) {
	case *ast.LitChar:
		return QuoteString(string(l.Value))
	case *ast.LitString:
		return QuoteString(l.Value)
	case *ast.LitInt:
		return strconv.FormatInt(l.Value, 10)
	case *ast.LitFloat:
		// strconv spells nonfinite values +Inf/-Inf/NaN, which are not
		// tokens in the target grammar; use the host globals instead.
		if math.IsInf(l.Value, 1) {
			return "Infinity"
		}
		if math.IsInf(l.Value, -1) {
			return "-Infinity"
		}
		if math.IsNaN(l.Value) {
			return "NaN"
		}
		return strconv.FormatFloat(l.Value, 'g', -1, 64)
	case *ast.LitBool:
		if l.Value {
			return "true"
		}
		return "false"
	default:
		panic(fmt.Sprintf("printer: unknown literal %T", lit))
	}
}
