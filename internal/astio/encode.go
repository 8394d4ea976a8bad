package astio

import (
	"encoding/json"
	"fmt"

	"github.com/funvibe/chime/internal/ast"
)

// EncodeProgram serializes a statement sequence into the wire format
// DecodeProgram accepts. Used by front-end tooling and round-trip tests.
func EncodeProgram(stmts []ast.Stmt) ([]byte, error) {
	body, err := encodeStmts(stmts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(programEnvelope{
		Format:  Format,
		Version: FormatVersion,
		Body:    body,
	})
}

func marshalRaw(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func encodeName(n ast.Name) *nameEnvelope {
	return &nameEnvelope{Text: n.Text, Operator: n.Operator}
}

func encodeStmts(stmts []ast.Stmt) ([]json.RawMessage, error) {
	raws := make([]json.RawMessage, 0, len(stmts))
	for i, s := range stmts {
		raw, err := encodeStmt(s)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func encodeStmt(stmt ast.Stmt) (json.RawMessage, error) {
	var env stmtEnvelope
	switch s := stmt.(type) {
	case *ast.SBlock:
		body, err := encodeStmts(s.Body)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "block", Body: body}
	case *ast.SVarDecl:
		init, err := encodeExpr(s.Init)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "var", Name: encodeName(s.Name), Init: init}
	case *ast.SAssign:
		value, err := encodeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "assign", Name: encodeName(s.Name), Value: value}
	case *ast.SPropAssign:
		target, err := encodeExpr(s.Target)
		if err != nil {
			return nil, err
		}
		value, err := encodeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "propassign", Target: target, Prop: encodeName(s.Prop), Value: value}
	case *ast.SIf:
		cond, err := encodeExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		then, err := encodeStmts(s.Then)
		if err != nil {
			return nil, err
		}
		els, err := encodeStmts(s.Else)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "if", Cond: cond, Then: then, Else: els}
	case *ast.SReturn:
		value, err := encodeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "return", Value: value}
	case *ast.SThrow:
		value, err := encodeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "throw", Value: value}
	case *ast.SWhile:
		cond, err := encodeExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		body, err := encodeStmts(s.Body)
		if err != nil {
			return nil, err
		}
		env = stmtEnvelope{Kind: "while", Cond: cond, Body: body}
	case *ast.SContinue:
		env = stmtEnvelope{Kind: "continue"}
	default:
		return nil, fmt.Errorf("unknown statement %T", stmt)
	}
	return marshalRaw(env)
}

func encodeExprs(exprs []ast.Expr) ([]json.RawMessage, error) {
	raws := make([]json.RawMessage, 0, len(exprs))
	for i, e := range exprs {
		raw, err := encodeExpr(e)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func encodeExpr(expr ast.Expr) (json.RawMessage, error) {
	var env exprEnvelope
	switch e := expr.(type) {
	case *ast.ERaw:
		env = exprEnvelope{Kind: "raw", Text: e.Text}
	case *ast.EThrow:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "throw", Value: value}
	case *ast.EFunc:
		params := make([]nameEnvelope, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, *encodeName(p))
		}
		body, err := encodeStmts(e.Body)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "func", Params: params, Body: body}
		if e.Ret != nil {
			ret, err := encodeExpr(e.Ret)
			if err != nil {
				return nil, err
			}
			env.Ret = ret
		}
	case *ast.ENull:
		env = exprEnvelope{Kind: "null"}
	case *ast.ESeq:
		items, err := encodeExprs(e.Items)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "seq", Items: items}
	case *ast.EName:
		name, err := encodeQName(e.Name)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "name", Name: name}
	case *ast.EApp:
		callee, err := encodeExpr(e.Callee)
		if err != nil {
			return nil, err
		}
		args, err := encodeExprs(e.Args)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "app", Callee: callee, Args: args}
	case *ast.ELit:
		lit, err := encodeLit(e.Value)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "lit", Lit: lit}
	case *ast.EParen:
		inner, err := encodeExpr(e.Inner)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "paren", Inner: inner}
	case *ast.ETernary:
		cond, err := encodeExpr(e.Cond)
		if err != nil {
			return nil, err
		}
		then, err := encodeExpr(e.Then)
		if err != nil {
			return nil, err
		}
		els, err := encodeExpr(e.Else)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "ternary", Cond: cond, Then: then, Else: els}
	case *ast.EList:
		items, err := encodeExprs(e.Items)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "list", Items: items}
	case *ast.ENew:
		class, err := encodeQName(e.Class)
		if err != nil {
			return nil, err
		}
		args, err := encodeExprs(e.Args)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "new", Class: class, Args: args}
	case *ast.EInstanceOf:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		class, err := encodeQName(e.Class)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "instanceof", Value: value, Class: class}
	case *ast.EIndex:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "index", Value: value, Index: e.Index}
	case *ast.EEq:
		left, err := encodeExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := encodeExpr(e.Right)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "eq", Left: left, Right: right}
	case *ast.EDot:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "dot", Value: value, PropN: encodeName(e.Prop)}
	case *ast.ELookup:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		key, err := encodeExpr(e.Key)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "lookup", Value: value, Key: key}
	case *ast.EExternGet:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "externget", Value: value, Prop: e.Prop}
	case *ast.EExternSet:
		value, err := encodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		to, err := encodeExpr(e.To)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "externset", Value: value, Prop: e.Prop, To: to}
	case *ast.EBin:
		left, err := encodeExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := encodeExpr(e.Right)
		if err != nil {
			return nil, err
		}
		env = exprEnvelope{Kind: "bin", Op: e.Op, Left: left, Right: right}
	case *ast.EObject:
		fields := make([]fieldEnvelope, 0, len(e.Fields))
		for i, f := range e.Fields {
			value, err := encodeExpr(f.Value)
			if err != nil {
				return nil, fmt.Errorf("field %d (%q): %w", i, f.Key, err)
			}
			fields = append(fields, fieldEnvelope{Key: f.Key, Value: value})
		}
		env = exprEnvelope{Kind: "object", Fields: fields}
	default:
		return nil, fmt.Errorf("unknown expression %T", expr)
	}
	return marshalRaw(env)
}

func encodeQName(q ast.QName) (*qnameEnvelope, error) {
	switch n := q.(type) {
	case *ast.Unqual:
		return &qnameEnvelope{Kind: "unqual", Name: encodeName(n.Name)}, nil
	case *ast.Qual:
		return &qnameEnvelope{Kind: "qual", Module: encodeName(n.Module), Member: encodeName(n.Member)}, nil
	case *ast.Builtin:
		ctor := ""
		for name, kind := range ctorKinds {
			if kind == n.Kind {
				ctor = name
				break
			}
		}
		if ctor == "" {
			return nil, fmt.Errorf("unknown constructor kind %d", n.Kind)
		}
		return &qnameEnvelope{Kind: "builtin", Ctor: ctor, Arity: n.Arity, Boxed: n.Boxed}, nil
	default:
		return nil, fmt.Errorf("unknown name %T", q)
	}
}

func encodeLit(lit ast.Lit) (*litEnvelope, error) {
	switch l := lit.(type) {
	case *ast.LitChar:
		return &litEnvelope{Kind: "char", Char: string(l.Value)}, nil
	case *ast.LitString:
		v := l.Value
		return &litEnvelope{Kind: "string", String: &v}, nil
	case *ast.LitInt:
		return &litEnvelope{Kind: "int", Int: l.Value}, nil
	case *ast.LitFloat:
		return &litEnvelope{Kind: "float", Float: l.Value}, nil
	case *ast.LitBool:
		return &litEnvelope{Kind: "bool", Bool: l.Value}, nil
	default:
		return nil, fmt.Errorf("unknown literal %T", lit)
	}
}
