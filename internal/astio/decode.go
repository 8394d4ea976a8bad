// Package astio reads and writes the serialized form of the JavaScript
// AST. The front end hands trees to chimec as JSON files; the printer
// itself never sees this format, it consumes the decoded values.
package astio

import (
	"encoding/json"
	"fmt"

	"github.com/funvibe/chime/internal/ast"
)

// Format and FormatVersion identify a serialized tree. Decode rejects
// files that do not declare exactly these.
const (
	Format        = "chime-ast"
	FormatVersion = 1
)

type programEnvelope struct {
	Format  string            `json:"format"`
	Version int               `json:"version"`
	Body    []json.RawMessage `json:"body"`
}

type nameEnvelope struct {
	Text     string `json:"text"`
	Operator bool   `json:"operator,omitempty"`
}

type qnameEnvelope struct {
	Kind   string        `json:"kind"`
	Name   *nameEnvelope `json:"name,omitempty"`
	Module *nameEnvelope `json:"module,omitempty"`
	Member *nameEnvelope `json:"member,omitempty"`
	Ctor   string        `json:"ctor,omitempty"`
	Arity  int           `json:"arity,omitempty"`
	Boxed  bool          `json:"boxed,omitempty"`
}

type litEnvelope struct {
	Kind   string  `json:"kind"`
	Char   string  `json:"char,omitempty"`
	String *string `json:"string,omitempty"`
	Int    int64   `json:"int,omitempty"`
	Float  float64 `json:"float,omitempty"`
	Bool   bool    `json:"bool,omitempty"`
}

type stmtEnvelope struct {
	Kind   string            `json:"kind"`
	Name   *nameEnvelope     `json:"name,omitempty"`
	Prop   *nameEnvelope     `json:"prop,omitempty"`
	Init   json.RawMessage   `json:"init,omitempty"`
	Value  json.RawMessage   `json:"value,omitempty"`
	Target json.RawMessage   `json:"target,omitempty"`
	Cond   json.RawMessage   `json:"cond,omitempty"`
	Then   []json.RawMessage `json:"then,omitempty"`
	Else   []json.RawMessage `json:"else,omitempty"`
	Body   []json.RawMessage `json:"body,omitempty"`
}

type fieldEnvelope struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type exprEnvelope struct {
	Kind   string            `json:"kind"`
	Text   string            `json:"text,omitempty"`
	Op     string            `json:"op,omitempty"`
	Prop   string            `json:"prop,omitempty"`
	PropN  *nameEnvelope     `json:"propName,omitempty"`
	Index  int               `json:"index,omitempty"`
	Name   *qnameEnvelope    `json:"name,omitempty"`
	Class  *qnameEnvelope    `json:"class,omitempty"`
	Lit    *litEnvelope      `json:"lit,omitempty"`
	Params []nameEnvelope    `json:"params,omitempty"`
	Body   []json.RawMessage `json:"body,omitempty"`
	Ret    json.RawMessage   `json:"ret,omitempty"`
	Value  json.RawMessage   `json:"value,omitempty"`
	Callee json.RawMessage   `json:"callee,omitempty"`
	Inner  json.RawMessage   `json:"inner,omitempty"`
	Cond   json.RawMessage   `json:"cond,omitempty"`
	Then   json.RawMessage   `json:"then,omitempty"`
	Else   json.RawMessage   `json:"else,omitempty"`
	Left   json.RawMessage   `json:"left,omitempty"`
	Right  json.RawMessage   `json:"right,omitempty"`
	Key    json.RawMessage   `json:"key,omitempty"`
	To     json.RawMessage   `json:"to,omitempty"`
	Args   []json.RawMessage `json:"args,omitempty"`
	Items  []json.RawMessage `json:"items,omitempty"`
	Fields []fieldEnvelope   `json:"fields,omitempty"`
}

// DecodeProgram parses a serialized tree into its statement sequence.
func DecodeProgram(data []byte) ([]ast.Stmt, error) {
	var env programEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing AST file: %w", err)
	}
	if env.Format != Format {
		return nil, fmt.Errorf("not a %s file (format %q)", Format, env.Format)
	}
	if env.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported AST format version %d (want %d)", env.Version, FormatVersion)
	}
	return decodeStmts(env.Body)
}

func decodeStmts(raws []json.RawMessage) ([]ast.Stmt, error) {
	stmts := make([]ast.Stmt, 0, len(raws))
	for i, raw := range raws {
		s, err := decodeStmt(raw)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeName(env *nameEnvelope) ast.Name {
	return ast.Name{Text: env.Text, Operator: env.Operator}
}

func decodeStmt(raw json.RawMessage) (ast.Stmt, error) {
	var env stmtEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case "block":
		body, err := decodeStmts(env.Body)
		if err != nil {
			return nil, err
		}
		return &ast.SBlock{Body: body}, nil
	case "var":
		if env.Name == nil {
			return nil, fmt.Errorf("var: missing name")
		}
		init, err := decodeExpr(env.Init)
		if err != nil {
			return nil, err
		}
		return &ast.SVarDecl{Name: decodeName(env.Name), Init: init}, nil
	case "assign":
		if env.Name == nil {
			return nil, fmt.Errorf("assign: missing name")
		}
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.SAssign{Name: decodeName(env.Name), Value: value}, nil
	case "propassign":
		if env.Prop == nil {
			return nil, fmt.Errorf("propassign: missing prop")
		}
		target, err := decodeExpr(env.Target)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.SPropAssign{Target: target, Prop: decodeName(env.Prop), Value: value}, nil
	case "if":
		cond, err := decodeExpr(env.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmts(env.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeStmts(env.Else)
		if err != nil {
			return nil, err
		}
		return &ast.SIf{Cond: cond, Then: then, Else: els}, nil
	case "return":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.SReturn{Value: value}, nil
	case "throw":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.SThrow{Value: value}, nil
	case "while":
		cond, err := decodeExpr(env.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(env.Body)
		if err != nil {
			return nil, err
		}
		return &ast.SWhile{Cond: cond, Body: body}, nil
	case "continue":
		return &ast.SContinue{}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind %q", env.Kind)
	}
}

func decodeExprs(raws []json.RawMessage) ([]ast.Expr, error) {
	exprs := make([]ast.Expr, 0, len(raws))
	for i, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func decodeExpr(raw json.RawMessage) (ast.Expr, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	var env exprEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case "raw":
		return &ast.ERaw{Text: env.Text}, nil
	case "throw":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.EThrow{Value: value}, nil
	case "func":
		params := make([]ast.Name, 0, len(env.Params))
		for i := range env.Params {
			params = append(params, decodeName(&env.Params[i]))
		}
		body, err := decodeStmts(env.Body)
		if err != nil {
			return nil, err
		}
		var ret ast.Expr
		if len(env.Ret) > 0 {
			ret, err = decodeExpr(env.Ret)
			if err != nil {
				return nil, err
			}
		}
		return &ast.EFunc{Params: params, Body: body, Ret: ret}, nil
	case "null":
		return &ast.ENull{}, nil
	case "seq":
		items, err := decodeExprs(env.Items)
		if err != nil {
			return nil, err
		}
		return &ast.ESeq{Items: items}, nil
	case "name":
		name, err := decodeQName(env.Name)
		if err != nil {
			return nil, err
		}
		return &ast.EName{Name: name}, nil
	case "app":
		callee, err := decodeExpr(env.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(env.Args)
		if err != nil {
			return nil, err
		}
		return &ast.EApp{Callee: callee, Args: args}, nil
	case "lit":
		lit, err := decodeLit(env.Lit)
		if err != nil {
			return nil, err
		}
		return &ast.ELit{Value: lit}, nil
	case "paren":
		inner, err := decodeExpr(env.Inner)
		if err != nil {
			return nil, err
		}
		return &ast.EParen{Inner: inner}, nil
	case "ternary":
		cond, err := decodeExpr(env.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(env.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(env.Else)
		if err != nil {
			return nil, err
		}
		return &ast.ETernary{Cond: cond, Then: then, Else: els}, nil
	case "list":
		items, err := decodeExprs(env.Items)
		if err != nil {
			return nil, err
		}
		return &ast.EList{Items: items}, nil
	case "new":
		class, err := decodeQName(env.Class)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(env.Args)
		if err != nil {
			return nil, err
		}
		return &ast.ENew{Class: class, Args: args}, nil
	case "instanceof":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		class, err := decodeQName(env.Class)
		if err != nil {
			return nil, err
		}
		return &ast.EInstanceOf{Value: value, Class: class}, nil
	case "index":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.EIndex{Value: value, Index: env.Index}, nil
	case "eq":
		left, err := decodeExpr(env.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(env.Right)
		if err != nil {
			return nil, err
		}
		return &ast.EEq{Left: left, Right: right}, nil
	case "dot":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		if env.PropN == nil {
			return nil, fmt.Errorf("dot: missing propName")
		}
		return &ast.EDot{Value: value, Prop: decodeName(env.PropN)}, nil
	case "lookup":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		key, err := decodeExpr(env.Key)
		if err != nil {
			return nil, err
		}
		return &ast.ELookup{Value: value, Key: key}, nil
	case "externget":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		return &ast.EExternGet{Value: value, Prop: env.Prop}, nil
	case "externset":
		value, err := decodeExpr(env.Value)
		if err != nil {
			return nil, err
		}
		to, err := decodeExpr(env.To)
		if err != nil {
			return nil, err
		}
		return &ast.EExternSet{Value: value, Prop: env.Prop, To: to}, nil
	case "bin":
		left, err := decodeExpr(env.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(env.Right)
		if err != nil {
			return nil, err
		}
		return &ast.EBin{Op: env.Op, Left: left, Right: right}, nil
	case "object":
		fields := make([]ast.Field, 0, len(env.Fields))
		for i, f := range env.Fields {
			value, err := decodeExpr(f.Value)
			if err != nil {
				return nil, fmt.Errorf("field %d (%q): %w", i, f.Key, err)
			}
			fields = append(fields, ast.Field{Key: f.Key, Value: value})
		}
		return &ast.EObject{Fields: fields}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", env.Kind)
	}
}

func decodeQName(env *qnameEnvelope) (ast.QName, error) {
	if env == nil {
		return nil, fmt.Errorf("missing name")
	}
	switch env.Kind {
	case "unqual":
		if env.Name == nil {
			return nil, fmt.Errorf("unqual: missing name")
		}
		return &ast.Unqual{Name: decodeName(env.Name)}, nil
	case "qual":
		if env.Module == nil || env.Member == nil {
			return nil, fmt.Errorf("qual: missing module or member")
		}
		return &ast.Qual{Module: decodeName(env.Module), Member: decodeName(env.Member)}, nil
	case "builtin":
		kind, ok := ctorKinds[env.Ctor]
		if !ok {
			return nil, fmt.Errorf("unknown constructor %q", env.Ctor)
		}
		return &ast.Builtin{Kind: kind, Arity: env.Arity, Boxed: env.Boxed}, nil
	default:
		return nil, fmt.Errorf("unknown name kind %q", env.Kind)
	}
}

var ctorKinds = map[string]ast.CtorKind{
	"unit":  ast.CtorUnit,
	"nil":   ast.CtorNil,
	"fun":   ast.CtorFun,
	"tuple": ast.CtorTuple,
	"cons":  ast.CtorCons,
	"solo":  ast.CtorSolo,
}

func decodeLit(env *litEnvelope) (ast.Lit, error) {
	if env == nil {
		return nil, fmt.Errorf("missing literal")
	}
	switch env.Kind {
	case "char":
		runes := []rune(env.Char)
		if len(runes) != 1 {
			return nil, fmt.Errorf("char literal %q is not a single character", env.Char)
		}
		return &ast.LitChar{Value: runes[0]}, nil
	case "string":
		if env.String == nil {
			return nil, fmt.Errorf("string literal: missing value")
		}
		return &ast.LitString{Value: *env.String}, nil
	case "int":
		return &ast.LitInt{Value: env.Int}, nil
	case "float":
		return &ast.LitFloat{Value: env.Float}, nil
	case "bool":
		return &ast.LitBool{Value: env.Bool}, nil
	default:
		return nil, fmt.Errorf("unknown literal kind %q", env.Kind)
	}
}
