package interp

import (
	"math"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/values"
)

// eval evaluates expr against sc, dispatching on the concrete AST node
// type (spec §4.D). Every branch attaches expr's own Position to any
// error it raises, per "every evaluator that reports an error attaches
// the position of the offending sub-node."
func (h *Host) eval(expr ast.Expr, sc *scope.Scope) (values.Value, *diag.Error) {
	switch e := expr.(type) {
	case ast.NullLiteral:
		return values.Null{}, nil
	case ast.BoolLiteral:
		return values.Bool{Value: e.Value}, nil
	case ast.IntLiteral:
		return values.Int{Value: e.Value}, nil
	case ast.FloatLiteral:
		return values.Float{Value: e.Value}, nil
	case ast.StrLiteral:
		return values.NewStr(e.Value), nil
	case ast.BinLiteral:
		return values.Bin{Bytes: e.Value}, nil

	case ast.Identifier:
		v, ok := sc.LookupVariable(e.Name)
		if !ok {
			return nil, diag.NewLookupError(e.Pos(), e.Name)
		}
		return v, nil

	case ast.ListLiteral:
		return h.evalListLiteral(e, sc)

	case ast.RecordLiteral:
		return h.evalRecordLiteral(e, sc)

	case ast.FieldAccess:
		return h.evalFieldAccess(e, sc)

	case ast.Subscript:
		return h.evalSubscript(e, sc)

	case ast.Call:
		return h.evalCall(e, sc)

	case ast.FuncLiteral:
		return h.evalFuncLiteral(e, sc)

	case ast.Binary:
		return h.evalBinary(e, sc)

	case ast.Unary:
		return h.evalUnary(e, sc)

	case ast.Logical:
		return h.evalLogical(e, sc)

	case ast.Conditional:
		return h.evalConditional(e, sc)

	default:
		return nil, diag.New(expr.Pos(), "unsupported expression")
	}
}

// evalAsBool evaluates expr and requires the result be Bool, the shared
// helper spec §4.D names "eval_as_bool", used by if/while and the unary
// `not`/logical operators.
func (h *Host) evalAsBool(expr ast.Expr, sc *scope.Scope) (bool, *diag.Error) {
	v, err := h.eval(expr, sc)
	if err != nil {
		return false, err
	}
	b, ok := v.(values.Bool)
	if !ok {
		return false, diag.NewTypeError(expr.Pos(), "Expected Bool, got %s", v.Kind())
	}
	return b.Value, nil
}

func (h *Host) evalListLiteral(e ast.ListLiteral, sc *scope.Scope) (values.Value, *diag.Error) {
	elems := make([]values.Value, 0, len(e.Elems))
	for _, el := range e.Elems {
		v, err := h.eval(el, sc)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return values.List{Elems: elems}, nil
}

func (h *Host) evalRecordLiteral(e ast.RecordLiteral, sc *scope.Scope) (values.Value, *diag.Error) {
	fields := make(map[string]values.Value)
	order := make([]string, 0, len(e.Fields))
	if e.Spread != nil {
		sv, err := h.eval(e.Spread, sc)
		if err != nil {
			return nil, err
		}
		rec, ok := sv.(values.Record)
		if !ok {
			return nil, diag.NewTypeError(e.Spread.Pos(), "%s is not a record", sv.Kind())
		}
		for _, k := range rec.Keys {
			if _, seen := fields[k]; !seen {
				order = append(order, k)
			}
			fields[k] = rec.Fields[k]
		}
	}
	for _, f := range e.Fields {
		name := f.Name
		if f.Key != nil {
			kv, err := h.eval(f.Key, sc)
			if err != nil {
				return nil, err
			}
			ks, ok := kv.(values.Str)
			if !ok {
				return nil, diag.NewTypeError(f.Key.Pos(), "record key must be Str, got %s", kv.Kind())
			}
			name = ks.Raw()
		}
		value := f.Value
		var v values.Value
		var err *diag.Error
		if value != nil {
			v, err = h.eval(value, sc)
		} else {
			// Shorthand `{x}`: resolve x as a variable of the same name.
			v, err = h.eval(ast.Identifier{Name: name}, sc)
		}
		if err != nil {
			return nil, err
		}
		if _, seen := fields[name]; !seen {
			order = append(order, name)
		}
		fields[name] = v
	}
	return values.NewRecord(order, fields), nil
}

func (h *Host) evalFieldAccess(e ast.FieldAccess, sc *scope.Scope) (values.Value, *diag.Error) {
	target, err := h.eval(e.Target, sc)
	if err != nil {
		return nil, err
	}
	rec, ok := target.(values.Record)
	if !ok {
		return nil, diag.NewTypeError(e.Pos(), "%s is not a record", target.Kind())
	}
	v, present := rec.Fields[e.Field]
	if !present {
		return nil, diag.NewDomainError(e.Pos(), "record does not have field `%s`", e.Field)
	}
	return v, nil
}

func (h *Host) evalSubscript(e ast.Subscript, sc *scope.Scope) (values.Value, *diag.Error) {
	target, err := h.eval(e.Target, sc)
	if err != nil {
		return nil, err
	}
	if e.Optional {
		if _, isNull := target.(values.Null); isNull {
			return values.Null{}, nil
		}
	}
	idx, err := h.eval(e.Index, sc)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case values.List:
		i, ok := idx.(values.Int)
		if !ok {
			return nil, diag.NewTypeError(e.Index.Pos(), "list index must be Int, got %s", idx.Kind())
		}
		n := int64(len(t.Elems))
		pos := i.Value
		if pos < 0 {
			pos += n
		}
		if pos < 0 || pos >= n {
			return nil, diag.NewDomainError(e.Pos(), "index %d out of range", i.Value)
		}
		return t.Elems[pos], nil

	case values.Record:
		k, ok := idx.(values.Str)
		if !ok {
			return nil, diag.NewTypeError(e.Index.Pos(), "record key must be Str, got %s", idx.Kind())
		}
		v, present := t.Fields[k.Raw()]
		if !present {
			return nil, diag.NewDomainError(e.Pos(), "record does not have field `%s`", k.Raw())
		}
		return v, nil

	case values.Str:
		i, ok := idx.(values.Int)
		if !ok {
			return nil, diag.NewTypeError(e.Index.Pos(), "string index must be Int, got %s", idx.Kind())
		}
		n := int64(len(t.Runes))
		pos := i.Value
		if pos < 0 {
			pos += n
		}
		if pos < 0 || pos >= n {
			return nil, diag.NewDomainError(e.Pos(), "index %d out of range", i.Value)
		}
		return values.Str{Runes: []rune{t.Runes[pos]}}, nil

	default:
		return nil, diag.NewTypeError(e.Pos(), "%s is not indexable", target.Kind())
	}
}

func (h *Host) evalFuncLiteral(e ast.FuncLiteral, sc *scope.Scope) (values.Value, *diag.Error) {
	params := make([]values.FuncParam, len(e.Params))
	for i, p := range e.Params {
		ty, err := h.evalTypeExpr(sc, p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = values.FuncParam{Name: p.Name, Type: ty, Rest: p.Rest, Default: p.Default}
	}
	retType, err := h.evalTypeExpr(sc, e.ReturnType)
	if err != nil {
		return nil, err
	}
	return values.Func{
		Params:     params,
		ReturnType: retType,
		Body:       e.Body,
		Captured:   sc,
	}, nil
}

func (h *Host) evalUnary(e ast.Unary, sc *scope.Scope) (values.Value, *diag.Error) {
	switch e.Op {
	case "not":
		b, err := h.evalAsBool(e.Operand, sc)
		if err != nil {
			return nil, err
		}
		return values.Bool{Value: !b}, nil
	default:
		return nil, diag.New(e.Pos(), "unknown unary operator: %s", e.Op)
	}
}

func (h *Host) evalLogical(e ast.Logical, sc *scope.Scope) (values.Value, *diag.Error) {
	left, err := h.evalAsBool(e.Left, sc)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "and":
		if !left {
			return values.Bool{Value: false}, nil
		}
	case "or":
		if left {
			return values.Bool{Value: true}, nil
		}
	default:
		return nil, diag.New(e.Pos(), "unknown logical operator: %s", e.Op)
	}
	right, err := h.evalAsBool(e.Right, sc)
	if err != nil {
		return nil, err
	}
	return values.Bool{Value: right}, nil
}

func (h *Host) evalConditional(e ast.Conditional, sc *scope.Scope) (values.Value, *diag.Error) {
	cond, err := h.evalAsBool(e.Cond, sc)
	if err != nil {
		return nil, err
	}
	if cond {
		return h.eval(e.Then, sc)
	}
	return h.eval(e.Else, sc)
}

func (h *Host) evalBinary(e ast.Binary, sc *scope.Scope) (values.Value, *diag.Error) {
	left, err := h.eval(e.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := h.eval(e.Right, sc)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "==":
		return values.Bool{Value: left.Equal(right)}, nil
	case "!=":
		return values.Bool{Value: !left.Equal(right)}, nil
	case "+":
		return h.evalPlus(e, left, right)
	case "-", "*", "/", "%":
		return h.evalArith(e, left, right)
	case "<", ">", "<=", ">=":
		return h.evalCompare(e, left, right)
	default:
		return nil, diag.New(e.Pos(), "unknown binary operator: %s", e.Op)
	}
}

func (h *Host) evalPlus(e ast.Binary, left, right values.Value) (values.Value, *diag.Error) {
	switch l := left.(type) {
	case values.Int:
		switch r := right.(type) {
		case values.Int:
			return values.Int{Value: l.Value + r.Value}, nil
		case values.Float:
			return values.Float{Value: float64(l.Value) + r.Value}, nil
		}
	case values.Float:
		switch r := right.(type) {
		case values.Int:
			return values.Float{Value: l.Value + float64(r.Value)}, nil
		case values.Float:
			return values.Float{Value: l.Value + r.Value}, nil
		}
	case values.Str:
		if r, ok := right.(values.Str); ok {
			return values.Str{Runes: append(append([]rune{}, l.Runes...), r.Runes...)}, nil
		}
	case values.List:
		if r, ok := right.(values.List); ok {
			merged := append(append([]values.Value{}, l.Elems...), r.Elems...)
			return values.List{Elems: merged}, nil
		}
	}
	return nil, diag.NewTypeError(e.Pos(), "cannot apply + to %s and %s", left.Kind(), right.Kind())
}

func (h *Host) evalArith(e ast.Binary, left, right values.Value) (values.Value, *diag.Error) {
	lf, lok := asNumber(left)
	rf, rok := asNumber(right)
	if !lok || !rok {
		return nil, diag.NewTypeError(e.Pos(), "cannot apply %s to %s and %s", e.Op, left.Kind(), right.Kind())
	}
	_, lInt := left.(values.Int)
	_, rInt := right.(values.Int)
	bothInt := lInt && rInt

	switch e.Op {
	case "-":
		if bothInt {
			return values.Int{Value: left.(values.Int).Value - right.(values.Int).Value}, nil
		}
		return values.Float{Value: lf - rf}, nil
	case "*":
		if bothInt {
			return values.Int{Value: left.(values.Int).Value * right.(values.Int).Value}, nil
		}
		return values.Float{Value: lf * rf}, nil
	case "/":
		if bothInt {
			li, ri := left.(values.Int).Value, right.(values.Int).Value
			if ri == 0 {
				return nil, diag.NewArithmeticError(e.Pos(), "integer division by zero")
			}
			if li%ri == 0 {
				return values.Int{Value: li / ri}, nil
			}
			return values.Float{Value: float64(li) / float64(ri)}, nil
		}
		return values.Float{Value: lf / rf}, nil
	case "%":
		if bothInt {
			li, ri := left.(values.Int).Value, right.(values.Int).Value
			if ri == 0 {
				return nil, diag.NewArithmeticError(e.Pos(), "integer division by zero")
			}
			return values.Int{Value: li % ri}, nil
		}
		return values.Float{Value: math.Mod(lf, rf)}, nil
	}
	return nil, diag.New(e.Pos(), "unknown arithmetic operator: %s", e.Op)
}

func (h *Host) evalCompare(e ast.Binary, left, right values.Value) (values.Value, *diag.Error) {
	if lf, lok := asNumber(left); lok {
		if rf, rok := asNumber(right); rok {
			return values.Bool{Value: compareFloats(e.Op, lf, rf)}, nil
		}
	}
	if ls, ok := left.(values.Str); ok {
		if rs, ok := right.(values.Str); ok {
			return values.Bool{Value: compareStrings(e.Op, ls.Raw(), rs.Raw())}, nil
		}
	}
	return nil, diag.NewTypeError(e.Pos(), "cannot compare %s and %s", left.Kind(), right.Kind())
}

func asNumber(v values.Value) (float64, bool) {
	switch n := v.(type) {
	case values.Int:
		return float64(n.Value), true
	case values.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

func compareFloats(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

func compareStrings(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}
