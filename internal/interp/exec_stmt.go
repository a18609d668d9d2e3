package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

// execStatement executes one statement against sc, mutating ctx in place
// per spec §4.E, and returns the value this statement produced: the value
// of an expression, assignment, export, or return statement, whatever a
// nested if/block last returned, or nil for statements that produce none.
// Expression, assignment, export, and return statements also record their
// value in ctx.Value, which is what Host.Run reports as the program result.
func (h *Host) execStatement(stmt ast.Stmt, sc *scope.Scope, ctx *ExecContext) values.Value {
	switch s := stmt.(type) {
	case ast.ExprStatement:
		v, err := h.eval(s.Expr, sc)
		if err != nil {
			ctx.Err = err
			return nil
		}
		ctx.Value = v
		return v

	case ast.Assignment:
		v, err := h.eval(s.Value, sc)
		if err != nil {
			ctx.Err = err
			return nil
		}
		if err := h.assign(s.Target, sc, v); err != nil {
			ctx.Err = err
			return nil
		}
		ctx.Value = v
		return v

	case ast.TypeAliasStatement:
		ty, err := h.evalTypeExpr(sc, s.Type)
		if err != nil {
			ctx.Err = err
			return nil
		}
		if !sc.BindType(s.Name, ty, s.Export) {
			ctx.Err = diag.New(s.Pos(), "Type `%s` has already been defined", s.Name)
			return nil
		}
		return nil

	case ast.ExportStatement:
		v, err := h.eval(s.Value, sc)
		if err != nil {
			ctx.Err = err
			return nil
		}
		if !sc.BindVariable(s.Name, v, true) {
			ctx.Err = diag.New(s.Pos(), "Variable `%s` has already been defined", s.Name)
			return nil
		}
		ctx.Value = v
		return v

	case ast.IfStatement:
		cond, err := h.evalAsBool(s.Cond, sc)
		if err != nil {
			ctx.Err = err
			return nil
		}
		if cond {
			return h.execStatement(s.Then, sc, ctx)
		}
		if s.Else != nil {
			return h.execStatement(s.Else, sc, ctx)
		}
		return nil

	case ast.WhileStatement:
		for {
			cond, err := h.evalAsBool(s.Cond, sc)
			if err != nil {
				ctx.Err = err
				return nil
			}
			if !cond {
				return nil
			}
			h.execStatement(s.Body, sc, ctx)
			if ctx.Err != nil {
				return nil
			}
			switch ctx.Jump {
			case JumpBreak:
				ctx.Jump = JumpNone
				return nil
			case JumpContinue:
				ctx.Jump = JumpNone
			case JumpReturn:
				return nil
			}
		}

	case ast.BreakStatement:
		ctx.Jump = JumpBreak
		return nil

	case ast.ContinueStatement:
		ctx.Jump = JumpContinue
		return nil

	case ast.ReturnStatement:
		if s.Value != nil {
			v, err := h.eval(s.Value, sc)
			if err != nil {
				ctx.Err = err
				return nil
			}
			ctx.Value = v
		} else {
			ctx.Value = values.Null{}
		}
		ctx.Jump = JumpReturn
		return ctx.Value

	case ast.BlockStatement:
		blockScope := scope.New(sc)
		var last values.Value
		for _, inner := range s.Stmts {
			last = h.execStatement(inner, blockScope, ctx)
			if ctx.Err != nil || ctx.Jump != JumpNone {
				return last
			}
		}
		return last

	case ast.ImportStatement:
		fromDir := "."
		if s.Pos().File != "" {
			fromDir = dirOf(s.Pos().File)
		}
		modScope, err := h.ImportModule(fromDir, s.Path)
		if err != nil {
			ctx.Err = diag.New(s.Pos(), "Unable to import `%s`", s.Path)
			return nil
		}
		if err := h.applyImportSpecs(s, modScope, sc); err != nil {
			ctx.Err = err
			return nil
		}
		return nil

	default:
		ctx.Err = diag.New(stmt.Pos(), "unsupported statement")
		return nil
	}
}

func (h *Host) applyImportSpecs(s ast.ImportStatement, modScope, into *scope.Scope) *diag.Error {
	for _, spec := range s.Specs {
		switch sp := spec.(type) {
		case ast.NamedImportSpec:
			local := sp.Alias
			if local == "" {
				local = sp.Name
			}
			// Only the module's own exported frame is eligible — walking
			// the parent chain here would also reach its unexported
			// bindings and the primordial scope's Int/Str/... (spec §4.F:
			// "reject unless name is an exported variable or type of the
			// module").
			if v, ok := lookupOwnExportedVariable(modScope, sp.Name); ok {
				into.BindVariable(local, v, false)
				continue
			}
			if ty, ok := lookupOwnExportedType(modScope, sp.Name); ok {
				into.BindType(local, ty, false)
				continue
			}
			return diag.New(s.Pos(), "Module %q has no exported name `%s`", s.Path, sp.Name)

		case ast.StarImportSpec:
			fields := make(map[string]values.Value)
			order := make([]string, 0)
			for name, v := range modScope.IterExportedVariables {
				fields[name] = v
				order = append(order, name)
			}
			into.BindVariable(sp.Alias, values.NewRecord(order, fields), false)
		}
	}
	return nil
}

// lookupOwnExportedVariable reports name only if it is bound and exported
// directly in modScope itself, never an ancestor.
func lookupOwnExportedVariable(modScope *scope.Scope, name string) (values.Value, bool) {
	for n, v := range modScope.IterExportedVariables {
		if n == name {
			return v, true
		}
	}
	return nil, false
}

// lookupOwnExportedType reports name only if it is bound and exported
// directly in modScope itself, never an ancestor.
func lookupOwnExportedType(modScope *scope.Scope, name string) (types.Type, bool) {
	for n, t := range modScope.IterExportedTypes {
		if n == name {
			return t, true
		}
	}
	return nil, false
}
