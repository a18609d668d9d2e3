// Package interp is the tree-walking evaluator and host runtime: the
// expression evaluator, statement executor, function-call protocol, and
// module loader of spec §4.D–§4.F, wired together behind a single Host.
//
// Grounded on the teacher's internal/evaluator package (Evaluator struct,
// primordial singletons, ApplyFunction) and internal/modules (Loader,
// path-keyed module cache, cycle detection via a Processing set), scaled
// down to Snek's feature set: no generics, traits, witness-dictionaries,
// or VM — see DESIGN.md.
package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

// Host owns the primordial type/value singletons and the module cache for
// one interpreter session (spec §4.F, §6).
type Host struct {
	anyType   types.Type
	boolType  types.Type
	intType   types.Type
	floatType types.Type
	numType   types.Type
	strType   types.Type
	binType   types.Type
	voidType  types.Type

	roots   []string
	modules *moduleCache
	parser  Parser
}

// NewHost builds a Host with the primordial types seeded and an empty
// module cache. roots is the ordered search-path list used to resolve
// non-relative import specifiers (spec §6 "Module paths"); a specifier
// starting with "." is resolved against the importer's directory instead.
func NewHost(roots []string) *Host {
	h := &Host{
		anyType:   types.Any{},
		boolType:  types.Primitive{Kind: types.PrimBool},
		intType:   types.Primitive{Kind: types.PrimInt},
		floatType: types.Primitive{Kind: types.PrimFloat},
		numType:   types.Primitive{Kind: types.PrimNum},
		strType:   types.Primitive{Kind: types.PrimStr},
		binType:   types.Primitive{Kind: types.PrimBin},
		voidType:  types.Primitive{Kind: types.PrimVoid},
		roots:     roots,
	}
	h.modules = newModuleCache()
	return h
}

func (h *Host) AnyType() types.Type   { return h.anyType }
func (h *Host) BoolType() types.Type  { return h.boolType }
func (h *Host) IntType() types.Type   { return h.intType }
func (h *Host) FloatType() types.Type { return h.floatType }
func (h *Host) NumType() types.Type   { return h.numType }
func (h *Host) StrType() types.Type   { return h.strType }
func (h *Host) BinType() types.Type   { return h.binType }
func (h *Host) VoidType() types.Type  { return h.voidType }

// NullValue returns the sole Void-typed value.
func (h *Host) NullValue() values.Value { return values.Null{} }

// BoolValue lifts a Go bool into a Snek Bool value.
func (h *Host) BoolValue(b bool) values.Value { return values.Bool{Value: b} }

// primordialScope builds the root scope every module and program sees,
// seeding the primitive type names as exported aliases and no variables
// (spec §4.C, §4.F).
func (h *Host) primordialScope() *scope.Scope {
	sc := scope.New(nil)
	sc.BindType("Any", h.anyType, true)
	sc.BindType("Bool", h.boolType, true)
	sc.BindType("Int", h.intType, true)
	sc.BindType("Float", h.floatType, true)
	sc.BindType("Num", h.numType, true)
	sc.BindType("Str", h.strType, true)
	sc.BindType("Bin", h.binType, true)
	sc.BindType("Void", h.voidType, true)
	return sc
}

// NewRootScope builds a top-level scope chained to the primordial type
// bindings, the scope a caller should pass to Run for a program that is
// not itself a module (spec §6 "interpreter.run(source_scope)" — the
// source scope given to a top-level run still sees Int/Str/... by name,
// exactly as a module body does via ImportModule's moduleScope).
func (h *Host) NewRootScope() *scope.Scope {
	return scope.New(h.primordialScope())
}

// Run evaluates prog's top-level statements directly against sc,
// returning the most recent value recorded in the ExecContext — that of
// the last expression, assignment, export, or return statement executed —
// or Null if no statement recorded one (spec §5, §6
// "interpreter.run(source_scope)"). Statements that record no value, such
// as type aliases and imports, leave the earlier value in place. Only
// Block introduces a child scope
// (spec §4.E); a top-level program's bindings land in sc itself, which
// matters when sc is a module's scope that ImportModule later caches.
func (h *Host) Run(prog *ast.Program, sc *scope.Scope) (values.Value, *diag.Error) {
	var ctx ExecContext
	for _, stmt := range prog.Stmts {
		h.execStatement(stmt, sc, &ctx)
		if ctx.Err != nil {
			return nil, ctx.Err
		}
		if ctx.Jump != JumpNone {
			break
		}
	}
	if ctx.Value == nil {
		return values.Null{}, nil
	}
	return ctx.Value, nil
}
