// Package hostapi is the host-extension contract's public surface (spec
// §4.F/§6): the handful of types a native Go package needs to extend the
// interpreter with a built-in module, re-exported so that extension code
// depends only on pkg/hostapi rather than reaching into internal/....
//
// Mirrors the teacher's pkg/ext/types.go type-alias re-export pattern
// (`type Object = evaluator.Object`), the same reason funxy gives: native
// binding code should not need to import the evaluator's internal
// package layout to use it.
package hostapi

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/interp"
	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

type (
	// Value is a runtime Snek value (spec §4.A).
	Value = values.Value
	// Type is a structural Snek type (spec §4.B).
	Type = types.Type
	// Error is the single runtime-error kind (spec §3/§7).
	Error = diag.Error
	// Position is a source location (spec §3).
	Position = diag.Position
	// Message is the argument bundle passed to a host callback.
	Message = interp.Message
	// Callback is the native-function signature of the host-extension
	// contract.
	Callback = interp.HostCallback
	// FuncDefinition describes one host-provided function for a module.
	FuncDefinition = interp.FuncDefinition
	// TypeDefinition describes one host-provided type alias for a module.
	TypeDefinition = interp.TypeDefinition
	// TypeExpr is the syntax of a type annotation (used in
	// FuncDefinition.Params/ReturnType and TypeDefinition.Type).
	TypeExpr = ast.TypeExpr
	// ParamSpec is one parameter of a host-provided function.
	ParamSpec = ast.ParamSpec
	// Host owns the primordial types and module cache for one
	// interpreter session.
	Host = interp.Host
)

// NewHost builds a Host over the given ordered module search roots.
func NewHost(roots []string) *Host { return interp.NewHost(roots) }
