// Package scope implements the lexical environment chain of spec §5:
// nested scopes for blocks, function calls, and modules, each holding its
// own variable and type bindings and delegating lookups outward to its
// parent.
//
// Grounded on the teacher's internal/evaluator/environment.go (the
// enclosed-environment, outer-chain shape) but without its sync.RWMutex:
// spec §5 is explicit that Snek programs execute single-threaded, and a
// Scope is never shared across goroutines, so the teacher's concurrency
// guard is dropped rather than carried as dead weight — see DESIGN.md.
package scope

import (
	"github.com/funvibe/snek/internal/types"
	"github.com/funvibe/snek/internal/values"
)

type variableEntry struct {
	value    values.Value
	exported bool
}

type typeEntry struct {
	value    types.Type
	exported bool
}

// Scope is one link in the lexical environment chain.
type Scope struct {
	parent *Scope
	vars   map[string]variableEntry
	types  map[string]typeEntry
}

// New creates a scope. A nil parent marks the root (module-level) scope.
func New(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		vars:   make(map[string]variableEntry),
		types:  make(map[string]typeEntry),
	}
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// LookupVariable resolves name against this scope, then its ancestors
// (spec §5). Satisfies values.Environment structurally.
func (s *Scope) LookupVariable(name string) (values.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.vars[name]; ok {
			return e.value, true
		}
	}
	return nil, false
}

// BindVariable introduces a new, single-assignment binding in this scope
// (spec §5: a variable cannot be rebound once introduced, including by a
// loop that reuses its name across iterations — each iteration binds a
// fresh variable in a fresh scope rather than mutating one). It reports
// false, without altering the scope, if name is already bound directly
// here; the caller turns that into a diag.Error at the call site, where
// it has the source Position to attach.
func (s *Scope) BindVariable(name string, v values.Value, exported bool) bool {
	if _, ok := s.vars[name]; ok {
		return false
	}
	s.vars[name] = variableEntry{value: v, exported: exported}
	return true
}

// HasOwnVariable reports whether name is already bound directly in this
// scope (not an ancestor) — the same frame-local check BindVariable
// applies before accepting a new binding.
func (s *Scope) HasOwnVariable(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// LookupType resolves a type alias against this scope, then its
// ancestors.
func (s *Scope) LookupType(name string) (types.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.types[name]; ok {
			return e.value, true
		}
	}
	return nil, false
}

// BindType introduces a type alias in this scope, subject to the same
// single-assignment rule as BindVariable.
func (s *Scope) BindType(name string, t types.Type, exported bool) bool {
	if _, ok := s.types[name]; ok {
		return false
	}
	s.types[name] = typeEntry{value: t, exported: exported}
	return true
}

// IterExportedVariables walks this scope's own exported variable
// bindings, as a Go 1.23 range-over-func iterator, for module-import
// resolution (spec §7: only exported names cross a module boundary).
func (s *Scope) IterExportedVariables(yield func(name string, v values.Value) bool) {
	for name, e := range s.vars {
		if e.exported {
			if !yield(name, e.value) {
				return
			}
		}
	}
}

// IterExportedTypes walks this scope's own exported type bindings.
func (s *Scope) IterExportedTypes(yield func(name string, t types.Type) bool) {
	for name, e := range s.types {
		if e.exported {
			if !yield(name, e.value) {
				return
			}
		}
	}
}
