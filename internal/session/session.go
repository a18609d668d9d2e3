// Package session wraps interpreter construction with a correlation id,
// so diagnostics and recovered panics from a single Run call can be tied
// back to one logical invocation in a host embedding many interpreters
// over the process's lifetime.
//
// Grounded on the teacher's CallFrame/CallStack bookkeeping
// (internal/evaluator/evaluator.go) — generalized from a per-interpreter
// call stack to a per-invocation correlation id, since this spec's
// evaluator is a plain recursive tree-walk with no stack-trace surface of
// its own (see DESIGN.md).
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/interp"
	"github.com/funvibe/snek/internal/scope"
	"github.com/funvibe/snek/internal/values"
)

// Session pairs a Host with a unique ID, attached to every diagnostic that
// escapes a Run so a host embedding several concurrent interpreter
// invocations (on separate goroutines, each with its own Session — the
// Host itself is not shared across them) can tell them apart in logs.
type Session struct {
	ID   uuid.UUID
	Host *interp.Host
}

// New creates a Session wrapping a fresh Host built over roots.
func New(roots []string) *Session {
	return &Session{ID: uuid.New(), Host: interp.NewHost(roots)}
}

// Run executes prog in sc, wrapping any resulting error with this
// session's correlation id and recovering a panic from the evaluator into
// a diag.Error rather than letting it cross the Session boundary — the
// same "nothing escapes but a Result" contract spec.md gives the
// evaluator itself, extended to cover host-side programmer error in a
// native callback.
func (s *Session) Run(prog *ast.Program, sc *scope.Scope) (result values.Value, err *diag.Error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.wrap(diag.New(diag.Position{}, "panic during evaluation: %v", r))
		}
	}()
	result, runErr := s.Host.Run(prog, sc)
	if runErr != nil {
		return nil, s.wrap(runErr)
	}
	return result, nil
}

func (s *Session) wrap(e *diag.Error) *diag.Error {
	return diag.New(e.Position, "[session %s] %s", s.ID, e.Message)
}

// String renders the session id for log lines.
func (s *Session) String() string { return fmt.Sprintf("session(%s)", s.ID) }
