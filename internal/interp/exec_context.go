package interp

import (
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/values"
)

// JumpKind tags a non-local control transfer in flight through the
// statement executor (spec §4.E: break/continue/return propagation).
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpBreak
	JumpContinue
	JumpReturn
)

// ExecContext threads control-flow state through statement execution by
// pointer, the same way the teacher threads its *Evaluator's own
// continuation flags, but scoped to a single Run/call rather than to the
// whole interpreter (spec §3 "ExecContext").
type ExecContext struct {
	Jump  JumpKind
	Err   *diag.Error
	Value values.Value // most recent expression/assignment/export value, or the JumpReturn payload
}

// reset clears a context back to its zero state: Err/Jump/Value are left
// as their zero values.
func (c *ExecContext) reset() {
	c.Jump = JumpNone
	c.Err = nil
	c.Value = nil
}
