package interp

import (
	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
)

// Parser turns UTF-8 source text into a Program, with every leaf node
// carrying a Position in filename (spec §4.F, §6 "Data flow": the core
// never parses source itself — the surface-syntax lexer/parser is an
// explicit collaborator interface, out of scope here). A Host is usable
// for Run on an already-parsed Program without ever setting one; only
// ImportModule needs it, to turn an import path into a Program.
type Parser func(source []byte, filename string) (*ast.Program, *diag.Error)

// SetParser installs the collaborator used to resolve import statements.
// Hosts built purely to Run a pre-parsed Program never need to call this.
func (h *Host) SetParser(p Parser) { h.parser = p }
