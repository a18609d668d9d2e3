// Command snek is a minimal demonstration entry point for the
// interpreter core: it builds a small hand-written statement tree (the
// surface-syntax lexer/parser is an out-of-scope collaborator interface
// per spec.md §6), registers the illustrative `record` host module,
// evaluates the tree, and reports the result with the exit-code contract
// spec.md §6 describes for a CLI: 0 on success, non-zero with a
// `file:line:col: message` diagnostic otherwise.
//
// Grounded on the teacher's cmd/funxy/main.go (manual os.Args handling,
// no flag-parsing library — funxy uses none and neither do we).
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/snek/internal/ast"
	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/hostconfig"
	"github.com/funvibe/snek/internal/session"
	"github.com/funvibe/snek/internal/stdlib/record"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sess := session.New(cfg.Roots)
	record.Register(sess.Host)

	prog := demoProgram()
	rootScope := sess.Host.NewRootScope()

	result, evalErr := sess.Run(prog, rootScope)
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, diag.Format(os.Stderr, evalErr))
		return 1
	}
	fmt.Println(result.String())
	return 0
}

func loadConfig() (*hostconfig.Config, error) {
	if len(os.Args) > 1 {
		cfg, err := hostconfig.Load(os.Args[1])
		if err != nil {
			return nil, fmt.Errorf("snek: %w", err)
		}
		return cfg, nil
	}
	return hostconfig.Default(), nil
}

// demoProgram builds the statement tree equivalent to:
//
//	greeting = {name: "world"}
//	import {has} from "record"
//	has(greeting, "name")
//
// illustrating a record literal, the host-extension import path, and a
// call into a native function, all without a parser.
func demoProgram() *ast.Program {
	pos := diag.Position{File: "<demo>", Line: 1, Column: 1}
	return &ast.Program{
		Stmts: []ast.Stmt{
			ast.Assignment{
				Target: ast.Identifier{Name: "greeting"},
				Value: ast.RecordLiteral{
					Fields: []ast.RecordField{
						{Name: "name", Value: ast.StrLiteral{Value: "world"}},
					},
				},
			},
			ast.ImportStatement{
				Base:  ast.Base{Position: pos},
				Path:  "record",
				Specs: []ast.ImportSpec{ast.NamedImportSpec{Name: "has"}},
			},
			ast.ExprStatement{
				Expr: ast.Call{
					Callee: ast.Identifier{Name: "has"},
					Args: []ast.Expr{
						ast.Identifier{Name: "greeting"},
						ast.StrLiteral{Value: "name"},
					},
				},
			},
		},
	}
}
