package interp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/snek/internal/diag"
	"github.com/funvibe/snek/internal/scope"
)

// Module is a thin wrapper pairing a canonical path with the scope its
// source produced (spec §3, grounded on the teacher's modules.Module but
// stripped of its SymbolTable/TypeMap/trait bookkeeping, which belongs to
// the teacher's separate static analyzer — Snek has no analysis pass
// distinct from evaluation).
type Module struct {
	Path  string
	Scope *scope.Scope
}

// moduleCache is the path-keyed cache with in-flight cycle marking from
// spec §4.F/§6, grounded on the teacher's Loader{LoadedModules, Processing}.
type moduleCache struct {
	loaded     map[string]*Module
	processing map[string]*Module
}

func newModuleCache() *moduleCache {
	return &moduleCache{
		loaded:     make(map[string]*Module),
		processing: make(map[string]*Module),
	}
}

// ImportModule resolves path relative to fromDir (if path starts with
// "."), else along the Host's ordered root list, then parses, executes,
// and caches it (spec §4.F "import_module", §6 "Module cache").
//
// A module currently being loaded is found in processing rather than
// loaded; a cyclic re-import returns that in-flight module's scope as-is,
// exposing only whatever was bound before the cycle was hit, without
// re-running or re-caching it — the teacher's Loader.Processing set plays
// the identical role during its own dependency-graph walk.
func (h *Host) ImportModule(fromDir, path string) (*scope.Scope, *diag.Error) {
	// A host-registered virtual module (spec §6 "create_module") is
	// addressed by its bare name, taking precedence over any file of the
	// same name on a search root — the way the teacher's Loader checks its
	// builtin-package table before ever touching the filesystem.
	if mod, ok := h.modules.loaded["virtual:"+path]; ok {
		return mod.Scope, nil
	}

	canonical, err := h.resolveModulePath(fromDir, path)
	if err != nil {
		return nil, err
	}

	if mod, ok := h.modules.loaded[canonical]; ok {
		return mod.Scope, nil
	}
	if mod, ok := h.modules.processing[canonical]; ok {
		return mod.Scope, nil
	}

	if h.parser == nil {
		return nil, diag.NewImportError(diag.Position{}, "no parser configured to load module %q", path)
	}

	source, readErr := os.ReadFile(canonical)
	if readErr != nil {
		return nil, diag.NewImportError(diag.Position{}, "cannot read module %q: %s", path, readErr)
	}

	prog, parseErr := h.parser(source, canonical)
	if parseErr != nil {
		return nil, parseErr
	}

	moduleScope := scope.New(h.primordialScope())
	inFlight := &Module{Path: canonical, Scope: moduleScope}
	h.modules.processing[canonical] = inFlight

	_, execErr := h.Run(prog, moduleScope)

	delete(h.modules.processing, canonical)
	if execErr != nil {
		// Parse or execution failure is not cached (spec §6).
		return nil, execErr
	}

	h.modules.loaded[canonical] = inFlight
	return moduleScope, nil
}

func (h *Host) resolveModulePath(fromDir, path string) (string, *diag.Error) {
	if strings.HasPrefix(path, ".") {
		candidate := filepath.Join(fromDir, path)
		return filepath.Clean(candidate), nil
	}
	for _, root := range h.roots {
		candidate := filepath.Join(root, path)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Clean(candidate), nil
		}
	}
	if len(h.roots) == 0 {
		return filepath.Clean(path), nil
	}
	return "", diag.NewImportError(diag.Position{}, "module %q not found in any root", path)
}

// CreateModule builds an exportable scope of host-backed functions and
// types, without going through the parser at all (spec §6 "create_module":
// the mechanism `io`/`debug`/`record` and other host extensions use to
// register themselves). The returned scope has no parent; it is meant to
// be imported via ImportModule's cache by registering it directly, or
// consulted standalone by embedding code.
func (h *Host) CreateModule(name string, funcs []FuncDefinition, typeDefs []TypeDefinition) *scope.Scope {
	moduleScope := scope.New(nil)
	for _, td := range typeDefs {
		ty := h.resolveHostTypeExpr(td.Type)
		moduleScope.BindType(td.Name, ty, true)
	}
	for _, fd := range funcs {
		fn := h.buildNativeFunc(fd)
		moduleScope.BindVariable(fd.Name, fn, true)
	}
	canonical := "virtual:" + name
	h.modules.loaded[canonical] = &Module{Path: canonical, Scope: moduleScope}
	return moduleScope
}
