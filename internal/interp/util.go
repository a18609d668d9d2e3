package interp

import "path/filepath"

// dirOf returns the directory a source file lives in, for resolving
// relative import specifiers against the importing module's location.
func dirOf(file string) string { return filepath.Dir(file) }
