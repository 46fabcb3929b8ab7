package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Module is the Go module that owns a target package.
type Module struct {
	Root string // absolute directory holding go.mod
	Path string // module path from the module directive
}

// FindModule walks up from dir to the nearest go.mod.
func FindModule(dir string) (*Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, wrap(err)
	}

	for cur := abs; ; {
		data, err := os.ReadFile(filepath.Join(cur, "go.mod"))
		switch {
		case err == nil:
			path := modfile.ModulePath(data)
			if path == "" {
				return nil, wrap(fmt.Errorf("%w: %s has no module directive", ErrModuleNotFound, filepath.Join(cur, "go.mod")))
			}
			return &Module{Root: cur, Path: path}, nil
		case !os.IsNotExist(err):
			return nil, wrap(err)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, wrap(fmt.Errorf("%w: no go.mod in %s or any parent", ErrModuleNotFound, abs))
		}
		cur = parent
	}
}

// RelDir returns dir relative to the module root, slash-separated.
func (m *Module) RelDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", wrap(err)
	}
	rel, err := filepath.Rel(m.Root, abs)
	if err != nil {
		return "", wrap(err)
	}
	return filepath.ToSlash(rel), nil
}
