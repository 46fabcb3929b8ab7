package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindModule(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/shop // main module\n\ngo 1.24\n"), 0o644))
	deep := filepath.Join(root, "internal", "store", "sql")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	mod, err := FindModule(deep)
	require.NoError(t, err)
	assert.Equal(t, root, mod.Root)
	assert.Equal(t, "example.com/shop", mod.Path)

	rel, err := mod.RelDir(deep)
	require.NoError(t, err)
	assert.Equal(t, "internal/store/sql", rel)

	rel, err = mod.RelDir(root)
	require.NoError(t, err)
	assert.Equal(t, ".", rel)
}

func TestFindModule_NoModuleDirective(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("go 1.24\n"), 0o644))

	_, err := FindModule(root)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestFindModule_ThisRepository(t *testing.T) {
	mod, err := FindModule(".")
	require.NoError(t, err)
	assert.Equal(t, "erreport", mod.Path)

	rel, err := mod.RelDir(".")
	require.NoError(t, err)
	assert.Equal(t, "internal/codegen", rel)
}
