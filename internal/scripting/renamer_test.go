package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/svgtomap/internal/scripting"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hooks.lua")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestLoadRenamer_RenameApplied(t *testing.T) {
	r, err := scripting.LoadRenamer(writeScript(t, `
		function rename(name)
			return string.upper(name)
		end
	`), 0)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Rename("South East")
	require.NoError(t, err)
	assert.Equal(t, "SOUTH EAST", got)
}

func TestLoadRenamer_NilKeepsName(t *testing.T) {
	r, err := scripting.LoadRenamer(writeScript(t, `
		local overrides = { ["Creer"] = "Creer Basin" }
		function rename(name)
			return overrides[name]
		end
	`), 0)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Rename("Creer")
	require.NoError(t, err)
	assert.Equal(t, "Creer Basin", got)

	got, err = r.Rename("Arafan")
	require.NoError(t, err)
	assert.Equal(t, "Arafan", got)
}

func TestLoadRenamer_NoHookIsIdentity(t *testing.T) {
	r, err := scripting.LoadRenamer(writeScript(t, `local x = 1`), 0)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Rename("Moncton")
	require.NoError(t, err)
	assert.Equal(t, "Moncton", got)
}

func TestLoadRenamer_HookNotFunction(t *testing.T) {
	_, err := scripting.LoadRenamer(writeScript(t, `rename = 42`), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a function")
}

func TestLoadRenamer_SyntaxError(t *testing.T) {
	_, err := scripting.LoadRenamer(writeScript(t, `function rename(`), 0)
	assert.Error(t, err)
}

func TestLoadRenamer_MissingFile(t *testing.T) {
	_, err := scripting.LoadRenamer(filepath.Join(t.TempDir(), "nope.lua"), 0)
	assert.Error(t, err)
}

func TestLoadRenamer_SandboxBlocksOS(t *testing.T) {
	_, err := scripting.LoadRenamer(writeScript(t, `os.exit(1)`), 0)
	assert.Error(t, err)
}

func TestRenamer_NonStringResult(t *testing.T) {
	r, err := scripting.LoadRenamer(writeScript(t, `function rename(name) return 7 end`), 0)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Rename("A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want string or nil")
}

func TestRenamer_RuntimeError(t *testing.T) {
	r, err := scripting.LoadRenamer(writeScript(t, `function rename(name) error("boom") end`), 0)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Rename("A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRenamer_InstructionLimit(t *testing.T) {
	r, err := scripting.LoadRenamer(writeScript(t, `function rename(name) while true do end end`), 50)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Rename("A")
	assert.Error(t, err)
}

func TestProperty_IdentityHookPreservesName(t *testing.T) {
	path := writeScript(t, `function rename(name) return name end`)
	r, err := scripting.LoadRenamer(path, 0)
	require.NoError(t, err)
	defer r.Close()

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z ]{0,30}`).Draw(rt, "name")
		got, err := r.Rename(name)
		require.NoError(rt, err)
		assert.Equal(rt, name, got)
	})
}
