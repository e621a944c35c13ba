package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// renameHook is the global function a script defines to rewrite region names.
const renameHook = "rename"

// Renamer rewrites region names through an optional Lua rename(name) function.
//
// A Renamer is not safe for concurrent use.
type Renamer struct {
	L         *lua.LState
	fn        *lua.LFunction
	instLimit int
}

// LoadRenamer executes the Lua file at path in a sandboxed state and binds its
// global rename function, if any.
//
// Precondition: path must be a readable Lua file; instLimit <= 0 uses
// DefaultInstructionLimit.
// Postcondition: Returns a Renamer the caller must Close, or a non-nil error.
func LoadRenamer(path string, instLimit int) (*Renamer, error) {
	L := NewSandboxedState()
	if err := limited(L, instLimit, func() error { return L.DoFile(path) }); err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}

	r := &Renamer{L: L, instLimit: instLimit}
	switch hook := L.GetGlobal(renameHook).(type) {
	case *lua.LFunction:
		r.fn = hook
	case *lua.LNilType:
	default:
		L.Close()
		return nil, fmt.Errorf("scripting: %q: %s must be a function, got %s", path, renameHook, hook.Type())
	}
	return r, nil
}

// Rename passes name to the script's rename function. A string result replaces
// the name; nil keeps it. Without a rename function, name is returned as is.
//
// Postcondition: Returns the resulting name, or a non-nil error if the script
// fails, exceeds its instruction limit, or returns a non-string value.
func (r *Renamer) Rename(name string) (string, error) {
	if r.fn == nil {
		return name, nil
	}

	var ret lua.LValue
	err := limited(r.L, r.instLimit, func() error {
		if err := r.L.CallByParam(lua.P{Fn: r.fn, NRet: 1, Protect: true}, lua.LString(name)); err != nil {
			return err
		}
		ret = r.L.Get(-1)
		r.L.Pop(1)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scripting: %s(%q): %w", renameHook, name, err)
	}

	switch v := ret.(type) {
	case lua.LString:
		return string(v), nil
	case *lua.LNilType:
		return name, nil
	default:
		return "", fmt.Errorf("scripting: %s(%q) returned %s, want string or nil", renameHook, name, v.Type())
	}
}

// Close releases the underlying Lua state.
func (r *Renamer) Close() {
	r.L.Close()
}
