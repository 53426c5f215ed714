package object

import (
	"log/slog"
	"sync/atomic"
)

var nextID atomic.Uint64

// Environment is a frame: an ordered name→value mapping with a lexical parent
// link fixed at definition time. The module scope has no Outer. Call frames
// are created per invocation and shared by pointer with every Closure that
// captured them; the garbage collector keeps a frame alive exactly as long as
// a Closure or an in-flight call can still reach it.
type Environment struct {
	ID       uint64
	Bindings map[string]Object
	Outer    *Environment
}

func nextEnvID() uint64 {
	return nextID.Add(1)
}

func NewEnvironment() *Environment {
	return &Environment{
		ID:       nextEnvID(),
		Bindings: make(map[string]Object),
	}
}

// NewEnclosedEnvironment creates a call frame whose parent is the callee's
// defining environment, never the caller's frame.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.Outer = outer
	slog.Debug("new enclosed env",
		slog.Uint64("id", env.ID),
		slog.Uint64("outer", outer.ID))
	return env
}

// Get resolves a name outward through the parent chain until found or the
// module scope is exhausted.
func (e *Environment) Get(name string) (Object, bool) {
	if val, ok := e.Bindings[name]; ok {
		return val, true
	}
	if e.Outer != nil {
		return e.Outer.Get(name)
	}
	return nil, false
}

// GetLocal reads a binding from this frame only, without walking outers.
func (e *Environment) GetLocal(name string) (Object, bool) {
	val, ok := e.Bindings[name]
	return val, ok
}

// Set binds a name in this frame, defining or rebinding it. Assignment in the
// compiled subset is always frame-local; there is no nonlocal/global form.
func (e *Environment) Set(name string, val Object) Object {
	e.Bindings[name] = val
	return val
}
