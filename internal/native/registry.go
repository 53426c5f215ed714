package native

import (
	"fmt"
	"log/slog"
	"minipy/internal/object"
)

// HostFunc is the host-side entry point of an external function. Arguments
// arrive in the marshaled host representation (int64, string, bool) and the
// returned value is marshaled back the same way.
type HostFunc func(args ...any) (any, error)

// Registry holds the process-wide native function slots. It is populated once
// before execution begins and is immutable afterwards: each name owns exactly
// one Native value, so aliasing a native through any number of program
// variables always preserves identity.
type Registry struct {
	slots map[string]*object.Native
}

func NewRegistry() *Registry {
	return &Registry{slots: map[string]*object.Native{}}
}

// Register creates the Native singleton for name. Registering a name twice is
// an error; the slot must stay stable for the whole run.
func (r *Registry) Register(name string, arity int, impl HostFunc) error {
	if _, exists := r.slots[name]; exists {
		return fmt.Errorf("native function %q is already registered", name)
	}

	r.slots[name] = &object.Native{
		Name:  name,
		Arity: arity,
		Fn: func(args ...object.Object) object.Object {
			return invoke(name, arity, impl, args)
		},
	}

	slog.Debug("registered native function",
		slog.String("name", name),
		slog.Int("arity", arity))
	return nil
}

func (r *Registry) Lookup(name string) (*object.Native, bool) {
	fn, ok := r.slots[name]
	return fn, ok
}

// invoke is the marshaling boundary: arity check, value-to-host conversion,
// host call, host-to-value conversion. A value kind the boundary does not
// carry is a TypeError, not a crash.
func invoke(name string, arity int, impl HostFunc, args []object.Object) object.Object {
	if len(args) != arity {
		return object.NewError(object.ArityError,
			"%s() takes %d arguments but %d were given", name, arity, len(args))
	}

	hostArgs := make([]any, len(args))
	for i, arg := range args {
		v, err := marshal(arg)
		if err != nil {
			return object.NewError(object.TypeError,
				"%s() argument %d: %v", name, i+1, err)
		}
		hostArgs[i] = v
	}

	result, err := impl(hostArgs...)
	if err != nil {
		return object.NewError(object.ValueError, "%s(): %v", name, err)
	}

	return unmarshal(name, result)
}

func marshal(obj object.Object) (any, error) {
	switch obj := obj.(type) {
	case *object.Integer:
		return obj.Value, nil
	case *object.String:
		return obj.Value, nil
	case *object.Boolean:
		return obj.Value, nil
	default:
		return nil, fmt.Errorf("cannot pass '%s' across the native boundary", obj.Type())
	}
}

func unmarshal(name string, v any) object.Object {
	switch v := v.(type) {
	case nil:
		return object.NONE
	case int64:
		return &object.Integer{Value: v}
	case int:
		return &object.Integer{Value: int64(v)}
	case string:
		return &object.String{Value: v}
	case bool:
		return object.NativeBoolToBooleanObject(v)
	default:
		return object.NewError(object.TypeError,
			"%s() returned an unsupported host value of type %T", name, v)
	}
}
