package native

import (
	"errors"
	"minipy/internal/object"
	"testing"
)

var errFailed = errors.New("host failure")

func standardRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := RegisterStandard(r); err != nil {
		t.Fatalf("failed to register standard natives: %v", err)
	}
	return r
}

func TestRegisterRejectsDuplicateNames(t *testing.T) {
	r := standardRegistry(t)
	err := r.Register("add_ints", 2, func(args ...any) (any, error) { return nil, nil })
	if err == nil {
		t.Errorf("registering a name twice must fail")
	}
}

func TestLookupReturnsStableSlot(t *testing.T) {
	r := standardRegistry(t)

	first, ok := r.Lookup("add_ints")
	if !ok {
		t.Fatalf("add_ints not registered")
	}
	second, _ := r.Lookup("add_ints")
	if first != second {
		t.Errorf("repeated lookups must yield the same singleton")
	}

	other, _ := r.Lookup("concat_strings")
	if object.SameIdentity(first, other) {
		t.Errorf("different slots share identity")
	}
}

func TestInvokeMarshalsIntegers(t *testing.T) {
	r := standardRegistry(t)
	fn, _ := r.Lookup("add_ints")

	cases := []struct {
		a, b, want int64
	}{
		{10, 20, 30},
		{-5, 15, 10},
		{100, 200, 300},
	}
	for _, c := range cases {
		result := fn.Fn(&object.Integer{Value: c.a}, &object.Integer{Value: c.b})
		i, ok := result.(*object.Integer)
		if !ok {
			t.Fatalf("add_ints(%d, %d) returned %s", c.a, c.b, result.Type())
		}
		if i.Value != c.want {
			t.Errorf("add_ints(%d, %d): expected %d, got %d", c.a, c.b, c.want, i.Value)
		}
	}
}

func TestInvokeMarshalsStrings(t *testing.T) {
	r := standardRegistry(t)
	fn, _ := r.Lookup("concat_strings")

	result := fn.Fn(&object.String{Value: "hello"}, &object.String{Value: " world"})
	s, ok := result.(*object.String)
	if !ok {
		t.Fatalf("concat_strings returned %s", result.Type())
	}
	if s.Value != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", s.Value)
	}
}

func TestInvokeMarshalsBooleans(t *testing.T) {
	r := standardRegistry(t)
	fn, _ := r.Lookup("return_value")

	result := fn.Fn(object.TRUE)
	if result != object.Object(object.TRUE) {
		t.Errorf("expected the True singleton back, got %s", result.Inspect())
	}
}

func TestInvokeIsReferentiallyTransparent(t *testing.T) {
	r := standardRegistry(t)
	fn, _ := r.Lookup("add_ints")

	a := &object.Integer{Value: 7}
	b := &object.Integer{Value: 8}
	first := fn.Fn(a, b)
	second := fn.Fn(a, b)

	if !object.Equals(first, second) {
		t.Errorf("same inputs produced different outputs")
	}
	if a.Value != 7 || b.Value != 8 {
		t.Errorf("invocation mutated its arguments")
	}
}

func TestInvokeArityMismatch(t *testing.T) {
	r := standardRegistry(t)
	fn, _ := r.Lookup("add_ints")

	result := fn.Fn(&object.Integer{Value: 1})
	err, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected an error, got %s", result.Type())
	}
	if err.Kind != object.ArityError {
		t.Errorf("expected ArityError, got %s", err.Kind.Name)
	}
}

func TestInvokeRejectsUnsupportedKinds(t *testing.T) {
	r := standardRegistry(t)
	fn, _ := r.Lookup("return_value")

	for _, arg := range []object.Object{
		&object.List{},
		object.NONE,
		&object.Function{Name: "f"},
		object.ValueError,
	} {
		result := fn.Fn(arg)
		err, ok := result.(*object.Error)
		if !ok {
			t.Fatalf("passing %s across the boundary should fail, got %s", arg.Type(), result.Type())
		}
		if err.Kind != object.TypeError {
			t.Errorf("passing %s: expected TypeError, got %s", arg.Type(), err.Kind.Name)
		}
	}
}

func TestInvokeMarshalsNilReturnToNone(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("noop", 0, func(args ...any) (any, error) {
		return nil, nil
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	fn, _ := r.Lookup("noop")
	if fn.Fn() != object.Object(object.NONE) {
		t.Errorf("nil host return must marshal to None")
	}
}

func TestInvokeWrapsHostErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("fail", 0, func(args ...any) (any, error) {
		return nil, errFailed
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	fn, _ := r.Lookup("fail")
	result := fn.Fn()
	err, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected an error, got %s", result.Type())
	}
	if err.Kind != object.ValueError {
		t.Errorf("expected ValueError, got %s", err.Kind.Name)
	}
}
