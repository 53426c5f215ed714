package native

import (
	"minipy/internal/object"
	"testing"
)

func dbRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := RegisterDB(r); err != nil {
		t.Fatalf("failed to register db natives: %v", err)
	}
	return r
}

func invokeOK(t *testing.T, r *Registry, name string, args ...object.Object) object.Object {
	t.Helper()
	fn, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("%s not registered", name)
	}
	result := fn.Fn(args...)
	if err, isErr := result.(*object.Error); isErr {
		t.Fatalf("%s failed: %s", name, err.Inspect())
	}
	return result
}

func TestDBNativesAgainstSqlite(t *testing.T) {
	r := dbRegistry(t)

	handle := invokeOK(t, r, "db_connect",
		&object.String{Value: "sqlite3"},
		&object.String{Value: ":memory:"})
	h, ok := handle.(*object.Integer)
	if !ok {
		t.Fatalf("db_connect returned %s", handle.Type())
	}

	invokeOK(t, r, "db_exec", h,
		&object.String{Value: "CREATE TABLE runs (id INTEGER PRIMARY KEY, passed INTEGER)"})
	affected := invokeOK(t, r, "db_exec", h,
		&object.String{Value: "INSERT INTO runs (passed) VALUES (1), (1), (0)"})
	if affected.(*object.Integer).Value != 3 {
		t.Errorf("expected 3 rows affected, got %s", affected.Inspect())
	}

	count := invokeOK(t, r, "db_query_int", h,
		&object.String{Value: "SELECT COUNT(*) FROM runs WHERE passed = 1"})
	if count.(*object.Integer).Value != 2 {
		t.Errorf("expected 2, got %s", count.Inspect())
	}

	invokeOK(t, r, "db_close", h)

	// The handle is dead after close.
	fn, _ := r.Lookup("db_exec")
	result := fn.Fn(h, &object.String{Value: "SELECT 1"})
	if _, isErr := result.(*object.Error); !isErr {
		t.Errorf("using a closed handle should fail")
	}
}

func TestDBConnectRejectsUnknownDriver(t *testing.T) {
	r := dbRegistry(t)
	fn, _ := r.Lookup("db_connect")

	result := fn.Fn(
		&object.String{Value: "no-such-driver"},
		&object.String{Value: "dsn"})
	if _, isErr := result.(*object.Error); !isErr {
		t.Errorf("expected an error for an unknown driver")
	}
}
