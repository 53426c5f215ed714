package object

import "testing"

func TestStructuralEquality(t *testing.T) {
	if !Equals(&Integer{Value: 30}, &Integer{Value: 30}) {
		t.Errorf("integers with same content are not equal")
	}
	if Equals(&Integer{Value: 30}, &Integer{Value: 31}) {
		t.Errorf("integers with different content are equal")
	}
	if !Equals(&String{Value: "hello world"}, &String{Value: "hello world"}) {
		t.Errorf("strings with same content are not equal")
	}
	if Equals(&String{Value: "a"}, &String{Value: "b"}) {
		t.Errorf("strings with different content are equal")
	}
	if !Equals(TRUE, &Boolean{Value: true}) {
		t.Errorf("booleans with same content are not equal")
	}
	if Equals(TRUE, FALSE) {
		t.Errorf("True equals False")
	}
	if !Equals(NONE, &None{}) {
		t.Errorf("None is not equal to None")
	}
}

func TestCrossKindEqualityIsAlwaysFalse(t *testing.T) {
	fn := &Function{Name: "f"}
	nat := &Native{Name: "len", Arity: 1}

	pairs := []struct {
		name string
		a, b Object
	}{
		{"int vs string", &Integer{Value: 1}, &String{Value: "1"}},
		{"int vs bool", &Integer{Value: 1}, TRUE},
		{"none vs int", NONE, &Integer{Value: 0}},
		{"function vs native", fn, nat},
		{"function vs none", fn, NONE},
		{"native vs int", nat, &Integer{Value: 1}},
		{"exc type vs native", ValueError, nat},
		{"exc type vs none", TypeError, NONE},
		{"list vs int", &List{}, &Integer{Value: 0}},
	}

	for _, pair := range pairs {
		if Equals(pair.a, pair.b) {
			t.Errorf("%s: expected not equal", pair.name)
		}
		if Equals(pair.b, pair.a) {
			t.Errorf("%s (reversed): expected not equal", pair.name)
		}
		if SameIdentity(pair.a, pair.b) {
			t.Errorf("%s: expected distinct identity", pair.name)
		}
	}
}

func TestCallableEqualityIsIdentity(t *testing.T) {
	f1 := &Function{Name: "eq_test"}
	f2 := &Function{Name: "eq_test"}

	if !Equals(f1, f1) {
		t.Errorf("function does not equal itself")
	}
	if Equals(f1, f2) {
		t.Errorf("structurally identical functions compare equal")
	}

	alias := Object(f1)
	if !Equals(alias, f1) || !SameIdentity(alias, f1) {
		t.Errorf("aliasing does not preserve identity")
	}

	c1 := &Closure{Name: "adder"}
	c2 := &Closure{Name: "adder"}
	if !Equals(c1, c1) {
		t.Errorf("closure does not equal itself")
	}
	if Equals(c1, c2) || SameIdentity(c1, c2) {
		t.Errorf("distinct closure instances compare equal")
	}
}

func TestNativeSlotIdentity(t *testing.T) {
	lenFn := &Native{Name: "len", Arity: 1}
	printFn := &Native{Name: "print", Arity: -1}

	if !Equals(lenFn, lenFn) || !SameIdentity(lenFn, lenFn) {
		t.Errorf("native does not equal itself")
	}
	if Equals(lenFn, printFn) || SameIdentity(lenFn, printFn) {
		t.Errorf("different native slots compare equal")
	}
}

func TestExceptionTypeIdentity(t *testing.T) {
	if !Equals(ValueError, ValueError) {
		t.Errorf("ValueError does not equal itself")
	}
	if Equals(ValueError, TypeError) {
		t.Errorf("ValueError equals TypeError")
	}

	et, ok := LookupExceptionType("ValueError")
	if !ok {
		t.Fatalf("ValueError missing from the registry")
	}
	if et != ValueError {
		t.Errorf("registry lookup returned a different instance")
	}

	impostor := &ExceptionType{Name: "ValueError"}
	if Equals(ValueError, impostor) {
		t.Errorf("a same-named non-registry instance must not compare equal")
	}
}

func TestListEquality(t *testing.T) {
	a := &List{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}, &Integer{Value: 3}}}
	b := &List{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}, &Integer{Value: 3}}}
	c := &List{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}

	if !Equals(a, b) {
		t.Errorf("lists with equal elements are not equal")
	}
	if Equals(a, c) {
		t.Errorf("lists of different length are equal")
	}
	if SameIdentity(a, b) {
		t.Errorf("distinct list allocations share identity")
	}
	if !SameIdentity(a, a) {
		t.Errorf("a list does not share identity with itself")
	}
}

func TestIdentityIsNarrowerThanEqualityForValues(t *testing.T) {
	// For value kinds `is` must agree with == on interned representations
	// and must never hold where == does not.
	if !SameIdentity(&Integer{Value: 5}, &Integer{Value: 5}) {
		t.Errorf("identical integer representations must share identity")
	}
	if SameIdentity(&Integer{Value: 5}, &Integer{Value: 6}) {
		t.Errorf("different integers share identity")
	}
	if !SameIdentity(NONE, NONE) {
		t.Errorf("None does not share identity with itself")
	}
}
