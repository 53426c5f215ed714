package object

// The equality and identity engine. Both relations are total over the value
// domain: they never raise, and a comparison across top-level kinds answers
// false rather than failing. This keeps == safe in any conditional or assert.
//
// Value kinds (Integer, String, Boolean, None) compare structurally. The
// callable/singleton family (Function, Closure, Native, ExceptionType)
// compares by instance: structural similarity of code or captures never
// implies equality. Lists compare element-wise under == and by instance
// under is.

// Equals implements the == relation.
func Equals(a, b Object) bool {
	switch a := a.(type) {
	case *Integer:
		if b, ok := b.(*Integer); ok {
			return a.Value == b.Value
		}
	case *String:
		if b, ok := b.(*String); ok {
			return a.Value == b.Value
		}
	case *Boolean:
		if b, ok := b.(*Boolean); ok {
			return a.Value == b.Value
		}
	case *None:
		_, ok := b.(*None)
		return ok
	case *List:
		if b, ok := b.(*List); ok {
			return listsEqual(a, b)
		}
	case *Range:
		if b, ok := b.(*Range); ok {
			return a.Size == b.Size
		}
	case *Function:
		return Object(a) == b
	case *Closure:
		return Object(a) == b
	case *Native:
		return Object(a) == b
	case *ExceptionType:
		return Object(a) == b
	}
	return false
}

// SameIdentity implements the is relation. It agrees with Equals for every
// callable and singleton kind; for value kinds it is narrower, holding only
// for the identical representation (interned immediates, or the same heap
// instance for lists and ranges).
func SameIdentity(a, b Object) bool {
	switch a := a.(type) {
	case *Integer:
		if b, ok := b.(*Integer); ok {
			return a.Value == b.Value
		}
		return false
	case *String:
		if b, ok := b.(*String); ok {
			return a.Value == b.Value
		}
		return false
	case *Boolean:
		if b, ok := b.(*Boolean); ok {
			return a.Value == b.Value
		}
		return false
	case *None:
		_, ok := b.(*None)
		return ok
	}
	// Heap and callable kinds: same allocation or registry slot.
	return a == b
}

func listsEqual(a, b *List) bool {
	if len(a.Elements) != len(b.Elements) {
		return false
	}
	for i, elem := range a.Elements {
		if !Equals(elem, b.Elements[i]) {
			return false
		}
	}
	return true
}
