package object

// The exception-type singletons. Each logical name has exactly one instance
// for the whole program run; aliasing a name can never mint a second one, so
// identity comparison of the pointers is the `is` and `==` relation.
//
// ValueError and TypeError are the two the compiled subset exposes as
// first-class values; the rest exist so Error values and exception-type
// values share one identity space.
var (
	ValueError     = &ExceptionType{Name: "ValueError"}
	TypeError      = &ExceptionType{Name: "TypeError"}
	IndexError     = &ExceptionType{Name: "IndexError"}
	NameError      = &ExceptionType{Name: "NameError"}
	AssertionError = &ExceptionType{Name: "AssertionError"}
	ArityError     = &ExceptionType{Name: "ArityError"}
)

var exceptionTypes = map[string]*ExceptionType{
	ValueError.Name:     ValueError,
	TypeError.Name:      TypeError,
	IndexError.Name:     IndexError,
	NameError.Name:      NameError,
	AssertionError.Name: AssertionError,
	ArityError.Name:     ArityError,
}

// LookupExceptionType resolves a source-level exception-type name to its
// singleton. The registry is populated at init and immutable afterwards.
func LookupExceptionType(name string) (*ExceptionType, bool) {
	et, ok := exceptionTypes[name]
	return et, ok
}
