package evaluator

import (
	"fmt"
	"minipy/internal/object"
	"os"
	"strings"
	"unicode/utf8"
)

// The builtin singletons. Constructed once at process start so that every
// reference to a builtin name, through any alias, resolves to the same
// instance; identity checks like `len is len` compare these pointers.
var (
	builtinLen = &object.Native{
		Name:  "len",
		Arity: 1,
		Fn: func(args ...object.Object) object.Object {
			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(utf8.RuneCountInString(arg.Value))}
			case *object.List:
				return &object.Integer{Value: int64(len(arg.Elements))}
			default:
				return object.NewError(object.TypeError,
					"object of type '%s' has no len()", arg.Type())
			}
		},
	}

	builtinPrint = &object.Native{
		Name:  "print",
		Arity: -1,
		Fn: func(args ...object.Object) object.Object {
			parts := make([]string, 0, len(args))
			for _, arg := range args {
				parts = append(parts, arg.Inspect())
			}
			fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
			return object.NONE
		},
	}

	builtinRange = &object.Native{
		Name:  "range",
		Arity: 1,
		Fn: func(args ...object.Object) object.Object {
			n, ok := args[0].(*object.Integer)
			if !ok {
				return object.NewError(object.TypeError,
					"'%s' object cannot be interpreted as an integer", args[0].Type())
			}
			size := n.Value
			if size < 0 {
				size = 0
			}
			return &object.Range{Size: size}
		},
	}
)

var builtins = map[string]*object.Native{
	"len":   builtinLen,
	"print": builtinPrint,
	"range": builtinRange,
}
