package native

import "fmt"

// RegisterStandard installs the host functions the conformance programs link
// against.
func RegisterStandard(r *Registry) error {
	if err := r.Register("add_ints", 2, func(args ...any) (any, error) {
		a, err := int64Arg(args, 0)
		if err != nil {
			return nil, err
		}
		b, err := int64Arg(args, 1)
		if err != nil {
			return nil, err
		}
		return a + b, nil
	}); err != nil {
		return err
	}

	if err := r.Register("concat_strings", 2, func(args ...any) (any, error) {
		a, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		b, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}
		return a + b, nil
	}); err != nil {
		return err
	}

	// return_value echoes any marshalable argument, useful for probing the
	// boundary with each supported host kind.
	if err := r.Register("return_value", 1, func(args ...any) (any, error) {
		return args[0], nil
	}); err != nil {
		return err
	}

	return nil
}

func int64Arg(args []any, i int) (int64, error) {
	v, ok := args[i].(int64)
	if !ok {
		return 0, fmt.Errorf("expected an integer, got %T", args[i])
	}
	return v, nil
}

func stringArg(args []any, i int) (string, error) {
	v, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", args[i])
	}
	return v, nil
}
