package evaluator

import (
	"log/slog"
	"minipy/internal/ast"
	"minipy/internal/native"
	"minipy/internal/object"
)

// Evaluator executes the compiled-subset statement forms against a chain of
// environments. The module scope is created once per evaluator and lives for
// the whole run; call frames are pushed per invocation.
type Evaluator struct {
	envStack []*object.Environment
	module   *object.Environment
	natives  *native.Registry
}

func New(natives *native.Registry) *Evaluator {
	module := object.NewEnvironment()
	return &Evaluator{
		envStack: []*object.Environment{module},
		module:   module,
		natives:  natives,
	}
}

func (e *Evaluator) ModuleEnv() *object.Environment {
	return e.module
}

func (e *Evaluator) PushEnv(env *object.Environment) {
	e.envStack = append(e.envStack, env)
}

func (e *Evaluator) CurrentEnv() *object.Environment {
	if len(e.envStack) == 0 {
		panic("environment stack is empty")
	}
	return e.envStack[len(e.envStack)-1]
}

func (e *Evaluator) PopEnv() {
	if len(e.envStack) == 0 {
		panic("attempted to pop from an empty environment stack")
	}
	e.envStack = e.envStack[:len(e.envStack)-1]
}

func (e *Evaluator) Eval(node ast.Node) object.Object {
	switch node := node.(type) {

	// Statements
	case *ast.Program:
		return e.evalProgram(node)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression)

	case *ast.AssignStatement:
		val := e.Eval(node.Value)
		if e.isError(val) {
			return val
		}
		e.CurrentEnv().Set(node.Name.Value, val)
		return object.NONE

	case *ast.DefStatement:
		return e.evalDefStatement(node)

	case *ast.ReturnStatement:
		if node.ReturnValue == nil {
			return &object.ReturnValue{Value: object.NONE}
		}
		val := e.Eval(node.ReturnValue)
		if e.isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.ForStatement:
		return e.evalForStatement(node)

	case *ast.AssertStatement:
		return e.evalAssertStatement(node)

	// Expressions
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.BooleanLiteral:
		return object.NativeBoolToBooleanObject(node.Value)

	case *ast.NoneLiteral:
		return object.NONE

	case *ast.Identifier:
		return e.evalIdentifier(node)

	case *ast.ListLiteral:
		elements := e.evalExpressions(node.Elements)
		if len(elements) == 1 && e.isError(elements[0]) {
			return elements[0]
		}
		return &object.List{Elements: elements}

	case *ast.IndexExpression:
		left := e.Eval(node.Left)
		if e.isError(left) {
			return left
		}
		index := e.Eval(node.Index)
		if e.isError(index) {
			return index
		}
		return e.evalIndexExpression(left, index)

	case *ast.InfixExpression:
		left := e.Eval(node.Left)
		if e.isError(left) {
			return left
		}
		right := e.Eval(node.Right)
		if e.isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *ast.NotExpression:
		val := e.Eval(node.Value)
		if e.isError(val) {
			return val
		}
		return object.NativeBoolToBooleanObject(!e.isTruthy(val))

	case *ast.CallExpression:
		function := e.Eval(node.Function)
		if e.isError(function) {
			return function
		}
		args := e.evalExpressions(node.Arguments)
		if len(args) == 1 && e.isError(args[0]) {
			return args[0]
		}
		return e.applyFunction(function, args)

	case *ast.MethodCallExpression:
		return e.evalMethodCall(node)
	}

	return nil
}

func (e *Evaluator) evalProgram(program *ast.Program) object.Object {
	var result object.Object = object.NONE

	for _, statement := range program.Statements {
		result = e.Eval(statement)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement runs a body in the current frame. Blocks do not open a
// child environment: the subset has function-level scoping only, so loop
// bodies mutate enclosing accumulators directly.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement) object.Object {
	var result object.Object = object.NONE

	for _, statement := range block.Statements {
		result = e.Eval(statement)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

// evalDefStatement materializes the callable for a def and binds it by name
// in the executing frame. A top-level def yields the Function for its
// definition site; a nested def yields a fresh Closure over the frame that is
// executing right now, so each run of the enclosing body mints a distinct
// instance. The nested body is not executed here.
func (e *Evaluator) evalDefStatement(node *ast.DefStatement) object.Object {
	env := e.CurrentEnv()

	var fn object.Object
	if env == e.module {
		fn = &object.Function{
			Name:       node.Name.Value,
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        e.module,
		}
	} else {
		fn = &object.Closure{
			Name:       node.Name.Value,
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
		}
	}

	slog.Debug("def executed",
		slog.String("name", node.Name.Value),
		slog.String("kind", string(fn.Type())))

	env.Set(node.Name.Value, fn)
	return object.NONE
}

// evalForStatement lowers `for i in range(n)`. The loop variable is a single
// binding in the enclosing frame, rebound each iteration, and its final
// binding persists after the loop.
func (e *Evaluator) evalForStatement(node *ast.ForStatement) object.Object {
	iterable := e.Eval(node.Iterable)
	if e.isError(iterable) {
		return iterable
	}

	r, ok := iterable.(*object.Range)
	if !ok {
		return object.NewError(object.TypeError, "'%s' object is not iterable", iterable.Type())
	}

	env := e.CurrentEnv()
	for i := int64(0); i < r.Size; i++ {
		env.Set(node.Loop.Value, &object.Integer{Value: i})

		result := e.Eval(node.Body)
		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return object.NONE
}

// evalAssertStatement fails the run with an AssertionError carrying the
// fixture message when the condition is falsy.
func (e *Evaluator) evalAssertStatement(node *ast.AssertStatement) object.Object {
	condition := e.Eval(node.Condition)
	if e.isError(condition) {
		return condition
	}

	if e.isTruthy(condition) {
		return object.NONE
	}

	message := ""
	if node.Message != nil {
		msg := e.Eval(node.Message)
		if e.isError(msg) {
			return msg
		}
		message = msg.Inspect()
	}
	return object.NewError(object.AssertionError, "%s", message)
}

// evalIdentifier resolves a name through the frame chain, then the ambient
// registries the compiled program links against: builtins, host natives, and
// the exception-type singletons.
func (e *Evaluator) evalIdentifier(node *ast.Identifier) object.Object {
	if val, ok := e.CurrentEnv().Get(node.Value); ok {
		return val
	}

	if builtin, ok := builtins[node.Value]; ok {
		return builtin
	}

	if e.natives != nil {
		if fn, ok := e.natives.Lookup(node.Value); ok {
			return fn
		}
	}

	if et, ok := object.LookupExceptionType(node.Value); ok {
		return et
	}

	return object.NewError(object.NameError, "name '%s' is not defined", node.Value)
}

func (e *Evaluator) evalExpressions(exps []ast.Expression) []object.Object {
	var result []object.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp)
		if e.isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction dispatches a resolved callee. Arguments have already been
// evaluated left-to-right by the caller, so nested calls complete before the
// outer frame exists.
func (e *Evaluator) applyFunction(fnObj object.Object, args []object.Object) object.Object {
	switch fn := fnObj.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return arityError(fn.Name, len(fn.Parameters), len(args))
		}
		e.PushEnv(e.extendFunctionEnv(fn.Env, fn.Parameters, args))
		result := e.Eval(fn.Body)
		e.PopEnv()
		return unwrapReturnValue(result)

	case *object.Closure:
		if len(args) != len(fn.Parameters) {
			return arityError(fn.Name, len(fn.Parameters), len(args))
		}
		e.PushEnv(e.extendFunctionEnv(fn.Env, fn.Parameters, args))
		result := e.Eval(fn.Body)
		e.PopEnv()
		return unwrapReturnValue(result)

	case *object.Native:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return arityError(fn.Name, fn.Arity, len(args))
		}
		return fn.Fn(args...)

	default:
		return object.NewError(object.TypeError, "'%s' object is not callable", fnObj.Type())
	}
}

// extendFunctionEnv creates the callee frame. Its parent is the callee's
// defining environment (module scope for a Function, the captured frame for a
// Closure), never the caller's frame.
func (e *Evaluator) extendFunctionEnv(defEnv *object.Environment, params []*ast.Identifier, args []object.Object) *object.Environment {
	env := object.NewEnclosedEnvironment(defEnv)
	for i, param := range params {
		env.Set(param.Value, args[i])
	}
	return env
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	if obj == nil || obj.Type() == object.ERROR_OBJ {
		return obj
	}
	// A body that falls off the end yields None.
	return object.NONE
}

func arityError(name string, want, got int) *object.Error {
	return object.NewError(object.ArityError,
		"%s() takes %d arguments but %d were given", name, want, got)
}

func (e *Evaluator) evalInfixExpression(operator string, left, right object.Object) object.Object {
	switch operator {
	case "==":
		return object.NativeBoolToBooleanObject(object.Equals(left, right))
	case "!=":
		return object.NativeBoolToBooleanObject(!object.Equals(left, right))
	case "is":
		return object.NativeBoolToBooleanObject(object.SameIdentity(left, right))
	}

	switch {
	case left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ:
		return e.evalIntegerInfixExpression(operator, left, right)
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return e.evalStringInfixExpression(operator, left, right)
	default:
		return object.NewError(object.TypeError,
			"unsupported operand type(s) for %s: '%s' and '%s'",
			operator, left.Type(), right.Type())
	}
}

func (e *Evaluator) evalIntegerInfixExpression(operator string, left, right object.Object) object.Object {
	leftVal := left.(*object.Integer).Value
	rightVal := right.(*object.Integer).Value

	switch operator {
	case "+":
		return &object.Integer{Value: leftVal + rightVal}
	case "-":
		return &object.Integer{Value: leftVal - rightVal}
	case "*":
		return &object.Integer{Value: leftVal * rightVal}
	default:
		return object.NewError(object.TypeError,
			"unsupported operand type(s) for %s: '%s' and '%s'",
			operator, left.Type(), right.Type())
	}
}

func (e *Evaluator) evalStringInfixExpression(operator string, left, right object.Object) object.Object {
	leftVal := left.(*object.String).Value
	rightVal := right.(*object.String).Value

	switch operator {
	case "+":
		return &object.String{Value: leftVal + rightVal}
	default:
		return object.NewError(object.TypeError,
			"unsupported operand type(s) for %s: '%s' and '%s'",
			operator, left.Type(), right.Type())
	}
}

func (e *Evaluator) evalIndexExpression(left, index object.Object) object.Object {
	list, ok := left.(*object.List)
	if !ok {
		return object.NewError(object.TypeError, "'%s' object is not subscriptable", left.Type())
	}
	idx, ok := index.(*object.Integer)
	if !ok {
		return object.NewError(object.TypeError, "list indices must be integers, not '%s'", index.Type())
	}

	if idx.Value < 0 || idx.Value >= int64(len(list.Elements)) {
		return object.NewError(object.IndexError, "list index out of range")
	}

	return list.Elements[idx.Value]
}

// evalMethodCall handles `seq.append(x)`, the only method in the subset.
func (e *Evaluator) evalMethodCall(node *ast.MethodCallExpression) object.Object {
	receiver := e.Eval(node.Receiver)
	if e.isError(receiver) {
		return receiver
	}

	args := e.evalExpressions(node.Arguments)
	if len(args) == 1 && e.isError(args[0]) {
		return args[0]
	}

	if node.Method.Value != "append" {
		return object.NewError(object.TypeError,
			"'%s' object has no method '%s'", receiver.Type(), node.Method.Value)
	}

	list, ok := receiver.(*object.List)
	if !ok {
		return object.NewError(object.TypeError,
			"'%s' object has no method 'append'", receiver.Type())
	}
	if len(args) != 1 {
		return arityError("append", 1, len(args))
	}

	list.Append(args[0])
	return object.NONE
}

// isTruthy follows the source language: zero, the empty string, the empty
// list, an empty range and None are falsy; everything else is truthy.
func (e *Evaluator) isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Boolean:
		return obj.Value
	case *object.None:
		return false
	case *object.Integer:
		return obj.Value != 0
	case *object.String:
		return len(obj.Value) > 0
	case *object.List:
		return len(obj.Elements) > 0
	case *object.Range:
		return obj.Size > 0
	default:
		return true
	}
}

func (e *Evaluator) isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}
