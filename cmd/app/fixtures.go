package main

import (
	"minipy/internal/ast"
)

// The fixture programs mirror the compiler's conformance suite. The front end
// is not part of this module, so they are expressed directly as the parsed
// statement sequences it would hand over.

type fixture struct {
	name    string
	program *ast.Program
}

func fixtures() []fixture {
	return []fixture{
		{name: "ext_call_basic", program: extCallBasic()},
		{name: "ext_call_for", program: extCallFor()},
		{name: "function_ops", program: functionOps()},
	}
}

func extCallBasic() *ast.Program {
	return program(
		assign("a", call("add_ints", num(10), num(20))),
		assertEq(ident("a"), num(30), "add_ints basic"),

		assign("s", call("concat_strings", str("hello"), str(" world"))),
		assertEq(ident("s"), str("hello world"), "concat_strings basic"),

		assign("nested", call("add_ints", num(1), call("add_ints", num(2), num(3)))),
		assertEq(ident("nested"), num(6), "nested add_ints right"),

		assign("nested3", call("add_ints",
			call("add_ints", num(1), num(2)),
			call("add_ints", num(3), num(4)))),
		assertEq(ident("nested3"), num(10), "nested add_ints both"),

		assign("chained", infix(
			call("add_ints", num(1), num(2)), "+",
			call("add_ints", num(3), num(4)))),
		assertEq(ident("chained"), num(10), "chained add_ints with +"),

		assertStmt(infix(call("add_ints", num(5), num(5)), "==", num(10)),
			"ext call in assert condition"),

		assign("length", call("len", call("concat_strings", str("hello"), str("world")))),
		assertEq(ident("length"), num(10), "len of concat result"),

		assign("items", list(
			call("add_ints", num(1), num(2)),
			call("add_ints", num(3), num(4)))),
		assertEq(index(ident("items"), num(0)), num(3), "ext call in list literal first"),
		assertEq(index(ident("items"), num(1)), num(7), "ext call in list literal second"),
	)
}

func extCallFor() *ast.Program {
	return program(
		assign("total", num(0)),
		forRange("i", num(3),
			assign("total", call("add_ints", ident("total"), num(1)))),
		assertEq(ident("total"), num(3), "ext call accumulator in loop"),

		assign("sum_val", num(0)),
		forRange("i", num(4),
			assign("sum_val", call("add_ints", ident("sum_val"), ident("i")))),
		assertEq(ident("sum_val"), num(6), "ext call with loop var"),

		assign("items", list()),
		forRange("i", num(3),
			exprStmt(methodCall(ident("items"), "append",
				call("add_ints", ident("i"), num(10))))),
		assertEq(index(ident("items"), num(0)), num(10), "ext call list build first"),
		assertEq(index(ident("items"), num(2)), num(12), "ext call list build third"),

		assign("matrix_sum", num(0)),
		forRange("i", num(2),
			forRange("j", num(2),
				assign("matrix_sum", call("add_ints", ident("matrix_sum"),
					call("add_ints", ident("i"), ident("j")))))),
		assertEq(ident("matrix_sum"), num(4), "ext calls in nested loops"),
	)
}

func functionOps() *ast.Program {
	return program(
		def("add", params("a", "b"),
			ret(infix(ident("a"), "+", ident("b")))),
		assertEq(call("add", num(1), num(2)), num(3), "two args"),

		def("nested_basic", params(),
			def("bar", params(), ret(num(1))),
			ret(infix(call("bar"), "+", num(1)))),
		assertEq(call("nested_basic"), num(2), "nested basic"),

		def("eq_test", params(), ret(num(1))),
		def("eq_test2", params(), ret(num(1))),
		assertEq(ident("eq_test"), ident("eq_test"), "function equals itself"),
		assertStmt(not(infix(ident("eq_test"), "==", ident("eq_test2"))),
			"different functions not equal"),
		assign("f_alias", ident("eq_test")),
		assertEq(ident("f_alias"), ident("eq_test"), "function alias equals original"),

		assertEq(ident("len"), ident("len"), "builtin equals itself"),
		assertStmt(infix(ident("len"), "is", ident("len")), "len is len"),
		assertStmt(not(infix(ident("len"), "==", ident("print"))),
			"different builtins not equal"),

		assertEq(ident("ValueError"), ident("ValueError"), "exc type equals itself"),
		assertStmt(not(infix(ident("ValueError"), "==", ident("TypeError"))),
			"different exc types not equal"),

		def("make_adder", params("n"),
			def("adder", params("x"), ret(infix(ident("x"), "+", ident("n")))),
			ret(ident("adder"))),
		assign("add1", call("make_adder", num(1))),
		assign("add1_again", call("make_adder", num(1))),
		assertEq(ident("add1"), ident("add1"), "closure equals itself"),
		assertStmt(not(infix(ident("add1"), "==", ident("add1_again"))),
			"different closure instances not equal"),
		assertEq(call2(ident("add1"), num(41)), num(42), "closure call"),

		assertStmt(not(infix(ident("len"), "==", num(1))),
			"builtin not equal to int"),
		assertStmt(not(infix(ident("eq_test"), "==", none())),
			"function not equal to None"),
	)
}

// --- AST construction helpers ---

func program(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Statements: stmts}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Value: name}
}

func num(v int64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Value: v}
}

func str(v string) *ast.StringLiteral {
	return &ast.StringLiteral{Value: v}
}

func none() *ast.NoneLiteral {
	return &ast.NoneLiteral{}
}

func list(elements ...ast.Expression) *ast.ListLiteral {
	return &ast.ListLiteral{Elements: elements}
}

func index(left, idx ast.Expression) *ast.IndexExpression {
	return &ast.IndexExpression{Left: left, Index: idx}
}

func infix(left ast.Expression, op string, right ast.Expression) *ast.InfixExpression {
	return &ast.InfixExpression{Left: left, Operator: op, Right: right}
}

func not(value ast.Expression) *ast.NotExpression {
	return &ast.NotExpression{Value: value}
}

func call(fn string, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Function: ident(fn), Arguments: args}
}

func call2(fn ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Function: fn, Arguments: args}
}

func methodCall(recv ast.Expression, method string, args ...ast.Expression) *ast.MethodCallExpression {
	return &ast.MethodCallExpression{Receiver: recv, Method: ident(method), Arguments: args}
}

func assign(name string, value ast.Expression) *ast.AssignStatement {
	return &ast.AssignStatement{Name: ident(name), Value: value}
}

func exprStmt(exp ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: exp}
}

func assertStmt(cond ast.Expression, message string) *ast.AssertStatement {
	return &ast.AssertStatement{Condition: cond, Message: str(message)}
}

func assertEq(left, right ast.Expression, message string) *ast.AssertStatement {
	return assertStmt(infix(left, "==", right), message)
}

func params(names ...string) []*ast.Identifier {
	result := make([]*ast.Identifier, 0, len(names))
	for _, name := range names {
		result = append(result, ident(name))
	}
	return result
}

func def(name string, parameters []*ast.Identifier, body ...ast.Statement) *ast.DefStatement {
	return &ast.DefStatement{
		Name:       ident(name),
		Parameters: parameters,
		Body:       &ast.BlockStatement{Statements: body},
	}
}

func ret(value ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{ReturnValue: value}
}

func forRange(loop string, n ast.Expression, body ...ast.Statement) *ast.ForStatement {
	return &ast.ForStatement{
		Loop:     ident(loop),
		Iterable: call("range", n),
		Body:     &ast.BlockStatement{Statements: body},
	}
}
