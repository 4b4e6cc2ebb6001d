package ast

import "fmt"

var namedFuncOf = map[byte]string{
	'S': "sin",
	'C': "cos",
	'T': "tan",
	'R': "sqrt",
	'L': "log",
}

var variableNames = map[byte]string{
	'x': "x", 'y': "y", 'z': "z", 'a': "a", 'b': "b", 'c': "c",
}

// Parse rebuilds a tree from a postfix string, following the token table:
// literals and variables push, named functions and the unary shorthands
// pop-one-push-one, binary operators pop-two-push-one. An unrecognised byte
// is a programmer error (it cannot occur in a generator-produced string) and
// panics; a string that is syntactically valid but structurally unbalanced
// (stack underflow, or more than one node left at the end) is a regular
// error, since Parse is also reachable from outside the search on
// hand-typed input.
func Parse(s string) (Node, error) {
	var stack []Node

	pop := func() (Node, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("ast: stack underflow parsing %q", s)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '0':
			stack = append(stack, &IntLiteral{Val: 0})
		case c == '1':
			stack = append(stack, &IntLiteral{Val: 1})
		case variableNames[c] != "":
			stack = append(stack, &Variable{Name: variableNames[c]})
		case namedFuncOf[c] != "":
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &NamedFunc{Name: namedFuncOf[c], Arg: arg})
		case c == '+' || c == '-' || c == '*' || c == '/':
			rhs, err := pop()
			if err != nil {
				return nil, err
			}
			lhs, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &BinOp{Op: c, Left: lhs, Right: rhs})
		case c == '\\':
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &BinOp{Op: '/', Left: &IntLiteral{Val: 1}, Right: arg})
		case c == 'H':
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &BinOp{Op: '/', Left: arg, Right: &IntLiteral{Val: 2}})
		case c == '<':
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &BinOp{Op: '-', Left: arg, Right: &IntLiteral{Val: 1}})
		case c == '>':
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &BinOp{Op: '+', Left: arg, Right: &IntLiteral{Val: 1}})
		case c == '2':
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &BinOp{Op: '^', Left: arg, Right: &IntLiteral{Val: 2}})
		case c == '~':
			arg, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Negate{Arg: arg})
		default:
			panic(fmt.Sprintf("ast: unknown token %q at position %d in %q", c, i, s))
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("ast: parse of %q left %d nodes on the stack, want 1", s, len(stack))
	}
	return stack[0], nil
}
