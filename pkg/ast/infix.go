package ast

// InfixFromPostfix parses a postfix string, simplifies the resulting tree,
// and renders it to infix notation. It is pure and idempotent on its own
// output grammar: rendering an already-rendered infix string back through
// the postfix grammar is not defined, but feeding the same postfix string
// through twice always yields the same string.
func InfixFromPostfix(s string) (string, error) {
	n, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Simplify(n).String(), nil
}
