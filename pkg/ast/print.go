package ast

// renderBinOp implements the BinOp contract: render both sides, then
// parenthesise the left side when it is a lower-precedence BinOp, and the
// right side under that same rule or when op is non-associative (- or /)
// and the right side is a BinOp with that same operator symbol.
func renderBinOp(n *BinOp) string {
	lStr := n.Left.String()
	rStr := n.Right.String()

	if lb, ok := isBinOp(n.Left); ok && precedenceOf(lb.Op) < precedenceOf(n.Op) {
		lStr = "(" + lStr + ")"
	}

	parenRight := false
	if rb, ok := isBinOp(n.Right); ok {
		if precedenceOf(rb.Op) < precedenceOf(n.Op) {
			parenRight = true
		} else if (n.Op == '-' || n.Op == '/') && rb.Op == n.Op {
			parenRight = true
		}
	}
	if parenRight {
		rStr = "(" + rStr + ")"
	}

	return lStr + " " + string(n.Op) + " " + rStr
}

// renderNegate implements the Negate contract: parenthesise the operand
// only when it is itself a BinOp.
func renderNegate(n *Negate) string {
	argStr := n.Arg.String()
	if _, ok := isBinOp(n.Arg); ok {
		return "-(" + argStr + ")"
	}
	return "-" + argStr
}
