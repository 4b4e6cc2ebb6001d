package postfix

import "fmt"

// opcode is the dense operation handle a compiled program is made of. Using
// a small integer enum dispatched through a switch in Machine.Eval, rather
// than a table of function pointers, keeps the hot loop branch-predictor
// friendly and allocation-free.
type opcode uint8

const (
	opZero opcode = iota
	opOne
	opVar
	opRecip
	opNeg
	opInc
	opDec
	opSin
	opCos
	opTan
	opSquare
	opSqrt
	opLn
	opHalf
	opAdd
	opSub
	opMul
	opDiv
)

var opcodeTable = [256]struct {
	op opcode
	ok bool
}{}

func init() {
	set := func(t Token, op opcode) { opcodeTable[t] = struct {
		op opcode
		ok bool
	}{op, true} }

	set(TokZero, opZero)
	set(TokOne, opOne)
	set(TokVar, opVar)
	set(TokRecip, opRecip)
	set(TokNeg, opNeg)
	set(TokInc, opInc)
	set(TokDec, opDec)
	set(TokSin, opSin)
	set(TokCos, opCos)
	set(TokTan, opTan)
	set(TokSquare, opSquare)
	set(TokSqrt, opSqrt)
	set(TokLn, opLn)
	set(TokHalf, opHalf)
	set(TokAdd, opAdd)
	set(TokSub, opSub)
	set(TokMul, opMul)
	set(TokDiv, opDiv)
}

// CompiledProgram is a dense sequence of opcodes, one per source token, with
// the same length as the string it was compiled from.
type CompiledProgram []opcode

// Compile maps a postfix string to its compiled opcode sequence. An unknown
// byte is a programmer error: no string the generator emits can contain one,
// so any occurrence means a caller fed Compile something outside the
// grammar, and Compile panics rather than return a recoverable error.
func Compile(p Program) CompiledProgram {
	prog := make(CompiledProgram, len(p))
	for i := 0; i < len(p); i++ {
		entry := opcodeTable[p[i]]
		if !entry.ok {
			panic(fmt.Sprintf("postfix: unknown token %q at position %d in %q", p[i], i, p))
		}
		prog[i] = entry.op
	}
	return prog
}

// CompileInto reuses dst's backing array when it has enough capacity,
// avoiding an allocation per attempt in the search's hot loop.
func CompileInto(dst CompiledProgram, p Program) CompiledProgram {
	if cap(dst) < len(p) {
		dst = make(CompiledProgram, len(p))
	} else {
		dst = dst[:len(p)]
	}
	for i := 0; i < len(p); i++ {
		entry := opcodeTable[p[i]]
		if !entry.ok {
			panic(fmt.Sprintf("postfix: unknown token %q at position %d in %q", p[i], i, p))
		}
		dst[i] = entry.op
	}
	return dst
}
