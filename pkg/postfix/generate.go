package postfix

import "github.com/symsearch/antideriv/pkg/rng"

// Generate emits a stack-balanced postfix string using the roof-rule
// algorithm: an actual length is drawn from [2, tentativeLen+1], then each
// position picks a token class biased by the current stack depth so the
// program can never underflow, and a final pass appends binary tokens until
// exactly one value remains. tentativeLen should stay small (the caller
// "typically" keeps it at or below 20) since the post-loop balancing pass
// can extend the string by up to stackSize-1 extra tokens, and the result
// must still fit in MaxLength.
func Generate(g *rng.XorShift32, tentativeLen int) Program {
	length := g.Intn(tentativeLen) + 2

	buf := make([]byte, 0, MaxLength)
	stackSize := 0

	for i := 0; i < length; i++ {
		roof := 3
		if stackSize < 2 {
			roof = stackSize + 1
		}
		choice := g.Intn(roof)

		if i == length-1 {
			if stackSize == 1 {
				choice = 1
			} else {
				choice = 2
			}
		}

		switch choice {
		case 0:
			buf = append(buf, nullaryPool[g.Intn(len(nullaryPool))])
			stackSize++
		case 1:
			buf = append(buf, unaryPool[g.Intn(len(unaryPool))])
		case 2:
			buf = append(buf, binaryPool[g.Intn(len(binaryPool))])
			stackSize--
		}
	}

	for stackSize > 1 {
		buf = append(buf, binaryPool[g.Intn(len(binaryPool))])
		stackSize--
	}

	return Program(buf)
}
