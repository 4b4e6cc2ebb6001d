// Package calculus implements the two small numerical stages that sit
// between the postfix evaluator and the search driver: a central-difference
// derivative oracle and the sample-set loss check that accepts or rejects a
// candidate.
package calculus

import (
	"math"

	"github.com/symsearch/antideriv/pkg/postfix"
)

// Sample is one (x, f(x)) observation the search verifies candidates
// against.
type Sample struct {
	X, Y float64
}

// h is the central-difference step, the cube root of double epsilon. This
// value balances truncation error (which shrinks with h) against rounding
// error (which grows as h shrinks) for a three-point stencil.
var h = math.Cbrt(math.Nextafter(1, 2) - 1)

// CentralDifference estimates F'(x) for the program compiled into prog,
// evaluated on m, using the two-sided stencil (F(x+h)-F(x-h))/(2h). NaN or
// Inf inputs propagate straight through: this is not an error, it simply
// makes the candidate fail the loss threshold downstream.
func CentralDifference(m *postfix.Machine, prog postfix.CompiledProgram, x float64) float64 {
	return (m.Eval(prog, x+h) - m.Eval(prog, x-h)) / (2 * h)
}

// LossThreshold is the maximum accepted sum of squared residuals.
const LossThreshold = 1e-10

// Loss computes Σ (F'(xᵢ)-yᵢ)² over samples for the program compiled into
// prog. A non-finite term makes the running sum non-finite, which
// Verify's comparison against LossThreshold then correctly rejects.
func Loss(m *postfix.Machine, prog postfix.CompiledProgram, samples []Sample) float64 {
	var loss float64
	for _, s := range samples {
		d := CentralDifference(m, prog, s.X) - s.Y
		loss += d * d
	}
	return loss
}

// Verify reports whether prog's derivative matches every sample within
// LossThreshold. NaN comparisons are always false, so a non-finite loss
// correctly fails here without any special-case branch.
func Verify(m *postfix.Machine, prog postfix.CompiledProgram, samples []Sample) bool {
	return Loss(m, prog, samples) < LossThreshold
}
