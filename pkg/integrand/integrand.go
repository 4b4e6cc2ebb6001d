// Package integrand supplies the named test functions the CLI drives the
// search with. Selecting f and its sample points is explicitly outside the
// core's scope; this registry is the ambient, swappable-by-name mechanism
// that plays that role, mirroring the Register/Get/Names pool pattern the
// core search packages otherwise have no use for.
package integrand

import (
	"fmt"
	"math"

	"github.com/symsearch/antideriv/pkg/calculus"
)

// Integrand is a named real function together with a way to produce sample
// points of its value over an interval.
type Integrand interface {
	Name() string
	F(x float64) float64
	Samples(n int, lo, hi float64) []calculus.Sample
}

var registry = map[string]func() Integrand{}

// Register adds a constructor to the registry under name.
func Register(name string, constructor func() Integrand) {
	registry[name] = constructor
}

// Get looks up a registered integrand by name.
func Get(name string) (Integrand, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("integrand: unknown integrand %q", name)
	}
	return ctor(), nil
}

// Names returns all registered integrand names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

func evenlySpaced(f func(float64) float64, n int, lo, hi float64) []calculus.Sample {
	if n < 2 {
		n = 2
	}
	samples := make([]calculus.Sample, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		samples[i] = calculus.Sample{X: x, Y: f(x)}
	}
	return samples
}

type identity struct{}

func (identity) Name() string        { return "identity" }
func (identity) F(x float64) float64 { return 1 }
func (i identity) Samples(n int, lo, hi float64) []calculus.Sample {
	return evenlySpaced(i.F, n, lo, hi)
}

type square struct{}

func (square) Name() string          { return "square" }
func (square) F(x float64) float64   { return 2 * x }
func (s square) Samples(n int, lo, hi float64) []calculus.Sample {
	return evenlySpaced(s.F, n, lo, hi)
}

type halfSquare struct{}

func (halfSquare) Name() string        { return "halfsquare" }
func (halfSquare) F(x float64) float64 { return x }
func (h halfSquare) Samples(n int, lo, hi float64) []calculus.Sample {
	return evenlySpaced(h.F, n, lo, hi)
}

type sine struct{}

func (sine) Name() string        { return "sin" }
func (sine) F(x float64) float64 { return math.Cos(x) }
func (s sine) Samples(n int, lo, hi float64) []calculus.Sample {
	return evenlySpaced(s.F, n, lo, hi)
}

func init() {
	Register("identity", func() Integrand { return identity{} })
	Register("square", func() Integrand { return square{} })
	Register("halfsquare", func() Integrand { return halfSquare{} })
	Register("sin", func() Integrand { return sine{} })
}
