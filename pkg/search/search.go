// Package search implements the concurrent driver: W worker goroutines race
// to find a postfix program whose central-difference derivative matches a
// sample set, coordinating through a single mutex-guarded record rather than
// condition variables or per-attempt synchronisation.
package search

import (
	"math"
	"sync"

	"github.com/symsearch/antideriv/pkg/calculus"
	"github.com/symsearch/antideriv/pkg/postfix"
	"github.com/symsearch/antideriv/pkg/rng"
)

// BatchSize is the number of attempts a worker runs locally, with no
// locking, between synchronisation points.
const BatchSize = 10000

// tentativeLen is the length parameter passed to postfix.Generate. The
// source hardcodes the same value; small tentative lengths keep compiled
// programs well under the 64-token buffer even after the generator's
// balancing pass appends extra binary tokens.
const tentativeLen = 20

// shared is the only state workers communicate through.
type shared struct {
	mu       sync.Mutex
	result   postfix.Program
	attempts uint64
}

// Search spawns workers goroutines, each with an independently
// seeded PRNG drawn from a deterministic secondary generator keyed on seed,
// and returns the first winning postfix.Program (or "" if the budget is
// exhausted first) along with the total number of attempts made across all
// workers. maxAttempts == 0 means unlimited.
func Search(samples []calculus.Sample, seed uint32, workers int, maxAttempts uint64) (postfix.Program, uint64) {
	if workers <= 0 {
		panic("search: workers must be positive")
	}
	if maxAttempts == 0 {
		maxAttempts = math.MaxUint64
	}

	seeder := rng.New(seed)
	workerSeeds := make([]uint32, workers)
	for i := range workerSeeds {
		s := seeder.Next()
		if s == 0 {
			s = 1
		}
		workerSeeds[i] = s
	}

	sh := &shared{}
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(workerSeed uint32) {
			defer wg.Done()
			runWorker(sh, workerSeed, samples, maxAttempts)
		}(workerSeeds[i])
	}
	wg.Wait()

	return sh.result, sh.attempts
}

func runWorker(sh *shared, seed uint32, samples []calculus.Sample, maxAttempts uint64) {
	g := rng.New(seed)
	var machine postfix.Machine
	var prog postfix.CompiledProgram

	for {
		for attempt := 1; attempt <= BatchSize; attempt++ {
			candidate := postfix.Generate(g, tentativeLen)
			prog = postfix.CompileInto(prog, candidate)

			if calculus.Verify(&machine, prog, samples) {
				sh.mu.Lock()
				sh.attempts += uint64(attempt)
				if sh.result == "" {
					sh.result = candidate
				}
				sh.mu.Unlock()
				return
			}
		}

		sh.mu.Lock()
		sh.attempts += BatchSize
		done := sh.result != "" || sh.attempts >= maxAttempts
		sh.mu.Unlock()
		if done {
			return
		}
	}
}
