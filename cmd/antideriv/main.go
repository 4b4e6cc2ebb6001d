// Command antideriv is the CLI entry point for the search engine: it wires
// sample points (either a named integrand or an explicit list) and a few
// run parameters into pkg/search, then prints the winning postfix program
// and its infix rendering.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/symsearch/antideriv/pkg/calculus"
	"github.com/symsearch/antideriv/pkg/integrand"
	"github.com/symsearch/antideriv/pkg/search"
)

// Config holds every parameter a search run needs, generalising the
// reference CLI's flat flag-bound Config struct to a cobra command's flag set.
type Config struct {
	Integrand   string
	SamplesArg  string
	Lo, Hi      float64
	NumSamples  int
	Seed        uint32
	Workers     int
	MaxAttempts uint64
	Format      string
}

// DefaultConfig returns sensible defaults for an interactive run.
func DefaultConfig() Config {
	return Config{
		Integrand:   "halfsquare",
		Lo:          0.2,
		Hi:          2.0,
		NumSamples:  5,
		Seed:        1,
		Workers:     runtime.NumCPU(),
		MaxAttempts: 0,
		Format:      "text",
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:           "antideriv",
		Short:         "Search for a symbolic antiderivative matching sample points",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Integrand, "integrand", cfg.Integrand, "named integrand to target ("+strings.Join(integrand.Names(), ", ")+")")
	flags.StringVar(&cfg.SamplesArg, "samples", cfg.SamplesArg, "explicit samples as x:y,x:y,... (overrides --integrand)")
	flags.Float64Var(&cfg.Lo, "lo", cfg.Lo, "lower bound for generated samples")
	flags.Float64Var(&cfg.Hi, "hi", cfg.Hi, "upper bound for generated samples")
	flags.IntVar(&cfg.NumSamples, "num-samples", cfg.NumSamples, "number of generated samples")
	flags.Uint32Var(&cfg.Seed, "seed", cfg.Seed, "master PRNG seed (must be non-zero)")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of search workers")
	flags.Uint64Var(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "attempt budget (0 = unlimited)")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")

	return cmd
}

func run(cmd *cobra.Command, cfg Config) error {
	samples, err := resolveSamples(cfg)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		return fmt.Errorf("--seed must be non-zero")
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be positive")
	}

	raw, attempts := search.Search(samples, cfg.Seed, cfg.Workers, cfg.MaxAttempts)
	report, err := search.NewReport(raw, attempts)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		return search.WriteJSON(cmd.OutOrStdout(), report)
	default:
		return search.WriteText(cmd.OutOrStdout(), report)
	}
}

func resolveSamples(cfg Config) ([]calculus.Sample, error) {
	if cfg.SamplesArg != "" {
		return parseSamples(cfg.SamplesArg)
	}
	ig, err := integrand.Get(cfg.Integrand)
	if err != nil {
		return nil, err
	}
	return ig.Samples(cfg.NumSamples, cfg.Lo, cfg.Hi), nil
}

func parseSamples(arg string) ([]calculus.Sample, error) {
	parts := strings.Split(arg, ",")
	samples := make([]calculus.Sample, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		xy := strings.SplitN(p, ":", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("malformed sample %q, want x:y", p)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed sample x in %q: %w", p, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed sample y in %q: %w", p, err)
		}
		samples = append(samples, calculus.Sample{X: x, Y: y})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples provided")
	}
	return samples, nil
}
