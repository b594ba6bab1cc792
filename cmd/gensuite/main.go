// Package main provides the CLI entry point for gensuite, a π digit
// generator, prime lister, and CPU micro-benchmark runner.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/gensuite/harness"
	"github.com/weiihann/gensuite/pi"
	"github.com/weiihann/gensuite/report"
	"github.com/weiihann/gensuite/sieve"
	"github.com/weiihann/gensuite/workload"
)

const (
	defaultDigits  = 50
	defaultCount   = 15
	defaultSeconds = 60

	maxSeconds = uint64(math.MaxInt64 / int64(time.Second))
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gensuite",
		Short: "π digits, prime lists, and CPU micro-benchmarks",
		Long: `Gensuite computes π to an arbitrary number of digits, lists the
first primes, and runs CPU micro-benchmarks (matrix multiply, big-integer
multiply, prime sieve) that sample throughput once per second.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every sampling window")

	root.AddCommand(
		newPiCmd(logger),
		newPrimesCmd(logger),
		newBenchCmd(logger),
	)

	// Single-workload shortcuts.
	for _, name := range []string{"matmul", "bigint", "sieve"} {
		root.AddCommand(newBenchAliasCmd(logger, name))
	}

	return root
}

func newPiCmd(logger *slog.Logger) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "pi [digits]",
		Short: "Print π to the given number of decimal digits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := pi.Backends()[backend]
			if !ok {
				return fmt.Errorf("unknown backend %q", backend)
			}

			digits := uint32(argOr(cmd.Context(), logger, args, "digits",
				defaultDigits, 32))

			s, err := pi.ComputeWith(b, digits)
			if err != nil {
				return fmt.Errorf("compute pi: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)

			return err
		},
	}

	cmd.Flags().StringVar(&backend, "backend", pi.Big.Name(),
		"Integer backend: big, u256 (at most 70 digits)")

	return cmd
}

func newPrimesCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "primes [count]",
		Short: "Print the first primes, comma separated",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := int(argOr(cmd.Context(), logger, args, "count",
				defaultCount, 31))

			primes := sieve.Generate(count)
			parts := make([]string, len(primes))

			for i, p := range primes {
				parts[i] = strconv.Itoa(p)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ", "))

			return err
		},
	}
}

type benchConfig struct {
	workloads  []string
	seconds    uint64
	window     time.Duration
	outputJSON bool
}

func newBenchCmd(logger *slog.Logger) *cobra.Command {
	var (
		window     time.Duration
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "bench <workload|all> [seconds]",
		Short: "Run a CPU micro-benchmark",
		Long: fmt.Sprintf(`Run a workload repeatedly for the given number of seconds
(default %d), sampling throughput once per window.

Workloads: %s, or "all" to run each in turn.`,
			defaultSeconds, strings.Join(workload.Names(), ", ")),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{args[0]}
			if args[0] == "all" {
				names = workload.Names()
			}

			return runBench(cmd, logger, benchConfig{
				workloads:  names,
				seconds:    argOr(cmd.Context(), logger, args[1:], "seconds", defaultSeconds, 63),
				window:     window,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&window, "window", harness.DefaultWindow,
		"Length of each sampling window")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of text")

	return cmd
}

func newBenchAliasCmd(logger *slog.Logger, name string) *cobra.Command {
	return &cobra.Command{
		Use:   "bench-" + name + " [seconds]",
		Short: fmt.Sprintf("Run the %s benchmark", name),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, logger, benchConfig{
				workloads: []string{name},
				seconds:   argOr(cmd.Context(), logger, args, "seconds", defaultSeconds, 63),
				window:    harness.DefaultWindow,
			})
		},
	}
}

func runBench(cmd *cobra.Command, logger *slog.Logger, cfg benchConfig) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	results := make([]harness.Result, 0, len(cfg.workloads))

	for _, name := range cfg.workloads {
		w, err := workload.New(name)
		if err != nil {
			return fmt.Errorf("build workload: %w", err)
		}

		runner := harness.NewRunner(w, logger)
		result, err := runner.Run(ctx, harness.RunConfig{
			Duration: time.Duration(min(cfg.seconds, maxSeconds)) * time.Second,
			Window:   cfg.window,
		})
		if err != nil {
			return fmt.Errorf("run %s: %w", name, err)
		}

		results = append(results, *result)
	}

	if cfg.outputJSON {
		if err := report.GenerateJSON(out, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}

		return nil
	}

	if len(results) > 1 {
		if err := report.Generate(out, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}

		return nil
	}

	if err := report.Text(out, &results[0]); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// argOr parses args[0] as an unsigned integer of the given bit size,
// falling back to def when it is absent or malformed.
func argOr(
	ctx context.Context,
	logger *slog.Logger,
	args []string,
	name string,
	def uint64,
	bitSize int,
) uint64 {
	if len(args) == 0 {
		return def
	}

	v, err := strconv.ParseUint(args[0], 10, bitSize)
	if err != nil {
		logger.WarnContext(ctx, "invalid argument, using default",
			slog.String("arg", name),
			slog.String("value", args[0]),
			slog.Uint64("default", def),
		)

		return def
	}

	return v
}
