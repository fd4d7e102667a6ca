// Command solve prints the department number combinations for a puzzle.
//
//	solve --numbers 1,2,3,4,5,6,7 --target 12
//	solve --numbers 2,2,3 --target 7 --strategy indexed --json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aristath/deptnumbers/internal/modules/solver"
	"github.com/aristath/deptnumbers/pkg/logger"
)

type options struct {
	numbers  string
	target   int
	strategy string
	random   bool
	asJSON   bool
	verbose  bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find Police, Sanitation and Fire department number assignments",
		Long: `Lists every ordered (Police, Sanitation, Fire) triple drawn from
different positions of the number list, where Police is even and the
three numbers add up to the target.

Numbers outside 1-7 and non-numeric tokens are ignored.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.numbers, "numbers", "n", "1,2,3,4,5,6,7", "comma separated candidate numbers")
	flags.IntVarP(&opts.target, "target", "t", solver.DefaultTarget, "target sum")
	flags.StringVarP(&opts.strategy, "strategy", "s", "", "enumeration strategy (brute-force, indexed)")
	flags.BoolVarP(&opts.random, "random", "r", false, "solve a random puzzle instead")
	flags.BoolVar(&opts.asJSON, "json", false, "print the full result as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print puzzle details and enable debug logging")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Pretty: true, Output: os.Stderr})

	svc := solver.NewService("", nil, log)

	var (
		result *solver.Result
		err    error
	)
	if opts.random {
		result, err = svc.Random(ctx, opts.strategy)
	} else {
		result, err = svc.Solve(ctx, solver.Request{
			Numbers:  opts.numbers,
			Target:   opts.target,
			Strategy: opts.strategy,
		})
	}
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	return printResult(out, result, opts.verbose)
}

// printResult writes the combination list. verbose appends the puzzle
// and timing after the list.
func printResult(out io.Writer, result *solver.Result, verbose bool) error {
	if _, err := fmt.Fprintf(out, "Found %d combinations:\n", len(result.Combinations)); err != nil {
		return err
	}
	for _, c := range result.Combinations {
		if _, err := fmt.Fprintf(out, "[%d, %d, %d]\n", c.Police(), c.Sanitation(), c.Fire()); err != nil {
			return err
		}
	}
	if verbose {
		_, err := fmt.Fprintf(out, "Numbers: %s  Target: %d  Strategy: %s  Time: %.2fms\n",
			result.NumbersText, result.Target, result.Strategy, result.Stats.ExecutionMs)
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if errors.Is(err, solver.ErrNoValidNumbers) {
			fmt.Fprintln(os.Stderr, "Please enter valid numbers between 1-7")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
