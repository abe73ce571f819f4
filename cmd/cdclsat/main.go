// Command cdclsat is the CLI front end around the CDCL kernel in
// internal/solver: it reads a DIMACS CNF file (internal/dimacs), solves it, and
// prints the result in the "SAT\nv <lits> 0" / "UNSAT" format documented in
// SPEC_FULL.md §6. Structurally this mirrors the teacher's own main.go: an
// urfave/cli app with the same flag shapes (input file, verbosity, a CPU time
// limit enforced by a background timer, SIGINT/SIGTERM handling), trimmed to the
// statistics this kernel actually produces.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/togatoga/cdclsat/internal/dimacs"
	"github.com/togatoga/cdclsat/internal/solver"
	"github.com/togatoga/cdclsat/internal/sudoku"
)

func flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "input-file, in",
			Usage: "DIMACS CNF input file (required)",
			Value: "None",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Log a trace line per conflict",
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "Abort and report INDETERMINATE after this many seconds (<=0 disables)",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "sudoku-decode",
			Usage: "Decode the witness as a Sudoku grid using the input's SIZE/MAP/FIXED sidecar comments",
		},
		cli.StringFlag{
			Name:  "result-output-file, out",
			Usage: "Write the result to this file instead of stdout",
		},
	}
}

func validate(c *cli.Context) error {
	if c.String("input-file") == "None" {
		return fmt.Errorf("input-file is required")
	}
	return nil
}

func run(c *cli.Context) error {
	if err := validate(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cli.ShowAppHelpAndExit(c, 2)
	}

	fp, err := os.Open(c.String("input-file"))
	if err != nil {
		return err
	}
	defer fp.Close()

	problem, err := dimacs.Parse(fp)
	if err != nil {
		return err
	}

	out := os.Stdout
	if path := c.String("result-output-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	cfg := solver.DefaultConfig()
	cfg.Verbose = c.Bool("verbose")
	if cfg.Verbose {
		cfg.Logger = log.New(os.Stderr, "cdclsat ", log.Ltime)
	}

	s := solver.NewSolver(cfg)
	s.DeclareNumVars(problem.NumVars)
	for _, lits := range problem.Clauses {
		if _, err := s.AddClause(lits); err != nil {
			return err
		}
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if limit := c.Int("cpu-time-limit"); limit > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(limit)*time.Second)
		defer cancel()
	}
	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := s.SolveContext(ctx)
	if err != nil {
		fmt.Fprintln(out, "INDETERMINATE")
		return nil
	}

	switch result {
	case solver.Sat:
		fmt.Fprintln(out, "SAT")
		printModel(out, s)
		if c.Bool("sudoku-decode") {
			printSudoku(out, problem.Sidecar, s.Assignment())
		}
	case solver.Unsat:
		fmt.Fprintln(out, "UNSAT")
	default:
		fmt.Fprintln(out, "INDETERMINATE")
	}

	if cfg.Verbose {
		stats := s.Statistics()
		fmt.Fprintf(os.Stderr, "c decisions=%d propagations=%d conflicts=%d learned=%d\n",
			stats.Decisions, stats.Propagations, stats.Conflicts, stats.LearnedClauses)
	}
	return nil
}

func printModel(w io.Writer, s *solver.Solver) {
	fmt.Fprint(w, "v ")
	for v := 1; v <= s.NumVars(); v++ {
		lit := solver.NewLit(solver.Var(v), false)
		if s.ValueOf(lit) == solver.True || s.ValueOf(lit) == solver.Unassigned {
			fmt.Fprintf(w, "+%d ", v)
		} else {
			fmt.Fprintf(w, "-%d ", v)
		}
	}
	fmt.Fprintln(w, "0")
}

func printSudoku(w io.Writer, side dimacs.Sidecar, assignment []solver.Value) {
	puzzle, err := sudoku.Decode(side, assignment)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku decode:", err)
		return
	}
	fmt.Fprint(w, puzzle.String())
}

func main() {
	app := cli.NewApp()
	app.Name = "cdclsat"
	app.Usage = "A textbook CDCL SAT solver"
	app.Flags = flags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
