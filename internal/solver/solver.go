// Package solver implements a textbook Conflict-Driven Clause Learning (CDCL)
// decision procedure for Boolean satisfiability: linear-scan propagation,
// lowest-unassigned-variable decisions, First-UIP conflict analysis, and
// non-chronological backtracking. Learned clauses are retained forever; there
// are no watched literals, no activity heuristics, no restarts, and no clause
// deletion — see SPEC_FULL.md for the Non-goals this deliberately leaves out.
package solver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/k0kubun/pp"
)

// Result is the observable outcome of a solve.
type Result int

const (
	// Unknown is returned only by SolveContext, when cancelled before a
	// definite answer was reached.
	Unknown Result = iota
	Sat
	Unsat
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Solver owns every piece of mutable state the CDCL kernel touches: the clause
// store, the trail/assignment, and the analyzer's scratch buffers. It is not
// safe for concurrent use — see SPEC_FULL.md §5.
type Solver struct {
	cfg             *Config
	clauses         *ClauseStore
	trail           *trail
	analyzer        *analyzer
	ok              bool // false once an empty clause has been derived; solve is moot
	stats           Statistics
	declaredNumVars int // 0 = undeclared; variable space grows dynamically from clause literals
}

// NewSolver returns an empty solver (no variables, no clauses) configured by
// cfg. A nil cfg is equivalent to DefaultConfig().
func NewSolver(cfg *Config) *Solver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Solver{
		cfg:      cfg,
		clauses:  NewClauseStore(),
		trail:    newTrail(),
		analyzer: newAnalyzer(),
		ok:       true,
	}
}

// NumVars returns the highest variable id introduced so far, either by an
// explicit Grow or implicitly by AddClause.
func (s *Solver) NumVars() int {
	return s.trail.numVars
}

// Grow ensures variables 1..=n exist, pre-sizing internal storage. Safe to call
// with n <= NumVars() (a no-op then).
func (s *Solver) Grow(n int) {
	s.trail.growTo(Var(n))
	s.analyzer.growTo(Var(n))
}

// DeclareNumVars fixes the solver's variable ceiling at n, as reported by a
// DIMACS header's declared variable count (SPEC_FULL.md §6). Once declared,
// AddClause rejects any literal whose magnitude exceeds n with an *InputError
// instead of silently growing past it — this is the "magnitude > NumVars"
// input violation SPEC_FULL.md §7 and InputError's own doc comment describe. A
// solver that never calls DeclareNumVars keeps the prior dynamic-growth
// behavior (its variable space grows to fit whatever literals AddClause sees),
// which existing callers that build clause sets without a DIMACS header still
// rely on.
func (s *Solver) DeclareNumVars(n int) {
	s.declaredNumVars = n
	s.Grow(n)
}

// AddClause validates and stores an original problem clause given as signed,
// nonzero integers (the DIMACS convention). If DeclareNumVars was called, a
// literal whose magnitude exceeds the declared ceiling is rejected with an
// *InputError; otherwise the variable space grows to cover the clause's
// literals. Also returns an *InputError if any literal is 0.
//
// A clause containing a literal whose current value is already False at level 0
// is not simplified away here — that is the propagator's job on the next
// Propagate() call, keeping AddClause a pure, order-independent ingestion step
// matching the "core performs no validation beyond magnitude check" contract in
// SPEC_FULL.md §6.
func (s *Solver) AddClause(raw []int) (ClauseRef, error) {
	if err := validateClause(raw, s.declaredNumVars); err != nil {
		return ClauseRefNone, err
	}
	if len(raw) == 0 {
		// The empty clause is never stored; it means UNSAT outright.
		s.ok = false
		return ClauseRefNone, nil
	}
	lits := make([]Lit, len(raw))
	maxVar := Var(0)
	for i, x := range raw {
		v := Var(x)
		if v < 0 {
			v = -v
		}
		if v > maxVar {
			maxVar = v
		}
		lits[i] = Lit(x)
	}
	s.Grow(int(maxVar))
	ref := s.clauses.Add(lits, false)
	return ref, nil
}

// Assignment returns the current value of every variable, 1-indexed (index 0 is
// unused). Only meaningful after Solve/SolveContext returns Sat; by convention,
// a variable that never entered the trail is reported Unassigned here, and
// presentation layers (internal/sudoku, cmd/cdclsat) treat that as True — see
// the documented convention in SPEC_FULL.md §9.
func (s *Solver) Assignment() []Value {
	out := make([]Value, len(s.trail.assigns))
	copy(out, s.trail.assigns)
	return out
}

// ValueOf reports the current three-valued assignment of a literal.
func (s *Solver) ValueOf(lit Lit) Value {
	return s.trail.valueOfLit(lit)
}

// Statistics returns a snapshot of the solve's counters.
func (s *Solver) Statistics() Statistics {
	return s.stats
}

// Solve runs the CDCL loop to completion: decide, propagate, analyze and
// backtrack on conflict, repeat until the trail is complete (Sat) or a
// top-level conflict is derived (Unsat). It never blocks or yields; see
// SolveContext for a cancellable variant.
func (s *Solver) Solve() Result {
	res, _ := s.solve(context.Background())
	return res
}

// SolveContext behaves like Solve but checks ctx between iterations of the main
// loop — the one safe suspension point identified in SPEC_FULL.md §5 — and
// returns (Unknown, ctx.Err()) if it was cancelled or timed out before a
// definite answer was reached. Each invocation is stamped with a fresh run id
// (visible in verbose trace output) so that concurrent or repeated invocations
// against different inputs can be told apart in captured logs.
func (s *Solver) SolveContext(ctx context.Context) (Result, error) {
	return s.solve(ctx)
}

func (s *Solver) solve(ctx context.Context) (Result, error) {
	runID := uuid.New()
	log := s.cfg.logger()

	if !s.ok {
		log.Printf("run=%s solve: empty clause already derived, UNSAT", runID)
		return Unsat, nil
	}

	iterations := 0
	for {
		iterations++
		if ctx.Err() != nil && shouldCheckCancel(s.cfg, iterations) {
			return Unknown, ctx.Err()
		}

		conflict, found := s.propagate()
		if found {
			s.stats.Conflicts++
			if s.trail.decisionLevel() == 0 {
				log.Printf("run=%s solve: level-0 conflict on clause %d, UNSAT", runID, conflict)
				return Unsat, nil
			}

			learned, backtrackLevel := s.analyze(conflict)
			if s.cfg.Verbose {
				log.Printf("run=%s conflict: %s", runID, pp.Sprint(learned))
			}

			s.clauses.Add(learned, true)
			s.stats.LearnedClauses++
			s.trail.unassignAbove(backtrackLevel)
			// The freshly learned clause is unit under the rewound
			// assignment (invariant I5); the next Propagate() call picks it
			// up through the ordinary unit-propagation path and assigns its
			// asserting literal with the clause itself as reason. No special
			// casing here — this is exactly what the plain-C reference and
			// SPEC_FULL.md §4.5 do.
			continue
		}

		v := s.pickDecisionVar()
		if v == VarUndef {
			return Sat, nil
		}
		s.stats.Decisions++
		s.trail.newDecisionLevel()
		s.trail.assign(NewLit(v, false), s.trail.decisionLevel(), ClauseRefNone)
	}
}

func shouldCheckCancel(cfg *Config, iterations int) bool {
	every := cfg.CancelCheckEvery
	if every <= 0 {
		return true
	}
	return iterations%every == 0
}

// pickDecisionVar returns the lowest-id currently Unassigned variable, or
// VarUndef if every variable is assigned. This is the "deterministic and
// complete" policy SPEC_FULL.md §4.5 specifies in place of any activity
// heuristic (the teacher's VSIDS Heap is a dropped Non-goal, see DESIGN.md).
func (s *Solver) pickDecisionVar() Var {
	for v := Var(1); int(v) < len(s.trail.assigns); v++ {
		if s.trail.valueOfVar(v) == Unassigned {
			return v
		}
	}
	return VarUndef
}

// String renders a short human-readable summary, useful in verbose/debug output.
func (s *Solver) String() string {
	return fmt.Sprintf("Solver{vars=%d clauses=%d trail=%d level=%d}",
		s.NumVars(), s.clauses.Count(), s.trail.len(), s.trail.decisionLevel())
}
