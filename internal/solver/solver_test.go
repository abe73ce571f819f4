package solver

import "testing"

func solve(t *testing.T, clauses [][]int) (*Solver, Result) {
	t.Helper()
	s := NewSolver(nil)
	for _, c := range clauses {
		if _, err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %v", c, err)
		}
	}
	return s, s.Solve()
}

// satisfies reports whether every clause has at least one true literal under
// s's current assignment (P1).
func satisfies(s *Solver, clauses [][]int) bool {
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			if s.ValueOf(Lit(lit)) == True {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestEmptyClauseSet(t *testing.T) {
	s, res := solve(t, nil)
	if res != Sat {
		t.Fatalf("empty clause set: got %v, want Sat", res)
	}
	if s.NumVars() != 0 {
		t.Fatalf("empty clause set: NumVars() = %d, want 0", s.NumVars())
	}
}

func TestEmptyClauseIsUnsat(t *testing.T) {
	_, res := solve(t, [][]int{{}})
	if res != Unsat {
		t.Fatalf("clause set containing the empty clause: got %v, want Unsat", res)
	}
}

func TestSingleUnitClause(t *testing.T) {
	s, res := solve(t, [][]int{{1}})
	if res != Sat {
		t.Fatalf("got %v, want Sat", res)
	}
	if s.ValueOf(1) != True {
		t.Fatalf("x1 = %v, want True", s.ValueOf(1))
	}
	if lvl := s.trail.levelOf(1); lvl != 0 {
		t.Fatalf("x1 assigned at level %d, want 0", lvl)
	}
}

func TestContradictoryUnits(t *testing.T) {
	_, res := solve(t, [][]int{{1}, {-1}})
	if res != Unsat {
		t.Fatalf("got %v, want Unsat", res)
	}
}

// S1: the classic 2-variable unsatisfiable XOR-like formula.
func TestS1Unsat(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	_, res := solve(t, clauses)
	if res != Unsat {
		t.Fatalf("S1: got %v, want Unsat", res)
	}
}

// S2: satisfiable, witness must satisfy all three clauses.
func TestS2Sat(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 2}, {1, -2}}
	s, res := solve(t, clauses)
	if res != Sat {
		t.Fatalf("S2: got %v, want Sat", res)
	}
	if !satisfies(s, clauses) {
		t.Fatalf("S2: witness does not satisfy all clauses")
	}
}

// S3: propagation chain forces the whole assignment from one unit fact.
func TestS3PropagationChain(t *testing.T) {
	clauses := [][]int{{1, 2, 3}, {-1, 2}, {-2, 3}, {-3}}
	s, res := solve(t, clauses)
	if res != Sat {
		t.Fatalf("S3: got %v, want Sat", res)
	}
	if !satisfies(s, clauses) {
		t.Fatalf("S3: witness does not satisfy all clauses")
	}
	if s.ValueOf(3) != False || s.ValueOf(2) != False || s.ValueOf(1) != True {
		t.Fatalf("S3: witness x1=%v x2=%v x3=%v, want T,F,F", s.ValueOf(1), s.ValueOf(2), s.ValueOf(3))
	}
}

// S4: pure unit propagation with no decisions at all.
func TestS4PureUnitPropagation(t *testing.T) {
	clauses := [][]int{{1}, {-1, 2}, {-2, 3}, {-3, 4}}
	s, res := solve(t, clauses)
	if res != Sat {
		t.Fatalf("S4: got %v, want Sat", res)
	}
	for v := 1; v <= 4; v++ {
		if s.ValueOf(Lit(v)) != True {
			t.Fatalf("S4: x%d = %v, want True", v, s.ValueOf(Lit(v)))
		}
	}
	if s.trail.len() != 4 {
		t.Fatalf("S4: trail length = %d, want 4", s.trail.len())
	}
	if s.stats.Decisions != 0 {
		t.Fatalf("S4: decisions = %d, want 0", s.stats.Decisions)
	}
}

// S5: pigeonhole PHP(3->2), unsatisfiable. Variables x_{p,h} = pigeon p in hole
// h, p in {1,2,3}, h in {1,2}. var(p,h) = (p-1)*2+h.
func TestS5Pigeonhole(t *testing.T) {
	v := func(p, h int) int { return (p-1)*2 + h }
	var clauses [][]int
	for p := 1; p <= 3; p++ {
		clauses = append(clauses, []int{v(p, 1), v(p, 2)})
	}
	for h := 1; h <= 2; h++ {
		for p1 := 1; p1 <= 3; p1++ {
			for p2 := p1 + 1; p2 <= 3; p2++ {
				clauses = append(clauses, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	if len(clauses) != 3+2*3 {
		t.Fatalf("test setup: got %d clauses, want 9", len(clauses))
	}
	_, res := solve(t, clauses)
	if res != Unsat {
		t.Fatalf("S5 pigeonhole: got %v, want Unsat", res)
	}
}

// S6: under the lowest-id, true-first decision policy, deciding x1=T propagates
// x3=T, x4=T and x2=F without any conflict, so this checks the verdict and the
// witness only; no backtrack takes place.
func TestS6NonChronologicalBacktrack(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-3, 4}, {-2, -4}}
	s, res := solve(t, clauses)
	if res != Sat {
		t.Fatalf("S6: got %v, want Sat", res)
	}
	if !satisfies(s, clauses) {
		t.Fatalf("S6: witness does not satisfy all clauses")
	}
}

// P4/P6 spot check: solving the same instance twice yields the same result and
// the same witness (up to the Unassigned-as-True convention).
func TestDeterminism(t *testing.T) {
	clauses := [][]int{{1, 2, 3}, {-1, 2}, {-2, 3}, {-3, 4}, {4, 5}, {-5, 1}}
	s1, r1 := solve(t, clauses)
	s2, r2 := solve(t, clauses)
	if r1 != r2 {
		t.Fatalf("nondeterministic result: %v vs %v", r1, r2)
	}
	if r1 == Sat {
		for v := 1; v <= s1.NumVars(); v++ {
			a1, a2 := normalize(s1.ValueOf(Lit(v))), normalize(s2.ValueOf(Lit(v)))
			if a1 != a2 {
				t.Fatalf("nondeterministic witness at x%d: %v vs %v", v, a1, a2)
			}
		}
	}
}

func normalize(v Value) Value {
	if v == Unassigned {
		return True
	}
	return v
}

func TestAddClauseRejectsZeroLiteral(t *testing.T) {
	s := NewSolver(nil)
	if _, err := s.AddClause([]int{1, 0, 2}); err == nil {
		t.Fatalf("expected an InputError for an embedded 0 literal")
	}
}

func TestAddClauseRejectsMagnitudeAboveDeclaredNumVars(t *testing.T) {
	s := NewSolver(nil)
	s.DeclareNumVars(3)
	_, err := s.AddClause([]int{1, -4})
	if err == nil {
		t.Fatalf("expected an InputError for a literal magnitude exceeding the declared NumVars")
	}
	if _, ok := err.(*InputError); !ok {
		t.Fatalf("error is %T, want *InputError", err)
	}
	if s.NumVars() != 3 {
		t.Fatalf("a rejected clause must not grow the variable space: NumVars() = %d, want 3", s.NumVars())
	}
}

func TestAddClauseAcceptsMagnitudeAtDeclaredCeiling(t *testing.T) {
	s := NewSolver(nil)
	s.DeclareNumVars(3)
	if _, err := s.AddClause([]int{-3, 2}); err != nil {
		t.Fatalf("AddClause at the declared ceiling: %v", err)
	}
}

func TestAddClauseWithoutDeclaredNumVarsGrowsDynamically(t *testing.T) {
	s := NewSolver(nil)
	if _, err := s.AddClause([]int{1, 5}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if s.NumVars() != 5 {
		t.Fatalf("NumVars() = %d, want 5 (dynamic growth when no ceiling was declared)", s.NumVars())
	}
}

func TestDuplicateAndTautologicalClausesAreAccepted(t *testing.T) {
	// Neither is rejected by AddClause; the core does no simplification beyond
	// the magnitude check (SPEC_FULL.md §6).
	clauses := [][]int{{1, -1}, {1, 1}, {2}}
	s, res := solve(t, clauses)
	if res != Sat {
		t.Fatalf("got %v, want Sat", res)
	}
	if s.ValueOf(2) != True {
		t.Fatalf("x2 = %v, want True", s.ValueOf(2))
	}
}
