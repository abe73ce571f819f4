package solver

import "fmt"

// analyzer holds the scratch state First-UIP resolution reuses across conflicts:
// a generation-stamped "seen" marker. Bumping generation instead of reallocating
// and zeroing a []bool per conflict avoids an O(NumVars) clear on every call —
// a marker is considered set iff its stamp equals the current generation.
type analyzer struct {
	stamp      []int
	generation int
}

func newAnalyzer() *analyzer {
	return &analyzer{stamp: make([]int, 1)}
}

func (a *analyzer) growTo(v Var) {
	for Var(len(a.stamp)-1) < v {
		a.stamp = append(a.stamp, 0)
	}
}

func (a *analyzer) seen(v Var) bool  { return a.stamp[v] == a.generation }
func (a *analyzer) mark(v Var)       { a.stamp[v] = a.generation }
func (a *analyzer) unmark(v Var)     { a.stamp[v] = a.generation - 1 }

// analyze implements First-UIP conflict analysis: starting from a falsified
// clause, it resolves backward through reason clauses along the trail until
// exactly one literal at the current decision level remains seen. That literal
// is the asserting literal of the returned learned clause (placed at index 0);
// the returned backtrack level is the highest level among the clause's other
// literals, or 0 if there are none (the clause is unit).
//
// Precondition: s.trail.decisionLevel() > 0 and conflict names a falsified
// clause — the search driver must treat a level-0 conflict as UNSAT and never
// call analyze. Violating either precondition is an internal-consistency bug,
// not a reportable input error, so it panics rather than returning an error.
func (s *Solver) analyze(conflict ClauseRef) (learned []Lit, backtrackLevel int) {
	currentLevel := s.trail.decisionLevel()
	if currentLevel == 0 {
		panic("solver: analyze called at decision level 0")
	}

	a := s.analyzer
	a.generation++
	a.growTo(Var(len(s.trail.assigns) - 1))

	counter := 0
	learned = append(learned, LitUndef) // reserved for the asserting literal

	mark := func(lit Lit) {
		v := lit.Var()
		if a.seen(v) {
			return
		}
		a.mark(v)
		if s.trail.levelOf(v) == currentLevel {
			counter++
		} else {
			// lit is a literal of a falsified clause (invariant I2): it is
			// already the negation of v's trail polarity, so it belongs in
			// the learned clause unflipped.
			learned = append(learned, lit)
		}
	}

	for _, lit := range s.clauses.Get(conflict).Lits() {
		mark(lit)
	}

	trailIdx := len(s.trail.seq) - 1
	var uip Lit
	for counter > 0 {
		var p Lit
		for {
			p = s.trail.seq[trailIdx]
			trailIdx--
			if a.seen(p.Var()) {
				break
			}
		}
		v := p.Var()
		a.unmark(v)
		counter--
		if counter == 0 {
			uip = p
			break
		}

		reason := s.trail.reasonOf(v)
		if reason == ClauseRefNone {
			// A decision literal has no reason to resolve through. On a
			// well-formed trail this can only be the sole remaining
			// current-level literal, i.e. counter would already be 0 above —
			// reaching here with counter > 0 means more than one current-level
			// literal was left unresolved with nothing left to resolve
			// through, which cannot happen (see the resolved Open Question on
			// decision literals in SPEC_FULL.md).
			panic(fmt.Sprintf("solver: reached decision variable %d mid-resolution with counter=%d", v, counter))
		}
		for _, lit := range s.clauses.Get(reason).Lits() {
			if lit.Var() == v {
				continue // the literal resolution cancels away
			}
			mark(lit)
		}
	}

	learned[0] = uip.Flip()

	backtrackLevel = 0
	for _, lit := range learned[1:] {
		if lv := s.trail.levelOf(lit.Var()); lv > backtrackLevel {
			backtrackLevel = lv
		}
	}
	return learned, backtrackLevel
}
