package solver

// propagate drives the current partial assignment to a fixed point by repeatedly
// scanning every clause in the store, exactly as the textbook CDCL kernel
// specifies: no watch lists, no incremental bookkeeping of which clauses could
// possibly have changed. This is the deliberate divergence from the teacher's own
// two-literal-watching Propagate: correctness and clarity over throughput.
//
// It returns (ref, true) naming a falsified clause on conflict, or (_, false)
// once a full sweep makes no assignment (the fixed point, invariant I4).
func (s *Solver) propagate() (ClauseRef, bool) {
	for {
		changed := false
		for i := 0; i < s.clauses.Count(); i++ {
			ref := ClauseRef(i)
			c := s.clauses.Get(ref)

			satisfied := false
			unassignedCount := 0
			var lastUnassigned Lit
			for _, lit := range c.Lits() {
				switch s.trail.valueOfLit(lit) {
				case True:
					satisfied = true
				case Unassigned:
					unassignedCount++
					lastUnassigned = lit
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			s.stats.Propagations++
			switch unassignedCount {
			case 0:
				return ref, true
			case 1:
				s.trail.assign(lastUnassigned, s.trail.decisionLevel(), ref)
				changed = true
			}
		}
		if !changed {
			return ClauseRefNone, false
		}
	}
}
