package solver

import (
	"reflect"
	"testing"
)

// TestAnalyzeFirstUIP drives the trail and clause store by hand to exercise
// analyze() in isolation, independent of the decide/propagate loop. The
// scenario: x1 is a level-1 decision, forces x2 via c1; x3 is a level-2
// decision, forces x4 via c2; c3 then falsifies with both x3 and x4 at the
// current level, so First-UIP resolves through c2 once and stops at x3 (the
// decision itself, the only remaining current-level literal).
func TestAnalyzeFirstUIP(t *testing.T) {
	s := NewSolver(nil)
	s.Grow(4)

	c1 := s.clauses.Add([]Lit{-1, 2}, false)
	c2 := s.clauses.Add([]Lit{-2, -3, 4}, false)
	c3 := s.clauses.Add([]Lit{-4, -3}, false)

	s.trail.newDecisionLevel()
	s.trail.assign(NewLit(1, false), 1, ClauseRefNone)
	s.trail.assign(NewLit(2, false), 1, c1)

	s.trail.newDecisionLevel()
	s.trail.assign(NewLit(3, false), 2, ClauseRefNone)
	s.trail.assign(NewLit(4, false), 2, c2)

	learned, backtrackLevel := s.analyze(c3)

	wantLearned := []Lit{-3, -2}
	if !reflect.DeepEqual(learned, wantLearned) {
		t.Fatalf("learned = %v, want %v", learned, wantLearned)
	}
	if backtrackLevel != 1 {
		t.Fatalf("backtrackLevel = %d, want 1", backtrackLevel)
	}
}

func TestAnalyzePanicsAtDecisionLevel0(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when analyzing at decision level 0")
		}
	}()
	s := NewSolver(nil)
	s.Grow(2)
	ref := s.clauses.Add([]Lit{1, 2}, false)
	s.analyze(ref)
}

func TestAnalyzerSeenIsGenerationScoped(t *testing.T) {
	a := newAnalyzer()
	a.growTo(3)
	a.generation = 1
	a.mark(2)
	if !a.seen(2) {
		t.Fatalf("expected var 2 to be seen in generation 1")
	}
	a.generation = 2
	if a.seen(2) {
		t.Fatalf("a bump in generation should invalidate marks from the previous generation")
	}
}
