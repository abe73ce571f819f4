package solver

// ClauseRef is a stable, dense, monotonic handle into a ClauseStore. Handles are
// never reused and never shift, so reason[v] can hold one forever.
type ClauseRef int

// ClauseRefNone is the sentinel for "no reason clause" (decision literals, and
// unassigned variables).
const ClauseRefNone ClauseRef = -1

// Clause is an immutable-after-construction disjunction of literals. Learnt marks
// clauses produced by conflict analysis, as opposed to the original problem clauses;
// it never affects propagation or analysis, only bookkeeping/statistics.
type Clause struct {
	lits   []Lit
	learnt bool
}

// Lits returns the clause's literals. Callers must not mutate the returned slice.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Learnt reports whether the clause was derived by conflict analysis.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// ClauseStore owns every clause the solver has ever seen: the original problem
// clauses and every learned clause, appended in the order they were added. Handles
// are indices into a single backing slice, unlike the teacher's split between a
// map-based ClauseAllocator and a duplicate copy of the same type: one store, one
// growth path, no "clause not allocated" panic path required.
type ClauseStore struct {
	clauses []Clause
}

// NewClauseStore returns an empty store.
func NewClauseStore() *ClauseStore {
	return &ClauseStore{}
}

// Add appends a clause with the given literals and returns its handle. The caller
// must have already validated that every literal is nonzero (see InputError).
func (s *ClauseStore) Add(lits []Lit, learnt bool) ClauseRef {
	ref := ClauseRef(len(s.clauses))
	owned := make([]Lit, len(lits))
	copy(owned, lits)
	s.clauses = append(s.clauses, Clause{lits: owned, learnt: learnt})
	return ref
}

// Get returns an immutable view of the clause named by ref.
func (s *ClauseStore) Get(ref ClauseRef) *Clause {
	return &s.clauses[ref]
}

// Count returns the total number of clauses ever added, original and learned.
func (s *ClauseStore) Count() int {
	return len(s.clauses)
}

// All iterates every clause handle in insertion order, original clauses first.
func (s *ClauseStore) All() []ClauseRef {
	refs := make([]ClauseRef, len(s.clauses))
	for i := range refs {
		refs[i] = ClauseRef(i)
	}
	return refs
}
