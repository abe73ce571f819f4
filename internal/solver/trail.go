package solver

// varData is the per-variable bookkeeping the trail protocol maintains: the
// decision level at which the variable was assigned, and the clause that forced
// it (ClauseRefNone for decisions and for unassigned variables).
type varData struct {
	level  int
	reason ClauseRef
}

// trail is the append-only assignment stack plus per-variable state. It owns the
// only mutation path into assignment/level/reason: Assign and UnassignAbove.
type trail struct {
	assigns   []Value    // assigns[v], v is 1-indexed; index 0 unused
	data      []varData  // data[v], parallel to assigns
	seq       []Lit      // the trail itself: assignment order
	levelEnds []int      // levelEnds[l] = index into seq where decision level l+1 begins
	numVars   int
}

func newTrail() *trail {
	return &trail{
		assigns: make([]Value, 1),
		data:    make([]varData, 1),
	}
}

// growTo ensures variable v exists, extending storage with Unassigned slots.
func (t *trail) growTo(v Var) {
	for Var(len(t.assigns)-1) < v {
		t.assigns = append(t.assigns, Unassigned)
		t.data = append(t.data, varData{reason: ClauseRefNone})
		t.numVars++
	}
}

// decisionLevel returns the current decision level (0 = unconditional).
func (t *trail) decisionLevel() int {
	return len(t.levelEnds)
}

// newDecisionLevel opens a fresh decision level.
func (t *trail) newDecisionLevel() {
	t.levelEnds = append(t.levelEnds, len(t.seq))
}

// valueOfVar returns the current three-valued assignment of v.
func (t *trail) valueOfVar(v Var) Value {
	return t.assigns[v]
}

// valueOfLit returns the current three-valued assignment of a literal, accounting
// for polarity.
func (t *trail) valueOfLit(l Lit) Value {
	v := t.assigns[l.Var()]
	if v == Unassigned {
		return Unassigned
	}
	if l.Negated() {
		return v.Not()
	}
	return v
}

// levelOf returns the decision level at which v was assigned. Undefined
// (returns 0) when v is Unassigned.
func (t *trail) levelOf(v Var) int {
	return t.data[v].level
}

// reasonOf returns the clause that forced v, or ClauseRefNone for a decision or
// an unassigned variable.
func (t *trail) reasonOf(v Var) ClauseRef {
	return t.data[v].reason
}

// assign records a new assignment: precondition is that l's variable is
// currently Unassigned. Appends l to the trail in the order it was performed.
func (t *trail) assign(l Lit, level int, reason ClauseRef) {
	v := l.Var()
	t.assigns[v] = valueOfBool(!l.Negated())
	t.data[v] = varData{level: level, reason: reason}
	t.seq = append(t.seq, l)
}

// unassignAbove pops every trail entry whose variable's level is > level,
// clearing assignment/level/reason, and leaves decisionLevel() == level.
func (t *trail) unassignAbove(level int) {
	if t.decisionLevel() <= level {
		return
	}
	cut := t.levelEnds[level]
	for i := len(t.seq) - 1; i >= cut; i-- {
		v := t.seq[i].Var()
		t.assigns[v] = Unassigned
		t.data[v] = varData{reason: ClauseRefNone}
	}
	t.seq = t.seq[:cut]
	t.levelEnds = t.levelEnds[:level]
}

// literals returns the trail's literals in assignment order. Callers must treat
// the result as read-only.
func (t *trail) literals() []Lit {
	return t.seq
}

// len returns the number of currently assigned variables.
func (t *trail) len() int {
	return len(t.seq)
}
