package solver

import "fmt"

// Var is a propositional variable id, 1..=NumVars. VarUndef marks "no variable".
type Var int

// VarUndef is the sentinel for "no variable / no decision".
const VarUndef Var = 0

// Lit is a signed literal over a Var: positive for the variable itself, negative
// for its negation. The zero Lit is never valid; LitUndef is the explicit sentinel.
type Lit int

// LitUndef marks "no literal", used where a decision or trail slot is empty.
const LitUndef Lit = 0

// NewLit builds the positive or negative literal of v.
func NewLit(v Var, negated bool) Lit {
	if negated {
		return Lit(-v)
	}
	return Lit(v)
}

// Var returns the variable underlying a literal.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Negated reports whether l is the negative literal of its variable.
func (l Lit) Negated() bool {
	return l < 0
}

// Flip returns the complementary literal.
func (l Lit) Flip() Lit {
	return -l
}

func (l Lit) String() string {
	if l.Negated() {
		return fmt.Sprintf("-%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}

// Value is a three-valued truth value: the assignment a Var or Lit carries.
type Value uint8

const (
	// Unassigned is the initial state of every variable.
	Unassigned Value = iota
	// True marks a satisfied literal / a variable assigned to true.
	True
	// False marks a falsified literal / a variable assigned to false.
	False
)

// Not negates a three-valued truth value; Unassigned is its own negation.
func (v Value) Not() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Unassigned
	}
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// valueOfBool converts a Go bool assignment into the three-valued domain.
func valueOfBool(b bool) Value {
	if b {
		return True
	}
	return False
}
