package solver

import "fmt"

// InputError reports a malformed clause: a literal of 0, or a magnitude outside
// 1..=NumVars. It is fatal to the solve in progress and not recoverable by the
// core — the caller (typically the DIMACS front-end or the CLI) decides what to
// do next.
type InputError struct {
	Clause []int // the offending clause as given by the caller, for diagnostics
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("solver: invalid clause %v: %s", e.Clause, e.Reason)
}

// validateClause checks the caller-validation contract documented in the Clause
// Store's Add: every literal nonzero, every magnitude within range. ceiling is
// the solver's declared variable count (DeclareNumVars); 0 means no ceiling was
// declared, so a solver that grows its variable space dynamically from clause
// literals (see AddClause) accepts any nonzero literal.
func validateClause(raw []int, ceiling int) error {
	for _, lit := range raw {
		if lit == 0 {
			return &InputError{Clause: raw, Reason: "literal 0 is reserved as a clause terminator"}
		}
		if ceiling > 0 {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > ceiling {
				return &InputError{Clause: raw, Reason: fmt.Sprintf("variable %d exceeds declared NumVars %d", v, ceiling)}
			}
		}
	}
	return nil
}
