package sudoku

import (
	"fmt"

	"github.com/togatoga/cdclsat/internal/dimacs"
	"github.com/togatoga/cdclsat/internal/solver"
)

// Decode turns a solver witness back into a grid using the SIZE/MAP/FIXED
// sidecar comments internal/dimacs recognized. It never inspects any solver
// invariant beyond the documented witness contract (Assignment()) — see
// SPEC_FULL.md §6. Grounded on original_source/CDCL/cdcl_implementation.c's
// decode_and_print_sudoku, generalized from that function's "derive the grid
// coordinates by arithmetic on a fixed variable ordering" approach to the
// sidecar-driven mapping SPEC_FULL.md specifies instead, which does not assume
// any particular encoding chose the variable numbering.
func Decode(side dimacs.Sidecar, assignment []solver.Value) (Puzzle, error) {
	if side.Size == 0 {
		return Puzzle{}, fmt.Errorf("sudoku: no SIZE sidecar comment present")
	}
	n := side.Size
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}

	for _, m := range side.Map {
		if m.Var <= 0 || m.Var >= len(assignment) {
			return Puzzle{}, fmt.Errorf("sudoku: MAP variable %d out of range", m.Var)
		}
		if m.Row < 1 || m.Row > n || m.Col < 1 || m.Col > n {
			return Puzzle{}, fmt.Errorf("sudoku: MAP cell (%d,%d) out of range for size %d", m.Row, m.Col, n)
		}
		// Unassigned variables default to True by the documented witness
		// convention (SPEC_FULL.md §9): a variable that never entered the
		// trail is treated as satisfying whatever it represents.
		v := assignment[m.Var]
		if v == solver.True || v == solver.Unassigned {
			grid[m.Row-1][m.Col-1] = m.Val
		}
	}

	for _, f := range side.Fixed {
		if f.Row < 1 || f.Row > n || f.Col < 1 || f.Col > n {
			return Puzzle{}, fmt.Errorf("sudoku: FIXED cell (%d,%d) out of range for size %d", f.Row, f.Col, n)
		}
		grid[f.Row-1][f.Col-1] = f.Val
	}

	return Puzzle{N: n, Grid: grid}, nil
}

// String renders the grid in the boxed layout the plain-C reference's
// decode_and_print_sudoku prints, generalized to any perfect-square N (that
// function only ever ran on N whose square root is itself an integer box size).
func (p Puzzle) String() string {
	box := 1
	for box*box < p.N {
		box++
	}
	out := ""
	for r := 0; r < p.N; r++ {
		if r != 0 && r%box == 0 {
			for i := 0; i < p.N*2+box-1; i++ {
				out += "-"
			}
			out += "\n"
		}
		for c := 0; c < p.N; c++ {
			if c != 0 && c%box == 0 {
				out += "| "
			}
			val := p.Grid[r][c]
			if val < 10 {
				out += fmt.Sprintf("%d ", val)
			} else {
				out += fmt.Sprintf("%c ", 'A'+val-10)
			}
		}
		out += "\n"
	}
	return out
}
