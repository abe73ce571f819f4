// Package sudoku is the presentation-layer collaborator that turns a Sudoku
// puzzle into a CNF the core can solve, and turns the core's witness back into a
// grid. Nothing here is consulted by any solver invariant — see SPEC_FULL.md §1
// and §6. The encoding is grounded on original_source/Main/sudoku_to_cnf.py's
// direct (unreduced) encoding: one boolean variable per (row, col, value)
// triple, with definedness and uniqueness clauses for every cell, row, column
// and box. Unlike that script's optimized φ' encoding (which special-cases
// fixed cells to shrink the variable count), this encoder keeps one variable per
// triple and instead emits unit clauses for givens plus a full "c MAP" sidecar,
// so that internal/dimacs's generic MAP/FIXED contract — rather than an
// arithmetic formula tied to one fixed variable ordering — is what the decoder
// relies on.
package sudoku

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
)

// Puzzle is an N x N grid; 0 marks an empty cell. N must be a perfect square
// (4, 9, 16, 25, 36, ...).
type Puzzle struct {
	N    int
	Grid [][]int // Grid[row][col], 0-indexed, 1-indexed values
}

// Encode produces the DIMACS CNF text (including the SIZE/MAP/FIXED sidecar
// comments internal/dimacs recognizes) for p.
func Encode(p Puzzle) (string, error) {
	n := p.N
	box := int(math.Sqrt(float64(n)))
	if box*box != n {
		return "", fmt.Errorf("sudoku: size %d is not a perfect square", n)
	}
	if len(p.Grid) != n {
		return "", fmt.Errorf("sudoku: grid has %d rows, want %d", len(p.Grid), n)
	}

	// var(r, c, v) = ((r-1)*n + (c-1))*n + v, 1-indexed r, c, v.
	varOf := func(r, c, v int) int {
		return ((r-1)*n+(c-1))*n + v
	}
	numVars := n * n * n

	var clauses [][]int
	var mapLines []string
	var fixedLines []string

	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			for v := 1; v <= n; v++ {
				mapLines = append(mapLines, fmt.Sprintf("c MAP %d %d %d %d", varOf(r, c, v), r, c, v))
			}
		}
	}

	// cellVars(r, c) is the slice of variables for every value a cell (r,c)
	// might hold, built with lo.Map over lo.Range(n) rather than a hand-rolled
	// index loop, in the manner of other_examples/limaJavier-timetabling__solver.go's
	// functional slice construction.
	cellVars := func(r, c int) []int {
		return lo.Map(lo.Range(n), func(i, _ int) int { return varOf(r, c, i+1) })
	}

	// Cell definedness: every cell holds at least one value.
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			clauses = append(clauses, cellVars(r, c))
		}
	}

	// Cell uniqueness: no cell holds two values.
	addPairwise := func(vars []int) {
		for i := 0; i < len(vars); i++ {
			for j := i + 1; j < len(vars); j++ {
				clauses = append(clauses, []int{-vars[i], -vars[j]})
			}
		}
	}
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			addPairwise(cellVars(r, c))
		}
	}

	// Row/column/box definedness and uniqueness for each value.
	for v := 1; v <= n; v++ {
		for r := 1; r <= n; r++ {
			vars := lo.Map(lo.Range(n), func(c, _ int) int { return varOf(r, c+1, v) })
			clauses = append(clauses, vars)
			addPairwise(vars)
		}
		for c := 1; c <= n; c++ {
			vars := lo.Map(lo.Range(n), func(r, _ int) int { return varOf(r+1, c, v) })
			clauses = append(clauses, vars)
			addPairwise(vars)
		}
		for boxRow := 0; boxRow < n; boxRow += box {
			for boxCol := 0; boxCol < n; boxCol += box {
				vars := lo.FlatMap(lo.Range(box), func(dr, _ int) []int {
					return lo.Map(lo.Range(box), func(dc, _ int) int {
						return varOf(boxRow+dr+1, boxCol+dc+1, v)
					})
				})
				clauses = append(clauses, vars)
				addPairwise(vars)
			}
		}
	}

	// Givens: unit clauses plus FIXED sidecar lines.
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			given := p.Grid[r-1][c-1]
			if given == 0 {
				continue
			}
			clauses = append(clauses, []int{varOf(r, c, given)})
			fixedLines = append(fixedLines, fmt.Sprintf("c FIXED %d %d %d", r, c, given))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "c Sudoku %dx%d, direct one-variable-per-triple encoding\n", n, n)
	fmt.Fprintf(&b, "c SIZE %d\n", n)
	for _, l := range mapLines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	for _, l := range fixedLines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "p cnf %d %d\n", numVars, len(clauses))
	for _, cl := range clauses {
		for _, lit := range cl {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
	}
	return b.String(), nil
}
