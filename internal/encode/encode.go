// Package encode translates a Non-Consecutive Sudoku grid into an
// equivalent CNF formula whose satisfying assignments correspond
// one-to-one with legal completions of the grid.
package encode

import (
	"fmt"
	"math"

	"github.com/ncsudoku/solver/internal/cnf"
)

// ErrInvalidGrid is returned by Encode when N is not a perfect square,
// the grid is ragged, or a cell value lies outside [0, N].
type ErrInvalidGrid struct {
	Reason string
}

func (e *ErrInvalidGrid) Error() string {
	return fmt.Sprintf("invalid grid: %s", e.Reason)
}

// Grid is an N×N matrix of clue values; zero denotes an empty cell.
type Grid [][]int

// Validate checks that g is square with side N, N a perfect square, and
// every cell lies in [0, N]. It returns N and B = sqrt(N) on success.
func (g Grid) Validate() (n, b int, err error) {
	n = len(g)
	if n == 0 {
		return 0, 0, &ErrInvalidGrid{"grid has no rows"}
	}
	b = int(math.Sqrt(float64(n)))
	if b*b != n {
		return 0, 0, &ErrInvalidGrid{fmt.Sprintf("grid side %d is not a perfect square", n)}
	}
	for r, row := range g {
		if len(row) != n {
			return 0, 0, &ErrInvalidGrid{fmt.Sprintf("row %d has %d cells, want %d", r, len(row), n)}
		}
		for c, v := range row {
			if v < 0 || v > n {
				return 0, 0, &ErrInvalidGrid{fmt.Sprintf("cell (%d,%d)=%d out of range [0, %d]", r, c, v, n)}
			}
		}
	}
	return n, b, nil
}

// VarID returns the deterministic variable identifier for "cell (r, c)
// holds value v": var(r, c, v) = r*N^2 + c*N + v. Identifiers are a
// bijection onto [1, N^3]; the smallest is 1 (r=0, c=0, v=1). r and c
// are zero-based, v is one-based.
func VarID(r, c, v, n int) int {
	return r*n*n + c*n + v
}

// Options selects which constraint groups Encode emits.
type Options struct {
	// NonConsecutive gates constraint group 5: orthogonally adjacent
	// cells may not hold consecutive values.
	NonConsecutive bool
}

// Encode converts a single grid into CNF clauses. N must be a perfect
// square and B = sqrt(N); both are returned by Grid.Validate. numVars is
// always exactly N^3.
func Encode(g Grid, opts Options) (cnf.Formula, cnf.NumVars, error) {
	n, b, err := g.Validate()
	if err != nil {
		return nil, 0, err
	}

	numVars := n * n * n
	// Clause-count upper bound so a single append-heavy pass doesn't
	// repeatedly reallocate: 4*N*N exactly-one groups of size N plus the
	// non-consecutive pairs plus clues.
	perGroup := 1 + n*(n-1)/2
	capEstimate := 4*n*n*perGroup + 4*n*n*n + n*n
	f := make(cnf.Formula, 0, capEstimate)

	exactlyOne := func(lits []cnf.Literal) {
		cls := make(cnf.Clause, len(lits))
		copy(cls, lits)
		f = append(f, cls)
		for i := 0; i < len(lits); i++ {
			for j := i + 1; j < len(lits); j++ {
				f = append(f, cnf.Clause{-lits[i], -lits[j]})
			}
		}
	}

	lits := make([]cnf.Literal, n)

	// 1. Cell constraint: each cell holds exactly one value.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				lits[v-1] = cnf.Literal(VarID(r, c, v, n))
			}
			exactlyOne(lits)
		}
	}

	for v := 1; v <= n; v++ {
		// 2. Row constraint: each value appears exactly once per row.
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				lits[c] = cnf.Literal(VarID(r, c, v, n))
			}
			exactlyOne(lits)
		}
		// 3. Column constraint: each value appears exactly once per column.
		for c := 0; c < n; c++ {
			for r := 0; r < n; r++ {
				lits[r] = cnf.Literal(VarID(r, c, v, n))
			}
			exactlyOne(lits)
		}
		// 4. Box constraint: each value appears exactly once per box.
		for br := 0; br < n; br += b {
			for bc := 0; bc < n; bc += b {
				boxLits := make([]cnf.Literal, 0, n)
				for dr := 0; dr < b; dr++ {
					for dc := 0; dc < b; dc++ {
						boxLits = append(boxLits, cnf.Literal(VarID(br+dr, bc+dc, v, n)))
					}
				}
				exactlyOne(boxLits)
			}
		}
	}

	// 5. Non-consecutive constraint: orthogonally adjacent cells may not
	// differ by exactly one.
	if opts.NonConsecutive {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				for _, nb := range orthogonalNeighbors(r, c, n) {
					if !before(r, c, nb.r, nb.c) {
						continue
					}
					for v := 1; v <= n; v++ {
						x := cnf.Literal(VarID(r, c, v, n))
						if v > 1 {
							f = append(f, cnf.Clause{-x, -cnf.Literal(VarID(nb.r, nb.c, v-1, n))})
						}
						if v < n {
							f = append(f, cnf.Clause{-x, -cnf.Literal(VarID(nb.r, nb.c, v+1, n))})
						}
					}
				}
			}
		}
	}

	// 6. Clues.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := g[r][c]; v != 0 {
				f = append(f, cnf.Clause{cnf.Literal(VarID(r, c, v, n))})
			}
		}
	}

	return f, cnf.NumVars(numVars), nil
}

type cell struct{ r, c int }

// orthogonalNeighbors returns the in-bounds up/down/left/right neighbors
// of (r, c) in a fixed order: up, down, left, right.
func orthogonalNeighbors(r, c, n int) []cell {
	var out []cell
	if r > 0 {
		out = append(out, cell{r - 1, c})
	}
	if r+1 < n {
		out = append(out, cell{r + 1, c})
	}
	if c > 0 {
		out = append(out, cell{r, c - 1})
	}
	if c+1 < n {
		out = append(out, cell{r, c + 1})
	}
	return out
}

// before reports whether (r, c) precedes (r2, c2) in lexicographic
// order, used to visit each undirected adjacent pair exactly once.
func before(r, c, r2, c2 int) bool {
	if r != r2 {
		return r < r2
	}
	return c < c2
}

// DecodeVarID recovers (r, c, v) from a variable identifier produced by
// VarID for the given N. It is the Encoder's inverse and is used by
// tests to check the bijection invariant.
func DecodeVarID(id, n int) (r, c, v int) {
	id--
	v = id%n + 1
	id /= n
	c = id % n
	r = id / n
	return r, c, v
}
