// Package integration_test exercises the full grid -> encode -> dpll
// pipeline against the concrete end-to-end scenarios in spec.md §8.
package integration_test

import (
	"strings"
	"testing"

	"github.com/ncsudoku/solver/internal/cnf"
	"github.com/ncsudoku/solver/internal/dpll"
	"github.com/ncsudoku/solver/internal/encode"
	"github.com/ncsudoku/solver/internal/grid"
)

func solveGrid(t *testing.T, g encode.Grid, nonConsecutive bool) dpll.Stats {
	t.Helper()
	clauses, numVars, err := encode.Encode(g, encode.Options{NonConsecutive: nonConsecutive})
	if err != nil {
		t.Fatal(err)
	}
	return dpll.Solve(clauses, numVars, dpll.Standard)
}

func TestS1EmptyGridStandardOnly(t *testing.T) {
	g := make(encode.Grid, 4)
	for i := range g {
		g[i] = make([]int, 4)
	}
	stats := solveGrid(t, g, false)
	if stats.Verdict != dpll.SAT {
		t.Fatalf("empty 4x4, standard only: got %s, want SAT", stats.Verdict)
	}
}

const s2Standard = `
5 3 0 0 7 0 0 0 0
6 0 0 1 9 5 0 0 0
0 9 8 0 0 0 0 6 0
8 0 0 0 6 0 0 0 3
4 0 0 8 0 3 0 0 1
7 0 0 0 2 0 0 0 6
0 6 0 0 0 0 2 8 0
0 0 0 4 1 9 0 0 5
0 0 0 0 8 0 0 7 9
`

func TestS2StandardOnlyIsSat(t *testing.T) {
	puzzles, err := grid.ReadAll(strings.NewReader(s2Standard))
	if err != nil {
		t.Fatal(err)
	}
	if len(puzzles) != 1 {
		t.Fatalf("got %d puzzles, want 1", len(puzzles))
	}
	stats := solveGrid(t, puzzles[0].Grid, false)
	if stats.Verdict != dpll.SAT {
		t.Fatalf("S2 standard-only: got %s, want SAT", stats.Verdict)
	}
}

func TestS2NonConsecutiveIsUnsat(t *testing.T) {
	// Cell (0,0)=5 is orthogonally adjacent to (1,0)=6: a consecutive
	// pair of clues, which the non-consecutive rule forbids outright.
	puzzles, err := grid.ReadAll(strings.NewReader(s2Standard))
	if err != nil {
		t.Fatal(err)
	}
	stats := solveGrid(t, puzzles[0].Grid, true)
	if stats.Verdict != dpll.UNSAT {
		t.Fatalf("S2 non-consecutive: got %s, want UNSAT", stats.Verdict)
	}
}

func TestS3DirectAdjacencyConflict(t *testing.T) {
	g := make(encode.Grid, 9)
	for i := range g {
		g[i] = make([]int, 9)
	}
	g[0][0] = 1
	g[0][1] = 2
	stats := solveGrid(t, g, true)
	if stats.Verdict != dpll.UNSAT {
		t.Fatalf("S3: got %s, want UNSAT", stats.Verdict)
	}
}

func TestS6DimacsInterop(t *testing.T) {
	puzzles, err := grid.ReadAll(strings.NewReader(s2Standard))
	if err != nil {
		t.Fatal(err)
	}
	clauses, numVars, err := encode.Encode(puzzles[0].Grid, encode.Options{NonConsecutive: false})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := cnf.WriteDIMACS(&b, clauses, numVars); err != nil {
		t.Fatal(err)
	}

	reparsed, reparsedNumVars, err := cnf.ParseDIMACS(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if reparsedNumVars != numVars {
		t.Fatalf("numVars mismatch after DIMACS round trip: got %d, want %d", reparsedNumVars, numVars)
	}
	if len(reparsed) != len(clauses) {
		t.Fatalf("clause count mismatch after DIMACS round trip: got %d, want %d", len(reparsed), len(clauses))
	}

	reStats := dpll.Solve(reparsed, reparsedNumVars, dpll.Standard)
	origStats := dpll.Solve(clauses, numVars, dpll.Standard)
	if reStats.Verdict != origStats.Verdict {
		t.Fatalf("verdict changed across DIMACS round trip: got %s, want %s", reStats.Verdict, origStats.Verdict)
	}
}
