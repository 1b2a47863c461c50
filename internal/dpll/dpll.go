// Package dpll implements a recursive Davis-Putnam-Logemann-Loveland
// satisfiability decision procedure over the clause representation in
// internal/cnf: unit propagation to a fixed point, three configurable
// branching heuristics, and backtrack accounting.
package dpll

import (
	"fmt"

	"github.com/ncsudoku/solver/internal/cnf"
)

// Heuristic selects the branching variable strategy used by Solve. The
// zero value is Standard.
type Heuristic int

const (
	// Standard scans clauses in order and returns the first literal
	// whose variable is unassigned.
	Standard Heuristic = iota
	// MOM picks the unassigned variable with the Maximum Occurrence in
	// clauses of Minimum length.
	MOM
	// JeroslowWang picks the unassigned variable maximizing
	// sum(2^-|C|) over clauses C containing it.
	JeroslowWang
)

func (h Heuristic) String() string {
	switch h {
	case Standard:
		return "standard"
	case MOM:
		return "mom"
	case JeroslowWang:
		return "jw"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps the CLI/config names from spec.md §6 ("standard",
// "mom", "jw") to a Heuristic. An unrecognized name returns an error.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "standard":
		return Standard, nil
	case "mom":
		return MOM, nil
	case "jw":
		return JeroslowWang, nil
	default:
		return 0, fmt.Errorf("dpll: unknown heuristic %q (want standard, mom, or jw)", name)
	}
}

// Verdict is the outcome of a Solve call.
type Verdict int

const (
	UNSAT Verdict = iota
	SAT
)

func (v Verdict) String() string {
	if v == SAT {
		return "SAT"
	}
	return "UNSAT"
}

// Stats reports the per-invocation diagnostics Solve produces alongside
// its verdict.
type Stats struct {
	Verdict             Verdict
	Backtracks          int
	InitialPropagations int
	Heuristic           Heuristic
}

// assignment is a partial mapping from variable to truth value.
type assignment map[int]bool

// Solve decides the satisfiability of f (a formula over numVars
// variables) using the given heuristic. It always terminates and
// returns SAT or UNSAT plus the backtrack and initial-propagation
// counters described in spec.md §4.2.
func Solve(f cnf.Formula, numVars cnf.NumVars, h Heuristic) Stats {
	s := &solver{heuristic: h}

	// Initial-propagation diagnostic: run unit propagation once on a
	// fresh copy with an empty assignment, and record how many
	// variables it forced at decision level 0. If this alone refutes
	// the formula, no search is needed.
	initAssign := assignment{}
	simplified, ok := s.propagate(f, initAssign)
	stats := Stats{Heuristic: h, InitialPropagations: len(initAssign)}
	if !ok {
		stats.Verdict = UNSAT
		return stats
	}
	if len(simplified) == 0 {
		stats.Verdict = SAT
		return stats
	}

	sat := s.dpll(simplified, cloneAssignment(initAssign))
	stats.Backtracks = s.backtracks
	if sat {
		stats.Verdict = SAT
	} else {
		stats.Verdict = UNSAT
	}
	return stats
}

type solver struct {
	heuristic  Heuristic
	backtracks int
}

// dpll is the recursive decision procedure. f has already been
// propagated to a fixed point (by the caller, or by a prior branch of
// this same call) and is known not to be empty.
func (s *solver) dpll(f cnf.Formula, a assignment) bool {
	v, ok := s.chooseVar(f, a)
	if !ok {
		// No unassigned variable remains in any clause: every clause
		// must already be satisfied, since propagate would otherwise
		// have found an empty clause.
		return true
	}

	// First polarity: var = true.
	a1 := cloneAssignment(a)
	a1[v] = true
	if f1, ok := s.propagate(simplify(f, cnf.Literal(v)), a1); ok {
		if len(f1) == 0 {
			return true
		}
		if s.dpll(f1, a1) {
			return true
		}
	}
	s.backtracks++

	// Second polarity: var = false.
	a2 := cloneAssignment(a)
	a2[v] = false
	if f2, ok := s.propagate(simplify(f, cnf.Literal(-v)), a2); ok {
		if len(f2) == 0 {
			return true
		}
		if s.dpll(f2, a2) {
			return true
		}
	}
	s.backtracks++
	return false
}

// simplify applies unit-clause-style reduction for a single decided
// literal lit: clauses containing lit are dropped (satisfied); clauses
// containing -lit have that literal removed. It does not detect
// conflicts by itself — propagate does, by seeing the resulting empty
// clause as a unit clause with no literals. f is never mutated in
// place; a fresh Formula is returned so the caller's copy survives for
// backtracking.
func simplify(f cnf.Formula, lit cnf.Literal) cnf.Formula {
	neg := -lit
	out := make(cnf.Formula, 0, len(f))
	for _, cls := range f {
		satisfied := false
		var kept cnf.Clause
		for _, l := range cls {
			if l == lit {
				satisfied = true
				break
			}
			if l == neg {
				continue
			}
			kept = append(kept, l)
		}
		if satisfied {
			continue
		}
		out = append(out, kept)
	}
	return out
}

// propagate runs unit propagation to a fixed point, extending a with
// every literal it forces. It returns the simplified formula and false
// if a conflict (an empty clause) is found.
func (s *solver) propagate(f cnf.Formula, a assignment) (cnf.Formula, bool) {
	for {
		unitIdx := -1
		for i, cls := range f {
			if len(cls) == 0 {
				return nil, false
			}
			if len(cls) == 1 {
				unitIdx = i
				break
			}
		}
		if unitIdx == -1 {
			return f, true
		}
		lit := f[unitIdx][0]
		v := lit.Var()
		want := !lit.Negated()
		if cur, ok := a[v]; ok {
			if cur != want {
				return nil, false
			}
		} else {
			a[v] = want
		}
		f = simplify(f, lit)
	}
}

func cloneAssignment(a assignment) assignment {
	b := make(assignment, len(a))
	for k, v := range a {
		b[k] = v
	}
	return b
}

// chooseVar selects the next branching variable from f according to the
// solver's configured heuristic. It reports false only when every
// literal appearing in f is already assigned, which propagate's fixed
// point guarantees cannot also leave an unsatisfied clause behind.
func (s *solver) chooseVar(f cnf.Formula, a assignment) (int, bool) {
	switch s.heuristic {
	case MOM:
		if v, ok := chooseMOM(f, a); ok {
			return v, true
		}
	case JeroslowWang:
		if v, ok := chooseJeroslowWang(f, a); ok {
			return v, true
		}
	}
	return chooseStandard(f, a)
}

// chooseStandard scans clauses in order and returns the first literal
// whose variable is unassigned. It is also the fallback the other two
// heuristics use when they find no candidate.
func chooseStandard(f cnf.Formula, a assignment) (int, bool) {
	for _, cls := range f {
		for _, lit := range cls {
			v := lit.Var()
			if _, ok := a[v]; !ok {
				return v, true
			}
		}
	}
	return 0, false
}

// chooseMOM implements Maximum Occurrence in clauses of Minimum size:
// find the shortest clause length L* present in f, tally how many
// length-L* clauses mention each unassigned variable, and return the
// variable with the highest tally (ties broken by first encountered).
func chooseMOM(f cnf.Formula, a assignment) (int, bool) {
	minLen := -1
	for _, cls := range f {
		if minLen == -1 || len(cls) < minLen {
			minLen = len(cls)
		}
	}
	if minLen == -1 {
		return 0, false
	}
	var order []int
	counts := make(map[int]int)
	for _, cls := range f {
		if len(cls) != minLen {
			continue
		}
		for _, lit := range cls {
			v := lit.Var()
			if _, ok := a[v]; ok {
				continue
			}
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}
	}
	best, bestCount := -1, -1
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// jwWeights caches 2^-k for small clause lengths to avoid repeated
// exponentiation; jwWeight falls back to direct computation beyond it.
var jwWeights = func() [65]float64 {
	var w [65]float64
	for i := range w {
		w[i] = 1.0
		for j := 0; j < i; j++ {
			w[i] /= 2
		}
	}
	return w
}()

func jwWeight(clauseLen int) float64 {
	if clauseLen < len(jwWeights) {
		return jwWeights[clauseLen]
	}
	w := 1.0
	for i := 0; i < clauseLen; i++ {
		w /= 2
	}
	return w
}

// chooseJeroslowWang implements the Jeroslow-Wang heuristic: for each
// unassigned variable v, score(v) = sum over clauses C containing a
// literal on v of 2^-|C|; returns the argmax (ties broken by first
// encountered).
func chooseJeroslowWang(f cnf.Formula, a assignment) (int, bool) {
	var order []int
	scores := make(map[int]float64)
	for _, cls := range f {
		w := jwWeight(len(cls))
		for _, lit := range cls {
			v := lit.Var()
			if _, ok := a[v]; ok {
				continue
			}
			if _, seen := scores[v]; !seen {
				order = append(order, v)
			}
			scores[v] += w
		}
	}
	best, bestScore := -1, -1.0
	for _, v := range order {
		if scores[v] > bestScore {
			best, bestScore = v, scores[v]
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
