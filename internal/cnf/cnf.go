// Package cnf defines the conjunctive-normal-form data structures shared
// between the encoder and the solver, plus a DIMACS CNF reader/writer used
// for interop with external SAT tooling.
package cnf

import "fmt"

// A Literal is a nonzero signed variable reference: positive means the
// variable must be true, negative means it must be false. Variable 0 is
// never a valid literal.
type Literal int

// Var returns the variable this literal refers to, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negated reports whether l asserts that its variable is false.
func (l Literal) Negated() bool { return l < 0 }

// A Clause is an ordered, nonempty disjunction of literals.
type Clause []Literal

// A Formula is an ordered conjunction of clauses. A Formula with no
// clauses is vacuously satisfied; a Formula containing an empty Clause is
// unsatisfiable.
type Formula []Clause

// NumVars is the number of literal slots a Formula needs to track,
// i.e. the caller-declared variable count (not derived by scanning, since
// a formula need not mention every variable, e.g. a Sudoku clue cell's
// other values still need slots for other constraints).
type NumVars int

// ErrMalformedDimacs is returned by WriteDIMACS when the formula is
// internally inconsistent (e.g. it contains a literal referencing a
// variable higher than the declared count) and by ParseDIMACS when the
// DIMACS problem line disagrees with the clauses that follow it.
type ErrMalformedDimacs struct {
	Reason string
}

func (e *ErrMalformedDimacs) Error() string {
	return fmt.Sprintf("malformed DIMACS CNF: %s", e.Reason)
}
