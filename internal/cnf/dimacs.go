package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format.
//
// For convenience, a few non-standard variations are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing.
func ParseDIMACS(r io.Reader) (Formula, NumVars, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var formula Formula
	var clause Clause
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(formula) > 0 {
				return nil, 0, &ErrMalformedDimacs{"problem line appears after clauses"}
			}
			if problem.vars > 0 {
				return nil, 0, &ErrMalformedDimacs{"multiple problem lines"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("malformed problem line %q", line)}
			}
			if fields[0] != "p" {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("problem line starts with unexpected signifier %q", fields[0])}
			}
			if fields[1] != "cnf" {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("only cnf supported; got %q", fields[1])}
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("malformed #vars in problem line: %s", err)}
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("malformed #clauses in problem line: %s", err)}
			}
			if problem.vars < 0 {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("invalid #vars %d", problem.vars)}
			}
			if problem.clauses < 0 {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("invalid #clauses %d", problem.clauses)}
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, &ErrMalformedDimacs{fmt.Sprintf("invalid literal: %s", err)}
			}
			if n == 0 {
				formula = append(formula, clause)
				clause = nil
			} else {
				clause = append(clause, Literal(n))
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	if len(clause) > 0 {
		formula = append(formula, clause)
	}

	numVars := problem.vars
	if problem.vars > 0 {
		for _, cls := range formula {
			for _, lit := range cls {
				if v := lit.Var(); v > problem.vars {
					return nil, 0, &ErrMalformedDimacs{fmt.Sprintf(
						"formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
						v, problem.vars, problem.vars)}
				}
			}
		}
		if len(formula) != problem.clauses {
			return nil, 0, &ErrMalformedDimacs{fmt.Sprintf(
				"problem line specifies %d clauses, but there are %d", problem.clauses, len(formula))}
		}
	} else {
		numVars = maxVar(formula)
	}
	return formula, NumVars(numVars), nil
}

func maxVar(f Formula) int {
	max := 0
	for _, cls := range f {
		for _, lit := range cls {
			if v := lit.Var(); v > max {
				max = v
			}
		}
	}
	return max
}

// WriteDIMACS serializes a formula in DIMACS CNF format: a single header
// line "p cnf <numVars> <numClauses>" followed by one line per clause,
// literals space-separated and each clause terminated by a trailing 0.
func WriteDIMACS(w io.Writer, f Formula, numVars NumVars) error {
	if numVars < NumVars(maxVar(f)) {
		return &ErrMalformedDimacs{fmt.Sprintf(
			"declared numVars %d is less than the highest variable referenced (%d)", numVars, maxVar(f))}
	}
	for _, cls := range f {
		if len(cls) == 0 {
			return &ErrMalformedDimacs{"formula contains an empty clause"}
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(f)); err != nil {
		return err
	}
	for _, cls := range f {
		for _, lit := range cls {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
