// Package grid implements the two Sudoku grid input dialects described in
// spec.md §6: a compact single-line "dot" format (one puzzle per line)
// and a whitespace-separated multi-row standard format (one puzzle per
// file). It is an external collaborator of the CNF encoder, not part of
// the solver core: its only contract with the rest of the repo is that
// it yields (grid, N, B) triples.
package grid

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ncsudoku/solver/internal/encode"
)

// Puzzle is one parsed grid along with its dimensions.
type Puzzle struct {
	Grid encode.Grid
	N    int
	B    int
}

// ReadAll reads every puzzle from r, auto-detecting the dialect from the
// first non-blank line: a line containing '.' or longer than 15
// characters with no whitespace is treated as the compact/dot dialect
// (one puzzle per line); otherwise the whole stream is treated as a
// single standard-format puzzle spanning multiple lines. Malformed
// compact lines are silently skipped, matching spec.md §6.
func ReadAll(r io.Reader) ([]Puzzle, error) {
	var lines []string
	s := bufio.NewScanner(r)
	// Puzzles at N=25 have 625 characters per line; grow the scanner's
	// buffer so a single dot-format line is never truncated.
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	if isCompactLine(lines[0]) {
		var puzzles []Puzzle
		for _, line := range lines {
			if !isCompactLine(line) {
				continue
			}
			p, ok := parseCompactLine(line)
			if ok {
				puzzles = append(puzzles, p)
			}
		}
		return puzzles, nil
	}

	p, ok := parseStandardLines(lines)
	if !ok {
		return nil, nil
	}
	return []Puzzle{p}, nil
}

// isCompactLine applies spec.md §6's dialect heuristic: a line belongs
// to the compact dialect if it contains a '.' or if it is long (>15
// characters) and has no whitespace-separated tokens.
func isCompactLine(line string) bool {
	if strings.Contains(line, ".") {
		return true
	}
	return len(line) > 15 && len(strings.Fields(line)) <= 1
}

// parseCompactLine decodes one dot-format line into a grid. It returns
// ok=false for lines whose length is not a perfect square, matching
// spec.md §6's "invalid lines are silently skipped."
func parseCompactLine(line string) (Puzzle, bool) {
	clean := strings.ReplaceAll(line, ".", "0")
	total := len(clean)
	n := int(math.Sqrt(float64(total)))
	if n*n != total || n == 0 {
		return Puzzle{}, false
	}
	b := int(math.Sqrt(float64(n)))
	if b*b != n {
		return Puzzle{}, false
	}
	g := make(encode.Grid, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			ch := clean[r*n+c]
			if ch < '0' || ch > '9' {
				return Puzzle{}, false
			}
			row[c] = int(ch - '0')
		}
		g[r] = row
	}
	return Puzzle{Grid: g, N: n, B: b}, true
}

// parseStandardLines assembles the whitespace-separated standard-format
// dialect: every line with more than one token becomes a grid row. A
// line with exactly one token belongs to the compact dialect per
// spec.md §6 and is skipped here.
func parseStandardLines(lines []string) (Puzzle, bool) {
	var g encode.Grid
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) <= 1 {
			continue
		}
		row := make([]int, len(parts))
		for i, tok := range parts {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return Puzzle{}, false
			}
			row[i] = v
		}
		g = append(g, row)
	}
	if len(g) == 0 {
		return Puzzle{}, false
	}
	n := len(g)
	b := int(math.Sqrt(float64(n)))
	return Puzzle{Grid: g, N: n, B: b}, true
}
