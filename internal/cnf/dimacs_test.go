package cnf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want Formula
	}{
		{
			name: "no vars or clauses",
			text: "c No vars or clauses\np cnf 0 0\n",
			want: nil,
		},
		{
			name: "no clauses",
			text: "c No clauses\np cnf 5 0\n",
			want: nil,
		},
		{
			name: "one var one clause",
			text: "c 1 var, 1 clause\np cnf 1 1\n1 0\n",
			want: Formula{Clause{1}},
		},
		{
			name: "multiple clauses",
			text: "p cnf 3 2\n1 -2 0\n-1 2 3 0\n",
			want: Formula{Clause{1, -2}, Clause{-1, 2, 3}},
		},
		{
			name: "clause split across whitespace",
			text: "p cnf 2 1\n1  -2\n0\n",
			want: Formula{Clause{1, -2}},
		},
		{
			name: "missing problem line",
			text: "1 -2 0\n-1 0\n",
			want: Formula{Clause{1, -2}, Clause{-1}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ParseDIMACS(strings.NewReader(tt.text))
			if err != nil {
				t.Fatalf("ParseDIMACS: %s", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParseDIMACS(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseDIMACSPercentTrailer(t *testing.T) {
	text := "p cnf 1 1\n1 0\n%\nsome trailer junk that isn't DIMACS\n"
	got, _, err := ParseDIMACS(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseDIMACS: %s", err)
	}
	if diff := cmp.Diff(Formula{Clause{1}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACSErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"clause count mismatch", "p cnf 2 5\n1 -2 0\n"},
		{"var count exceeded", "p cnf 1 1\n5 0\n"},
		{"malformed problem line", "p cnf 1\n"},
		{"duplicate problem line", "p cnf 1 1\np cnf 1 1\n1 0\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDIMACS(strings.NewReader(tt.text))
			if err == nil {
				t.Fatal("got nil error, want a parse error")
			}
		})
	}
}

func TestDIMACSRoundTrip(t *testing.T) {
	f := Formula{
		Clause{1, -2, 3},
		Clause{-1},
		Clause{2, -3},
	}
	var b strings.Builder
	if err := WriteDIMACS(&b, f, 3); err != nil {
		t.Fatalf("WriteDIMACS: %s", err)
	}
	got, numVars, err := ParseDIMACS(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ParseDIMACS: %s", err)
	}
	if numVars != 3 {
		t.Fatalf("numVars = %d, want 3", numVars)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDIMACSRejectsEmptyClause(t *testing.T) {
	f := Formula{Clause{}}
	var b strings.Builder
	if err := WriteDIMACS(&b, f, 1); err == nil {
		t.Fatal("got nil error for an empty clause, want ErrMalformedDimacs")
	}
}
