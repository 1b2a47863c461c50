// Command ncsbench batch-runs every puzzle file in a directory through
// the encode/solve pipeline and writes a CSV of per-puzzle measurements.
// It reimplements the measurement loop of the Python toolchain's
// benchmark.py/run_benchmark.py harness; it does not invoke an external
// SAT binary or generate puzzles, both of which remain out of the core's
// scope (spec.md §1).
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/ncsudoku/solver/internal/dpll"
	"github.com/ncsudoku/solver/internal/encode"
	"github.com/ncsudoku/solver/internal/grid"
)

func main() {
	log.SetFlags(0)

	dir := flag.String("dir", "", "directory of puzzle files to benchmark (required)")
	out := flag.String("out", "benchmark_results.csv", "output CSV path")
	standardOnly := flag.Bool("standard-only", false, "disable the non-consecutive constraint")
	heuristicName := flag.String("heuristic", "standard", "branching heuristic: standard, mom, or jw")
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "ncsbench: --dir is required")
		os.Exit(2)
	}

	h, err := dpll.ParseHeuristic(*heuristicName)
	if err != nil {
		log.Fatal(err)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer outFile.Close()

	w := csv.NewWriter(outFile)
	defer w.Flush()
	if err := w.Write([]string{"folder", "puzzle", "time_s", "result", "backtracks", "init_props"}); err != nil {
		log.Fatal(err)
	}

	opts := encode.Options{NonConsecutive: !*standardOnly}
	folder := filepath.Base(*dir)
	for _, name := range names {
		path := filepath.Join(*dir, name)
		f, err := os.Open(path)
		if err != nil {
			log.Printf("ncsbench: skipping %s: %s", name, err)
			continue
		}
		puzzles, err := grid.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("ncsbench: skipping %s: %s", name, err)
			continue
		}
		for _, p := range puzzles {
			start := time.Now()
			clauses, numVars, err := encode.Encode(p.Grid, opts)
			if err != nil {
				log.Printf("ncsbench: %s: %s", name, err)
				continue
			}
			stats := dpll.Solve(clauses, numVars, h)
			elapsed := time.Since(start).Seconds()

			record := []string{
				folder,
				name,
				strconv.FormatFloat(elapsed, 'f', 4, 64),
				stats.Verdict.String(),
				strconv.Itoa(stats.Backtracks),
				strconv.Itoa(stats.InitialPropagations),
			}
			if err := w.Write(record); err != nil {
				log.Fatal(err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("ncsbench: wrote %s\n", *out)
}
