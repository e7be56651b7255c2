// bench drives the solver over a directory of puzzle files and prints one CSV line per puzzle,
// in the same print-one-line-per-iteration style as the teacher's cmd/perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/tamberg/sokosolve/pkg/engine"
)

var (
	deadline      = flag.Duration("deadline", 10*time.Second, "Per-puzzle search time budget")
	maxExpansions = flag.Int("max-expansions", 2_000_000, "Per-puzzle max states expanded")
	ext           = flag.String("ext", ".sok", "Puzzle file extension to scan for")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if flag.NArg() != 1 {
		logw.Exitf(ctx, "Usage: bench <puzzle-dir>")
	}

	files, err := findPuzzles(flag.Arg(0), *ext)
	if err != nil {
		logw.Exitf(ctx, "Failed to scan %v: %v", flag.Arg(0), err)
	}

	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			logw.Errorf(ctx, "Failed to read %v: %v", file, err)
			continue
		}

		opt := engine.Options{
			Deadline:      lang.Some(time.Now().Add(*deadline)),
			MaxExpansions: lang.Some(*maxExpansions),
		}
		e := engine.NewEngine(ctx, "bench", "bench", engine.WithOptions(opt))

		start := time.Now()
		if err := e.Load(ctx, string(text)); err != nil {
			println(fmt.Sprintf("bench,%v,malformed,0,%v", file, time.Since(start).Microseconds()))
			continue
		}

		moves, err := e.Solve(ctx)
		duration := time.Since(start)

		status := "solved"
		if err != nil {
			status = err.Error()
		}
		println(fmt.Sprintf("bench,%v,%v,%v,%v", file, status, len(moves), duration.Microseconds()))
	}
}

func findPuzzles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
