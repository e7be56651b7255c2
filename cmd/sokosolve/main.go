// sokosolve reads a single Sokoban puzzle file and prints a solving move string to stdout, or
// an empty line if none was found within the given budget. See spec.md for notation and exit
// code conventions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/tamberg/sokosolve/pkg/engine"
)

var (
	deadline      = flag.Duration("deadline", 0, "Search time budget (0 = unbounded)")
	maxExpansions = flag.Int("max-expansions", 0, "Max states expanded (0 = unbounded)")
	cacheSize     = flag.Int("cache", 1<<16, "Heuristic memoization cache capacity (0 = disabled)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if flag.NArg() != 1 {
		logw.Exitf(ctx, "Usage: sokosolve <puzzle-file|->")
	}

	text, err := readPuzzle(flag.Arg(0))
	if err != nil {
		logw.Exitf(ctx, "Failed to read puzzle: %v", err)
	}

	opt := engine.Options{CacheSize: *cacheSize}
	if *deadline > 0 {
		opt.Deadline = lang.Some(time.Now().Add(*deadline))
	}
	if *maxExpansions > 0 {
		opt.MaxExpansions = lang.Some(*maxExpansions)
	}

	e := engine.NewEngine(ctx, "sokosolve", "sokosolve", engine.WithOptions(opt))
	if err := e.Load(ctx, text); err != nil {
		logw.Exitf(ctx, "Malformed puzzle: %v", err)
	}

	moves, err := e.Solve(ctx)
	if err != nil {
		// NoSolution/Cancelled/Exhausted all print an empty line with exit code 0, per
		// spec.md 7: the solver surfaces outcomes and lets the caller decide.
		logw.Debugf(ctx, "No solution: %v", err)
	}
	fmt.Println(moves)
}

func readPuzzle(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
