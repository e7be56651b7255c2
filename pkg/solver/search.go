package solver

import (
	"context"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/tamberg/sokosolve/pkg/grid"
)

// Options hold dynamic search options, mirroring the teacher's searchctl.Options shape: both
// fields are optional and independently checked between frontier pops.
type Options struct {
	// Deadline, if set, halts the search once time.Now() passes it.
	Deadline lang.Optional[time.Time]
	// MaxExpansions, if set, halts the search after that many states have been popped and
	// expanded, regardless of deadline or cancellation.
	MaxExpansions lang.Optional[int]
	// Cache, if set, memoizes Heuristic by Zobrist hash across the run.
	Cache *HeuristicCache
}

// GreedyBestFirst is the search driver of spec.md 4.6: a single-threaded, cooperative,
// best-first loop over a Frontier ordered by (heuristic, path length), deduplicated by a
// Zobrist-keyed visited set. It is greedy, not A*: the evaluation function omits path cost
// except as a tiebreak, since finding a feasible solution under a work budget is the goal, not
// an optimal one.
type GreedyBestFirst struct{}

// Solve runs the search from root and returns the move path of the first solved state popped,
// or one of ErrNoSolution, ErrCancelled, ErrExhausted.
func (GreedyBestFirst) Solve(ctx context.Context, b *grid.Board, root State, opt Options) ([]grid.Dir, error) {
	frontier := NewFrontier()
	visited := make(map[grid.ZobristHash]struct{})

	frontier.Push(scoreOf(b, root, opt.Cache), root)

	expansions := 0
	for frontier.Len() > 0 {
		if contextx.IsCancelled(ctx) {
			return nil, ErrCancelled
		}
		if deadline, ok := opt.Deadline.V(); ok && !time.Now().Before(deadline) {
			return nil, ErrCancelled
		}
		if max, ok := opt.MaxExpansions.V(); ok && expansions >= max {
			return nil, ErrExhausted
		}

		s := frontier.Pop()
		if s.Solved(b) {
			return s.Path, nil
		}

		if _, ok := visited[s.Zobrist]; ok {
			continue
		}
		visited[s.Zobrist] = struct{}{}
		expansions++

		for _, succ := range Expand(b, s) {
			if _, ok := visited[succ.Zobrist]; ok {
				continue
			}
			if HardDeadlock(b, succ) {
				continue
			}
			frontier.Push(scoreOf(b, succ, opt.Cache), succ)
		}
	}
	return nil, ErrNoSolution
}

// scoreOf computes (or retrieves from the cache) the heuristic for s. The cache is an
// optional performance layer; correctness never depends on a hit.
func scoreOf(b *grid.Board, s State, cache *HeuristicCache) int {
	if cache != nil {
		if h, ok := cache.Get(s.Zobrist); ok {
			return h
		}
	}
	h := Heuristic(b, s)
	if cache != nil {
		cache.Put(s.Zobrist, h)
	}
	return h
}

// FormatPath concatenates each Dir's lowercase move rune with no separator, matching the
// existing front-end's expected output case (spec.md 6, Open Question resolved: lowercase).
// An empty or nil path formats to the empty string, the neutral "no solution" value.
func FormatPath(path []grid.Dir) string {
	out := make([]rune, len(path))
	for i, d := range path {
		out[i] = d.Rune()
	}
	return string(out)
}
