// Package engine wraps a single loaded Sokoban puzzle and the greedy best-first solver around
// it, mirroring the shape of the teacher's pkg/engine: a mutex-guarded owner of the current
// position that can run a search either synchronously or on a dedicated goroutine with
// cooperative cancellation.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/tamberg/sokosolve/pkg/grid"
	"github.com/tamberg/sokosolve/pkg/grid/parse"
	"github.com/tamberg/sokosolve/pkg/solver"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation settings, applied to every Solve/Launch call.
type Options struct {
	// Deadline, if set, bounds how long a search may run.
	Deadline lang.Optional[time.Time]
	// MaxExpansions, if set, bounds how many states a search may pop and expand.
	MaxExpansions lang.Optional[int]
	// CacheSize sets the heuristic memoization cache capacity. Zero disables the cache.
	CacheSize int
}

func (o Options) String() string {
	var parts []string
	if v, ok := o.Deadline.V(); ok {
		parts = append(parts, fmt.Sprintf("deadline=%v", v))
	}
	if v, ok := o.MaxExpansions.V(); ok {
		parts = append(parts, fmt.Sprintf("maxExpansions=%v", v))
	}
	parts = append(parts, fmt.Sprintf("cacheSize=%v", o.CacheSize))
	return fmt.Sprintf("{%v}", strings.Join(parts, ", "))
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the search options used by Solve/Launch.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobrist configures the engine to seed its Zobrist table with the given value instead of
// grid.DefaultZobristSeed, mirroring engine.WithZobrist.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// Engine owns a loaded puzzle (its grid.Board and the solver's cached state) and runs the
// greedy best-first search over it, either synchronously or asynchronously.
type Engine struct {
	name, author string
	seed         int64
	opts         Options

	mu     sync.Mutex
	board  *grid.Board
	root   solver.State
	active *handle
}

// NewEngine creates an unloaded engine. Call Load before Solve/Launch.
func NewEngine(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		seed:   grid.DefaultZobristSeed,
	}
	for _, fn := range opts {
		fn(e)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Load parses and preprocesses text as a puzzle, replacing any currently loaded board. It
// first waits for an active asynchronous search to finish (see Handle), since the active
// search's board would otherwise outlive the engine's notion of "current puzzle".
func (e *Engine) Load(ctx context.Context, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltActiveLocked(ctx)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	b, err := parse.Decode(lines)
	if err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	grid.Preprocess(b, e.seed)

	e.board = b
	e.root = solver.Root(b)

	logw.Infof(ctx, "Loaded puzzle: %vx%v, %v boxes", b.W, b.H, len(b.InitialBoxes))
	return nil
}

// Solve blocks until the loaded puzzle is solved, proven unsolvable, cancelled or exhausted,
// and returns the lowercase move string (empty on anything but success).
func (e *Engine) Solve(ctx context.Context) (string, error) {
	e.mu.Lock()
	board, root, opt := e.board, e.root, e.solveOptionsLocked()
	e.mu.Unlock()

	if board == nil {
		return "", fmt.Errorf("sokosolve: no puzzle loaded")
	}

	logw.Infof(ctx, "Solve %vx%v, opt=%v", board.W, board.H, opt)
	path, err := (solver.GreedyBestFirst{}).Solve(ctx, board, root, opt)
	if err != nil {
		logw.Infof(ctx, "Solve failed: %v", err)
		return "", err
	}

	out := solver.FormatPath(path)
	logw.Infof(ctx, "Solved in %v moves: %v", len(path), out)
	return out, nil
}

// Outcome is the result delivered on a Launch channel: either a move string or an error.
type Outcome struct {
	Moves string
	Err   error
}

// Handle lets the caller collect the outcome of an asynchronous search. Halt is idempotent and
// blocks until the search goroutine has finished; it does not interrupt a running search. A
// launched search stops early only if the context given to Launch is cancelled or a
// Deadline/MaxExpansions bound is reached.
type Handle interface {
	Halt() Outcome
}

// Launch starts Solve on a dedicated goroutine and returns a Handle plus a one-shot outcome
// channel, so an interactive caller is never blocked by the search itself.
func (e *Engine) Launch(ctx context.Context) (Handle, <-chan Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltActiveLocked(ctx)

	board, root, opt := e.board, e.root, e.solveOptionsLocked()
	out := make(chan Outcome, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	e.active = h

	go h.run(ctx, board, root, opt, out)
	return h, out
}

// Halt waits for the active asynchronous search, if any, to finish and returns its outcome.
func (e *Engine) Halt(ctx context.Context) (Outcome, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.haltActiveLocked(ctx)
}

func (e *Engine) haltActiveLocked(ctx context.Context) (Outcome, bool) {
	if e.active == nil {
		return Outcome{}, false
	}
	out := e.active.Halt()
	logw.Infof(ctx, "Search halted: %v", out)
	e.active = nil
	return out, true
}

func (e *Engine) solveOptionsLocked() solver.Options {
	var cache *solver.HeuristicCache
	if e.opts.CacheSize > 0 {
		cache = solver.NewHeuristicCache(e.opts.CacheSize)
	}
	return solver.Options{
		Deadline:      e.opts.Deadline,
		MaxExpansions: e.opts.MaxExpansions,
		Cache:         cache,
	}
}

type handle struct {
	init, quit iox.AsyncCloser

	mu      sync.Mutex
	outcome Outcome
}

func (h *handle) run(ctx context.Context, board *grid.Board, root solver.State, opt solver.Options, out chan Outcome) {
	defer h.init.Close()
	defer close(out)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	path, err := (solver.GreedyBestFirst{}).Solve(wctx, board, root, opt)

	o := Outcome{Err: err}
	if err == nil {
		o.Moves = solver.FormatPath(path)
	}

	h.mu.Lock()
	h.outcome = o
	h.mu.Unlock()

	out <- o
}

// Halt waits for the search to finish and returns its outcome. The quit signal it raises
// afterwards does not affect the finished search. Idempotent.
func (h *handle) Halt() Outcome {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcome
}
