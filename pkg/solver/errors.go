package solver

import "fmt"

// ErrNoSolution means the frontier emptied without reaching a solved state.
var ErrNoSolution = fmt.Errorf("sokosolve: no solution")

// ErrCancelled means the caller's context was cancelled or its deadline exceeded before a
// solution was found.
var ErrCancelled = fmt.Errorf("sokosolve: search cancelled")

// ErrExhausted means Options.MaxExpansions was reached before a solution was found.
var ErrExhausted = fmt.Errorf("sokosolve: expansion budget exhausted")
