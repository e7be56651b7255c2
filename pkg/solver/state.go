// Package solver implements the greedy best-first Sokoban search: state representation,
// successor generation, heuristic scoring, dynamic deadlock detection and the search driver
// itself.
package solver

import (
	"sort"

	"github.com/tamberg/sokosolve/pkg/grid"
)

// HeuristicInf is the score reserved for a detected hard deadlock. The search does not assign
// it: HardDeadlock rejects such states before they are scored or enqueued.
const HeuristicInf = 1 << 30

// State is a position in the search: the pusher's cell, the box multiset, the running
// Zobrist hash and the move path taken from the root. It is treated as immutable once built;
// every transition in expand.go produces a new State rather than mutating one in place.
type State struct {
	Player  grid.Cell
	Boxes   []grid.Cell // sorted ascending
	Zobrist grid.ZobristHash
	Path    []grid.Dir
	H       int

	// Pushed reports whether the move that produced this State was a push (as opposed to a
	// walk that left the box set unchanged). The room-overload check in HardDeadlock only
	// applies "after a push" (spec.md 4.5): a walk never changes which room holds how many
	// boxes, so re-checking room occupancy on every walk successor would reject states for a
	// condition that was already true of their unchanged, already-accepted parent.
	Pushed bool
}

// Root builds the initial State for a freshly preprocessed board: the parsed pusher and box
// positions, hashed with the player-reach representative already folded in.
func Root(b *grid.Board) State {
	boxes := append([]grid.Cell(nil), b.InitialBoxes...)
	sort.Slice(boxes, func(i, j int) bool { return boxes[i] < boxes[j] })

	rep := reachRepresentative(b, b.InitialPlayer, boxes)
	hash := b.Zobrist.Hash(boxes, rep)

	return State{
		Player:  b.InitialPlayer,
		Boxes:   boxes,
		Zobrist: hash,
	}
}

// Solved reports whether every box sits on a goal.
func (s State) Solved(b *grid.Board) bool {
	for _, box := range s.Boxes {
		if !b.IsGoal(box) {
			return false
		}
	}
	return true
}

// HasBox reports whether a box sits at c, via a binary search over the sorted slice.
func (s State) HasBox(c grid.Cell) bool {
	return hasBox(s.Boxes, c)
}

// withBoxMoved returns a copy of Boxes with the box at "from" relocated to "to", kept sorted.
// Re-insertion is a linear shift, not a full re-sort: at most one element moves past others.
func withBoxMoved(boxes []grid.Cell, from, to grid.Cell) []grid.Cell {
	out := make([]grid.Cell, len(boxes))
	copy(out, boxes)

	i := sort.Search(len(out), func(i int) bool { return out[i] >= from })
	if i >= len(out) || out[i] != from {
		panic("solver: box not found at expected cell")
	}

	out = append(out[:i], out[i+1:]...)

	j := sort.Search(len(out), func(i int) bool { return out[i] >= to })
	out = append(out, grid.NoCell)
	copy(out[j+1:], out[j:])
	out[j] = to
	return out
}
