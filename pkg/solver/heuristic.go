package solver

import "github.com/tamberg/sokosolve/pkg/grid"

// frozenPenalty is added per non-goal frozen box: a round figure large enough to dominate the
// assignment cost of a few remaining boxes, but finite so the search can still compare two
// deadlocked-looking states (it is HardDeadlock, not this penalty, that forbids enqueueing).
const frozenPenalty = 30

// Heuristic scores a state: the sum of each box's minimum Manhattan distance to any goal, plus
// a per-frozen-box penalty. It never returns HeuristicInf on its own; HardDeadlock decides
// whether a state is enqueued at all.
func Heuristic(b *grid.Board, s State) int {
	h := 0
	for _, box := range s.Boxes {
		h += assignmentCost(b, box)
		if !b.IsGoal(box) && isFrozen(b, s, box) {
			h += frozenPenalty
		}
	}
	return h
}

func assignmentCost(b *grid.Board, box grid.Cell) int {
	best := -1
	for _, g := range b.GoalList {
		d := manhattan(b, box, g)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func manhattan(b *grid.Board, a, c grid.Cell) int {
	ar, ac := a.RowCol(b.W)
	cr, cc := c.RowCol(b.W)
	return abs(ar-cr) + abs(ac-cc)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// HardDeadlock reports whether s can never reach a solved configuration: a non-goal box is
// frozen, or (if s was just reached by a push) some room already holds more boxes than it has
// goals. The room-overload check is scoped to push-produced states per spec.md 4.5 ("after a
// push"): a walk never changes the box set, so applying it to walk successors too would
// re-reject every walk out of an already-accepted, already-overloaded parent state.
func HardDeadlock(b *grid.Board, s State) bool {
	for _, box := range s.Boxes {
		if !b.IsGoal(box) && isFrozen(b, s, box) {
			return true
		}
	}
	return s.Pushed && roomOverloaded(b, s)
}
