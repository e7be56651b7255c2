package solver

import "github.com/tamberg/sokosolve/pkg/grid"

// isFrozen reports whether the box at c is frozen: immovable in both axes, and therefore a
// hard deadlock unless it already sits on a goal. A box is blocked along an axis if both
// neighbors on that axis are obstructed: each is a wall, a dead non-goal cell, or itself a
// frozen box (checked recursively).
//
// Two adjacent boxes can mutually "support" each other into looking frozen (each blocked only
// by the other), which would make naive recursion infinite. treatAsWall breaks that: while
// testing whether a neighboring box is frozen, the box under inspection is treated as an
// immovable wall rather than re-entering the recursion.
func isFrozen(b *grid.Board, s State, c grid.Cell) bool {
	return frozenAssuming(b, s, c, grid.NoCell)
}

func frozenAssuming(b *grid.Board, s State, c, treatAsWall grid.Cell) bool {
	return blockedOnAxis(b, s, c, grid.Left, grid.Right, treatAsWall) &&
		blockedOnAxis(b, s, c, grid.Up, grid.Down, treatAsWall)
}

// blockedOnAxis reports whether the box cannot move along either direction of the axis: a
// push in direction d1 is impossible if d1's neighbor is obstructed, and likewise for d2. Both
// must be obstructed for the axis itself to count as blocked.
func blockedOnAxis(b *grid.Board, s State, c grid.Cell, d1, d2 grid.Dir, treatAsWall grid.Cell) bool {
	return blockedInDirection(b, s, c, d1, treatAsWall) && blockedInDirection(b, s, c, d2, treatAsWall)
}

func blockedInDirection(b *grid.Board, s State, c grid.Cell, d grid.Dir, treatAsWall grid.Cell) bool {
	n, ok := b.Step(c, d)
	if !ok || n == treatAsWall || b.IsWall(n) {
		return true
	}
	if b.IsDead(n) && !b.IsGoal(n) {
		return true
	}
	if s.HasBox(n) {
		return frozenAssuming(b, s, n, c)
	}
	return false
}
