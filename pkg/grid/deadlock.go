package grid

// ComputeDeadCells computes the static deadlock squares: cells from which no sequence of
// pushes can ever deliver a box to a goal, independent of where any other box sits. It works
// backwards from each goal by simulating the box being *pulled* rather than pushed, since a
// cell is alive exactly when a box placed there could, in isolation, be pushed onto some goal.
//
// A non-wall cell next to an alive cell becomes alive if the cell one step past it, on the
// side away from that alive neighbor, is not a wall: a pusher standing there can push a box
// from the cell onto its alive neighbor. The search starts at every goal (a box already on a
// goal needs no further pushes) and flood-fills outward to a fixed point.
func ComputeDeadCells(b *Board) BitSet {
	alive := NewBitSet(b.NumCells())

	var queue []Cell
	for _, g := range b.GoalList {
		alive.Set(g)
		queue = append(queue, g)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		for _, d := range AllDirs {
			// A box at "from" can be pushed onto c (in reverse: pulled from c to "from") if the
			// pusher's cell, one further step past "from" in the same direction, is clear of walls.
			from, ok := b.Step(c, d)
			if !ok || b.IsWall(from) {
				continue
			}
			pullerCell, ok := b.Step(from, d)
			if !ok || b.IsWall(pullerCell) {
				continue
			}
			if alive.IsSet(from) {
				continue
			}
			alive.Set(from)
			queue = append(queue, from)
		}
	}

	dead := NewBitSet(b.NumCells())
	for c := 0; c < b.NumCells(); c++ {
		cell := Cell(c)
		if b.IsWall(cell) {
			continue
		}
		if !alive.IsSet(cell) {
			dead.Set(cell)
		}
	}
	return dead
}
