package solver

import "github.com/tamberg/sokosolve/pkg/grid"

// roomOverloaded reports whether some room currently holds more boxes than it has goal
// cells. The room partition (grid.ComputeRooms) is an approximation: it may under- or
// over-split pathological maps, so this is a sound-but-incomplete pruner — overload always
// implies deadlock, but its absence does not imply the state is still solvable.
func roomOverloaded(b *grid.Board, s State) bool {
	counts := make(map[int32]int, len(s.Boxes))
	for _, box := range s.Boxes {
		id := b.RoomOf[box]
		if id < 0 {
			continue
		}
		counts[id]++
	}
	for id, count := range counts {
		if count > b.RoomGoalCount[id] {
			return true
		}
	}
	return false
}
