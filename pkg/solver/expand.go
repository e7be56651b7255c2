package solver

import "github.com/tamberg/sokosolve/pkg/grid"

// Expand generates the successors of s by trying each direction in turn. A direction yields
// either a walk (pusher moves onto empty floor), a push (pusher moves onto a box, which moves
// one further cell in the same direction), or nothing (blocked by a wall, a box with nothing
// behind it, or a push destination that is a precomputed dead cell). Static deadlock pruning
// happens here, inline with generation, since it needs no additional state; frozen-box and
// room-overload pruning (frozen.go, room.go) are applied by the caller after Expand returns,
// since they require inspecting the resulting box configuration as a whole.
func Expand(b *grid.Board, s State) []State {
	var out []State

	for _, d := range grid.AllDirs {
		next, ok := b.Step(s.Player, d)
		if !ok || b.IsWall(next) {
			continue
		}

		if s.HasBox(next) {
			beyond, ok := b.Step(next, d)
			if !ok || b.IsWall(beyond) || s.HasBox(beyond) {
				continue
			}
			if b.IsDead(beyond) && !b.IsGoal(beyond) {
				continue
			}
			out = append(out, push(b, s, d, next, beyond))
			continue
		}

		out = append(out, walk(b, s, d, next))
	}

	return out
}

func walk(b *grid.Board, s State, d grid.Dir, next grid.Cell) State {
	oldRep := reachRepresentative(b, s.Player, s.Boxes)
	newRep := reachRepresentative(b, next, s.Boxes)

	path := append(append([]grid.Dir(nil), s.Path...), d)
	return State{
		Player:  next,
		Boxes:   s.Boxes,
		Zobrist: b.Zobrist.WalkMove(s.Zobrist, oldRep, newRep),
		Path:    path,
		Pushed:  false,
	}
}

func push(b *grid.Board, s State, d grid.Dir, next, beyond grid.Cell) State {
	boxes := withBoxMoved(s.Boxes, next, beyond)

	oldRep := reachRepresentative(b, s.Player, s.Boxes)
	newRep := reachRepresentative(b, next, boxes)

	path := append(append([]grid.Dir(nil), s.Path...), d)
	return State{
		Player:  next,
		Boxes:   boxes,
		Zobrist: b.Zobrist.PushMove(s.Zobrist, next, beyond, oldRep, newRep),
		Path:    path,
		Pushed:  true,
	}
}

// reachRepresentative is the player-reach normalization of spec.md 4.3: the minimum cell the
// pusher can reach from "from" by walking over non-wall, non-box floor, without moving any
// box. Two states whose pushers can reach the same region always normalize to the same
// representative cell, regardless of exactly where within that region the pusher stands.
func reachRepresentative(b *grid.Board, from grid.Cell, boxes []grid.Cell) grid.Cell {
	visited := grid.NewBitSet(b.NumCells())
	visited.Set(from)

	rep := from
	queue := []grid.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if c < rep {
			rep = c
		}

		for _, d := range grid.AllDirs {
			nb, ok := b.Step(c, d)
			if !ok || b.IsWall(nb) || visited.IsSet(nb) {
				continue
			}
			if hasBox(boxes, nb) {
				continue
			}
			visited.Set(nb)
			queue = append(queue, nb)
		}
	}
	return rep
}

func hasBox(boxes []grid.Cell, c grid.Cell) bool {
	lo, hi := 0, len(boxes)
	for lo < hi {
		mid := (lo + hi) / 2
		if boxes[mid] < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(boxes) && boxes[lo] == c
}
