// Package parse reads textual Sokoban level notation into a raw grid.Board, mirroring the
// separation this codebase drew between FEN parsing and board construction: Decode only
// parses; deriving the play-ready structure (deadlock squares, rooms, Zobrist table) is a
// separate, explicit preprocessing step (see grid.Preprocess).
package parse

import (
	"fmt"

	"github.com/tamberg/sokosolve/pkg/grid"
)

// ErrMalformedInput is wrapped by every parse failure.
var ErrMalformedInput = fmt.Errorf("sokosolve: malformed input")

// ParseError describes a specific malformed-input condition.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedInput, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedInput
}

func malformed(format string, args ...interface{}) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// cell encoding recognized per spec.md 4.1.
const (
	chFloor     = ' '
	chWall      = '#'
	chGoal      = '.'
	chBox       = '$'
	chBoxGoal   = '*'
	chPlayer    = '@'
	chPlayerGoal = '+'
)

// Decode parses a sequence of text lines in standard Sokoban notation into a raw
// grid.Board (walls, goals, initial box/pusher positions). Dead cells, rooms and the
// Zobrist table are not yet computed; call grid.Preprocess on the result.
func Decode(lines []string) (*grid.Board, error) {
	if len(lines) == 0 {
		return nil, malformed("empty grid")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)
	if width == 0 {
		return nil, malformed("empty grid")
	}
	if width*height > grid.MaxCells {
		return nil, malformed("grid too large: %d cells exceeds limit of %d", width*height, grid.MaxCells)
	}

	b := &grid.Board{
		W:     width,
		H:     height,
		Walls: grid.NewBitSet(width * height),
		Goals: grid.NewBitSet(width * height),
	}

	var playerCount int
	var boxCells, goalCells []grid.Cell

	for row, line := range lines {
		for col := 0; col < width; col++ {
			ch := rune(chFloor)
			if col < len(line) {
				ch = rune(line[col])
			}

			c := grid.Cell(row*width + col)
			switch ch {
			case chFloor:
				// nothing to record
			case chWall:
				b.Walls.Set(c)
			case chGoal:
				b.Goals.Set(c)
				goalCells = append(goalCells, c)
			case chBox:
				boxCells = append(boxCells, c)
			case chBoxGoal:
				b.Goals.Set(c)
				goalCells = append(goalCells, c)
				boxCells = append(boxCells, c)
			case chPlayer:
				b.InitialPlayer = c
				playerCount++
			case chPlayerGoal:
				b.Goals.Set(c)
				goalCells = append(goalCells, c)
				b.InitialPlayer = c
				playerCount++
			default:
				return nil, malformed("unrecognized character %q at row %d, col %d", ch, row, col)
			}
		}
	}

	if playerCount != 1 {
		return nil, malformed("expected exactly one pusher, found %d", playerCount)
	}
	if len(boxCells) != len(goalCells) {
		return nil, malformed("box count (%d) does not match goal count (%d)", len(boxCells), len(goalCells))
	}

	b.GoalList = goalCells
	b.InitialBoxes = boxCells
	b.RoomOf = nil
	b.RoomGoalCount = nil

	return b, nil
}
