package solver_test

import (
	"context"
	"testing"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamberg/sokosolve/pkg/grid"
	"github.com/tamberg/sokosolve/pkg/grid/parse"
	"github.com/tamberg/sokosolve/pkg/solver"
)

func solve(t *testing.T, lines []string) string {
	t.Helper()

	b, err := parse.Decode(lines)
	require.NoError(t, err)
	require.NoError(t, b.Validate())
	grid.Preprocess(b, grid.DefaultZobristSeed)

	root := solver.Root(b)
	path, err := (solver.GreedyBestFirst{}).Solve(context.Background(), b, root, solver.Options{})
	if err != nil {
		require.ErrorIs(t, err, solver.ErrNoSolution)
		return ""
	}
	return solver.FormatPath(path)
}

// simulate replays moves against the parsed initial configuration and reports whether the
// result has every box on a goal, exercising the solution-validity law of spec.md 8
// independently of the search's own bookkeeping.
func simulate(t *testing.T, lines []string, moves string) bool {
	t.Helper()

	b, err := parse.Decode(lines)
	require.NoError(t, err)

	player := b.InitialPlayer
	boxes := append([]grid.Cell(nil), b.InitialBoxes...)

	has := func(c grid.Cell) int {
		for i, bx := range boxes {
			if bx == c {
				return i
			}
		}
		return -1
	}

	for _, r := range moves {
		var d grid.Dir
		switch r {
		case 'u':
			d = grid.Up
		case 'd':
			d = grid.Down
		case 'l':
			d = grid.Left
		case 'r':
			d = grid.Right
		default:
			t.Fatalf("unrecognized move rune %q", r)
		}

		next, ok := b.Step(player, d)
		require.True(t, ok)
		require.False(t, b.IsWall(next))

		if i := has(next); i >= 0 {
			beyond, ok := b.Step(next, d)
			require.True(t, ok)
			require.False(t, b.IsWall(beyond))
			require.Equal(t, -1, has(beyond), "push destination already holds a box")
			boxes[i] = beyond
		}
		player = next
	}

	for _, box := range boxes {
		if !b.IsGoal(box) {
			return false
		}
	}
	return true
}

func TestSolveScenario1SinglePush(t *testing.T) {
	lines := []string{
		"#####",
		"#@$.#",
		"#####",
	}
	moves := solve(t, lines)
	assert.Equal(t, "r", moves)
	assert.True(t, simulate(t, lines, moves))
}

func TestSolveScenario2WalkThenPush(t *testing.T) {
	lines := []string{
		"######",
		"#@ $.#",
		"######",
	}
	moves := solve(t, lines)
	assert.Equal(t, "rr", moves)
	assert.True(t, simulate(t, lines, moves))
}

func TestSolveScenario3CornerDeadlock(t *testing.T) {
	lines := []string{
		"#####",
		"#$ .#",
		"# @ #",
		"#####",
	}
	assert.Equal(t, "", solve(t, lines))
}

func TestSolveScenario4AlreadySolved(t *testing.T) {
	lines := []string{
		"###",
		"#*#",
		"#@#",
		"###",
	}
	assert.Equal(t, "", solve(t, lines))
}

func TestSolveScenario5TwoBoxPush(t *testing.T) {
	lines := []string{
		"#######",
		"#@$ $.#",
		"#   . #",
		"#######",
	}
	moves := solve(t, lines)
	require.NotEmpty(t, moves)
	assert.True(t, simulate(t, lines, moves))
}

func TestSolveScenario6RoomOverload(t *testing.T) {
	lines := []string{
		"########",
		"#@$$ . #",
		"### ####",
		"#  .   #",
		"########",
	}
	moves := solve(t, lines)
	if moves != "" {
		assert.True(t, simulate(t, lines, moves))
	}
}

func TestSolveEmptyPuzzle(t *testing.T) {
	lines := []string{
		"###",
		"#@#",
		"###",
	}
	assert.Equal(t, "", solve(t, lines))
}

func TestSolveDeterministic(t *testing.T) {
	lines := []string{
		"#######",
		"#@$ $.#",
		"#   . #",
		"#######",
	}
	first := solve(t, lines)
	second := solve(t, lines)
	assert.Equal(t, first, second)
}

func TestSolveRespectsMaxExpansions(t *testing.T) {
	lines := []string{
		"#######",
		"#@$ $.#",
		"#   . #",
		"#######",
	}
	b, err := parse.Decode(lines)
	require.NoError(t, err)
	grid.Preprocess(b, grid.DefaultZobristSeed)
	root := solver.Root(b)

	_, err = (solver.GreedyBestFirst{}).Solve(context.Background(), b, root, solver.Options{
		MaxExpansions: lang.Some(0),
	})
	assert.ErrorIs(t, err, solver.ErrExhausted)
}
