package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamberg/sokosolve/pkg/grid"
	"github.com/tamberg/sokosolve/pkg/grid/parse"
)

func TestBoardStep(t *testing.T) {
	b, err := parse.Decode([]string{
		"###",
		"#@#",
		"###",
	})
	require.NoError(t, err)

	center := grid.Cell(1*3 + 1)

	t.Run("step within bounds", func(t *testing.T) {
		up, ok := b.Step(center, grid.Up)
		assert.True(t, ok)
		assert.Equal(t, grid.Cell(0*3+1), up)
	})

	t.Run("step off the grid edge", func(t *testing.T) {
		_, ok := b.Step(grid.Cell(0), grid.Up)
		assert.False(t, ok)
	})
}

func TestBoardValidate(t *testing.T) {

	t.Run("balanced board is valid", func(t *testing.T) {
		b, err := parse.Decode([]string{
			"#####",
			"#@$.#",
			"#####",
		})
		require.NoError(t, err)
		assert.NoError(t, b.Validate())
	})

	t.Run("unbalanced box and goal counts are rejected", func(t *testing.T) {
		b, err := parse.Decode([]string{
			"#####",
			"#@$.#",
			"#####",
		})
		require.NoError(t, err)

		b.InitialBoxes = append(b.InitialBoxes, b.InitialBoxes[0])
		err = b.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, grid.ErrInternal)
	})

	t.Run("duplicate box positions are rejected", func(t *testing.T) {
		b, err := parse.Decode([]string{
			"######",
			"#@$$.#",
			"#    #",
			"#   .#",
			"######",
		})
		require.NoError(t, err)

		b.InitialBoxes[1] = b.InitialBoxes[0]
		err = b.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, grid.ErrInternal)
	})
}

func TestPreprocess(t *testing.T) {
	b, err := parse.Decode([]string{
		"#####",
		"#@$.#",
		"#####",
	})
	require.NoError(t, err)

	grid.Preprocess(b, grid.DefaultZobristSeed)

	assert.NotNil(t, b.Zobrist)
	assert.NotNil(t, b.RoomOf)
	assert.NotNil(t, b.RoomGoalCount)
	assert.False(t, b.IsDead(b.GoalList[0]), "goal cell is never a deadlock square")
}
