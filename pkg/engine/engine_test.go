package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamberg/sokosolve/pkg/engine"
)

const twoBoxPuzzle = "#######\n#@$ $.#\n#   . #\n#######\n"

func TestEngineSolveBlocking(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, "sokosolve", "test")

	require.NoError(t, e.Load(ctx, twoBoxPuzzle))

	moves, err := e.Solve(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, moves)
}

func TestEngineSolveMalformed(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, "sokosolve", "test")

	err := e.Load(ctx, "#####\n#@$.#\n#####\n#?##\n")
	assert.Error(t, err)
}

func TestEngineLaunchAndHalt(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, "sokosolve", "test")
	require.NoError(t, e.Load(ctx, twoBoxPuzzle))

	handle, out := e.Launch(ctx)
	outcome := handle.Halt()
	assert.Equal(t, outcome, <-out)
	assert.NoError(t, outcome.Err)
	assert.NotEmpty(t, outcome.Moves)
}

func TestEngineNameIncludesVersion(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, "sokosolve", "test")
	assert.Contains(t, e.Name(), "sokosolve")
}
