package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/game"
)

func TestMinimaxDepthZero(t *testing.T) {
	state := game.NewGameState(3)

	result := minimax(state, 0, game.Black)
	require.False(t, result.found, "depth zero proposes no move")
	require.Equal(t, state.Evaluate(), result.value)
}

func TestMinimaxTakesForcedJump(t *testing.T) {
	state := game.NewGameState(3)
	require.NoError(t, state.Move(game.Black, game.Coord{Row: 2, Col: 1}, game.Coord{Row: 3, Col: 0}))
	require.NoError(t, state.Move(game.Red, game.Coord{Row: 5, Col: 2}, game.Coord{Row: 4, Col: 1}))

	// Red walked into a capture: black's only legal move is the jump.
	bot := NewMinimaxBot(state, game.Black, 1)
	start, end := bot.SuggestMove()
	require.Equal(t, game.Coord{Row: 3, Col: 0}, start)
	require.Equal(t, game.Coord{Row: 5, Col: 2}, end)

	result := minimax(state, 1, game.Black)
	require.True(t, result.found)
	require.Equal(t, 1.0, result.value, "one man up after the capture")
}

func TestMinimaxTieBreak(t *testing.T) {
	state := game.NewGameState(3)

	// Every opening move scores 0.0 at depth one, so the first move in
	// piece order wins: the lowest-coordinate movable piece, first
	// direction.
	bot := NewMinimaxBot(state, game.Black, 1)
	start, end := bot.SuggestMove()
	require.Equal(t, game.Coord{Row: 2, Col: 1}, start)
	require.Equal(t, game.Coord{Row: 3, Col: 2}, end)
}

func TestMinimaxRedMinimizes(t *testing.T) {
	state := game.NewGameState(3)
	require.NoError(t, state.Move(game.Black, game.Coord{Row: 2, Col: 1}, game.Coord{Row: 3, Col: 2}))

	// At depth two red sees black's replies. Stepping into (4,1) or (4,3)
	// hands black a capture worth +1.0, so a minimizing red must pick a
	// move whose subtree stays at 0.0.
	result := minimax(state, 2, game.Red)
	require.True(t, result.found)
	require.Equal(t, 0.0, result.value)

	next := state.Copy()
	require.NoError(t, next.Move(game.Red, result.start, result.end))
	require.Equal(t, 0.0, minimax(next, 1, game.Black).value)
}

func TestMinimaxSuggestsLegalMoves(t *testing.T) {
	state := game.NewGameState(2)
	bot := NewMinimaxBot(state, game.Black, 3)

	start, end := bot.SuggestMove()
	require.True(t, state.IsValidMove(game.Black, start, end))
}
