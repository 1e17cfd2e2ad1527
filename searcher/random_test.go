package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/game"
)

func TestRandomBotSuggestsLegalMoves(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		state := game.NewGameState(3)
		bot := NewRandomBot(state, game.Black, seed)

		start, end := bot.SuggestMove()
		require.True(t, state.IsValidMove(game.Black, start, end),
			"seed %d suggested an illegal move", seed)
	}
}

func TestRandomBotReproducible(t *testing.T) {
	const seed = 42

	var starts []game.Coord
	var ends []game.Coord
	for run := 0; run < 2; run++ {
		state := game.NewGameState(3)
		black := NewRandomBot(state, game.Black, seed)
		red := NewRandomBot(state, game.Red, seed+1)

		current := game.Black
		for i := 0; i < 10; i++ {
			bot := Bot(black)
			if current == game.Red {
				bot = red
			}
			start, end := bot.SuggestMove()
			require.NoError(t, state.Move(current, start, end))

			if run == 0 {
				starts = append(starts, start)
				ends = append(ends, end)
			} else {
				require.Equal(t, starts[i], start, "move %d diverged", i)
				require.Equal(t, ends[i], end, "move %d diverged", i)
			}

			if !state.TurnIncomplete() {
				current = current.Opponent()
			}
		}
	}
}

func TestRandomBotPanicsWithoutMoves(t *testing.T) {
	state := playUntilOver(t, 99)

	// A decisive result means the loser had no legal move left.
	var loser game.Color
	switch state.Winner() {
	case game.BlackWins:
		loser = game.Red
	case game.RedWins:
		loser = game.Black
	default:
		t.Skip("self-play ended in a draw")
	}

	bot := NewRandomBot(state, loser, 7)
	require.Panics(t, func() { bot.SuggestMove() })
}

// playUntilOver plays random self-play until the game ends.
func playUntilOver(t *testing.T, seed uint64) *game.GameState {
	t.Helper()

	state := game.NewGameState(2)
	black := NewRandomBot(state, game.Black, seed)
	red := NewRandomBot(state, game.Red, seed)

	current := game.Black
	for moves := 0; state.Winner() == game.NoWinner; moves++ {
		require.Less(t, moves, 10000, "self-play did not terminate")

		bot := Bot(black)
		if current == game.Red {
			bot = red
		}
		start, end := bot.SuggestMove()
		require.NoError(t, state.Move(current, start, end))
		if !state.TurnIncomplete() {
			current = current.Opponent()
		}
	}
	return state
}
