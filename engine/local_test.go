package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/game"
	"checkers/searcher"
)

func TestLocalRun(t *testing.T) {
	t.Run("random self-play terminates with a result", func(t *testing.T) {
		state := game.NewGameState(2)
		black := searcher.NewRandomBot(state, game.Black, 1)
		red := searcher.NewRandomBot(state, game.Red, 2)

		outcome, gameMetric := NewLocal(state, black, red).Run()

		require.Contains(t, []game.Outcome{game.BlackWins, game.RedWins, game.Draw}, outcome)
		require.Equal(t, outcome.String(), gameMetric.Winner)
		require.Positive(t, gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		require.Equal(t, gameMetric.EndTime.Sub(gameMetric.StartTime), gameMetric.Duration)
	})

	t.Run("run resets a previously played state", func(t *testing.T) {
		state := game.NewGameState(2)
		require.NoError(t, state.Move(game.Black, game.Coord{Row: 1, Col: 0}, game.Coord{Row: 2, Col: 1}))

		local := NewLocal(state,
			searcher.NewMinimaxBot(state, game.Black, 2),
			searcher.NewRandomBot(state, game.Red, 3))

		outcome, _ := local.Run()
		require.NotEqual(t, game.NoWinner, outcome)
	})
}
