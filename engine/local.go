package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

// Local runs a game between two bots on a shared state, Black moving
// first. Fully synchronous: one move at a time on a single goroutine.
type Local struct {
	State *game.GameState
	black searcher.Bot
	red   searcher.Bot
}

func NewLocal(state *game.GameState, black, red searcher.Bot) *Local {
	return &Local{
		State: state,
		black: black,
		red:   red,
	}
}

// Run resets the state to the starting position and plays until there is
// a winner or the move cap is reached.
func (e *Local) Run() (game.Outcome, metrics.GameMetric) {
	e.State.Setup()

	startTime := time.Now()
	current := game.Black
	moveCount := 0

	log.Debug().Msgf("%s is starting", current)

	for e.State.Winner() == game.NoWinner && moveCount < MaxMoves {
		bot := e.black
		if current == game.Red {
			bot = e.red
		}

		start, end := bot.SuggestMove()
		if err := e.State.Move(current, start, end); err != nil {
			// A bot proposing an illegal move is a programming error, not
			// a game state.
			log.Panic().Err(err).Msgf("%s bot suggested an illegal move", current)
		}
		moveCount++

		log.Debug().Msgf("move %d: %s (%d, %d) -> (%d, %d)",
			moveCount, current, start.Row, start.Col, end.Row, end.Col)

		// The turn passes only once the mover has no chain left to finish.
		if !e.State.TurnIncomplete() {
			current = current.Opponent()
		}
	}

	endTime := time.Now()
	winner := e.State.Winner()
	log.Debug().Msgf("game over after %d moves, winner: %s", moveCount, winner)

	return winner, metrics.GameMetric{
		Winner:     winner.String(),
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: moveCount,
	}
}
