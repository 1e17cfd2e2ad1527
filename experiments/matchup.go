package experiments

import (
	"github.com/rs/zerolog/log"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

// Matchup pits two bot configurations against each other for a number of
// games on the same board size. Black moves first in every game.
type Matchup struct {
	Rows  int
	Games int
	Black metrics.BotConfig
	Red   metrics.BotConfig
}

// Result tallies a matchup's outcomes.
type Result struct {
	BlackWins int
	RedWins   int
	Draws     int
	Records   []metrics.GameRecord
}

// Run plays all games of the matchup and returns the tallies along with
// per-game records.
func Run(m Matchup) Result {
	state := game.NewGameState(m.Rows)
	result := Result{}

	log.Info().Msgf("starting matchup of %d games between black=%+v and red=%+v",
		m.Games, m.Black, m.Red)

	for i := 0; i < m.Games; i++ {
		black := newBot(state, game.Black, m.Black, uint64(i))
		red := newBot(state, game.Red, m.Red, uint64(i))

		outcome, gameMetric := engine.NewLocal(state, black, red).Run()

		switch outcome {
		case game.BlackWins:
			result.BlackWins++
		case game.RedWins:
			result.RedWins++
		case game.Draw:
			result.Draws++
		}
		result.Records = append(result.Records, metrics.GameRecord{
			ID:         i + 1,
			Black:      m.Black.ID,
			Red:        m.Red.ID,
			GameMetric: gameMetric,
		})

		log.Info().Msgf("completed game %d of %d in %d moves, winner: %s",
			i+1, m.Games, gameMetric.TotalMoves, outcome)
	}

	log.Info().Msgf("completed matchup: black=%d red=%d draws=%d",
		result.BlackWins, result.RedWins, result.Draws)

	return result
}

// newBot builds the bot a config asks for. The game index offsets the
// random bot's seed so repeated games differ while the whole matchup
// stays reproducible.
func newBot(state *game.GameState, color game.Color, cfg metrics.BotConfig, gameIndex uint64) searcher.Bot {
	if cfg.Depth > 0 {
		return searcher.NewMinimaxBot(state, color, cfg.Depth)
	}
	return searcher.NewRandomBot(state, color, cfg.Seed+gameIndex)
}
