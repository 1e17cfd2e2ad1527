package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// MaxMoves caps a single game's length as a guard against a stalled bot
// loop. The draw-by-attrition rule normally ends games long before this.
const MaxMoves = 10000

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is
	// reached
	Run() (winner game.Outcome, gameMetric metrics.GameMetric)
}
