package metrics

import "time"

// BotConfig describes one side of a matchup. Depth 0 selects the random
// bot; a positive depth selects the minimax bot with that search depth.
type BotConfig struct {
	ID    int
	Depth int
	Seed  uint64
}

// GameMetric captures per-game measurements.
type GameMetric struct {
	Winner     string // "Black", "Red", "Draw"
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// GameRecord ties one game's metrics to the configs that played it.
type GameRecord struct {
	ID    int
	Black int // BotConfig.ID
	Red   int // BotConfig.ID
	GameMetric
}
