package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/experiments"
	"checkers/experiments/metrics"
)

func main() {
	rows := flag.Int("rows", 3, "rows of pieces per player")
	games := flag.Int("games", 10, "number of games to simulate")
	depth1 := flag.Int("depth1", 0, "search depth for the black bot (0 plays randomly)")
	depth2 := flag.Int("depth2", 0, "search depth for the red bot (0 plays randomly)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "base seed for random bots")
	playout := flag.Bool("playout", false, "log every move of every game")
	record := flag.Bool("record", false, "write game records to CSV")
	flag.Parse()

	level := zerolog.InfoLevel
	if *playout {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	matchup := experiments.Matchup{
		Rows:  *rows,
		Games: *games,
		Black: metrics.BotConfig{ID: 1, Depth: *depth1, Seed: *seed},
		Red:   metrics.BotConfig{ID: 2, Depth: *depth2, Seed: *seed + 1},
	}
	result := experiments.Run(matchup)

	n := float64(*games)
	fmt.Printf("Black wins (depth = %d): %.2f%%\n", *depth1, 100*float64(result.BlackWins)/n)
	fmt.Printf("Red wins (depth = %d): %.2f%%\n", *depth2, 100*float64(result.RedWins)/n)
	fmt.Printf("Ties: %.2f%%\n", 100*float64(result.Draws)/n)

	if *record {
		writer, err := metrics.NewWriter("matchup")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create results writer")
		}
		if err := writer.WriteBotConfigs([]metrics.BotConfig{matchup.Black, matchup.Red}); err != nil {
			log.Fatal().Err(err).Msg("failed to write bot configs")
		}
		if err := writer.WriteGameRecords(result.Records); err != nil {
			log.Fatal().Err(err).Msg("failed to write game records")
		}
	}
}
