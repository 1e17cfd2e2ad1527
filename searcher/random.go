package searcher

import (
	"sort"

	"golang.org/x/exp/rand"

	"checkers/game"
)

// RandomBot plays uniformly at random: it picks one of its movable pieces,
// then one of that piece's complete moves.
type RandomBot struct {
	state *game.GameState
	color game.Color
	rng   *rand.Rand
}

func NewRandomBot(state *game.GameState, color game.Color, seed uint64) *RandomBot {
	return &RandomBot{
		state: state,
		color: color,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (b *RandomBot) SuggestMove() (game.Coord, game.Coord) {
	moves := b.state.PlayerValidMoves(b.color)
	starts := sortedStarts(moves)
	if len(starts) == 0 {
		panic("no legal moves to suggest")
	}

	start := starts[b.rng.Intn(len(starts))]
	paths := moves[start]
	path := paths[b.rng.Intn(len(paths))]
	return start, path.Final()
}

// sortedStarts returns the movable piece coordinates in (row, col) order.
// Map iteration order is not stable, so bots fix an order before choosing.
func sortedStarts(moves map[game.Coord][]game.Path) []game.Coord {
	starts := make([]game.Coord, 0, len(moves))
	for coord := range moves {
		starts = append(starts, coord)
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].Row != starts[j].Row {
			return starts[i].Row < starts[j].Row
		}
		return starts[i].Col < starts[j].Col
	})
	return starts
}
