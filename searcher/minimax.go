package searcher

import (
	"math"

	"checkers/game"
)

// MinimaxBot chooses moves by exhaustive fixed-depth game-tree search
// with no pruning. Black always maximizes and Red always minimizes,
// matching the evaluation's sign convention; the binding is fixed
// regardless of which color the bot plays for.
type MinimaxBot struct {
	state *game.GameState
	color game.Color
	depth int
}

func NewMinimaxBot(state *game.GameState, color game.Color, depth int) *MinimaxBot {
	return &MinimaxBot{
		state: state,
		color: color,
		depth: depth,
	}
}

func (b *MinimaxBot) SuggestMove() (game.Coord, game.Coord) {
	result := minimax(b.state, b.depth, b.color)
	return result.start, result.end
}

type searchResult struct {
	start game.Coord
	end   game.Coord
	found bool
	value float64
}

// minimax scores the position with the given color to move. At depth 0 it
// returns the static evaluation and proposes no move. Otherwise every
// complete move is applied to a private copy of the state and scored one
// ply deeper for the opposite color; only a strictly better value
// replaces the incumbent, so ties keep the first move in piece order.
// With no legal moves the value stays at the worst possible for the side
// to move.
func minimax(state *game.GameState, depth int, color game.Color) searchResult {
	if depth == 0 {
		return searchResult{value: state.Evaluate()}
	}

	best := searchResult{value: math.Inf(-1)}
	if color == game.Red {
		best.value = math.Inf(1)
	}

	moves := state.PlayerValidMoves(color)
	for _, start := range sortedStarts(moves) {
		for _, path := range moves[start] {
			end := path.Final()

			next := state.Copy()
			if err := next.Move(color, start, end); err != nil {
				panic(err)
			}

			child := minimax(next, depth-1, color.Opponent())
			better := child.value > best.value
			if color == game.Red {
				better = child.value < best.value
			}
			if better {
				best = searchResult{start: start, end: end, found: true, value: child.value}
			}
		}
	}
	return best
}
