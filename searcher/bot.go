package searcher

import "checkers/game"

// Bot suggests complete moves for one side of a game. Implementations are
// bound to a game state and a color at construction and drive the same
// public engine surface a human-driven caller does.
type Bot interface {
	// SuggestMove returns the square of the piece to move and the final
	// square of the chosen complete move.
	SuggestMove() (start, end game.Coord)
}
