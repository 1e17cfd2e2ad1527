package game

import "fmt"

// singleJump is one legal jump step: the landing square and the opposing
// piece's square jumped over.
type singleJump struct {
	dest Coord
	over Coord
}

// PlayerValidMoves returns every complete move the given player may make
// this turn, keyed by the coordinate of the piece to move. Mid-way through
// a jump chain only the continuing piece's chains are offered. Otherwise
// the forced-capture rule applies: if any piece of the color has a jump
// available, only jump chains are returned; non-jump moves appear only
// when no capture exists. Pieces with no moves are omitted.
func (gs *GameState) PlayerValidMoves(color Color) map[Coord][]Path {
	moves := make(map[Coord][]Path)

	if gs.TurnIncomplete() {
		piece, _ := gs.board.Get(*gs.jumping)
		if piece.Color() == color {
			moves[*gs.jumping] = gs.allJumps(*gs.jumping)
			return moves
		}
	}

	if gs.requireJump(color) {
		for _, coord := range gs.coords(color) {
			if jumps := gs.allJumps(coord); len(jumps) > 0 {
				moves[coord] = jumps
			}
		}
	} else {
		for _, coord := range gs.coords(color) {
			if steps := gs.nonJumps(coord); len(steps) > 0 {
				moves[coord] = steps
			}
		}
	}

	return moves
}

// PieceValidMoves returns every complete move available to the piece on
// the given square, ignoring whose turn it is: its jump chains if it has
// any, otherwise its non-jump destinations.
func (gs *GameState) PieceValidMoves(coord Coord) ([]Path, error) {
	piece, err := gs.board.Get(coord)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, fmt.Errorf("piece moves at (%d, %d): %w", coord.Row, coord.Col, ErrEmptySquare)
	}
	return gs.movesFrom(coord), nil
}

// IsValidMove reports whether moving from start to end is legal for the
// given player at the current turn state. end may be an intermediate
// landing square of a jump chain.
func (gs *GameState) IsValidMove(color Color, start, end Coord) bool {
	if _, ok := gs.PlayerValidMoves(color)[start]; !ok {
		return false
	}
	for _, path := range gs.movesFrom(start) {
		if path.Contains(end) {
			return true
		}
	}
	return false
}

// IsValidDest reports whether the piece at start can reach end as the
// final square of one of its complete moves, regardless of whose turn it
// is.
func (gs *GameState) IsValidDest(start, end Coord) bool {
	piece, err := gs.board.Get(start)
	if err != nil || piece == nil {
		return false
	}
	for _, path := range gs.movesFrom(start) {
		if path.Final() == end {
			return true
		}
	}
	return false
}

// movesFrom enumerates the complete moves of the piece on the given
// occupied square: jump chains if it has any, else non-jump steps.
func (gs *GameState) movesFrom(start Coord) []Path {
	if jumps := gs.allJumps(start); len(jumps) > 0 {
		return jumps
	}
	return gs.nonJumps(start)
}

// requireJump reports whether the player must capture this turn: either a
// jump chain is in progress with their piece, or any of their pieces has
// a jump available.
func (gs *GameState) requireJump(color Color) bool {
	if gs.TurnIncomplete() {
		piece, _ := gs.board.Get(*gs.jumping)
		if piece.Color() == color {
			return true
		}
	}
	for _, coord := range gs.coords(color) {
		if len(gs.allJumps(coord)) > 0 {
			return true
		}
	}
	return false
}

// nonJumps returns the single-step diagonal moves of the piece at start:
// the two forward diagonals for a man, all four for a king. A destination
// is valid iff it is on the board and empty.
func (gs *GameState) nonJumps(start Coord) []Path {
	piece, _ := gs.board.Get(start)
	if piece == nil {
		return nil
	}

	var steps []Path
	for _, dir := range pieceDirections(piece) {
		dest := Coord{Row: start.Row + dir.Row, Col: start.Col + dir.Col}
		if target, err := gs.board.Get(dest); err == nil && target == nil {
			steps = append(steps, Path{dest})
		}
	}
	return steps
}

// allJumps returns every maximal jump chain of the piece at start, or nil
// if the square is empty or no jump is available.
func (gs *GameState) allJumps(start Coord) []Path {
	piece, _ := gs.board.Get(start)
	if piece == nil {
		return nil
	}
	return gs.completeJumps(start, piece.Color(), piece.IsKing(), nil)
}

// completeJumps searches depth-first for every maximal jump chain from
// start. jumped is the set of squares already captured along this branch;
// each recursion gets its own copy so sibling branches stay independent.
// A branch with no further legal jump terminates its chain.
func (gs *GameState) completeJumps(start Coord, color Color, king bool, jumped map[Coord]bool) []Path {
	jumps := gs.singleJumps(start, color, king, jumped)
	if len(jumps) == 0 {
		return nil
	}

	var paths []Path
	for _, jump := range jumps {
		branch := make(map[Coord]bool, len(jumped)+1)
		for c := range jumped {
			branch[c] = true
		}
		branch[jump.over] = true

		subPaths := gs.completeJumps(jump.dest, color, king, branch)
		if len(subPaths) == 0 {
			paths = append(paths, Path{jump.dest})
			continue
		}
		for _, sub := range subPaths {
			path := make(Path, 0, len(sub)+1)
			path = append(path, jump.dest)
			path = append(path, sub...)
			paths = append(paths, path)
		}
	}
	return paths
}

// singleJumps returns the legal single jumps from start for a piece of the
// given color and king status. A jump is legal iff the landing square is
// on the board and empty, the midpoint holds an opposing piece, and the
// midpoint has not already been captured along this chain.
func (gs *GameState) singleJumps(start Coord, color Color, king bool, jumped map[Coord]bool) []singleJump {
	var jumps []singleJump
	for _, dir := range colorDirections(color, king) {
		dest := Coord{Row: start.Row + 2*dir.Row, Col: start.Col + 2*dir.Col}
		over := Coord{Row: start.Row + dir.Row, Col: start.Col + dir.Col}

		target, err := gs.board.Get(dest)
		if err != nil || target != nil {
			continue
		}
		mid, _ := gs.board.Get(over)
		if mid == nil || mid.Color() == color || jumped[over] {
			continue
		}
		jumps = append(jumps, singleJump{dest: dest, over: over})
	}
	return jumps
}

// pieceDirections lists the unit diagonal directions the piece may move
// in: row+1 for Black men, row-1 for Red men, all four for kings.
func pieceDirections(p *Piece) []Coord {
	return colorDirections(p.Color(), p.IsKing())
}

func colorDirections(color Color, king bool) []Coord {
	dirs := make([]Coord, 0, 4)
	if color == Black || king {
		dirs = append(dirs, Coord{Row: 1, Col: 1}, Coord{Row: 1, Col: -1})
	}
	if color == Red || king {
		dirs = append(dirs, Coord{Row: -1, Col: 1}, Coord{Row: -1, Col: -1})
	}
	return dirs
}
