package game

import (
	"fmt"
	"strings"
)

// A color that completes this many consecutive turns without capturing
// ends the game as a draw.
const drawMoveLimit = 40

// GameState owns a board and enforces checkers rules on top of it: turn
// continuation for multi-jump chains, forced capture, promotion, and
// win/draw detection. A game with n starting rows per side is played on a
// (2n+2) x (2n+2) board.
type GameState struct {
	board *Board
	rows  int

	blackCoords []Coord
	redCoords   []Coord

	// jumping marks the square of a piece mid-way through a jump chain.
	// While set, only chains continuing from that square are legal and the
	// turn has not passed.
	jumping *Coord

	winner      Outcome
	drawOffered bool

	blackMovesSinceCapture int
	redMovesSinceCapture   int
}

// NewGameState creates a game where each player starts with the given
// number of rows of pieces, set up in the starting position.
func NewGameState(rows int) *GameState {
	size := 2*rows + 2
	gs := &GameState{
		board: NewBoard(size, size),
		rows:  rows,
	}
	gs.Setup()
	return gs
}

// Setup resets the game to the starting position: Black pieces on the
// first rows of the board, Red pieces on the last rows, all on squares
// where row and column parity differ.
func (gs *GameState) Setup() {
	height := gs.board.NumRows()
	width := gs.board.NumCols()

	gs.blackCoords = nil
	gs.redCoords = nil
	gs.jumping = nil
	gs.winner = NoWinner
	gs.drawOffered = false
	gs.blackMovesSinceCapture = 0
	gs.redMovesSinceCapture = 0

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			coord := Coord{Row: r, Col: c}
			switch {
			case r < gs.rows && r%2 != c%2:
				gs.blackCoords = append(gs.blackCoords, coord)
				gs.board.Set(coord, NewPiece(Black))
			case r >= height-gs.rows && r%2 != c%2:
				gs.redCoords = append(gs.redCoords, coord)
				gs.board.Set(coord, NewPiece(Red))
			default:
				gs.board.Set(coord, nil)
			}
		}
	}
}

// Move executes the given player's move from start to end. For a jump
// chain, end may be any landing square along the chain: every single-jump
// step up to and including end is applied, and if end is not the chain's
// final square the turn stays with the player, who must continue jumping
// from end. Returns ErrInvalidMove if the move is not legal for the
// player's current turn state.
func (gs *GameState) Move(color Color, start, end Coord) error {
	if !gs.IsValidMove(color, start, end) {
		return fmt.Errorf("%s (%d, %d) -> (%d, %d): %w",
			color, start.Row, start.Col, end.Row, end.Col, ErrInvalidMove)
	}

	if gs.requireJump(color) {
		for _, path := range gs.movesFrom(start) {
			if !path.Contains(end) {
				continue
			}
			if end == path.Final() {
				gs.jumping = nil
			} else {
				landing := end
				gs.jumping = &landing
			}
			current := start
			for _, step := range path {
				gs.pieceJumpTo(color, current, step)
				current = step
				if step == end {
					break
				}
			}
			break
		}

		if color == Black {
			gs.blackMovesSinceCapture = 0
		} else {
			gs.redMovesSinceCapture = 0
		}
	} else {
		gs.pieceMoveTo(color, start, end)
		gs.jumping = nil

		if color == Black {
			gs.blackMovesSinceCapture++
		} else {
			gs.redMovesSinceCapture++
		}
	}

	gs.checkPromote(color, end)

	// The winner is only evaluated once the whole turn is finished.
	if !gs.TurnIncomplete() {
		gs.updateWinner(color)
	}
	return nil
}

// TurnIncomplete reports whether the current turn has an unfinished jump
// chain.
func (gs *GameState) TurnIncomplete() bool {
	return gs.jumping != nil
}

// IsDrawOffered reports whether a draw offer is pending.
func (gs *GameState) IsDrawOffered() bool {
	return gs.drawOffered
}

// EndTurn processes a turn-ending command: resigning awards the game to
// the opponent, offering a draw flags the offer, and a plain end-turn is
// a no-op since the turn already advanced when the move completed.
func (gs *GameState) EndTurn(color Color, cmd Command) {
	switch cmd {
	case ResignCommand:
		if color == Black {
			gs.winner = RedWins
		} else {
			gs.winner = BlackWins
		}
	case OfferDrawCommand:
		gs.drawOffered = true
	}
}

// AcceptDraw resolves a pending draw offer. Accepting ends the game as a
// draw; any other command declines and clears the offer.
func (gs *GameState) AcceptDraw(cmd Command) {
	if cmd == AcceptDrawCommand {
		gs.winner = Draw
	} else {
		gs.drawOffered = false
	}
}

// Winner returns the game's outcome, or NoWinner while it is in progress.
func (gs *GameState) Winner() Outcome {
	return gs.winner
}

// Evaluate scores the position by material:
// (black men - red men) + 0.5*(black kings - red kings).
// Positive favors Black, negative favors Red.
func (gs *GameState) Evaluate() float64 {
	blackKings, blackMen := gs.composition(Black)
	redKings, redMen := gs.composition(Red)
	return float64(blackMen-redMen) + 0.5*float64(blackKings-redKings)
}

func (gs *GameState) composition(color Color) (kings, men int) {
	for _, coord := range gs.coords(color) {
		piece, _ := gs.board.Get(coord)
		if piece.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return kings, men
}

// DisplayGrid renders the game's board as a grid of single-character
// cell markers.
func (gs *GameState) DisplayGrid() [][]byte {
	return gs.board.DisplayGrid()
}

func (gs *GameState) String() string {
	var sb strings.Builder
	for _, row := range gs.DisplayGrid() {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Copy returns a deep copy of the game state. Moves applied to the copy
// never affect the original, which is what lets the search explore
// sibling branches independently.
func (gs *GameState) Copy() *GameState {
	blackCoords := make([]Coord, len(gs.blackCoords))
	copy(blackCoords, gs.blackCoords)
	redCoords := make([]Coord, len(gs.redCoords))
	copy(redCoords, gs.redCoords)

	var jumping *Coord
	if gs.jumping != nil {
		j := *gs.jumping
		jumping = &j
	}

	return &GameState{
		board:                  gs.board.copy(),
		rows:                   gs.rows,
		blackCoords:            blackCoords,
		redCoords:              redCoords,
		jumping:                jumping,
		winner:                 gs.winner,
		drawOffered:            gs.drawOffered,
		blackMovesSinceCapture: gs.blackMovesSinceCapture,
		redMovesSinceCapture:   gs.redMovesSinceCapture,
	}
}

func (gs *GameState) coords(color Color) []Coord {
	if color == Black {
		return gs.blackCoords
	}
	return gs.redCoords
}

// pieceMoveTo relocates a piece without capturing.
func (gs *GameState) pieceMoveTo(color Color, start, end Coord) {
	gs.board.Move(start, end)
	if color == Black {
		gs.blackCoords = replaceCoord(gs.blackCoords, start, end)
	} else {
		gs.redCoords = replaceCoord(gs.redCoords, start, end)
	}
}

// pieceJumpTo applies one single-jump step, removing the captured piece
// on the midpoint square.
func (gs *GameState) pieceJumpTo(color Color, start, end Coord) {
	captured := Coord{
		Row: (start.Row + end.Row) / 2,
		Col: (start.Col + end.Col) / 2,
	}
	gs.board.Move(start, end)
	gs.board.Remove(captured)

	if color == Black {
		gs.blackCoords = replaceCoord(gs.blackCoords, start, end)
		gs.redCoords = removeCoord(gs.redCoords, captured)
	} else {
		gs.redCoords = replaceCoord(gs.redCoords, start, end)
		gs.blackCoords = removeCoord(gs.blackCoords, captured)
	}
}

// checkPromote kings the piece on the given square if it sits on the
// player's far row.
func (gs *GameState) checkPromote(color Color, coord Coord) {
	farRow := 0
	if color == Black {
		farRow = gs.board.NumRows() - 1
	}
	if coord.Row == farRow {
		piece, _ := gs.board.Get(coord)
		piece.Promote()
	}
}

// updateWinner runs after a completed turn: the mover wins if the
// opponent has no legal moves, and either no-capture counter reaching the
// limit ends the game as a draw.
func (gs *GameState) updateWinner(color Color) {
	switch {
	case color == Black && len(gs.PlayerValidMoves(Red)) == 0:
		gs.winner = BlackWins
	case color == Red && len(gs.PlayerValidMoves(Black)) == 0:
		gs.winner = RedWins
	case gs.blackMovesSinceCapture >= drawMoveLimit || gs.redMovesSinceCapture >= drawMoveLimit:
		gs.winner = Draw
	}
}

func removeCoord(coords []Coord, c Coord) []Coord {
	for i, coord := range coords {
		if coord == c {
			return append(coords[:i], coords[i+1:]...)
		}
	}
	return coords
}

func replaceCoord(coords []Coord, old, new Coord) []Coord {
	for i, coord := range coords {
		if coord == old {
			coords[i] = new
			return coords
		}
	}
	return append(coords, new)
}
