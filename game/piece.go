package game

// Color identifies a player and the pieces they own.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) Opponent() Color {
	if c == Black {
		return Red
	}
	return Black
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a finished game. The zero value means the game
// is still in progress.
type Outcome int

const (
	NoWinner Outcome = iota
	BlackWins
	RedWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black"
	case RedWins:
		return "Red"
	case Draw:
		return "Draw"
	default:
		return ""
	}
}

// Command is a player's turn-ending or draw-negotiation action.
type Command int

const (
	EndTurnCommand Command = iota
	ResignCommand
	OfferDrawCommand
	AcceptDrawCommand
	DeclineDrawCommand
)

// Coord is a (row, column) position on the board.
type Coord struct {
	Row int
	Col int
}

// Path is the ordered sequence of squares a piece lands on during one move:
// a single square for a non-jump move, or every intermediate landing square
// plus the final square for a jump chain. Captured squares are the midpoints
// between consecutive landings (including the starting square).
type Path []Coord

// Final returns the last square of the path.
func (p Path) Final() Coord {
	return p[len(p)-1]
}

// Contains reports whether the path lands on the given square.
func (p Path) Contains(c Coord) bool {
	for _, landing := range p {
		if landing == c {
			return true
		}
	}
	return false
}

// Piece is a single checkers piece. Pieces start as men and are promoted to
// kings exactly once; promotion never reverts.
type Piece struct {
	color Color
	king  bool
}

func NewPiece(color Color) *Piece {
	return &Piece{color: color}
}

func (p *Piece) Color() Color {
	return p.color
}

func (p *Piece) IsKing() bool {
	return p.king
}

// Promote makes the piece a king.
func (p *Piece) Promote() {
	p.king = true
}
