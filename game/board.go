package game

import "fmt"

// Display markers for board cells.
const (
	EmptyCell     byte = ' '
	BlackManCell  byte = 'b'
	BlackKingCell byte = 'B'
	RedManCell    byte = 'r'
	RedKingCell   byte = 'R'
)

// Board is a rectangular grid of optional pieces with bounds-checked access.
// It carries no game semantics: rule enforcement lives in GameState.
type Board struct {
	grid  [][]*Piece
	nrows int
	ncols int
}

func NewBoard(nrows, ncols int) *Board {
	grid := make([][]*Piece, nrows)
	for r := range grid {
		grid[r] = make([]*Piece, ncols)
	}
	return &Board{
		grid:  grid,
		nrows: nrows,
		ncols: ncols,
	}
}

func (b *Board) NumRows() int {
	return b.nrows
}

func (b *Board) NumCols() int {
	return b.ncols
}

func (b *Board) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.nrows && c.Col >= 0 && c.Col < b.ncols
}

// Get returns the piece at the given square, or nil if the square is empty.
func (b *Board) Get(c Coord) (*Piece, error) {
	if !b.inBounds(c) {
		return nil, fmt.Errorf("get (%d, %d): %w", c.Row, c.Col, ErrOutOfBounds)
	}
	return b.grid[c.Row][c.Col], nil
}

// Set places a piece at the given square. A nil piece clears the square.
func (b *Board) Set(c Coord, p *Piece) error {
	if !b.inBounds(c) {
		return fmt.Errorf("set (%d, %d): %w", c.Row, c.Col, ErrOutOfBounds)
	}
	b.grid[c.Row][c.Col] = p
	return nil
}

// Remove clears the given square. It fails if the square is already empty.
func (b *Board) Remove(c Coord) error {
	piece, err := b.Get(c)
	if err != nil {
		return err
	}
	if piece == nil {
		return fmt.Errorf("remove (%d, %d): %w", c.Row, c.Col, ErrEmptySquare)
	}
	b.grid[c.Row][c.Col] = nil
	return nil
}

// Move relocates the piece at start to end. It fails if start is empty.
// The caller must guarantee end is empty: an occupied end square is
// silently overwritten.
func (b *Board) Move(start, end Coord) error {
	piece, err := b.Get(start)
	if err != nil {
		return err
	}
	if piece == nil {
		return fmt.Errorf("move from (%d, %d): %w", start.Row, start.Col, ErrEmptySquare)
	}
	if !b.inBounds(end) {
		return fmt.Errorf("move to (%d, %d): %w", end.Row, end.Col, ErrOutOfBounds)
	}
	b.grid[start.Row][start.Col] = nil
	b.grid[end.Row][end.Col] = piece
	return nil
}

// DisplayGrid renders the board as a grid of single-character cell markers,
// one row per board row.
func (b *Board) DisplayGrid() [][]byte {
	out := make([][]byte, b.nrows)
	for r := range b.grid {
		row := make([]byte, b.ncols)
		for c, piece := range b.grid[r] {
			row[c] = cellMarker(piece)
		}
		out[r] = row
	}
	return out
}

func cellMarker(p *Piece) byte {
	switch {
	case p == nil:
		return EmptyCell
	case p.Color() == Black && p.IsKing():
		return BlackKingCell
	case p.Color() == Black:
		return BlackManCell
	case p.IsKing():
		return RedKingCell
	default:
		return RedManCell
	}
}

func (b *Board) copy() *Board {
	nb := NewBoard(b.nrows, b.ncols)
	for r := range b.grid {
		for c, piece := range b.grid[r] {
			if piece != nil {
				p := *piece
				nb.grid[r][c] = &p
			}
		}
	}
	return nb
}
