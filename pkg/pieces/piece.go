package pieces

import (
	"errors"
	"fmt"

	"github.com/tecu23/chess-pieces/pkg/chess"
)

// Movement failures, checked with errors.Is.
var (
	// ErrOutOfBounds indicates a move target outside the board.
	ErrOutOfBounds = errors.New("target square outside the board")

	// ErrIllegalMove indicates an in-bounds target the piece's movement
	// pattern cannot reach.
	ErrIllegalMove = errors.New("illegal move for this piece")
)

// MoveError wraps a movement failure with the piece and the squares
// involved. It unwraps to one of the sentinel errors above.
type MoveError struct {
	Kind Kind
	From chess.Position
	To   chess.Position
	Err  error
}

// Error returns the formatted failure, e.g. "rook a1 -> d4: illegal move
// for this piece".
func (e *MoveError) Error() string {
	if !e.To.Valid() {
		return fmt.Sprintf("%s %s -> (%d,%d): %v", e.Kind, e.From, e.To.X, e.To.Y, e.Err)
	}

	return fmt.Sprintf("%s %s -> %s: %v", e.Kind, e.From, e.To, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *MoveError) Unwrap() error { return e.Err }

// Piece is a live chess piece: a kind, a color, a square and the moved
// flag, together with the movement profile its kind fixed at construction.
type Piece struct {
	kind    Kind
	color   chess.Color
	pos     chess.Position
	moved   bool
	profile MoveProfile
	special bool
}

// New creates a piece of the given kind on the given square. Coordinates
// outside the board are rejected and no piece comes into existence.
func New(kind Kind, color chess.Color, x, y int) (*Piece, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("unknown piece kind %d", int(kind))
	}

	pos, err := chess.NewPosition(x, y)
	if err != nil {
		return nil, fmt.Errorf("new %s: %w", kind, err)
	}

	info := kinds[kind]

	return &Piece{
		kind:    kind,
		color:   color,
		pos:     pos,
		profile: info.profile,
		special: info.special,
	}, nil
}

// NewRook creates a rook.
func NewRook(color chess.Color, x, y int) (*Piece, error) {
	return New(Rook, color, x, y)
}

// NewBishop creates a bishop.
func NewBishop(color chess.Color, x, y int) (*Piece, error) {
	return New(Bishop, color, x, y)
}

// NewKnight creates a knight.
func NewKnight(color chess.Color, x, y int) (*Piece, error) {
	return New(Knight, color, x, y)
}

// NewQueen creates a queen.
func NewQueen(color chess.Color, x, y int) (*Piece, error) {
	return New(Queen, color, x, y)
}

// NewKing creates a king.
func NewKing(color chess.Color, x, y int) (*Piece, error) {
	return New(King, color, x, y)
}

// CanMoveTo reports whether the piece could move to (x, y) on an empty
// board. Staying on the current square is not a move, and targets off the
// board are never legal.
func (p *Piece) CanMoveTo(x, y int) bool {
	if !chess.InBounds(x, y) {
		return false
	}

	if x == p.pos.X && y == p.pos.Y {
		return false
	}

	return p.profile.allows(p.pos, chess.Position{X: x, Y: y})
}

// MoveTo moves the piece to (x, y). It fails with ErrOutOfBounds for
// targets off the board and ErrIllegalMove for targets the piece cannot
// reach; on failure the position and the moved flag are left unchanged.
func (p *Piece) MoveTo(x, y int) error {
	target := chess.Position{X: x, Y: y}

	if !chess.InBounds(x, y) {
		return &MoveError{Kind: p.kind, From: p.pos, To: target, Err: ErrOutOfBounds}
	}

	if !p.CanMoveTo(x, y) {
		return &MoveError{Kind: p.kind, From: p.pos, To: target, Err: ErrIllegalMove}
	}

	p.pos = target
	p.moved = true

	return nil
}

// Clone returns an independent copy of the piece. The clone keeps the
// current position and moved flag but stops tracking the original, and it
// is not registered anywhere.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Kind returns the piece's kind.
func (p *Piece) Kind() Kind { return p.kind }

// Name returns the human-readable kind name, e.g. "rook".
func (p *Piece) Name() string { return p.kind.String() }

// Symbol returns the fixed algebraic letter of the piece's kind.
func (p *Piece) Symbol() rune { return p.kind.Symbol() }

// Figurine returns the Unicode chess glyph for the piece in its color.
func (p *Piece) Figurine() rune { return p.kind.Figurine(p.color) }

// Color returns the piece's color.
func (p *Piece) Color() chess.Color { return p.color }

// Position returns the square the piece currently occupies.
func (p *Piece) Position() chess.Position { return p.pos }

// HasMoved reports whether the piece has completed at least one move.
func (p *Piece) HasMoved() bool { return p.moved }

// HasSpecialAbility reports whether the kind carries the combined-movement
// marker. Only the queen does.
func (p *Piece) HasSpecialAbility() bool { return p.special }

// CombinedAbilities describes the movement capabilities the piece combines,
// e.g. "all directions (horizontal, vertical, diagonal)" for a queen.
func (p *Piece) CombinedAbilities() string { return p.profile.Directions() }

// Reachable lists every square the piece could move to from its current
// square on an empty board.
func (p *Piece) Reachable() []chess.Position {
	var squares []chess.Position

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if p.CanMoveTo(x, y) {
				squares = append(squares, chess.Position{X: x, Y: y})
			}
		}
	}

	return squares
}

// ReachableCount returns how many squares the piece could move to from its
// current square on an empty board.
func (p *Piece) ReachableCount() int {
	return len(p.Reachable())
}

// String renders the piece for logs, e.g. "white rook a1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.color, p.kind, p.pos)
}
