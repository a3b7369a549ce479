package chess

import (
	"errors"
	"fmt"
)

// BoardSize is the width and height of the board.
const BoardSize = 8

// ErrInvalidCoordinates is returned when a square outside the board is used
// to construct a position or a piece.
var ErrInvalidCoordinates = errors.New("coordinates must be in range 0-7")

// Position is a square on the board. X is the file (0 = the a-file) and Y is
// the rank (0 = the first rank).
type Position struct {
	X int
	Y int
}

// NewPosition validates the coordinates and returns the square they name.
func NewPosition(x, y int) (Position, error) {
	if !InBounds(x, y) {
		return Position{}, fmt.Errorf("square (%d,%d): %w", x, y, ErrInvalidCoordinates)
	}

	return Position{X: x, Y: y}, nil
}

// InBounds reports whether both coordinates lie on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return InBounds(p.X, p.Y)
}

// String renders the position in algebraic form, e.g. "d1".
func (p Position) String() string {
	if !p.Valid() {
		return "invalid"
	}

	return fmt.Sprintf("%c%d", 'a'+p.X, p.Y+1)
}

// Offset is a relative displacement from a square.
type Offset struct {
	DX int
	DY int
}
