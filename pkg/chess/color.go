// Package chess defines the primitive board entities shared by the rest of
// the module: piece colors, squares and board bounds.
package chess

// Color represents a chess color.
type Color string

// Possible piece colors.
const (
	White Color = "w"
	Black Color = "b"
)

// Opp returns the opposite color for the given color.
func (c Color) Opp() Color {
	if c == White {
		return Black
	}

	return White
}

// String returns the long display name of the color.
func (c Color) String() string {
	if c == White {
		return "white"
	}

	return "black"
}
