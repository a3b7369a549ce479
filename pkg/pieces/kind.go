// Package pieces models the chess piece kinds and their movement legality
// on an otherwise empty board. A piece knows which squares its movement
// pattern reaches; it knows nothing about other pieces, so intervening
// squares never block a move.
package pieces

import "github.com/tecu23/chess-pieces/pkg/chess"

// Kind identifies a piece type.
type Kind int

// The supported piece kinds.
const (
	Rook Kind = iota
	Bishop
	Knight
	Queen
	King
)

// knightJumps are the eight fixed displacements a knight may jump.
var knightJumps = []chess.Offset{
	{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: 2, DY: -1}, {DX: 1, DY: -2},
	{DX: -1, DY: -2}, {DX: -2, DY: -1}, {DX: -2, DY: 1}, {DX: -1, DY: 2},
}

// kindInfo fixes the display data and the movement capabilities of a kind.
// Queen carries the combined-ability marker: she composes the rook's and
// the bishop's capability sets rather than introducing a new pattern.
type kindInfo struct {
	name    string
	symbol  rune
	white   rune
	black   rune
	profile MoveProfile
	special bool
}

var kinds = [...]kindInfo{
	Rook: {
		name: "rook", symbol: 'R', white: '♖', black: '♜',
		profile: MoveProfile{Horizontal: true, Vertical: true},
	},
	Bishop: {
		name: "bishop", symbol: 'B', white: '♗', black: '♝',
		profile: MoveProfile{Diagonal: true},
	},
	Knight: {
		name: "knight", symbol: 'N', white: '♘', black: '♞',
		profile: MoveProfile{Jumps: knightJumps},
	},
	Queen: {
		name: "queen", symbol: 'Q', white: '♕', black: '♛',
		profile: MoveProfile{Horizontal: true, Vertical: true, Diagonal: true},
		special: true,
	},
	King: {
		name: "king", symbol: 'K', white: '♔', black: '♚',
		profile: MoveProfile{Horizontal: true, Vertical: true, Diagonal: true, MaxStep: 1},
	},
}

func (k Kind) valid() bool {
	return k >= Rook && k <= King
}

// String returns the kind's display name, e.g. "rook".
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}

	return kinds[k].name
}

// Symbol returns the fixed algebraic letter of the kind. The knight uses
// 'N' so it cannot be confused with the king.
func (k Kind) Symbol() rune {
	if !k.valid() {
		return '?'
	}

	return kinds[k].symbol
}

// Figurine returns the Unicode chess glyph for the kind in the given color.
func (k Kind) Figurine(c chess.Color) rune {
	if !k.valid() {
		return '?'
	}

	if c == chess.White {
		return kinds[k].white
	}

	return kinds[k].black
}

// Profile returns a copy of the kind's movement profile.
func (k Kind) Profile() MoveProfile {
	if !k.valid() {
		return MoveProfile{}
	}

	return kinds[k].profile
}
