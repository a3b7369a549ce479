package pieces

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tecu23/chess-pieces/pkg/chess"
)

func TestProfileAllows(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		from chess.Position
		to   chess.Position
		want bool
	}{
		{"rook along the file", Rook, chess.Position{X: 0, Y: 0}, chess.Position{X: 0, Y: 4}, true},
		{"rook along the rank", Rook, chess.Position{X: 0, Y: 0}, chess.Position{X: 4, Y: 0}, true},
		{"rook on a diagonal", Rook, chess.Position{X: 0, Y: 0}, chess.Position{X: 4, Y: 4}, false},
		{"bishop on a diagonal", Bishop, chess.Position{X: 2, Y: 0}, chess.Position{X: 5, Y: 3}, true},
		{"bishop along the file", Bishop, chess.Position{X: 2, Y: 0}, chess.Position{X: 2, Y: 5}, false},
		{"knight jump", Knight, chess.Position{X: 4, Y: 4}, chess.Position{X: 6, Y: 5}, true},
		{"knight single step", Knight, chess.Position{X: 4, Y: 4}, chess.Position{X: 5, Y: 5}, false},
		{"knight reversed jump", Knight, chess.Position{X: 4, Y: 4}, chess.Position{X: 2, Y: 3}, true},
		{"queen along the file", Queen, chess.Position{X: 3, Y: 3}, chess.Position{X: 3, Y: 7}, true},
		{"queen on a diagonal", Queen, chess.Position{X: 3, Y: 3}, chess.Position{X: 7, Y: 7}, true},
		{"queen off pattern", Queen, chess.Position{X: 3, Y: 3}, chess.Position{X: 4, Y: 5}, false},
		{"king single step straight", King, chess.Position{X: 4, Y: 4}, chess.Position{X: 4, Y: 5}, true},
		{"king single step diagonal", King, chess.Position{X: 4, Y: 4}, chess.Position{X: 5, Y: 5}, true},
		{"king double step", King, chess.Position{X: 4, Y: 4}, chess.Position{X: 6, Y: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.kind.Profile().allows(tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name    string
		profile MoveProfile
		want    string
	}{
		{"none", MoveProfile{}, "none"},
		{"horizontal", MoveProfile{Horizontal: true}, "horizontal only"},
		{"vertical", MoveProfile{Vertical: true}, "vertical only"},
		{"diagonal", MoveProfile{Diagonal: true}, "diagonal only"},
		{
			"horizontal and vertical",
			MoveProfile{Horizontal: true, Vertical: true},
			"horizontal and vertical",
		},
		{
			"horizontal and diagonal",
			MoveProfile{Horizontal: true, Diagonal: true},
			"horizontal and diagonal",
		},
		{
			"vertical and diagonal",
			MoveProfile{Vertical: true, Diagonal: true},
			"vertical and diagonal",
		},
		{
			"all three",
			MoveProfile{Horizontal: true, Vertical: true, Diagonal: true},
			"all directions (horizontal, vertical, diagonal)",
		},
		{"jumps", MoveProfile{Jumps: knightJumps}, "fixed jump offsets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Directions())
		})
	}
}
