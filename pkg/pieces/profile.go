package pieces

import (
	"strings"

	"github.com/tecu23/chess-pieces/pkg/chess"
)

// MoveProfile is the movement-capability data of a piece, fixed at
// construction. A sliding piece enables some combination of the three
// direction flags; a jumping piece lists its fixed offsets instead.
type MoveProfile struct {
	Horizontal bool
	Vertical   bool
	Diagonal   bool

	// Jumps, when non-empty, makes this a jumping profile: the offsets are
	// the only legal displacements and the direction flags are ignored.
	Jumps []chess.Offset

	// MaxStep bounds how far a sliding piece may travel per move. Zero
	// means the board edge is the only bound.
	MaxStep int
}

// allows reports whether the profile permits moving between two distinct
// in-bounds squares. Only geometry is tested; occupancy of the squares in
// between is not modeled.
func (mp MoveProfile) allows(from, to chess.Position) bool {
	if len(mp.Jumps) > 0 {
		for _, o := range mp.Jumps {
			if from.X+o.DX == to.X && from.Y+o.DY == to.Y {
				return true
			}
		}

		return false
	}

	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)

	if mp.MaxStep > 0 && (dx > mp.MaxStep || dy > mp.MaxStep) {
		return false
	}

	if to.Y == from.Y && mp.Horizontal {
		return true
	}

	if to.X == from.X && mp.Vertical {
		return true
	}

	if dx == dy && mp.Diagonal {
		return true
	}

	return false
}

// Directions describes the movement the profile enables, e.g. "horizontal
// and vertical" for a rook's profile.
func (mp MoveProfile) Directions() string {
	if len(mp.Jumps) > 0 {
		return "fixed jump offsets"
	}

	var enabled []string
	if mp.Horizontal {
		enabled = append(enabled, "horizontal")
	}
	if mp.Vertical {
		enabled = append(enabled, "vertical")
	}
	if mp.Diagonal {
		enabled = append(enabled, "diagonal")
	}

	switch len(enabled) {
	case 0:
		return "none"
	case 1:
		return enabled[0] + " only"
	case 2:
		return enabled[0] + " and " + enabled[1]
	default:
		return "all directions (" + strings.Join(enabled, ", ") + ")"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
