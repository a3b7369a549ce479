package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tecu23/chess-pieces/pkg/chess"
	"github.com/tecu23/chess-pieces/pkg/pieces"
	"github.com/tecu23/chess-pieces/pkg/registry"
)

type placement struct {
	kind  pieces.Kind
	color chess.Color
	x, y  int
}

func place(reg *registry.Registry, layout []placement) ([]*pieces.Piece, error) {
	placed := make([]*pieces.Piece, 0, len(layout))
	for _, l := range layout {
		p, err := pieces.New(l.kind, l.color, l.x, l.y)
		if err != nil {
			return nil, err
		}
		reg.Register(p)
		placed = append(placed, p)
	}
	return placed, nil
}

// creation builds one piece of each kind and checks the live counts.
func (r *Runner) creation(reg *registry.Registry) error {
	layout := []placement{
		{pieces.Rook, chess.White, 0, 0},
		{pieces.Bishop, chess.Black, 2, 0},
		{pieces.Knight, chess.White, 1, 0},
		{pieces.Queen, chess.Black, 3, 0},
		{pieces.King, chess.White, 4, 0},
	}
	if _, err := place(reg, layout); err != nil {
		return err
	}

	if got := reg.TotalCount(); got != len(layout) {
		return fmt.Errorf("registered %d pieces, counted %d", len(layout), got)
	}

	r.logger.Info("pieces created",
		zap.Int("total", reg.TotalCount()),
		zap.Int("white", reg.WhiteCount()),
		zap.Int("black", reg.BlackCount()))
	return nil
}

// movement probes rook and knight legality, then moves a rook for real and
// shows that rejected moves leave it where it stood.
func (r *Runner) movement(reg *registry.Registry) error {
	rook, err := pieces.NewRook(chess.White, 0, 0)
	if err != nil {
		return err
	}
	knight, err := pieces.NewKnight(chess.White, 4, 4)
	if err != nil {
		return err
	}
	rookID := reg.Register(rook)
	reg.Register(knight)

	probes := []struct {
		piece *pieces.Piece
		x, y  int
		want  bool
	}{
		{rook, 0, 4, true},
		{rook, 4, 0, true},
		{rook, 4, 4, false},
		{knight, 6, 5, true},
		{knight, 5, 5, false},
	}
	for _, pr := range probes {
		got := pr.piece.CanMoveTo(pr.x, pr.y)
		r.logger.Info("legality probe",
			zap.String("piece", pr.piece.String()),
			zap.String("target", fmt.Sprintf("(%d,%d)", pr.x, pr.y)),
			zap.Bool("legal", got))
		if got != pr.want {
			return fmt.Errorf("%s to (%d,%d): legal=%t, expected %t",
				pr.piece, pr.x, pr.y, got, pr.want)
		}
	}

	if err := reg.MovePiece(rookID, 0, 4); err != nil {
		return err
	}
	if !rook.HasMoved() {
		return errors.New("rook moved but HasMoved reports false")
	}

	if err := reg.MovePiece(rookID, 5, 5); !errors.Is(err, pieces.ErrIllegalMove) {
		return fmt.Errorf("diagonal rook move: got %v, expected an illegal-move failure", err)
	}
	if err := reg.MovePiece(rookID, 8, 0); !errors.Is(err, pieces.ErrOutOfBounds) {
		return fmt.Errorf("off-board rook move: got %v, expected an out-of-bounds failure", err)
	}
	if at := rook.Position().String(); at != "a5" {
		return fmt.Errorf("rook drifted to %s after rejected moves", at)
	}
	return nil
}

// polymorphism walks a mixed set of pieces through the shared interface.
func (r *Runner) polymorphism(reg *registry.Registry) error {
	layout := []placement{
		{pieces.Rook, chess.White, 0, 0},
		{pieces.Bishop, chess.Black, 2, 0},
		{pieces.Knight, chess.White, 1, 0},
		{pieces.Queen, chess.Black, 3, 0},
		{pieces.King, chess.White, 4, 0},
	}
	placed, err := place(reg, layout)
	if err != nil {
		return err
	}

	for _, p := range placed {
		r.logger.Info("piece abilities",
			zap.String("name", p.Name()),
			zap.String("symbol", string(p.Symbol())),
			zap.String("moves", p.CombinedAbilities()))
	}
	return nil
}

// copying clones a rook, moves the clone and shows the original untouched.
func (r *Runner) copying(reg *registry.Registry) error {
	original, err := pieces.NewRook(chess.White, 0, 0)
	if err != nil {
		return err
	}
	reg.Register(original)

	clone := original.Clone()
	if err := clone.MoveTo(3, 0); err != nil {
		return err
	}

	r.logger.Info("clone moved",
		zap.String("original", original.String()),
		zap.String("clone", clone.String()))

	if original.HasMoved() || original.Position().String() != "a1" {
		return errors.New("moving the clone disturbed the original")
	}
	if clone.Position().String() != "d1" {
		return fmt.Errorf("clone at %s, expected d1", clone.Position())
	}
	return nil
}

// counters registers three pieces, releases them and checks the counts
// return to where they started.
func (r *Runner) counters(reg *registry.Registry) error {
	before := reg.TotalCount()

	layout := []placement{
		{pieces.Rook, chess.White, 0, 0},
		{pieces.Rook, chess.White, 7, 0},
		{pieces.Bishop, chess.Black, 2, 0},
	}
	ids := make([]uuid.UUID, 0, len(layout))
	for _, l := range layout {
		p, err := pieces.New(l.kind, l.color, l.x, l.y)
		if err != nil {
			return err
		}
		ids = append(ids, reg.Register(p))
	}

	if reg.WhiteCount() != 2 || reg.BlackCount() != 1 {
		return fmt.Errorf("counted %d white and %d black, expected 2 and 1",
			reg.WhiteCount(), reg.BlackCount())
	}
	r.logger.Info("pieces registered",
		zap.Int("white", reg.WhiteCount()),
		zap.Int("black", reg.BlackCount()))

	for _, id := range ids {
		if err := reg.Release(id); err != nil {
			return err
		}
	}

	if got := reg.TotalCount(); got != before {
		return fmt.Errorf("%d pieces still live after releasing all", got)
	}
	r.logger.Info("pieces released", zap.Int("total", reg.TotalCount()))
	return nil
}

// queen checks the combined movement of the queen and its special ability.
func (r *Runner) queen(reg *registry.Registry) error {
	queen, err := pieces.NewQueen(chess.White, 3, 3)
	if err != nil {
		return err
	}
	reg.Register(queen)

	probes := []struct {
		x, y int
		want bool
	}{
		{3, 7, true},
		{7, 7, true},
		{4, 5, false},
	}
	for _, pr := range probes {
		if got := queen.CanMoveTo(pr.x, pr.y); got != pr.want {
			return fmt.Errorf("queen d4 to (%d,%d): legal=%t, expected %t",
				pr.x, pr.y, got, pr.want)
		}
	}

	if !queen.HasSpecialAbility() {
		return errors.New("queen does not report its special ability")
	}
	r.logger.Info("queen abilities", zap.String("combined", queen.CombinedAbilities()))
	return nil
}

// miniBoard places a small position, checks every piece can still move on
// the open board, validates the counts and renders the position.
func (r *Runner) miniBoard(reg *registry.Registry) error {
	layout := []placement{
		{pieces.Rook, chess.White, 0, 0},
		{pieces.Knight, chess.White, 1, 0},
		{pieces.Bishop, chess.White, 2, 0},
		{pieces.Queen, chess.White, 3, 0},
		{pieces.King, chess.White, 4, 0},
		{pieces.Rook, chess.Black, 7, 7},
		{pieces.Knight, chess.Black, 6, 7},
	}
	if _, err := place(reg, layout); err != nil {
		return err
	}

	mobile := 0
	for _, p := range reg.Pieces() {
		if p.ReachableCount() > 0 {
			mobile++
		}
	}
	if mobile != len(layout) {
		return fmt.Errorf("only %d of %d pieces can move on an open board", mobile, len(layout))
	}

	if err := reg.Validate(); err != nil {
		return fmt.Errorf("board state: %w", err)
	}

	r.renderBoard(reg)

	r.logger.Info("mini board checked",
		zap.Int("pieces", reg.TotalCount()),
		zap.Int("mobile", mobile))
	return nil
}

func (r *Runner) renderBoard(reg *registry.Registry) {
	squares := make(map[chess.Position]rune)
	for _, p := range reg.Pieces() {
		squares[p.Position()] = p.Figurine()
	}

	var b strings.Builder
	for y := chess.BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%d ", y+1)
		for x := 0; x < chess.BoardSize; x++ {
			glyph, ok := squares[chess.Position{X: x, Y: y}]
			if !ok {
				glyph = '.'
			}
			fmt.Fprintf(&b, "%c ", glyph)
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h")

	fmt.Fprintln(r.out, b.String())
}
