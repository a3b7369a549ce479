// Package registry tracks the live pieces of a session. A piece is counted
// against its color from registration until release; nothing is counted
// implicitly at construction.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tecu23/chess-pieces/pkg/chess"
	"github.com/tecu23/chess-pieces/pkg/events"
	"github.com/tecu23/chess-pieces/pkg/pieces"
)

// MaxPerColor is the piece count a legally reachable position cannot exceed.
const MaxPerColor = 16

// ErrPieceNotFound is returned for ids with no live piece behind them.
var ErrPieceNotFound = errors.New("piece not found")

// Registry owns the set of live pieces and their per-color counts.
type Registry struct {
	mu   sync.RWMutex
	live map[uuid.UUID]*pieces.Piece

	whiteCount int
	blackCount int

	publisher *events.Publisher
	logger    *zap.Logger
}

// New creates an empty registry.
func New(logger *zap.Logger, publisher *events.Publisher) *Registry {
	return &Registry{
		live:      make(map[uuid.UUID]*pieces.Piece),
		publisher: publisher,
		logger:    logger,
	}
}

// Register admits a piece, bumps its color's live count and returns the id
// used to address the piece from now on.
func (r *Registry) Register(p *pieces.Piece) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	r.live[id] = p
	if p.Color() == chess.White {
		r.whiteCount++
	} else {
		r.blackCount++
	}
	white, black := r.whiteCount, r.blackCount
	r.mu.Unlock()

	r.logger.Info("piece registered",
		zap.String("piece_id", id.String()),
		zap.String("piece", p.String()),
		zap.Int("white", white),
		zap.Int("black", black))

	r.publisher.Publish(events.Event{
		Type:    events.EventPieceRegistered,
		PieceID: id.String(),
		Payload: events.RegisteredPayload{
			PieceID: id.String(),
			Kind:    p.Kind().String(),
			Color:   p.Color(),
			Square:  p.Position().String(),
		},
	})

	return id
}

// Release removes a live piece and gives back its color's count.
func (r *Registry) Release(id uuid.UUID) error {
	r.mu.Lock()
	p, ok := r.live[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("release %s: %w", id, ErrPieceNotFound)
	}
	delete(r.live, id)
	if p.Color() == chess.White {
		r.whiteCount--
	} else {
		r.blackCount--
	}
	white, black := r.whiteCount, r.blackCount
	r.mu.Unlock()

	r.logger.Info("piece released",
		zap.String("piece_id", id.String()),
		zap.String("piece", p.String()))

	r.publisher.Publish(events.Event{
		Type:    events.EventPieceReleased,
		PieceID: id.String(),
		Payload: events.ReleasedPayload{
			PieceID: id.String(),
			White:   white,
			Black:   black,
		},
	})

	return nil
}

// Piece returns a live piece by id.
func (r *Registry) Piece(id uuid.UUID) (*pieces.Piece, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.live[id]
	return p, ok
}

// Pieces returns a snapshot of the live pieces.
func (r *Registry) Pieces() []*pieces.Piece {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*pieces.Piece, 0, len(r.live))
	for _, p := range r.live {
		snapshot = append(snapshot, p)
	}

	return snapshot
}

// MovePiece routes a move to the piece with the given id. Movement failures
// come back unchanged from the piece, so errors.Is still sees the piece
// package's sentinels.
func (r *Registry) MovePiece(id uuid.UUID, x, y int) error {
	r.mu.RLock()
	p, ok := r.live[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrPieceNotFound)
	}

	from := p.Position()
	if err := p.MoveTo(x, y); err != nil {
		return err
	}

	r.logger.Info("piece moved",
		zap.String("piece_id", id.String()),
		zap.String("from", from.String()),
		zap.String("to", p.Position().String()))

	r.publisher.Publish(events.Event{
		Type:    events.EventPieceMoved,
		PieceID: id.String(),
		Payload: events.MovedPayload{
			PieceID: id.String(),
			From:    from.String(),
			To:      p.Position().String(),
		},
	})

	return nil
}

// WhiteCount returns the number of live white pieces.
func (r *Registry) WhiteCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.whiteCount
}

// BlackCount returns the number of live black pieces.
func (r *Registry) BlackCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.blackCount
}

// TotalCount returns the number of live pieces of both colors.
func (r *Registry) TotalCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.whiteCount + r.blackCount
}

// Validate checks the live counts against the bound a legally reachable
// position allows. The bound is checked, not enforced: registration never
// refuses a piece, and violations for both colors are reported together.
func (r *Registry) Validate() error {
	r.mu.RLock()
	white, black := r.whiteCount, r.blackCount
	r.mu.RUnlock()

	var err error
	if white > MaxPerColor {
		err = multierr.Append(err, fmt.Errorf("%d white pieces exceed the %d allowed", white, MaxPerColor))
	}
	if black > MaxPerColor {
		err = multierr.Append(err, fmt.Errorf("%d black pieces exceed the %d allowed", black, MaxPerColor))
	}

	return err
}
