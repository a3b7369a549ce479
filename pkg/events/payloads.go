package events

import "github.com/tecu23/chess-pieces/pkg/chess"

// RegisteredPayload describes a piece admitted to the registry.
type RegisteredPayload struct {
	PieceID string      `json:"piece_id"`
	Kind    string      `json:"kind"`
	Color   chess.Color `json:"color"`
	Square  string      `json:"square"`
}

// ReleasedPayload describes a piece leaving the registry, together with the
// live counts that remain.
type ReleasedPayload struct {
	PieceID string `json:"piece_id"`
	White   int    `json:"white"`
	Black   int    `json:"black"`
}

// MovedPayload describes a successful move routed through the registry.
type MovedPayload struct {
	PieceID string `json:"piece_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}
