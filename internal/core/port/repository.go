package port

import (
	"context"

	"github.com/peerwave/signaling/internal/core/domain"
)

// RoomRepository is the authoritative room registry. Every method is
// atomic with respect to concurrent callers on the same code.
type RoomRepository interface {
	// Create allocates a unique code and stores an empty room for it.
	Create(ctx context.Context, creator domain.UserID) (string, error)

	// AddParticipant appends p to the room's participant list, or
	// no-ops if p.UserID is already present. Returns the resulting
	// list. Fails with domain.ErrRoomNotFound for unknown codes.
	AddParticipant(ctx context.Context, code string, p domain.Participant) ([]domain.Participant, error)

	// RemoveParticipant filters userID out of the room. A room whose
	// list empties is deleted in the same step. Fails with
	// domain.ErrRoomNotFound for unknown codes.
	RemoveParticipant(ctx context.Context, code string, userID string) error

	// Get returns a snapshot of the room.
	Get(ctx context.Context, code string) (domain.Room, error)

	// Codes lists current room codes in unspecified order.
	Codes(ctx context.Context) ([]string, error)
}
