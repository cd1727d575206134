package port

import (
	"context"

	"github.com/peerwave/signaling/internal/core/domain"
)

type Client interface {
	ID() string
	Send(ev domain.Event) error
	Close() error
}

// RealTimeGateway owns the broadcast groups: which connections are
// subscribed to which room code. A connection holds at most one
// subscription; Subscribe to a new room replaces the old one.
type RealTimeGateway interface {
	Register(c Client)
	Unregister(c Client)

	Subscribe(c Client, roomCode string)
	Unsubscribe(c Client, roomCode string)

	// Broadcast delivers ev to every subscriber of roomCode.
	Broadcast(ctx context.Context, roomCode string, ev domain.Event) error

	// BroadcastExcept delivers ev to every subscriber except sender.
	BroadcastExcept(ctx context.Context, roomCode string, sender Client, ev domain.Event) error
}
