package port

import (
	"context"

	"github.com/peerwave/signaling/internal/core/domain"
)

// AccountDirectory is the external collaborator that resolves a session
// token to the calling account. Registration, login and contact storage
// live behind it, outside this system.
type AccountDirectory interface {
	Resolve(ctx context.Context, token string) (domain.Account, error)
}
