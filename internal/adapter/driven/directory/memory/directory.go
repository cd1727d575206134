package memory

import (
	"context"
	"sync"

	"github.com/peerwave/signaling/internal/core/domain"
)

// Directory is an in-memory stand-in for the Account Directory: a
// token -> account table seeded at startup. The real directory lives in
// another system; this adapter only has to resolve callers.
type Directory struct {
	mu       sync.RWMutex
	sessions map[string]domain.Account
}

func NewDirectory() *Directory {
	return &Directory{
		sessions: make(map[string]domain.Account),
	}
}

func (d *Directory) AddSession(token string, account domain.Account) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[token] = account
}

func (d *Directory) Resolve(ctx context.Context, token string) (domain.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, ok := d.sessions[token]
	if !ok {
		return domain.Account{}, domain.ErrAuthRequired
	}
	return account, nil
}
