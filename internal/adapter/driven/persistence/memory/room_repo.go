package memory

import (
	"context"
	"sync"

	"github.com/peerwave/signaling/internal/core/domain"
)

// maxCodeAttempts caps the collision-retry loop. With a 36^6 code space
// and few concurrent rooms this should never trip.
const maxCodeAttempts = 1000

// RoomRepository is the in-memory room registry. The process is the
// single authority for room state; one lock covers all codes.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{
		rooms: make(map[string]*domain.Room),
	}
}

func (r *RoomRepository) Create(ctx context.Context, creator domain.UserID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < maxCodeAttempts; i++ {
		code := domain.NewRoomCode()
		if _, taken := r.rooms[code]; taken {
			continue
		}
		r.rooms[code] = domain.NewRoom(code, creator)
		return code, nil
	}
	return "", domain.ErrCodeSpaceExhausted
}

func (r *RoomRepository) AddParticipant(ctx context.Context, code string, p domain.Participant) ([]domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	room.AddParticipant(p)

	participants := make([]domain.Participant, len(room.Participants))
	copy(participants, room.Participants)
	return participants, nil
}

func (r *RoomRepository) RemoveParticipant(ctx context.Context, code string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[code]
	if !ok {
		return domain.ErrRoomNotFound
	}

	room.RemoveParticipant(userID)

	// An empty room is deleted in the same critical section, so no
	// caller can observe an empty-but-present room.
	if room.Empty() {
		delete(r.rooms, code)
	}
	return nil
}

func (r *RoomRepository) Get(ctx context.Context, code string) (domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[code]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return room.Snapshot(), nil
}

func (r *RoomRepository) Codes(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.rooms))
	for code := range r.rooms {
		codes = append(codes, code)
	}
	return codes, nil
}
