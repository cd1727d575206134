package domain

import (
	"time"
)

type Participant struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Room is the registry's unit of state. Code is immutable after
// creation; Participants is ordered by join time and unique by UserID.
type Room struct {
	Code         string
	CreatorID    UserID
	Participants []Participant
	CreatedAt    time.Time
}

func NewRoom(code string, creator UserID) *Room {
	return &Room{
		Code:         code,
		CreatorID:    creator,
		Participants: make([]Participant, 0),
		CreatedAt:    time.Now(),
	}
}

// AddParticipant appends p unless a participant with the same UserID is
// already present. Joining twice is a no-op.
func (r *Room) AddParticipant(p Participant) {
	for _, existing := range r.Participants {
		if existing.UserID == p.UserID {
			return
		}
	}
	r.Participants = append(r.Participants, p)
}

func (r *Room) RemoveParticipant(userID string) {
	kept := r.Participants[:0]
	for _, p := range r.Participants {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	r.Participants = kept
}

func (r *Room) Empty() bool {
	return len(r.Participants) == 0
}

// Snapshot returns a copy safe to hand out after the registry lock is
// released.
func (r *Room) Snapshot() Room {
	participants := make([]Participant, len(r.Participants))
	copy(participants, r.Participants)
	return Room{
		Code:         r.Code,
		CreatorID:    r.CreatorID,
		Participants: participants,
		CreatedAt:    r.CreatedAt,
	}
}
