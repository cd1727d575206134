package service

import (
	"context"

	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/peerwave/signaling/internal/core/port"
	"github.com/rs/zerolog/log"
)

// RoomService implements the room lifecycle operations on top of the
// registry. Callers are pre-authenticated accounts.
type RoomService struct {
	rooms port.RoomRepository
}

func NewRoomService(rooms port.RoomRepository) *RoomService {
	return &RoomService{
		rooms: rooms,
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, caller domain.Account) (string, error) {
	code, err := s.rooms.Create(ctx, caller.ID)
	if err != nil {
		return "", err
	}

	log.Info().Str("room_code", code).Str("user_id", caller.ID.String()).Msg("Room created")
	return code, nil
}

func (s *RoomService) JoinRoom(ctx context.Context, caller domain.Account, code string) ([]domain.Participant, error) {
	participant := domain.Participant{
		UserID:   caller.ID.String(),
		Username: caller.Username,
	}

	participants, err := s.rooms.AddParticipant(ctx, code, participant)
	if err != nil {
		return nil, err
	}

	log.Info().Str("room_code", code).Str("user_id", caller.ID.String()).Msg("User joined room")
	return participants, nil
}

// LeaveRoom succeeds whether or not the caller was actually a member.
func (s *RoomService) LeaveRoom(ctx context.Context, caller domain.Account, code string) error {
	if err := s.rooms.RemoveParticipant(ctx, code, caller.ID.String()); err != nil {
		return err
	}

	log.Info().Str("room_code", code).Str("user_id", caller.ID.String()).Msg("User left room")
	return nil
}

func (s *RoomService) RoomStatus(ctx context.Context, code string) (domain.Room, error) {
	return s.rooms.Get(ctx, code)
}

func (s *RoomService) ActiveRooms(ctx context.Context) ([]string, error) {
	return s.rooms.Codes(ctx)
}
