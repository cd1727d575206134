package service

import (
	"context"
	"errors"

	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/peerwave/signaling/internal/core/port"
	"github.com/rs/zerolog/log"
)

// RelayService routes real-time events between the connections
// subscribed to a room's broadcast group. Events are fire-and-forget:
// incomplete ones are dropped without an error frame to the sender.
//
// The gateway's subscription groups are deliberately independent from
// the registry's participant lists. A disconnect tears down the
// subscription but never mutates the registry.
type RelayService struct {
	rooms   port.RoomRepository
	gateway port.RealTimeGateway
}

func NewRelayService(rooms port.RoomRepository, gateway port.RealTimeGateway) *RelayService {
	return &RelayService{
		rooms:   rooms,
		gateway: gateway,
	}
}

func (s *RelayService) Connect(c port.Client) {
	s.gateway.Register(c)
}

func (s *RelayService) Disconnect(c port.Client) {
	s.gateway.Unregister(c)
}

// JoinRoom subscribes c to the room's broadcast group and announces it,
// echo included. Unknown room codes are ignored.
func (s *RelayService) JoinRoom(ctx context.Context, c port.Client, roomCode, username string) error {
	if roomCode == "" {
		return nil
	}

	if _, err := s.rooms.Get(ctx, roomCode); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			log.Debug().Str("room_code", roomCode).Msg("Join for unknown room ignored")
			return nil
		}
		return err
	}

	s.gateway.Subscribe(c, roomCode)
	log.Info().Str("room_code", roomCode).Str("username", username).Msg("User joined call room")

	return s.gateway.Broadcast(ctx, roomCode, domain.NewUserJoined(username))
}

// LeaveRoom announces the departure to the group, echo included, then
// drops the subscription. It runs even for codes the registry does not
// know about.
func (s *RelayService) LeaveRoom(ctx context.Context, c port.Client, roomCode, username string) error {
	if roomCode == "" {
		return nil
	}

	err := s.gateway.Broadcast(ctx, roomCode, domain.NewUserLeft(username))
	s.gateway.Unsubscribe(c, roomCode)
	log.Info().Str("room_code", roomCode).Str("username", username).Msg("User left call room")
	return err
}

// ForwardOffer fans the offer out to everyone in the group except the
// sender, which already holds its own local description.
func (s *RelayService) ForwardOffer(ctx context.Context, c port.Client, roomCode string, payload domain.OfferPayload) error {
	if roomCode == "" {
		return nil
	}
	return s.gateway.BroadcastExcept(ctx, roomCode, c, domain.Event{Name: domain.EventOffer, Data: payload})
}

func (s *RelayService) ForwardAnswer(ctx context.Context, c port.Client, roomCode string, payload domain.AnswerPayload) error {
	if roomCode == "" {
		return nil
	}
	return s.gateway.BroadcastExcept(ctx, roomCode, c, domain.Event{Name: domain.EventAnswer, Data: payload})
}

func (s *RelayService) ForwardCandidate(ctx context.Context, c port.Client, roomCode string, payload domain.CandidatePayload) error {
	if roomCode == "" {
		return nil
	}
	return s.gateway.BroadcastExcept(ctx, roomCode, c, domain.Event{Name: domain.EventICECandidate, Data: payload})
}

// Chat echoes back to the sender so the UI can confirm delivery.
func (s *RelayService) Chat(ctx context.Context, c port.Client, roomCode string, payload domain.ChatPayload) error {
	if roomCode == "" {
		return nil
	}
	return s.gateway.Broadcast(ctx, roomCode, domain.Event{Name: domain.EventChatMessage, Data: payload})
}

func (s *RelayService) MediaState(ctx context.Context, c port.Client, roomCode string, payload domain.MediaStatePayload) error {
	if roomCode == "" {
		return nil
	}
	return s.gateway.BroadcastExcept(ctx, roomCode, c, domain.Event{Name: domain.EventMediaState, Data: payload})
}
