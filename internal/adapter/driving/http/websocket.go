package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins before exposing this beyond dev
	CheckOrigin: func(r *http.Request) bool { return true },
}

// frame is the wire envelope, identical in both directions.
type frame struct {
	Event domain.EventName `json:"event"`
	Data  json.RawMessage  `json:"data"`
}

type WSClient struct {
	id   domain.ConnectionID
	conn *websocket.Conn
}

func (c *WSClient) ID() string {
	return c.id.String()
}

func (c *WSClient) Send(ev domain.Event) error {
	type frameDTO struct {
		Event domain.EventName `json:"event"`
		Data  any              `json:"data"`
	}

	return c.conn.WriteJSON(frameDTO{
		Event: ev.Name,
		Data:  ev.Data,
	})
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// HTTP handler
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := &WSClient{
		id:   domain.NewConnectionID(),
		conn: conn,
	}

	l := log.With().Str("connection_id", client.ID()).Logger()
	l.Info().Msg("New client connected")

	h.RelayService.Connect(client)

	defer func() {
		l.Info().Msg("Client disconnected")
		// Drops the subscription only. Registry participants are left
		// as-is until an explicit leave-room call, matching the API.
		h.RelayService.Disconnect(client)
		conn.Close()
	}()

	for {
		var req frame
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			break
		}

		if err := h.dispatch(r.Context(), client, req); err != nil {
			l.Error().Err(err).Str("event", string(req.Event)).Msg("Failed to handle event")
		}
	}
}

// dispatch routes one inbound frame. Payloads that do not decode are
// dropped silently; the relay protocol has no error frames.
func (h *Handler) dispatch(ctx context.Context, client *WSClient, req frame) error {
	switch req.Event {
	case domain.EventJoinCallRoom, domain.EventLeaveCallRoom:
		var dto struct {
			RoomCode string `json:"room_code"`
			Username string `json:"username"`
		}
		if err := json.Unmarshal(req.Data, &dto); err != nil {
			return nil
		}
		if req.Event == domain.EventJoinCallRoom {
			return h.RelayService.JoinRoom(ctx, client, dto.RoomCode, dto.Username)
		}
		return h.RelayService.LeaveRoom(ctx, client, dto.RoomCode, dto.Username)

	case domain.EventOffer:
		var dto struct {
			RoomCode string          `json:"room_code"`
			Offer    json.RawMessage `json:"offer"`
			Sender   string          `json:"sender"`
		}
		if err := json.Unmarshal(req.Data, &dto); err != nil {
			return nil
		}
		return h.RelayService.ForwardOffer(ctx, client, dto.RoomCode, domain.OfferPayload{
			Offer:  dto.Offer,
			Sender: dto.Sender,
		})

	case domain.EventAnswer:
		var dto struct {
			RoomCode string          `json:"room_code"`
			Answer   json.RawMessage `json:"answer"`
			Sender   string          `json:"sender"`
		}
		if err := json.Unmarshal(req.Data, &dto); err != nil {
			return nil
		}
		return h.RelayService.ForwardAnswer(ctx, client, dto.RoomCode, domain.AnswerPayload{
			Answer: dto.Answer,
			Sender: dto.Sender,
		})

	case domain.EventICECandidate:
		var dto struct {
			RoomCode  string          `json:"room_code"`
			Candidate json.RawMessage `json:"candidate"`
			Sender    string          `json:"sender"`
		}
		if err := json.Unmarshal(req.Data, &dto); err != nil {
			return nil
		}
		return h.RelayService.ForwardCandidate(ctx, client, dto.RoomCode, domain.CandidatePayload{
			Candidate: dto.Candidate,
			Sender:    dto.Sender,
		})

	case domain.EventChatMessage:
		var dto struct {
			RoomCode  string `json:"room_code"`
			Message   string `json:"message"`
			Username  string `json:"username"`
			Timestamp string `json:"timestamp"`
		}
		if err := json.Unmarshal(req.Data, &dto); err != nil {
			return nil
		}
		return h.RelayService.Chat(ctx, client, dto.RoomCode, domain.ChatPayload{
			Message:   dto.Message,
			Username:  dto.Username,
			Timestamp: dto.Timestamp,
		})

	case domain.EventMediaState:
		var dto struct {
			RoomCode     string `json:"room_code"`
			Username     string `json:"username"`
			AudioEnabled bool   `json:"audio_enabled"`
			VideoEnabled bool   `json:"video_enabled"`
		}
		if err := json.Unmarshal(req.Data, &dto); err != nil {
			return nil
		}
		return h.RelayService.MediaState(ctx, client, dto.RoomCode, domain.MediaStatePayload{
			Username:     dto.Username,
			AudioEnabled: dto.AudioEnabled,
			VideoEnabled: dto.VideoEnabled,
		})
	}

	// Unknown events are ignored like any other malformed input.
	return nil
}
