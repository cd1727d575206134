package domain

import (
	"encoding/json"
	"fmt"
)

type EventName string

// Inbound and outbound event names are symmetric except for the
// presence pair: join_call_room/leave_call_room come in,
// user_joined/user_left go out.
const (
	EventJoinCallRoom  EventName = "join_call_room"
	EventLeaveCallRoom EventName = "leave_call_room"
	EventUserJoined    EventName = "user_joined"
	EventUserLeft      EventName = "user_left"
	EventOffer         EventName = "webrtc_offer"
	EventAnswer        EventName = "webrtc_answer"
	EventICECandidate  EventName = "webrtc_ice_candidate"
	EventChatMessage   EventName = "chat_message"
	EventMediaState    EventName = "media_state_change"
)

// Event is one relay frame. Data is a payload struct below; the
// gateway adapter is responsible for the wire envelope.
type Event struct {
	Name EventName
	Data any
}

// PresencePayload announces a user joining or leaving a call.
type PresencePayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// OfferPayload, AnswerPayload and CandidatePayload carry negotiation
// blobs verbatim. The relay never interprets them.
type OfferPayload struct {
	Offer  json.RawMessage `json:"offer"`
	Sender string          `json:"sender"`
}

type AnswerPayload struct {
	Answer json.RawMessage `json:"answer"`
	Sender string          `json:"sender"`
}

type CandidatePayload struct {
	Candidate json.RawMessage `json:"candidate"`
	Sender    string          `json:"sender"`
}

type ChatPayload struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

type MediaStatePayload struct {
	Username     string `json:"username"`
	AudioEnabled bool   `json:"audio_enabled"`
	VideoEnabled bool   `json:"video_enabled"`
}

func NewUserJoined(username string) Event {
	return Event{
		Name: EventUserJoined,
		Data: PresencePayload{
			Username: username,
			Message:  fmt.Sprintf("%s joined the call", username),
		},
	}
}

func NewUserLeft(username string) Event {
	return Event{
		Name: EventUserLeft,
		Data: PresencePayload{
			Username: username,
			Message:  fmt.Sprintf("%s left the call", username),
		},
	}
}
