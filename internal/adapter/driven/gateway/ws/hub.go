package ws

import (
	"context"
	"sync"

	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/peerwave/signaling/internal/core/port"
	"github.com/rs/zerolog/log"
)

// Hub implements port.RealTimeGateway. One mutex serializes every
// subscribe/unsubscribe/broadcast, which is the ordering guarantee the
// relay offers: each subscriber sees a room's events in the order the
// hub processed them.
type Hub struct {
	mu      sync.Mutex
	clients map[port.Client]struct{}
	// rooms maps a room code to its broadcast group.
	rooms map[string]map[port.Client]struct{}
	// joined tracks the single active subscription per client.
	joined map[port.Client]string
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[port.Client]struct{}),
		rooms:   make(map[string]map[port.Client]struct{}),
		joined:  make(map[port.Client]string),
	}
}

func (h *Hub) Register(c port.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	log.Info().Str("client_id", c.ID()).Msg("Client registered")
}

func (h *Hub) Unregister(c port.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	h.drop(c)
	c.Close()
	log.Info().Str("client_id", c.ID()).Msg("Client unregistered")
}

// Subscribe adds c to roomCode's broadcast group. A previous
// subscription is replaced, never kept alongside.
func (h *Hub) Subscribe(c port.Client, roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.joined[c]; ok && prev != roomCode {
		h.leaveGroup(c, prev)
	}

	group, ok := h.rooms[roomCode]
	if !ok {
		group = make(map[port.Client]struct{})
		h.rooms[roomCode] = group
	}
	group[c] = struct{}{}
	h.joined[c] = roomCode
}

func (h *Hub) Unsubscribe(c port.Client, roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveGroup(c, roomCode)
	if h.joined[c] == roomCode {
		delete(h.joined, c)
	}
}

func (h *Hub) Broadcast(ctx context.Context, roomCode string, ev domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[roomCode] {
		h.send(c, ev)
	}
	return nil
}

func (h *Hub) BroadcastExcept(ctx context.Context, roomCode string, sender port.Client, ev domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[roomCode] {
		if c == sender {
			continue
		}
		h.send(c, ev)
	}
	return nil
}

// Close disconnects every client. Called once at shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Str("client_id", c.ID()).Msg("Error closing client connection")
		}
	}
	h.clients = make(map[port.Client]struct{})
	h.rooms = make(map[string]map[port.Client]struct{})
	h.joined = make(map[port.Client]string)
}

// send delivers ev to c, dropping the client on a failed write.
// Callers hold h.mu.
func (h *Hub) send(c port.Client, ev domain.Event) {
	if err := c.Send(ev); err != nil {
		log.Error().Err(err).Str("client_id", c.ID()).Msg("Error sending event")
		h.drop(c)
		c.Close()
	}
}

// drop removes c from the client set and any broadcast group. Callers
// hold h.mu.
func (h *Hub) drop(c port.Client) {
	delete(h.clients, c)
	if roomCode, ok := h.joined[c]; ok {
		h.leaveGroup(c, roomCode)
		delete(h.joined, c)
	}
}

// leaveGroup removes c from one broadcast group, deleting the group
// when it empties. Callers hold h.mu.
func (h *Hub) leaveGroup(c port.Client, roomCode string) {
	group, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	delete(group, c)
	if len(group) == 0 {
		delete(h.rooms, roomCode)
	}
}
