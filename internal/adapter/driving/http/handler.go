package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/peerwave/signaling/internal/core/port"
	"github.com/peerwave/signaling/internal/core/service"
)

type Handler struct {
	RoomService  *service.RoomService
	RelayService *service.RelayService
	Directory    port.AccountDirectory
	StaticDir    string
}

func NewHandler(roomService *service.RoomService, relayService *service.RelayService, directory port.AccountDirectory, staticDir string) *Handler {
	return &Handler{
		RoomService:  roomService,
		RelayService: relayService,
		Directory:    directory,
		StaticDir:    staticDir,
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", h.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Post("/create-room", h.CreateRoom)
		r.Post("/join-room/{roomCode}", h.JoinRoom)
		r.Post("/leave-room/{roomCode}", h.LeaveRoom)
		r.Get("/room-status/{roomCode}", h.RoomStatus)
		r.Get("/active-rooms", h.ActiveRooms)
	})

	fs := http.FileServer(http.Dir(h.StaticDir))
	r.Handle("/*", fs)

	return r
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	code, err := h.RoomService.CreateRoom(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"room_code": code,
		"message":   "Room created successfully",
	})
}

func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	code := chi.URLParam(r, "roomCode")
	participants, err := h.RoomService.JoinRoom(r.Context(), caller, code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Joined room successfully",
		"room_code":    code,
		"participants": participants,
	})
}

func (h *Handler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	code := chi.URLParam(r, "roomCode")
	if err := h.RoomService.LeaveRoom(r.Context(), caller, code); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Left room successfully",
	})
}

func (h *Handler) RoomStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "roomCode")
	room, err := h.RoomService.RoomStatus(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"room_code":         room.Code,
		"participants":      room.Participants,
		"participant_count": len(room.Participants),
	})
}

func (h *Handler) ActiveRooms(w http.ResponseWriter, r *http.Request) {
	codes, err := h.RoomService.ActiveRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"active_rooms": codes,
		"total_rooms":  len(codes),
	})
}
