package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	directory "github.com/peerwave/signaling/internal/adapter/driven/directory/memory"
	"github.com/peerwave/signaling/internal/adapter/driven/gateway/ws"
	repo "github.com/peerwave/signaling/internal/adapter/driven/persistence/memory"
	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/peerwave/signaling/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceToken = "alice-session"
	bobToken   = "bob-session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	rooms := repo.NewRoomRepository()
	hub := ws.NewHub()
	t.Cleanup(hub.Close)

	accounts := directory.NewDirectory()
	accounts.AddSession(aliceToken, domain.Account{ID: domain.NewUserID(), Username: "alice"})
	accounts.AddSession(bobToken, domain.Account{ID: domain.NewUserID(), Username: "bob"})

	h := NewHandler(
		service.NewRoomService(rooms),
		service.NewRelayService(rooms, hub),
		accounts,
		t.TempDir(),
	)
	return h.NewRouter()
}

func doRequest(t *testing.T, router http.Handler, method, target, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateRoomRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/create-room", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPost, "/api/create-room", "bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRoom(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/create-room", aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Room created successfully", body["message"])
	assert.Len(t, body["room_code"], domain.RoomCodeLength)
}

func TestSessionCookieAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/create-room", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: aliceToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestJoinUnknownRoomReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/join-room/NOSUCH", aliceToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeBody(t, w)["error"])
}

func TestRoomStatusUnknownRoomReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/room-status/NOSUCH", aliceToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeBody(t, w)["error"])
}

func TestLeaveUnknownRoomReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/leave-room/NOSUCH", aliceToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/create-room", aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)
	code := decodeBody(t, w)["room_code"].(string)

	w = doRequest(t, router, http.MethodPost, "/api/join-room/"+code, aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Joined room successfully", body["message"])
	assert.Equal(t, code, body["room_code"])
	assert.Len(t, body["participants"], 1)

	// Idempotent join.
	w = doRequest(t, router, http.MethodPost, "/api/join-room/"+code, aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["participants"], 1)

	w = doRequest(t, router, http.MethodPost, "/api/join-room/"+code, bobToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["participants"], 2)

	w = doRequest(t, router, http.MethodGet, "/api/room-status/"+code, bobToken)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(2), body["participant_count"])

	w = doRequest(t, router, http.MethodGet, "/api/active-rooms", aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["total_rooms"])
	assert.Contains(t, body["active_rooms"], code)

	w = doRequest(t, router, http.MethodPost, "/api/leave-room/"+code, aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Left room successfully", decodeBody(t, w)["message"])

	w = doRequest(t, router, http.MethodPost, "/api/leave-room/"+code, bobToken)
	require.Equal(t, http.StatusOK, w.Code)

	// Empty room is gone.
	w = doRequest(t, router, http.MethodGet, "/api/room-status/"+code, aliceToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
