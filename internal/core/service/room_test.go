package service

import (
	"context"
	"testing"

	"github.com/peerwave/signaling/internal/adapter/driven/persistence/memory"
	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJoinLeaveFlow(t *testing.T) {
	svc := NewRoomService(memory.NewRoomRepository())
	ctx := context.Background()

	alice := domain.Account{ID: domain.NewUserID(), Username: "alice"}
	bob := domain.Account{ID: domain.NewUserID(), Username: "bob"}

	code, err := svc.CreateRoom(ctx, alice)
	require.NoError(t, err)
	require.Len(t, code, domain.RoomCodeLength)

	participants, err := svc.JoinRoom(ctx, alice, code)
	require.NoError(t, err)
	assert.Equal(t, []domain.Participant{{UserID: alice.ID.String(), Username: "alice"}}, participants)

	participants, err = svc.JoinRoom(ctx, bob, code)
	require.NoError(t, err)
	assert.Len(t, participants, 2)

	room, err := svc.RoomStatus(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, room.CreatorID)
	assert.Len(t, room.Participants, 2)

	require.NoError(t, svc.LeaveRoom(ctx, bob, code))

	room, err = svc.RoomStatus(ctx, code)
	require.NoError(t, err)
	assert.Len(t, room.Participants, 1)

	// Last leave deletes the room.
	require.NoError(t, svc.LeaveRoom(ctx, alice, code))
	_, err = svc.RoomStatus(ctx, code)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	codes, err := svc.ActiveRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestJoinUnknownRoom(t *testing.T) {
	svc := NewRoomService(memory.NewRoomRepository())

	_, err := svc.JoinRoom(context.Background(), domain.Account{ID: domain.NewUserID(), Username: "alice"}, "NOSUCH")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestLeaveSucceedsForNonMember(t *testing.T) {
	svc := NewRoomService(memory.NewRoomRepository())
	ctx := context.Background()

	alice := domain.Account{ID: domain.NewUserID(), Username: "alice"}
	bob := domain.Account{ID: domain.NewUserID(), Username: "bob"}

	code, err := svc.CreateRoom(ctx, alice)
	require.NoError(t, err)
	_, err = svc.JoinRoom(ctx, alice, code)
	require.NoError(t, err)

	// Bob never joined; leaving is still acknowledged.
	assert.NoError(t, svc.LeaveRoom(ctx, bob, code))
}

func TestActiveRoomsListsCodes(t *testing.T) {
	svc := NewRoomService(memory.NewRoomRepository())
	ctx := context.Background()

	alice := domain.Account{ID: domain.NewUserID(), Username: "alice"}
	first, err := svc.CreateRoom(ctx, alice)
	require.NoError(t, err)
	second, err := svc.CreateRoom(ctx, alice)
	require.NoError(t, err)

	codes, err := svc.ActiveRooms(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, codes)
}
