package domain

import (
	"crypto/rand"
	"math/big"

	"github.com/rs/zerolog/log"
)

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RoomCodeLength is the length of the short rendezvous code clients
// share out of band.
const RoomCodeLength = 6

// NewRoomCode returns a random code drawn uniformly from A-Z0-9.
// Uniqueness against the registry is the caller's job.
func NewRoomCode() string {
	b := make([]byte, RoomCodeLength)
	for i := range b {
		b[i] = roomCodeAlphabet[randomIndex(len(roomCodeAlphabet))]
	}
	return string(b)
}

func randomIndex(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		log.Panic().Err(err).Msg("Failed to read random bytes")
	}
	return int(n.Int64())
}
