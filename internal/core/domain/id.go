package domain

import (
	"github.com/google/uuid"
)

type UserID uuid.UUID

// ConnectionID identifies one relay channel. It is unrelated to the
// user identity carried by the Account Directory.
type ConnectionID uuid.UUID

func NewUserID() UserID {
	return UserID(uuid.New())
}

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.New())
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

func (id ConnectionID) String() string {
	return uuid.UUID(id).String()
}
