package domain

import (
	"errors"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrCodeSpaceExhausted = errors.New("room code space exhausted")
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidInput       = errors.New("invalid input")
)
