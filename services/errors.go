package services

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrEmailTaken     = errors.New("email is already registered")
	ErrBadCredentials = errors.New("invalid email or password")
)

var (
	// ErrRoomUnavailable is the conflict result: a confirmed booking already
	// covers part of the requested range, or this request lost the race.
	ErrRoomUnavailable = errors.New("room no longer available")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrNotCancellable = errors.New("cannot cancel this booking")
	ErrStayStarted    = errors.New("cannot cancel past or ongoing stays")
)
