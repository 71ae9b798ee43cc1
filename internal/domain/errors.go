package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrRoomTypeUnknown = errors.New("unknown room type")
	ErrUnauthenticated = errors.New("not authenticated")
)
