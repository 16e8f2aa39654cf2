package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of the server
	// side student service.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
