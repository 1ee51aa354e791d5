package services

import "errors"

// Error taxonomy. Handlers map these to HTTP status codes with errors.Is;
// anything not in the list is a plain 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("conflict")
	ErrUpstream           = errors.New("upstream failure")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
