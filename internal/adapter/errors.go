package adapter

import "errors"

// Sentinel errors returned (wrapped) by [ServerAdapter] implementations.
// mapHTTPError maps non-2xx HTTP status codes onto them so that callers can
// branch with [errors.Is] without knowing the transport.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
