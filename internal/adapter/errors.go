package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoSession is returned by authenticated calls made without a session.
	ErrNoSession = errors.New("no backend session")

	// ErrUnreachable wraps transport failures: no HTTP response was received.
	ErrUnreachable = errors.New("server unreachable")
)
