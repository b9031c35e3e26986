package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip does not exist (or its session has expired).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, traveler count below one).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
