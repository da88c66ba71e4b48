package remotemodel

import "errors"

// Errors
var (
	ErrNotFound = errors.New("remote record not found")
	ErrNoClient = errors.New("transport client not set")
	ErrNoName   = errors.New("definition name not set")
)
