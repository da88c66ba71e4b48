// Package client defines the transport surface remote models dispatch
// through, and an HTTP implementation of it.
package client

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Params carries opaque query parameters passed through to the remote API.
// The model layer never interprets them.
type Params map[string]any

// Transport is the per-endpoint action surface the model layer depends on.
// A nil map with a nil error is the "falsy" outcome: the call completed but
// the server returned no usable record. A non-nil error is a transport
// failure and is never masked.
type Transport interface {
	Find(endpoint string, id any, params Params) (map[string]any, error)
	Create(endpoint string, body map[string]any) (map[string]any, error)
	Update(endpoint string, id any, body map[string]any) (map[string]any, error)
	Destroy(endpoint string, id any) (map[string]any, error)
	All(endpoint string, params Params) (map[string]any, error)

	// Call forwards a named action with positional parameters.
	Call(endpoint string, action string, params ...any) (any, error)

	// Errors reports the structured error payload from the most recent
	// call, or nil. It is only valid until the next call.
	Errors() *ErrorPayload
}

// ErrorPayload is the server-reported error envelope captured after a call.
type ErrorPayload struct {
	Code   int      `json:"code"`
	Errors []string `json:"errors"`
}

// Err folds the message list into a single error, or nil when the payload is
// empty.
func (p *ErrorPayload) Err() error {
	if p == nil || len(p.Errors) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, msg := range p.Errors {
		result = multierror.Append(result, errors.New(msg))
	}
	return result.ErrorOrNil()
}
