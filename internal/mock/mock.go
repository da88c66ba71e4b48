// Package mock provides a scripted client.Transport for tests.
package mock

import (
	"github.com/torann/remote-model/pkg/client"
)

// Handler answers one scripted action. A nil map with a nil error is the
// falsy outcome.
type Handler func(params ...any) (map[string]any, error)

// Call records one dispatched action.
type Call struct {
	Endpoint string
	Action   string
	Params   []any
}

// Client is a scripted transport. Handlers are keyed by endpoint and action;
// unscripted actions return the falsy result. Payload, when set, is what
// Errors() reports after every call.
type Client struct {
	Handlers map[string]Handler
	Payload  *client.ErrorPayload
	Calls    []Call
}

func New() *Client {
	return &Client{Handlers: map[string]Handler{}}
}

// On scripts a handler for one endpoint action.
func (c *Client) On(endpoint, action string, fn Handler) *Client {
	c.Handlers[endpoint+"."+action] = fn
	return c
}

// LastCall returns the most recent dispatched call.
func (c *Client) LastCall() Call {
	if len(c.Calls) == 0 {
		return Call{}
	}
	return c.Calls[len(c.Calls)-1]
}

func (c *Client) dispatch(endpoint, action string, params ...any) (map[string]any, error) {
	c.Calls = append(c.Calls, Call{Endpoint: endpoint, Action: action, Params: params})
	if fn, ok := c.Handlers[endpoint+"."+action]; ok {
		return fn(params...)
	}
	return nil, nil
}

func (c *Client) Find(endpoint string, id any, params client.Params) (map[string]any, error) {
	return c.dispatch(endpoint, "find", id, params)
}

func (c *Client) Create(endpoint string, body map[string]any) (map[string]any, error) {
	return c.dispatch(endpoint, "create", body)
}

func (c *Client) Update(endpoint string, id any, body map[string]any) (map[string]any, error) {
	return c.dispatch(endpoint, "update", id, body)
}

func (c *Client) Destroy(endpoint string, id any) (map[string]any, error) {
	return c.dispatch(endpoint, "destroy", id)
}

func (c *Client) All(endpoint string, params client.Params) (map[string]any, error) {
	return c.dispatch(endpoint, "all", params)
}

func (c *Client) Call(endpoint string, action string, params ...any) (any, error) {
	res, err := c.dispatch(endpoint, action, params...)
	if res == nil {
		return nil, err
	}
	return res, err
}

func (c *Client) Errors() *client.ErrorPayload {
	return c.Payload
}
