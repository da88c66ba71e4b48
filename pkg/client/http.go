package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/torann/remote-model/pkg/logger"
)

// HTTP is a Transport speaking a conventional REST dialect, one resource
// collection per endpoint name:
//
//	find    GET    /:endpoint/:id
//	create  POST   /:endpoint
//	update  PUT    /:endpoint/:id
//	destroy DELETE /:endpoint/:id
//	all     GET    /:endpoint
//	<name>  POST   /:endpoint/:name
//
// Bodies are JSON. A 404 is the falsy outcome; other 4xx/5xx responses are
// falsy too, with the server's {code, errors} envelope captured for
// Errors(). Only failures to complete the exchange return an error.
type HTTP struct {
	baseURL string
	token   string
	client  *http.Client
	log     logger.Logger
	lastErr *ErrorPayload
}

// NewHTTP returns an HTTP transport rooted at baseURL. token, when set, is
// sent as a bearer token.
func NewHTTP(baseURL, token string, log logger.Logger) *HTTP {
	if log == nil {
		log = logger.Discard()
	}
	return &HTTP{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
		log:     log,
	}
}

// SetClient swaps the underlying http.Client, e.g. to set timeouts.
func (c *HTTP) SetClient(hc *http.Client) {
	c.client = hc
}

func (c *HTTP) Find(endpoint string, id any, params Params) (map[string]any, error) {
	return c.request(http.MethodGet, fmt.Sprintf("/%s/%v", endpoint, id), params, nil)
}

func (c *HTTP) Create(endpoint string, body map[string]any) (map[string]any, error) {
	return c.request(http.MethodPost, "/"+endpoint, nil, body)
}

func (c *HTTP) Update(endpoint string, id any, body map[string]any) (map[string]any, error) {
	return c.request(http.MethodPut, fmt.Sprintf("/%s/%v", endpoint, id), nil, body)
}

func (c *HTTP) Destroy(endpoint string, id any) (map[string]any, error) {
	return c.request(http.MethodDelete, fmt.Sprintf("/%s/%v", endpoint, id), nil, nil)
}

func (c *HTTP) All(endpoint string, params Params) (map[string]any, error) {
	return c.request(http.MethodGet, "/"+endpoint, params, nil)
}

func (c *HTTP) Call(endpoint string, action string, params ...any) (any, error) {
	res, err := c.request(http.MethodPost, fmt.Sprintf("/%s/%s", endpoint, action), nil, map[string]any{
		"params": params,
	})
	if res == nil {
		return nil, err
	}
	return res, err
}

func (c *HTTP) Errors() *ErrorPayload {
	return c.lastErr
}

func (c *HTTP) request(method, path string, params Params, body any) (map[string]any, error) {
	c.lastErr = nil

	var rdr io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, fmt.Sprint(v))
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.log.Debug("remote call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		payload := &ErrorPayload{}
		_ = json.Unmarshal(data, payload)
		if payload.Code == 0 {
			payload.Code = resp.StatusCode
		}
		c.lastErr = payload
		return nil, nil
	}

	if len(data) == 0 {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
