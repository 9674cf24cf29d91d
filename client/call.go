package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// call describes one outbound request. Every resource method builds a call
// and hands it to (*Client).do; nothing else in the package touches the
// network.
type call struct {
	// resource labels metrics ("auth", "table", "menu", ...).
	resource string
	// method defaults to GET when empty.
	method string
	// path is relative to "<base>/api" and must start with "/".
	path string
	// body is JSON-marshaled when non-nil and form is nil.
	body any
	// form is a raw payload (multipart upload). It is sent unmodified and
	// suppresses the default JSON Content-Type.
	form *FormPayload
	// params is serialized as the query string when non-empty.
	params url.Values
	// header entries are merged over the defaults, overriding on conflict.
	header http.Header
}

// do is the single choke point for all outbound calls. It composes the URL,
// attaches the bearer token, serializes the body, executes the request and
// normalizes every failure into *Error. The returned payload is nil when the
// response body was empty or not JSON.
func (c *Client) do(ctx context.Context, cl call) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	method := cl.method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + "/api" + cl.path
	if len(cl.params) > 0 {
		target += "?" + cl.params.Encode()
	}

	var body io.Reader
	contentType := "application/json"
	switch {
	case cl.form != nil:
		body = cl.form.Reader
		contentType = cl.form.ContentType
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, transportError(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, transportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range cl.header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Authorization") == "" {
		if tok, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(cl.resource, method, "0").Inc()
		return nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	requestsTotal.WithLabelValues(cl.resource, method, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(cl.resource).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	// An empty or non-JSON body on a success status is success with no
	// payload, not an error.
	var payload json.RawMessage
	if json.Valid(raw) && len(bytes.TrimSpace(raw)) > 0 {
		payload = json.RawMessage(raw)
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{
			Message: errorMessage(payload, resp.StatusCode),
			Status:  resp.StatusCode,
			Data:    payload,
		}
	}
	return payload, nil
}

// doJSON executes the call and decodes the payload into out. A nil payload
// (204, empty body) leaves out untouched.
func (c *Client) doJSON(ctx context.Context, cl call, out any) error {
	payload, err := c.do(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil || payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return transportError(err)
	}
	return nil
}

// errorMessage prefers the backend's "message" field, falling back to the
// standard status text.
func errorMessage(payload json.RawMessage, status int) string {
	if payload != nil {
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Message != "" {
			return envelope.Message
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}
