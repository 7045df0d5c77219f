package nylas

import (
	"context"
	"encoding/json"
	"net/http"
)

// RequestOptions describes one request to the provider.
type RequestOptions struct {
	Method string
	Body   []byte
	// WithoutGrant sends the request to the API root instead of under the
	// configured grant. Availability is the only endpoint that needs it.
	WithoutGrant bool
}

// Response is what a RequestSender hands back.
type Response interface {
	OK() bool
	StatusText() string
	JSON(v any) error
}

// RequestSender sends a request to the provider. Transport failures are
// returned as errors, HTTP failures as a Response whose OK is false.
type RequestSender interface {
	Send(ctx context.Context, path string, opts RequestOptions) (Response, error)
}

// HTTPResponse is a fully read HTTP response.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// NewResponse returns a Response for a status code and body.
func NewResponse(statusCode int, body []byte) *HTTPResponse {
	return &HTTPResponse{StatusCode: statusCode, Body: body}
}

func (r *HTTPResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *HTTPResponse) StatusText() string {
	return http.StatusText(r.StatusCode)
}

func (r *HTTPResponse) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
