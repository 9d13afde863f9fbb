// Package contactclient is a typed client for the contact endpoint. It mirrors
// the site's browser-side submission helper: callers get a DeliveryResult in
// every case, with optional success/error/loading callbacks layered on top.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const networkErrorMessage = "Network error. Please check your connection and try again."

// ContactFormData is the payload posted to the contact endpoint.
type ContactFormData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// ValidationError is one field-level rejection from the server.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DeliveryResult is the outcome of a submission attempt. A network-level
// failure synthesizes one rather than surfacing a transport error.
type DeliveryResult struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message,omitempty"`
	Timestamp        string            `json:"timestamp,omitempty"`
	Error            string            `json:"error,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
	Details          string            `json:"details,omitempty"`
}

// Callbacks are optional hooks around a submission. OnLoading fires with true
// before the request and with false after the outcome is known, regardless of
// how the attempt ended.
type Callbacks struct {
	OnSuccess func(DeliveryResult)
	OnError   func(DeliveryResult)
	OnLoading func(bool)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, e.g. to tighten the
// timeout or to inject a test transport.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a client for the backend at baseURL (scheme and host, no path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts the payload and maps the response onto a DeliveryResult. It
// never returns a Go error: network-level failures become a fixed error
// result, application-level failures carry whatever the server said. Exactly
// one of OnSuccess/OnError fires per call.
func (c *Client) Submit(ctx context.Context, data ContactFormData, cb *Callbacks) DeliveryResult {
	if cb != nil && cb.OnLoading != nil {
		cb.OnLoading(true)
		defer cb.OnLoading(false)
	}

	result := c.post(ctx, data)

	if cb != nil {
		if result.Success {
			if cb.OnSuccess != nil {
				cb.OnSuccess(result)
			}
		} else if cb.OnError != nil {
			cb.OnError(result)
		}
	}

	return result
}

func (c *Client) post(ctx context.Context, data ContactFormData) DeliveryResult {
	body, err := json.Marshal(data)
	if err != nil {
		return DeliveryResult{Success: false, Error: networkErrorMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return DeliveryResult{Success: false, Error: networkErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		// No response obtained; do not attempt to parse a body
		return DeliveryResult{Success: false, Error: networkErrorMessage}
	}
	defer resp.Body.Close()

	var result DeliveryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return DeliveryResult{Success: false, Error: networkErrorMessage}
	}

	return result
}
