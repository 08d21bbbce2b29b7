// Package backend is the typed client for the authoritative store API. The
// gateway owns no data; every cart, order and catalog read goes through here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/config"
	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Backend) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// errorBody is the backend's error payload shape; plain-text bodies are
// passed through as-is.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type requestOption func(*http.Request)

func withBearer(token string) requestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Transport failures map to TIMEOUT or NETWORK_ERROR; non-2xx responses map
// to NOT_FOUND or SERVER_ERROR with the backend message kept verbatim.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, opts ...requestOption) error {

	var reqBody io.Reader

	if body != nil {

		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.InternalError("Failed to encode request body").WithError(err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.InternalError("Failed to build backend request").WithError(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatusError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.ServerError("Backend returned an unreadable response").WithError(err)
	}

	return nil
}

func mapTransportError(err error) error {

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError("The store did not respond in time").WithError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.TimeoutError("The store did not respond in time").WithError(err)
	}

	return apperrors.NetworkError("Could not reach the store").WithError(err)
}

func mapStatusError(resp *http.Response) error {

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := serverMessage(raw)

	if resp.StatusCode == http.StatusNotFound {
		if message == "" {
			message = "Resource not found"
		}

		return apperrors.NotFoundError(message)
	}

	if message == "" {
		message = fmt.Sprintf("The store returned status %d", resp.StatusCode)
	}

	return apperrors.ServerError(message)
}

// serverMessage extracts a human-readable message from the backend body,
// whether it is {"message": ...}, {"error": ...} or plain text.
func serverMessage(raw []byte) string {

	text := strings.TrimSpace(string(raw))

	if text == "" {
		return ""
	}

	var parsed errorBody

	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}

		if parsed.Error != "" {
			return parsed.Error
		}
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return ""
	}

	return text
}
