package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/session"
)

const TestToken = "test-token"

func CreateTestRequestWithSession(method, target string, body io.Reader, userID int64, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	sess := &session.Session{UserID: userID, Username: "testuser", Role: "Customer"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithSessionEntry(req.Context(), &middleware.SessionEntry{Session: sess, Token: TestToken})
	ctx = middleware.WithLogger(ctx, logger)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutSession(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}
