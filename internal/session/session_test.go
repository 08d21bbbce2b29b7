package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-jwt-key")

func signToken(t *testing.T, userID int64, expiresAt time.Time, key []byte) string {
	t.Helper()

	claims := &session.Claims{
		UserID: userID,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func userCookieValue(t *testing.T, sess session.Session) string {
	t.Helper()

	data, err := json.Marshal(sess)
	require.NoError(t, err)

	return url.QueryEscape(string(data))
}

func requestWith(token, user string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: token})
	}

	if user != "" {
		req.AddCookie(&http.Cookie{Name: session.UserCookie, Value: user})
	}

	return req
}

func TestFromRequest(t *testing.T) {
	manager := session.NewManager(testKey)

	validUser := session.Session{
		UserID:           42,
		Username:         "minh",
		Role:             "Customer",
		FavoriteProducts: []int64{3},
	}

	t.Run("Valid Session", func(t *testing.T) {
		token := signToken(t, 42, time.Now().Add(time.Hour), testKey)
		req := requestWith(token, userCookieValue(t, validUser))

		sess, gotToken, ok := manager.FromRequest(req)

		require.True(t, ok)
		assert.Equal(t, int64(42), sess.UserID)
		assert.Equal(t, "minh", sess.Username)
		assert.Equal(t, token, gotToken)
		assert.False(t, sess.IsAdmin())
	})

	t.Run("Missing Cookies", func(t *testing.T) {
		_, _, ok := manager.FromRequest(requestWith("", ""))
		assert.False(t, ok)
	})

	t.Run("Expired Token Fails Closed", func(t *testing.T) {
		token := signToken(t, 42, time.Now().Add(-time.Minute), testKey)
		req := requestWith(token, userCookieValue(t, validUser))

		_, _, ok := manager.FromRequest(req)

		assert.False(t, ok)
	})

	t.Run("Wrong Signing Key Fails Closed", func(t *testing.T) {
		token := signToken(t, 42, time.Now().Add(time.Hour), []byte("other-key"))
		req := requestWith(token, userCookieValue(t, validUser))

		_, _, ok := manager.FromRequest(req)

		assert.False(t, ok)
	})

	t.Run("Malformed User Cookie Fails Closed", func(t *testing.T) {
		token := signToken(t, 42, time.Now().Add(time.Hour), testKey)
		req := requestWith(token, url.QueryEscape("{not-json"))

		_, _, ok := manager.FromRequest(req)

		assert.False(t, ok, "malformed session data must read as logged out, not error")
	})

	t.Run("User Cookie Missing Identity Fails Closed", func(t *testing.T) {
		token := signToken(t, 42, time.Now().Add(time.Hour), testKey)
		req := requestWith(token, userCookieValue(t, session.Session{Username: "minh"}))

		_, _, ok := manager.FromRequest(req)

		assert.False(t, ok)
	})

	t.Run("Token And Cookie User Mismatch Fails Closed", func(t *testing.T) {
		token := signToken(t, 7, time.Now().Add(time.Hour), testKey)
		req := requestWith(token, userCookieValue(t, validUser))

		_, _, ok := manager.FromRequest(req)

		assert.False(t, ok)
	})

	t.Run("Admin Role", func(t *testing.T) {
		admin := validUser
		admin.Role = session.RoleAdmin

		token := signToken(t, 42, time.Now().Add(time.Hour), testKey)
		req := requestWith(token, userCookieValue(t, admin))

		sess, _, ok := manager.FromRequest(req)

		require.True(t, ok)
		assert.True(t, sess.IsAdmin())
	})
}
