// Package session turns the storefront's "token" and "user" cookies into a
// validated session. Anything malformed fails closed: the request proceeds
// as logged out instead of erroring.
package session

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenCookie = "token"
	UserCookie  = "user"

	RoleAdmin = "Admin"
)

// Session is the decoded "user" cookie. The cookie is browser-writable, so
// the JWT is what actually authenticates; the session fields are display
// state (favorites, role for routing) that the backend re-checks.
type Session struct {
	UserID           int64   `json:"id"`
	Username         string  `json:"username"`
	Role             string  `json:"role"`
	FavoriteProducts []int64 `json:"favoritesProduct"`
	FavoritePosts    []int64 `json:"favoritesPost"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Manager struct {
	jwtKey []byte
}

func NewManager(jwtKey []byte) *Manager {
	return &Manager{jwtKey: jwtKey}
}

// FromRequest decodes and verifies the session cookies. ok is false whenever
// the cookies are missing, malformed, mismatched or the token is expired.
func (m *Manager) FromRequest(r *http.Request) (*Session, string, bool) {

	tokenCookie, err := r.Cookie(TokenCookie)
	if err != nil || tokenCookie.Value == "" {
		return nil, "", false
	}

	userCookie, err := r.Cookie(UserCookie)
	if err != nil || userCookie.Value == "" {
		return nil, "", false
	}

	claims, err := m.verifyToken(tokenCookie.Value)
	if err != nil {
		return nil, "", false
	}

	sess, err := decodeUserCookie(userCookie.Value)
	if err != nil {
		return nil, "", false
	}

	// the token owner and the cookie user must agree
	if claims.UserID != sess.UserID {
		return nil, "", false
	}

	return sess, tokenCookie.Value, true
}

func (m *Manager) verifyToken(tokenString string) (*Claims, error) {

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return m.jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

func decodeUserCookie(raw string) (*Session, error) {

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, err
	}

	var sess Session

	if err := json.Unmarshal([]byte(decoded), &sess); err != nil {
		return nil, err
	}

	// schema check: a session without an identity is no session
	if sess.UserID <= 0 || sess.Username == "" || sess.Role == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &sess, nil
}
