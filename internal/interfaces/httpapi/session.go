package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/session"
)

const sessionCookieName = "hoops_session"

// SessionManager moves signed session claims in and out of the request cookie.
type SessionManager struct {
	codec  *session.Codec
	ids    id.Generator
	secure bool
}

func NewSessionManager(codec *session.Codec, ids id.Generator, secure bool) *SessionManager {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &SessionManager{
		codec:  codec,
		ids:    ids,
		secure: secure,
	}
}

// Issue signs claims into the session cookie. A fresh session id is assigned when missing.
func (m *SessionManager) Issue(w http.ResponseWriter, claims session.Claims) (session.Claims, error) {
	if claims.SessionID == "" {
		sid, err := m.ids.NewID()
		if err != nil {
			return session.Claims{}, fmt.Errorf("new session id: %w", err)
		}
		claims.SessionID = sid
	}

	token, claims, err := m.codec.Encode(claims)
	if err != nil {
		return session.Claims{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(claims.ExpiresAt, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return claims, nil
}

func (m *SessionManager) Read(r *http.Request) (session.Claims, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return session.Claims{}, session.ErrInvalidToken
	}
	return m.codec.Decode(cookie.Value)
}

func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
