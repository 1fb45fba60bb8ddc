package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidToken = crerr.New("invalid session token")
	ErrExpiredToken = crerr.New("session token expired")
)

// Claims is the signed payload stored in the session cookie.
type Claims struct {
	SessionID        string `json:"sid"`
	UserID           int64  `json:"uid"`
	Username         string `json:"usr"`
	SelectedLeagueID int64  `json:"lid,omitempty"`
	ExpiresAt        int64  `json:"exp"`
}

func (c Claims) HasLeague() bool {
	return c.SelectedLeagueID > 0
}

// Codec signs claims as base64(payload) + "." + base64(hmac-sha256).
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode fills ExpiresAt from the codec TTL when unset.
func (c *Codec) Encode(claims Claims) (string, Claims, error) {
	if claims.UserID <= 0 {
		return "", Claims{}, crerr.New("session requires a user id")
	}
	if claims.ExpiresAt == 0 {
		claims.ExpiresAt = c.now().Add(c.ttl).Unix()
	}

	payload, err := sonic.Marshal(claims)
	if err != nil {
		return "", Claims{}, crerr.Wrap(err, "marshal session claims")
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), claims, nil
}

func (c *Codec) Decode(token string) (Claims, error) {
	encoded, signature, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok || encoded == "" || signature == "" {
		return Claims{}, ErrInvalidToken
	}
	if !hmac.Equal([]byte(signature), []byte(c.sign(encoded))) {
		return Claims{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Claims{}, crerr.WithSecondaryError(ErrInvalidToken, crerr.Wrap(err, "decode session payload"))
	}

	var claims Claims
	if err := sonic.Unmarshal(payload, &claims); err != nil {
		return Claims{}, crerr.WithSecondaryError(ErrInvalidToken, crerr.Wrap(err, "unmarshal session payload"))
	}
	if claims.UserID <= 0 {
		return Claims{}, ErrInvalidToken
	}
	if claims.ExpiresAt <= c.now().Unix() {
		return Claims{}, ErrExpiredToken
	}

	return claims, nil
}

func (c *Codec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
