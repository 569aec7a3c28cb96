package mock

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errDuplicateUser = errors.New("username already taken")

const tokenTTL = 24 * time.Hour

// issueToken mints the opaque session credential for a user. The wire
// contract treats it as an opaque string; HMAC-signed JWT keeps the mock
// stateless about sessions.
func (s *Service) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// authenticate resolves the raw Authorization header value to a user.
func (s *Service) authenticate(raw string) (*user, bool) {
	if raw == "" {
		return nil, false
	}
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[sub]
	return u, ok
}
