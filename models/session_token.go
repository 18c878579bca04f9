package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// Session token constants
const (
	// SessionTokenIssuer identifies the application that issued the cookie
	SessionTokenIssuer = "recipesearch"

	// SessionTokenLifetime bounds how long a browser keeps the same search state
	SessionTokenLifetime = 7 * 24 * time.Hour
)

// SessionClaims carries the browser session id in the JWT subject
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionSigner issues and validates the signed session cookie value.
// The cookie only ties a browser to its search widget; it carries no user identity.
type SessionSigner struct {
	secret []byte
}

// NewSessionSigner creates a signer; the secret must be at least MinSessionSecretLength bytes
func NewSessionSigner(secret string) (*SessionSigner, error) {
	if len(secret) < MinSessionSecretLength {
		return nil, serr.New("session secret must be at least 32 characters")
	}
	return &SessionSigner{secret: []byte(secret)}, nil
}

// NewSession generates a session id and its signed token
func (s *SessionSigner) NewSession() (sessionID, token string, err error) {
	sessionID = uuid.NewString()
	now := time.Now()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionTokenIssuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", serr.Wrap(err, "failed to sign session token")
	}
	return sessionID, token, nil
}

// ValidateSession returns the session id carried by a token.
// Expired, malformed or foreign-signed tokens are rejected.
func (s *SessionSigner) ValidateSession(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuer(SessionTokenIssuer))
	if err != nil {
		return "", serr.Wrap(err, "failed to parse session token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", serr.New("invalid session claims")
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", serr.Wrap(err, "session id is not a uuid")
	}
	return claims.Subject, nil
}
