package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the payload of issued tokens. Subject carries the username.
type Claims struct {
	Email    string   `json:"email"`
	Groups   []string `json:"groups,omitempty"`
	ClientID string   `json:"client_id"`
	jwt.RegisteredClaims
}

// InGroup reports whether the token grants membership in the given group.
func (c *Claims) InGroup(group string) bool {
	for _, member := range c.Groups {
		if member == group {
			return true
		}
	}
	return false
}

func (s *Service) issueToken(user userRecord, clientID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:    user.Email,
		Groups:   user.Groups,
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verifier checks token signatures and expiry. It shares the signing secret
// with the Service but holds no store access, so request authorization never
// touches the identity database.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for tokens signed with the given secret.
func NewVerifier(secret []byte) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret is required")
	}
	return &Verifier{secret: secret}, nil
}

// Verify parses and validates a token string and returns its claims.
// Expired tokens map to ErrTokenExpired; every other defect maps to
// ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
