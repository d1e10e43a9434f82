package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired marks a structurally valid token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers every other verification failure: bad
	// signature, wrong algorithm, garbage input, missing email claim.
	ErrTokenMalformed = errors.New("invalid token")
)

// Claims are the identity-token claims the backend cares about. Role may be
// empty; the login flow then falls back to the stored user role.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken verifies an identity token against the session secret and
// returns its claims. Expired tokens are distinguished from malformed ones so
// callers can answer with different error codes.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || claims.Email == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
