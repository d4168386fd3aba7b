package authUtils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SessionTTL is how long an anonymous session token stays valid.
const SessionTTL = 72 * time.Hour

var ErrInvalidToken = errors.New("invalid authorization token")

// GenerateToken signs an HS256 token carrying uid.
func GenerateToken(secret, uid string, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"iat": now.Unix(),
		"exp": now.Add(SessionTTL).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ParseToken verifies tokenString and returns its uid claim.
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	uid, _ := claims["uid"].(string)
	if uid == "" {
		return "", fmt.Errorf("%w: missing uid claim", ErrInvalidToken)
	}
	return uid, nil
}
