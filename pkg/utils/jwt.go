package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var secretKey []byte

var ErrNoToken = errors.New("no token found")

// SetSecret sets the HMAC key used to sign session tokens.
func SetSecret(key string) {
	secretKey = []byte(key)
}

// GenerateSessionToken signs an anonymous shopper session.
func GenerateSessionToken(sessionID string, expiry time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", fmt.Errorf("jwt secret not set")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sessionID,
		"typ": "session",
		"iat": now.Unix(),
		"exp": now.Add(expiry).Unix(),
	})

	return token.SignedString(secretKey)
}

// ValidateSessionToken returns the session ID carried by a valid token.
func ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	// Only session tokens are accepted
	if typ, _ := claims["typ"].(string); typ != "session" {
		return "", fmt.Errorf("invalid token type")
	}
	sub, _ := claims["sub"].(string)
	if _, err := uuid.Parse(sub); err != nil {
		return "", fmt.Errorf("invalid session id: %w", err)
	}
	return sub, nil
}

func GenerateUUID() string {
	return uuid.NewString()
}

// ExtractToken reads a bearer token from the Authorization header, falling
// back to the named cookie.
func ExtractToken(r *http.Request, cookieName string) (string, error) {
	// 1. Authorization header
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != "" {
			return token, nil
		}
	}
	// 2. Cookie
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", ErrNoToken
}
