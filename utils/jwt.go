package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// SessionDuration is the validity window of a session token.
const SessionDuration = 7 * 24 * time.Hour

// ErrInvalidToken is returned for malformed, tampered or expired tokens.
// Callers get no further detail on which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken issues a signed session token binding only the admin id.
func GenerateToken(adminID int64) (string, error) {
	jwtSecret := viper.GetString("JWT_SECRET")

	claims := jwt.MapClaims{
		"user_id": adminID,
		"exp":     time.Now().Add(SessionDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseToken verifies a session token and returns the bound admin id.
func ParseToken(tokenString string) (int64, error) {
	jwtSecret := viper.GetString("JWT_SECRET")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return int64(rawID), nil
}
