package security

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/entities"
)

type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func GenerateToken(userID uint, role entities.Role, secret []byte, ttl time.Duration) (string, time.Time, error) {

	expiresAt := time.Now().Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: string(role),
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates the signature and expiry and returns the caller
// identity baked into the token.
func ParseToken(tokenString string, secret []byte) (uint, entities.Role, error) {

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", apperrors.Unauthorized("invalid token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", apperrors.Unauthorized("invalid token subject")
	}

	role, err := entities.ToRole(claims.Role)
	if err != nil {
		return 0, "", apperrors.Unauthorized("invalid token role")
	}

	return uint(userID), role, nil
}
