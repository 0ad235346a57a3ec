package auth

import (
	"fmt"
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/golang-jwt/jwt/v5"
)

// SecretKey is assigned from configuration at startup, before the router
// accepts traffic.
var SecretKey = []byte("")

const sessionDuration = 30 * time.Minute

type Claims struct {
	User model.UserProfile `json:"user"`
	jwt.RegisteredClaims
}

func GenerateToken(user model.UserProfile) (string, error) {
	now := time.Now()
	expirationTime := now.Add(sessionDuration)

	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.UserID,
			Issuer:    "astrologi-ai",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(SecretKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return SecretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
