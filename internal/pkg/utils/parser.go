package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParsePractitionerJWT extracts the practitioner id from a bearer token issued
// by the external identity service. Only HMAC tokens are accepted.
func ParsePractitionerJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if practitionerID, ok := claims["practitioner_id"].(string); ok {
			return practitionerID, nil
		}
		if sub, ok := claims["sub"].(string); ok {
			return sub, nil
		}
	}

	return "", errors.New("invalid token")
}
