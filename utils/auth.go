package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT secret key, loaded from the environment in main.
var JwtKey = []byte("your_secret_key")

const tokenLifetime = 7 * 24 * time.Hour

// Claims carries the principal id. The same claim shape is used for
// users and admins; which collection the id resolves against depends
// on the middleware that verifies the token.
type Claims struct {
	ID string `json:"id"`
	jwt.StandardClaims
}

// GenerateToken signs a token carrying the principal id, valid for
// seven days.
func GenerateToken(id string) (string, error) {
	expirationTime := time.Now().Add(tokenLifetime)
	claims := &Claims{
		ID: id,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(JwtKey)
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("token is not valid", jwt.ValidationErrorClaimsInvalid)
	}

	return claims, nil
}
