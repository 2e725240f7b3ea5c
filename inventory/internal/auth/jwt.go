package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/errors"
)

const (
	accessTokenTTL  = 15 * time.Minute
	issuer          = "shelf-life-inventory"
	tokenTypeAccess = "ACCESS"
)

// jwtKey stores the signing key loaded at startup via InitJWTKey.
var jwtKey []byte

// InitJWTKey sets the secret used to sign and verify staff tokens.
func InitJWTKey(secret string) error {
	if secret == "" {
		return errors.NotValidf("empty JWT secret")
	}
	jwtKey = []byte(secret)
	return nil
}

type Claims struct {
	StaffID   int64  `json:"staff_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a short-lived token for stock-changing endpoints.
func GenerateAccessToken(staffID int64, username string) (string, error) {
	if len(jwtKey) == 0 {
		return "", errors.New("JWT key not initialised")
	}
	claims := &Claims{
		StaffID:   staffID,
		Username:  username,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken parses and verifies claims and signature integrity.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, errors.NewUnauthorized(err, "invalid token")
	}
	if !token.Valid || claims.TokenType != tokenTypeAccess {
		return nil, errors.Unauthorizedf("invalid token")
	}
	return claims, nil
}
