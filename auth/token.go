package auth

import (
	"chatbot/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "chatbot"

// GatewayClaims is what the gateway reads from the token passed on the websocket URL.
type GatewayClaims struct {
	Session string `json:"session"`
	jwt.RegisteredClaims
}

// GenerateGatewayToken signs a short-lived HS256 token for the gateway session.
func GenerateGatewayToken(secret []byte, session string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", errors.ErrMissingCredentials
	}
	claims := &GatewayClaims{
		Session: session,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   session,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateGatewayToken checks the signature, the algorithm and the expiration of a token.
func ValidateGatewayToken(secret []byte, tokenString string) (*GatewayClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GatewayClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(Issuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*GatewayClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
