package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUserTokenExpired is returned by [ValidateUserToken] for a well-signed
// token whose exp claim has passed.
var ErrUserTokenExpired = errors.New("user token expired")

// GenerateUserToken creates a signed HMAC-SHA256 user token with the claims
// iss, sub (userID), iat and exp (now + tokenDuration).
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
//
//	token, err := utils.GenerateUserToken("w3s-stub-backend", userID, time.Hour, "secret")
func GenerateUserToken(issuer, userID string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating user token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing user token: %w", err)
	}

	return tokenString, nil
}

// ValidateUserToken verifies the signature and issuer of tokenString and
// returns the user ID from its subject claim. An expired token yields
// [ErrUserTokenExpired] so callers can answer with the token-expired code.
func ValidateUserToken(tokenString, tokenSignKey, tokenIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", ErrUserTokenExpired
	}
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return "", errors.New("empty subject error")
	}

	return userID, nil
}
