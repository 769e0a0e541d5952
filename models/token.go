package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserTokenClaims is the claim set carried by user tokens issued by the
// wallet backend. Only the registered claims are interpreted.
type UserTokenClaims struct {
	jwt.RegisteredClaims
}

// ParseUserTokenClaims decodes the claims of a user token without verifying
// its signature. The client never holds the signing key, so the claims are
// informational only (expiry logging); the backend remains the authority on
// whether a token is still valid.
func ParseUserTokenClaims(userToken string) (UserTokenClaims, error) {
	userToken = strings.TrimSpace(userToken)
	if userToken == "" {
		return UserTokenClaims{}, errors.New("empty user token")
	}

	var claims UserTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(userToken, &claims); err != nil {
		return UserTokenClaims{}, fmt.Errorf("error parsing user token claims: %w", err)
	}

	return claims, nil
}
