// Package auth implements the token-verification capability against the
// external identity provider. Tokens are issued elsewhere; this package only
// verifies them.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// JWTVerifier validates identity-provider bearer tokens signed with HS256 and
// extracts the subject uid. The signing algorithm is pinned; a token carrying
// any other alg is rejected regardless of its signature.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify implements ports.TokenVerifier. All rejection causes collapse into
// domain.ErrUnauthenticated; the underlying parse error is retained for logs.
func (v *JWTVerifier) Verify(_ context.Context, token ports.BearerToken) (ports.UserUID, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(string(token), claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthenticated
	}
	return ports.UserUID(claims.Subject), nil
}
