package ports

import "context"

// BearerToken is the raw credential text extracted from the Authorization
// header. It is never a verified identity.
type BearerToken string

// UserUID is the verified subject identifier returned by a TokenVerifier.
type UserUID string

// TokenVerifier turns a bearer credential into a verified user identifier by
// delegating to an external identity provider. A rejected token (malformed,
// expired, signature invalid) fails with domain.ErrUnauthenticated. One
// synchronous call per request; no caching, no retry.
type TokenVerifier interface {
	Verify(ctx context.Context, token BearerToken) (UserUID, error)
}
