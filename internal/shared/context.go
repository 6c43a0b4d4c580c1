package shared

import "context"

// Identity carries the claims of an authenticated caller for the lifetime of
// a single request. It is attached as an immutable value by the auth
// middleware and never shared across requests.
type Identity struct {
	UserID string
	Name   string
}

type identityContextKey struct{}

// ContextWithIdentity stores the caller identity in context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the caller identity from context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
