package security

import "context"

// Identity is the authenticated principal of a single request, resolved
// from the credential store rather than from token claims.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
