// internal/auth/context.go
//
// Authenticated-identity carrier.
//
// Context
// -------
// Once an access token verifies, the caller attaches the identity it
// proves to the request context, and downstream code reads it back without
// re-parsing the token.  `internal/token.Authenticate` is the producer;
// anything running on behalf of a signed-in account is a consumer.
//
// Usage
// -----
//     ctx = auth.WithIdentity(ctx, auth.Identity{UserID: 42, Email: email})
//
//     id, ok := auth.FromContext(ctx)   // Identity{…}, true
//
// Notes
// -----
// • Stores a small value struct directly in context; no pointers shared
//   across goroutines.
// • Oxford commas, two spaces after periods.

package auth

import "context"

// Identity is the account a verified access token belongs to.
type Identity struct {
	UserID int64
	Email  string
}

// identityKey is unexported to avoid context-key collisions.
type identityKey struct{}

// WithIdentity returns a new context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext extracts the identity from ctx.  It returns (zero, false)
// when no identity is attached.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
