package api

import (
	"context"
	"time"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

type identityContextKey struct{}

// WithIdentity stores the authenticated anonymous identity on the context
func WithIdentity(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, identityContextKey{}, uid)
}

// IdentityFrom extracts the authenticated identity set by the middleware
func IdentityFrom(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(identityContextKey{}).(string)
	return uid, ok && uid != ""
}
