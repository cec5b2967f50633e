package graphql

import "context"

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyCartToken contextKey = "cartToken"

// CartTokenFromContext returns the shopper's cart token for the current request.
func CartTokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyCartToken).(string); ok {
		return v
	}
	return ""
}

// WithCartToken attaches the cart token to ctx.
func WithCartToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyCartToken, token)
}
