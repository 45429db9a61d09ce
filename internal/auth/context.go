package auth

import "context"

type contextKey struct{}

var tokenContextKey = contextKey{}

// ContextWithToken attaches the request's session token to the context. An
// empty token is attached as-is and resolves to the anonymous user.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the session token attached to the context, or an
// empty string when there is none.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
