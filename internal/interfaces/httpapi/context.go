package httpapi

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/platform/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session_claims"
	routeContextKey   contextKey = "route_pattern"
)

func withSession(ctx context.Context, claims session.Claims) context.Context {
	return context.WithValue(ctx, sessionContextKey, claims)
}

func sessionFromContext(ctx context.Context) (session.Claims, bool) {
	claims, ok := ctx.Value(sessionContextKey).(session.Claims)
	return claims, ok
}

// withRouteHolder lets the mux report the matched pattern back to outer middleware.
func withRouteHolder(ctx context.Context, pattern *string) context.Context {
	return context.WithValue(ctx, routeContextKey, pattern)
}

func routeHolderFromContext(ctx context.Context) (*string, bool) {
	pattern, ok := ctx.Value(routeContextKey).(*string)
	return pattern, ok && pattern != nil
}
