package http

import (
	"context"

	"condoreserve-backend/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

// WithActor stores the authenticated actor on the request context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext extracts the actor placed there by the auth
// middleware.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}
