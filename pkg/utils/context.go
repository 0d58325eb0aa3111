package utils

import (
	"context"
)

type contextKey string

const (
	ActorIDKey contextKey = "actor_id"
)

// SetActorContext records the acting admin's identity for audit trails.
func SetActorContext(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorIDKey, actorID)
}

func GetActorFromContext(ctx context.Context) (string, bool) {
	actorVal := ctx.Value(ActorIDKey)
	if actorVal == nil {
		return "", false
	}

	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return "", false
	}

	return actor, true
}
