package services

import "context"

type contextKey string

const actorKey contextKey = "actor"

// WithActor tags a context with the acting user's id. Audit entries written
// while handling the request pick it up.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}

func actorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey).(string); ok {
		return v
	}
	return ""
}
