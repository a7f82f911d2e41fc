package services

import "context"

type contextKey string

const (
	gameKey    contextKey = "game"
	stageKey   contextKey = "stage"
	attemptKey contextKey = "attempt_id"
)

// WithGame annotates context with the game's display name.
func WithGame(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, gameKey, name)
}

// GameFromContext returns the game display name if present.
func GameFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(gameKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithAttemptID annotates context with a build attempt correlation identifier.
func WithAttemptID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, attemptKey, id)
}

// AttemptIDFromContext extracts the attempt identifier if present.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(attemptKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
