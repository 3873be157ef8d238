package settings

import (
	"context"
)

type contextKey string

const (
	settingsContextKey contextKey = "colx.settings"
)

// IntoContext attaches the run settings to ctx.
func IntoContext(ctx context.Context, s *Run) context.Context {
	return context.WithValue(ctx, settingsContextKey, s)
}

// FromContext returns the run settings attached to ctx, if any.
func FromContext(ctx context.Context) (*Run, bool) {
	s, ok := ctx.Value(settingsContextKey).(*Run)
	return s, ok
}
