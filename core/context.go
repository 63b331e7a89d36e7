package core

import "context"

type contextKey string

const (
	quietHeaderKey contextKey = "quietHeader"
	runIDKey       contextKey = "historyRunID"
)

// withQuietHeader marks ctx so the banner and stage messages are not printed.
// Machine-readable summaries use it to keep stdout parseable.
func withQuietHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietHeaderKey, true)
}

// quietHeader reports whether withQuietHeader was applied.
func quietHeader(ctx context.Context) bool {
	quiet, ok := ctx.Value(quietHeaderKey).(bool)
	return ok && quiet
}

// withRunID carries the ID of the tracked history run.
func withRunID(ctx context.Context, runID int64) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// runIDFrom returns the tracked history run ID; false when the run is untracked.
func runIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(runIDKey).(int64)
	return id, ok
}
