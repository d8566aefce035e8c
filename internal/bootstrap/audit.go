package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational lifecycle events (startup, shutdown) for
// the ops trail, separate from the per-field audit rows in the warehouse.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
