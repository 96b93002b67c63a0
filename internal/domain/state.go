package domain

import "context"

type sessionContextKey string

// SessionContextKey holds the storefront session id in request contexts.
const SessionContextKey sessionContextKey = "session_id"

// SessionIDFromContext returns the session id set by the session middleware.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionContextKey).(string)
	return id, ok && id != ""
}

// --- Interfaces ---

// StateStore is the per-session key/value persistence provider. Values are
// JSON text. Get reports found=false for absent keys without an error.
type StateStore interface {
	Get(ctx context.Context, sessionID, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}

// CartObserver is notified with the unit count after every cart mutation.
type CartObserver interface {
	CartChanged(ctx context.Context, sessionID string, count int)
}
