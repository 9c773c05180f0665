package ports

import (
	"context"

	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
)

// Source supplies a point-in-time view of environment variables.
// This decouples the engine from where values actually come from (a dotenv
// file, the process table, a request body, a test fixture).
type Source interface {
	// Load returns a fresh snapshot of the variables this source knows about.
	// Implementations must not cache across calls; validation relies on each
	// call observing the current state of the backing data.
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// Watchable is implemented by sources that can notify about backend changes.
// This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel that receives the path (or other identifier)
	// of whatever changed. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan string, error)
}
