// Package memory provides an in-memory environment source, mainly for tests
// and for embedding callers that already hold their variables in a map.
package memory

import (
	"context"

	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
)

// Source implements ports.Source over a fixed set of variables.
type Source struct {
	snapshot *domain.Snapshot
}

// NewSource creates a Source from a plain map. Names are ordered
// alphabetically since a Go map carries no order of its own.
func NewSource(vars map[string]string) *Source {
	return &Source{snapshot: domain.SnapshotFromMap(vars)}
}

// NewSourceFromSnapshot creates a Source that serves the given snapshot,
// preserving its ordering. The caller must not mutate the snapshot afterwards.
func NewSourceFromSnapshot(snapshot *domain.Snapshot) *Source {
	return &Source{snapshot: snapshot}
}

// Load returns a copy of the stored variables so callers cannot mutate the
// source through the returned snapshot.
func (s *Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	out := domain.NewSnapshot()
	out.Merge(s.snapshot)
	return out, nil
}
