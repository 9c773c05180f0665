// Package process provides the environment source backed by the live process
// variable table.
package process

import (
	"context"
	"os"
	"strings"

	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
)

// Source implements ports.Source over the process environment. Every Load
// takes a fresh snapshot, so changes made with os.Setenv between validation
// calls are observed.
type Source struct {
	environ func() []string
}

// NewSource creates a Source reading from the real process environment.
func NewSource() *Source {
	return &Source{}
}

// NewSourceFromEnviron creates a Source reading from a custom environ
// function returning "KEY=value" pairs, matching the os.Environ contract.
// Used to stub the process table in tests.
func NewSourceFromEnviron(environ func() []string) *Source {
	return &Source{environ: environ}
}

// Load snapshots the process environment in table order.
func (s *Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	environ := s.environ
	if environ == nil {
		environ = os.Environ
	}
	snap := domain.NewSnapshot()
	for _, pair := range environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		snap.Set(name, value)
	}
	return snap, nil
}
