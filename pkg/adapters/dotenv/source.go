// Package dotenv provides an environment source backed by a dotenv-style
// file. Parsing is delegated to github.com/joho/godotenv; this adapter only
// recovers the declaration order the parser's map output loses.
package dotenv

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wajahatiqbal22/env-config-validator/internal/watch"
	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
)

// Source implements ports.Source over a dotenv file.
type Source struct {
	path     string
	optional bool
}

// NewSource creates a Source for the file at path. Load fails if the file is
// missing.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// NewOptionalSource creates a Source that yields an empty snapshot when the
// file does not exist, matching the common ".env is optional" convention.
func NewOptionalSource(path string) *Source {
	return &Source{path: path, optional: true}
}

// Path returns the configured file path.
func (s *Source) Path() string {
	return s.path
}

// Load parses the file and returns its variables in declaration order.
func (s *Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if s.optional && os.IsNotExist(err) {
			return domain.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}

	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", s.path, err)
	}

	snap := domain.NewSnapshot()
	for _, name := range declarationOrder(data, vars) {
		snap.Set(name, vars[name])
	}
	return snap, nil
}

// Watch reports changes to the backing file until ctx is cancelled. It
// implements ports.Watchable for dev-mode reload loops.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	return watch.Files(ctx, s.path)
}

// declarationOrder recovers the order in which names appear in the file.
// Only names the parser actually produced are considered, so commented or
// malformed lines never slip in. Names the scan cannot attribute to a line
// (multi-line values, exotic quoting) are appended in sorted order behind
// the attributed ones.
func declarationOrder(data []byte, vars map[string]string) []string {
	seen := make(map[string]bool, len(vars))
	order := make([]string, 0, len(vars))

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		name, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if _, produced := vars[name]; produced && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	if len(order) < len(vars) {
		rest := make([]string, 0, len(vars)-len(order))
		for name := range vars {
			if !seen[name] {
				rest = append(rest, name)
			}
		}
		sort.Strings(rest)
		order = append(order, rest...)
	}
	return order
}
