package engine

import (
	"log/slog"
	"strings"

	"github.com/wajahatiqbal22/env-config-validator/internal/logging"
	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// DefaultReservedPrefixes lists the system-owned name prefixes that the
// unknown-variable scan never reports. Matching is by prefix, so "PATH"
// also suppresses "PATHEXT".
var DefaultReservedPrefixes = []string{"npm_", "NODE_", "PATH", "HOME", "USER", "SHELL"}

// Config carries the recognized engine options.
type Config struct {
	// AllowUnknown disables the unknown-variable scan entirely.
	AllowUnknown bool
	// Strict is accepted for forward compatibility with stricter constraint
	// handling; it does not currently alter behavior.
	Strict bool
	// ReservedPrefixes overrides DefaultReservedPrefixes when non-nil.
	ReservedPrefixes []string
}

// Engine applies one immutable schema to environment snapshots. A single
// Run is a pure computation over its snapshot; engines are safe for
// concurrent use.
type Engine struct {
	schema   *schema.Schema
	cfg      Config
	formats  *FormatRegistry
	reserved []string
	logger   *slog.Logger
}

// New creates an engine for a finalized schema.
func New(s *schema.Schema, cfg Config, formats *FormatRegistry, logger *slog.Logger) *Engine {
	if formats == nil {
		formats = NewFormatRegistry()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	reserved := cfg.ReservedPrefixes
	if reserved == nil {
		reserved = DefaultReservedPrefixes
	}
	return &Engine{
		schema:   s,
		cfg:      cfg,
		formats:  formats,
		reserved: reserved,
		logger:   logger,
	}
}

// Schema returns the immutable schema this engine validates against.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// Run validates one snapshot and synthesizes the outcome. It has no side
// effects: the snapshot is only read, and every collection in the returned
// Result is freshly allocated.
//
// Passes, in order: required names (required-list order), declared
// properties (declaration order), then undeclared variables (snapshot
// order). A key lands in at most one of MissingKeys and InvalidKeys per
// run; a missing property never reaches coercion, a present one never
// reports missing.
func (e *Engine) Run(snap *domain.Snapshot) domain.Result {
	res := domain.NewResult()
	if snap == nil {
		snap = domain.NewSnapshot()
	}

	for _, name := range e.schema.Required {
		if value, ok := snap.Get(name); !ok || value == "" {
			res.MissingKeys = append(res.MissingKeys, name)
			res.Errors = append(res.Errors, domain.NewMissingError(name))
			e.logger.Debug("required variable missing", "name", name)
		}
	}

	for _, name := range e.schema.Names() {
		prop, ok := e.schema.Property(name)
		if !ok || prop == nil {
			continue
		}

		raw, present := snap.Get(name)
		if !present || raw == "" {
			if prop.HasDefault() {
				res.Values[name] = prop.Default
				res.Warnings = append(res.Warnings, domain.NewDefaultWarning(name, prop.Default))
				e.logger.Debug("default adopted", "name", name)
			}
			continue
		}

		value, err := Coerce(raw, prop.Type)
		if err != nil {
			res.InvalidKeys = append(res.InvalidKeys, name)
			res.Errors = append(res.Errors, domain.NewInvalidError(name, raw, string(prop.Type), err.Error()))
			e.logger.Debug("coercion failed", "name", name, "err", err)
			continue
		}

		if violations := Check(value, prop, e.formats); len(violations) > 0 {
			res.InvalidKeys = append(res.InvalidKeys, name)
			res.Errors = append(res.Errors, domain.NewInvalidError(name, raw, string(prop.Type), violations[0]))
			e.logger.Debug("constraint violated", "name", name, "violations", len(violations))
			continue
		}

		res.Values[name] = value
	}

	if !e.cfg.AllowUnknown {
		for _, name := range snap.Keys() {
			if _, declared := e.schema.Property(name); declared {
				continue
			}
			if e.isReserved(name) {
				continue
			}
			value, _ := snap.Get(name)
			res.Warnings = append(res.Warnings, domain.NewUnknownWarning(name, value))
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func (e *Engine) isReserved(name string) bool {
	for _, prefix := range e.reserved {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
