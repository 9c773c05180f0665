package envvalidator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/wajahatiqbal22/env-config-validator/internal/engine"
	"github.com/wajahatiqbal22/env-config-validator/internal/logging"
	"github.com/wajahatiqbal22/env-config-validator/internal/watch"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/process"
	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
	"github.com/wajahatiqbal22/env-config-validator/pkg/ports"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// Engine is the high-level entry point for the library. It wraps the internal
// validation engine and provides a simplified API for consumers.
type Engine struct {
	schema     *schema.Schema
	schemaPath string
	sources    []ports.Source
	cfg        engine.Config
	formats    *engine.FormatRegistry
	runtime    *engine.Engine
	logger     *slog.Logger
	Name       string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSources sets the environment sources to validate, replacing the default
// live-process source. Sources are merged in order; later sources win on
// conflicting names.
func WithSources(sources ...ports.Source) Option {
	return func(e *Engine) {
		e.sources = sources
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithAllowUnknown disables the warning scan for variables the schema does
// not declare.
func WithAllowUnknown(allow bool) Option {
	return func(e *Engine) {
		e.cfg.AllowUnknown = allow
	}
}

// WithStrict toggles strict mode. The flag is accepted and recorded for
// forward compatibility; current validation behavior is identical either way.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.cfg.Strict = strict
	}
}

// WithFormat registers a custom format recognizer, or overrides a built-in
// one, for properties declaring `format: <name>`.
func WithFormat(name string, fn func(value string) bool) Option {
	return func(e *Engine) {
		if e.formats == nil {
			e.formats = engine.NewFormatRegistry()
		}
		e.formats.Register(name, fn)
	}
}

// WithReservedPrefixes replaces the default list of system-owned name
// prefixes that the unknown-variable scan skips.
func WithReservedPrefixes(prefixes ...string) Option {
	return func(e *Engine) {
		e.cfg.ReservedPrefixes = prefixes
	}
}

// New initializes an Engine from a schema file (JSON or YAML).
// By default it validates the live process environment; use WithSources to
// validate dotenv files or other backends instead.
func New(schemaPath string, opts ...Option) (*Engine, error) {
	s, err := schema.Load(schemaPath)
	if err != nil {
		return nil, err
	}
	eng, err := NewFromSchema(s, opts...)
	if err != nil {
		return nil, err
	}
	eng.schemaPath = schemaPath
	eng.Name = filepath.Base(schemaPath)
	return eng, nil
}

// NewFromSchema initializes an Engine from an already constructed schema,
// for callers that build schemas in code or parse them from other stores.
func NewFromSchema(s *schema.Schema, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, fmt.Errorf("schema is required")
	}

	eng := &Engine{schema: s}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.sources == nil {
		eng.sources = []ports.Source{process.NewSource()}
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.cfg.Strict {
		eng.logger.Debug("strict mode requested; constraint handling is unchanged")
	}

	eng.runtime = engine.New(s, eng.cfg, eng.formats, eng.logger)
	return eng, nil
}

// Validate loads every configured source, merges the snapshots and runs the
// schema against the result.
//
// It never returns an error and never panics: source failures and internal
// panics surface as a Result carrying a single error under domain.BoundaryKey.
func (e *Engine) Validate(ctx context.Context) (res domain.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("validation panicked", "err", r)
			res = domain.FailureResult(fmt.Errorf("panic: %v", r))
		}
	}()

	if len(e.sources) == 0 {
		return domain.FailureResult(domain.ErrNoSources)
	}

	snap := domain.NewSnapshot()
	for _, src := range e.sources {
		loaded, err := src.Load(ctx)
		if err != nil {
			e.logger.Error("source load failed", "err", err)
			return domain.FailureResult(err)
		}
		snap.Merge(loaded)
	}

	e.logger.Debug("snapshot assembled", "variables", snap.Len())
	return e.runtime.Run(snap)
}

// Schema returns the schema this engine validates against.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// Sources returns the configured environment sources.
func (e *Engine) Sources() []ports.Source {
	return e.sources
}

// Watch returns a channel that signals when the schema file or any watchable
// source changes. Returns an error if nothing the engine was built from can
// be watched.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	var channels []<-chan string

	if e.schemaPath != "" {
		ch, err := watch.Files(ctx, e.schemaPath)
		if err != nil {
			return nil, fmt.Errorf("watch schema: %w", err)
		}
		channels = append(channels, ch)
	}

	for _, src := range e.sources {
		w, ok := src.(ports.Watchable)
		if !ok {
			continue
		}
		ch, err := w.Watch(ctx)
		if err != nil {
			return nil, fmt.Errorf("watch source: %w", err)
		}
		channels = append(channels, ch)
	}

	if len(channels) == 0 {
		return nil, fmt.Errorf("nothing to watch: no schema file and no watchable source")
	}

	out := make(chan string, 1)
	for _, ch := range channels {
		go func(in <-chan string) {
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- path:
					case <-ctx.Done():
						return
					}
				}
			}
		}(ch)
	}
	return out, nil
}
