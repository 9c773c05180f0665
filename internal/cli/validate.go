package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
	"github.com/wajahatiqbal22/env-config-validator/internal/presentation/tui"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/dotenv"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/process"
	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
	"github.com/wajahatiqbal22/env-config-validator/pkg/ports"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// ErrInvalidEnvironment is returned when a validation run completes with
// errors. The report has already been printed; callers only map it to an
// exit code.
var ErrInvalidEnvironment = errors.New("environment validation failed")

// RunOptions contains all the configuration for the validate command.
type RunOptions struct {
	SchemaPath   string
	EnvFiles     []string
	NoProcessEnv bool
	AllowUnknown bool
	Strict       bool
	JSON         bool
	ShowValues   bool
	Watch        bool
	Debug        bool
	NoColor      bool

	// Out defaults to os.Stdout; tests redirect it.
	Out io.Writer
}

func (o RunOptions) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// Execute handles the validate command, dispatching to watch mode when asked.
func Execute(opts RunOptions) error {
	if opts.Watch {
		if opts.JSON {
			return fmt.Errorf("--watch and --json cannot be used together")
		}
		return RunWatch(opts)
	}
	return RunValidate(opts)
}

// RunValidate performs a single validation run and writes the report.
func RunValidate(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	eng, err := createEngine(opts, logger)
	if err != nil {
		return err
	}

	result := eng.Validate(context.Background())
	return emitResult(result, eng.Schema(), opts)
}

// createEngine builds the validator from command options: env files first,
// the live process environment last, so live values win.
func createEngine(opts RunOptions, logger *slog.Logger) (*envvalidator.Engine, error) {
	var sources []ports.Source
	for _, path := range opts.EnvFiles {
		sources = append(sources, dotenv.NewSource(path))
	}
	if !opts.NoProcessEnv {
		sources = append(sources, process.NewSource())
	} else if sources == nil {
		// --no-process-env without env files must not fall back to the
		// default source; the run aborts with a no-sources result instead.
		sources = []ports.Source{}
	}

	return envvalidator.New(opts.SchemaPath,
		envvalidator.WithSources(sources...),
		envvalidator.WithLogger(logger),
		envvalidator.WithAllowUnknown(opts.AllowUnknown),
		envvalidator.WithStrict(opts.Strict),
	)
}

func emitResult(result domain.Result, s *schema.Schema, opts RunOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(opts.out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		printer := tui.NewPrinter(opts.out(), useColor(opts.NoColor))
		printer.PrintResult(result, s)
		if opts.ShowValues {
			printer.PrintValues(result, s)
		}
	}

	if !result.Valid {
		return ErrInvalidEnvironment
	}
	return nil
}
