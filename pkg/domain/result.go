package domain

import "fmt"

// BoundaryKey tags the synthetic error entry produced when validation itself
// fails (a source read error or an internal panic) rather than any declared
// variable failing a check.
const BoundaryKey = "_validator"

// Error describes a single validation failure for one environment variable.
// Instances are value objects: created fresh per run, never reused or mutated.
type Error struct {
	Key          string `json:"key"`
	Message      string `json:"message"`
	Value        string `json:"value,omitempty"`
	ExpectedType string `json:"expectedType,omitempty"`
}

// Warning describes a non-fatal finding, such as a default being adopted or
// an undeclared variable being present.
type Warning struct {
	Key     string `json:"key"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Result is the outcome of one validation run.
//
// Valid is true exactly when Errors is empty. MissingKeys and InvalidKeys
// classify the failing variables; a key appears in at most one of the two per
// run. Collections keep processing order: declaration order for property
// findings, required-list order for missing keys, snapshot order for
// unknown-variable warnings.
type Result struct {
	Valid       bool      `json:"valid"`
	Errors      []Error   `json:"errors"`
	Warnings    []Warning `json:"warnings"`
	MissingKeys []string  `json:"missingKeys"`
	InvalidKeys []string  `json:"invalidKeys"`

	// Values holds the adopted typed value for every declared variable that
	// passed validation, including adopted defaults.
	Values map[string]any `json:"values,omitempty"`
}

// NewResult returns an empty, valid Result with all collections allocated so
// that JSON output renders them as empty arrays rather than null.
func NewResult() Result {
	return Result{
		Valid:       true,
		Errors:      []Error{},
		Warnings:    []Warning{},
		MissingKeys: []string{},
		InvalidKeys: []string{},
		Values:      map[string]any{},
	}
}

// FailureResult wraps a failure of the validation machinery itself into a
// single-error Result tagged with BoundaryKey. It preserves the contract that
// a validation call always yields a Result, never an error.
func FailureResult(err error) Result {
	r := NewResult()
	r.Valid = false
	r.Errors = append(r.Errors, Error{
		Key:     BoundaryKey,
		Message: fmt.Sprintf("Validation aborted: %v", err),
	})
	return r
}

// NewMissingError reports a required variable that is absent or empty.
func NewMissingError(name string) Error {
	return Error{
		Key:     name,
		Message: fmt.Sprintf("Required environment variable %q is missing or empty", name),
	}
}

// NewInvalidError reports a variable whose raw value failed coercion or a
// declared constraint. The detail carries the first underlying failure
// message.
func NewInvalidError(name, raw, expectedType, detail string) Error {
	return Error{
		Key:          name,
		Message:      fmt.Sprintf("Invalid value for %q: %s", name, detail),
		Value:        raw,
		ExpectedType: expectedType,
	}
}

// NewDefaultWarning reports that a declared default was adopted for an
// absent or empty variable.
func NewDefaultWarning(name string, value any) Warning {
	return Warning{
		Key:     name,
		Message: fmt.Sprintf("Using default value for %q", name),
		Value:   fmt.Sprint(value),
	}
}

// NewUnknownWarning reports a variable present in the environment but not
// declared in the schema.
func NewUnknownWarning(name, value string) Warning {
	return Warning{
		Key:     name,
		Message: fmt.Sprintf("Unknown environment variable %q not defined in schema", name),
		Value:   value,
	}
}

// Err returns nil for a valid Result, or ErrValidationFailed annotated with
// the first error message otherwise. It lets library callers fold a Result
// into ordinary error handling.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return ErrValidationFailed
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, r.Errors[0].Message)
}

// Summary renders a one-line human description of the run.
func (r Result) Summary() string {
	if r.Valid {
		if n := len(r.Warnings); n > 0 {
			return fmt.Sprintf("environment valid (%d warning%s)", n, plural(n))
		}
		return "environment valid"
	}
	return fmt.Sprintf("%d error%s, %d warning%s",
		len(r.Errors), plural(len(r.Errors)),
		len(r.Warnings), plural(len(r.Warnings)))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
