package engine

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// FormatFunc reports whether a string value satisfies a named format.
type FormatFunc func(value string) bool

// FormatRegistry maps format names to recognizers. Built-in recognizers
// cover email, uri, uuid, date, time and date-time; callers may register
// additional names or override the built-ins. A format name with no
// registered recognizer is silently not applied.
type FormatRegistry struct {
	funcs map[string]FormatFunc
}

// NewFormatRegistry returns a registry holding the built-in recognizers.
func NewFormatRegistry() *FormatRegistry {
	r := &FormatRegistry{funcs: make(map[string]FormatFunc)}
	r.Register("email", isEmail)
	r.Register("uri", isURI)
	r.Register("uuid", isUUID)
	r.Register("date", isDate)
	r.Register("time", isTime)
	r.Register("date-time", isDateTime)
	return r
}

// Register installs a recognizer under name, replacing any existing one.
func (r *FormatRegistry) Register(name string, fn FormatFunc) {
	if r.funcs == nil {
		r.funcs = make(map[string]FormatFunc)
	}
	r.funcs[name] = fn
}

// Lookup returns the recognizer for name.
func (r *FormatRegistry) Lookup(name string) (FormatFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// isEmail accepts values with exactly one "@" separating a non-whitespace
// local part from a non-whitespace domain part that contains a dot. This is
// a deliberate plausibility check, not an RFC 5322 parser.
func isEmail(value string) bool {
	if strings.Count(value, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(value, "@")
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsFunc(local, unicode.IsSpace) || strings.ContainsFunc(domain, unicode.IsSpace) {
		return false
	}
	return strings.Contains(domain, ".")
}

// isURI accepts http and https URLs with at least one character after the
// scheme prefix.
func isURI(value string) bool {
	for _, prefix := range []string{"http://", "https://"} {
		if strings.HasPrefix(value, prefix) && len(value) > len(prefix) {
			return true
		}
	}
	return false
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func isUUID(value string) bool {
	return uuidPattern.MatchString(value)
}

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?$`)
)

// isDate accepts calendar dates in the ISO-8601 form 2006-01-02. The regexp
// pins the shape; time.Parse rejects impossible dates like 2024-02-30.
func isDate(value string) bool {
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// isTime accepts wall-clock times in the form 15:04:05, with an optional
// fractional second.
func isTime(value string) bool {
	if !timePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("15:04:05", value)
	return err == nil
}

// isDateTime accepts RFC 3339 timestamps and their zone-less ISO-8601 form.
func isDateTime(value string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
