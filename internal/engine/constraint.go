package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// Check validates a coerced value against the property's declared
// constraints and returns one message per violation.
//
// Every constraint is evaluated independently rather than short-circuited,
// so a value accumulates all its violations; callers that only want the
// headline take the first message. A constraint that does not apply to the
// value's type (a Pattern on a bool, a Minimum on a string) is silently
// skipped, as is a pattern that does not compile.
func Check(value any, prop *schema.Property, formats *FormatRegistry) []string {
	var violations []string

	if len(prop.Enum) > 0 && !enumHas(prop.Enum, value) {
		violations = append(violations, fmt.Sprintf("must be one of: %s", joinMembers(prop.Enum)))
	}

	if n, ok := asNumber(value); ok {
		if prop.Minimum != nil && n < *prop.Minimum {
			violations = append(violations, fmt.Sprintf("must be at least %v", formatNumber(*prop.Minimum)))
		}
		if prop.Maximum != nil && n > *prop.Maximum {
			violations = append(violations, fmt.Sprintf("must be at most %v", formatNumber(*prop.Maximum)))
		}
	}

	if s, ok := value.(string); ok {
		if prop.MinLength != nil && len(s) < *prop.MinLength {
			violations = append(violations, fmt.Sprintf("must be at least %d characters long", *prop.MinLength))
		}
		if prop.MaxLength != nil && len(s) > *prop.MaxLength {
			violations = append(violations, fmt.Sprintf("must be at most %d characters long", *prop.MaxLength))
		}
		if prop.Pattern != "" {
			if re, err := regexp.Compile(prop.Pattern); err == nil && !re.MatchString(s) {
				violations = append(violations, fmt.Sprintf("must match pattern %q", prop.Pattern))
			}
		}
		if prop.Format != "" && formats != nil {
			if recognize, ok := formats.Lookup(prop.Format); ok && !recognize(s) {
				violations = append(violations, fmt.Sprintf("must be a valid %s", prop.Format))
			}
		}
	}

	return violations
}

// enumHas reports whether value equals one of the declared members. Numbers
// compare by numeric value so that an int64 coerced from "8080" matches a
// member declared as 8080 in JSON (float64) or YAML (int).
func enumHas(members []any, value any) bool {
	for _, member := range members {
		if equalValues(member, value) {
			return true
		}
	}
	return false
}

func equalValues(a, b any) bool {
	if af, ok := asNumber(a); ok {
		if bf, ok := asNumber(b); ok {
			return af == bf
		}
		return false
	}
	return a == b
}

// asNumber widens a coerced or schema-declared numeric value to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func joinMembers(members []any) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = fmt.Sprint(m)
	}
	return strings.Join(parts, ", ")
}

// formatNumber renders bounds without a trailing ".0" for whole numbers, so
// messages read "at most 65535" rather than "at most 65535.000000".
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
