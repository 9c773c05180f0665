package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// CoercionError reports a raw string that cannot represent its declared type.
type CoercionError struct {
	Raw  string
	Type schema.Type
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %q to %s", e.Raw, e.Type)
}

// truthy and falsy are the fixed boolean vocabularies. The empty string maps
// to false rather than to "missing"; absence handling happens before
// coercion is reached.
var (
	truthy = map[string]bool{"true": true, "1": true, "yes": true, "on": true}
	falsy  = map[string]bool{"false": true, "0": true, "no": true, "off": true, "": true}
)

// Coerce converts a raw environment string into a typed value.
//
//	string  -> string (identity)
//	number  -> float64
//	integer -> int64, parsed as a float then truncated toward zero
//	boolean -> bool, via the fixed truthy/falsy vocabularies
func Coerce(raw string, t schema.Type) (any, error) {
	switch t {
	case schema.TypeString:
		return raw, nil

	case schema.TypeNumber:
		f, err := parseNumber(raw)
		if err != nil {
			return nil, &CoercionError{Raw: raw, Type: t}
		}
		return f, nil

	case schema.TypeInteger:
		f, err := parseNumber(raw)
		if err != nil || math.IsInf(f, 0) {
			return nil, &CoercionError{Raw: raw, Type: t}
		}
		// Lossy truncation toward zero, not a strict integer-format check:
		// "30.7" coerces to 30.
		return int64(math.Trunc(f)), nil

	case schema.TypeBoolean:
		token := strings.ToLower(strings.TrimSpace(raw))
		if truthy[token] {
			return true, nil
		}
		if falsy[token] {
			return false, nil
		}
		return nil, &CoercionError{Raw: raw, Type: t}
	}

	return nil, &CoercionError{Raw: raw, Type: t}
}

func parseNumber(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("parsed to NaN")
	}
	return f, nil
}
