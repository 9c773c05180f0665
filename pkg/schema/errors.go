package schema

import "errors"

// ErrNotObject is returned when a schema document declares a type other than
// "object".
var ErrNotObject = errors.New(`schema type must be "object"`)

// ErrMissingProperties is returned when a schema document carries no
// properties mapping.
var ErrMissingProperties = errors.New("schema has no properties mapping")

// ErrUnknownType is returned when a property declares a type outside the
// supported set (string, number, integer, boolean).
var ErrUnknownType = errors.New("unknown property type")
