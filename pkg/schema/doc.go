// Package schema defines the declarative model an environment is validated
// against: an object schema mapping variable names to typed properties with
// optional constraints.
//
// Schemas are usually loaded from a JSON or YAML document:
//
//	s, err := schema.Load("env.schema.json")
//
// Property declaration order is preserved from the document and drives the
// order in which the engine reports findings. Schemas can also be assembled
// programmatically with the fluent builder:
//
//	s, err := schema.NewBuilder().
//	    String("NODE_ENV").Enum("development", "production", "test").Default("development").
//	    Integer("PORT").Min(1).Max(65535).Default(3000).
//	    String("API_KEY").Required().MinLength(10).Sensitive().
//	    Build()
//
// The supported property types are string, number, integer and boolean.
// Constraint fields apply only to their matching type; an inapplicable
// constraint is ignored at check time rather than rejected at load time.
package schema
