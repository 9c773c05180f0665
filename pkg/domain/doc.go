/*
Package domain contains the core value objects produced and consumed by the
validation engine.

It defines the structured outcome of a validation run and the snapshot type
that carries raw environment data into the engine. This package is kept pure
and free of external dependencies like I/O or presentation, following
Hexagonal Architecture principles.

# Key Entities

  - Result: The immutable outcome of one validation run (errors, warnings, key classifications, adopted values).
  - Error / Warning: Value objects describing a single finding for one variable.
  - Snapshot: An insertion-ordered view of raw environment variables.
*/
package domain
