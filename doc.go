/*
Package envvalidator validates process environments against a declarative schema, catching configuration mistakes at startup instead of at 3am.

It separates the validation rules (Schema) from where values come from (Sources) and from how outcomes are consumed (Result), so the same schema drives the CLI, the embedded library, the HTTP API and the MCP server.

# Concept

A schema declares each environment variable with a type (string, number, integer, boolean) and optional constraints (enum, pattern, numeric bounds, length bounds, formats) plus a required list. The engine takes one snapshot of the environment per run, coerces each raw string to its declared type, checks the constraints, and synthesizes a single immutable Result: errors for missing or invalid variables, warnings for adopted defaults and undeclared variables.

# Key Properties

  - Deterministic: the same schema and snapshot always produce the same Result, with stable ordering.
  - Non-throwing: Validate never fails with an error; even source failures become a Result you can inspect.
  - Pure core: the engine only reads the snapshot it is given. Ambient process state enters exclusively through a Source.
  - Typed output: validated values are exposed as string, float64, int64 and bool, after defaults are applied.

# Usage

Load a schema and validate the live process environment, a dotenv file, or both (later sources win):

	package main

	import (
		"context"
		"fmt"
		"os"

		envvalidator "github.com/wajahatiqbal22/env-config-validator"
		"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/dotenv"
		"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/process"
	)

	func main() {
		eng, err := envvalidator.New("env.schema.json",
			envvalidator.WithSources(
				dotenv.NewOptionalSource(".env"),
				process.NewSource(),
			),
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		result := eng.Validate(context.Background())
		for _, w := range result.Warnings {
			fmt.Println("warn:", w.Message)
		}
		if !result.Valid {
			for _, e := range result.Errors {
				fmt.Fprintln(os.Stderr, "error:", e.Message)
			}
			os.Exit(1)
		}

		port := result.Values["PORT"].(int64)
		fmt.Println("listening on", port)
	}

Schemas can also be built in code with pkg/schema.NewBuilder, which is handy
for libraries that ship their own configuration contract.
*/
package envvalidator
