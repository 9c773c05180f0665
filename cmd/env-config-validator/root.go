package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "env-config-validator",
	Short: "Validate environment variables against a declarative schema",
	Long: `env-config-validator checks that the environment a process is about to run
with matches a schema: required variables present, values coercible to their
declared types, constraints satisfied. Schemas are plain JSON or YAML files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", "env.schema.json", "Path to the schema file (JSON or YAML)")
	rootCmd.PersistentFlags().StringSliceP("env-file", "e", nil, "Env file(s) to merge before the live environment (later wins)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
