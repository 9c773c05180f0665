package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wajahatiqbal22/env-config-validator/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the environment against the schema",
	Long: `Loads the schema, merges the configured env files with the live process
environment and reports every missing, invalid or undeclared variable.
Exits 1 when validation fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")
		debug, _ := cmd.Flags().GetBool("debug")
		noColor, _ := cmd.Flags().GetBool("no-color")
		jsonMode, _ := cmd.Flags().GetBool("json")
		allowUnknown, _ := cmd.Flags().GetBool("allow-unknown")
		strict, _ := cmd.Flags().GetBool("strict")
		watchMode, _ := cmd.Flags().GetBool("watch")
		showValues, _ := cmd.Flags().GetBool("show-values")
		noProcessEnv, _ := cmd.Flags().GetBool("no-process-env")

		err := cli.Execute(cli.RunOptions{
			SchemaPath:   schemaPath,
			EnvFiles:     envFiles,
			NoProcessEnv: noProcessEnv,
			AllowUnknown: allowUnknown,
			Strict:       strict,
			JSON:         jsonMode,
			ShowValues:   showValues,
			Watch:        watchMode,
			Debug:        debug,
			NoColor:      noColor,
		})
		if err != nil {
			// Validation failures already printed their report.
			if !errors.Is(err, cli.ErrInvalidEnvironment) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("json", false, "Emit the result as JSON instead of a human report")
	validateCmd.Flags().Bool("allow-unknown", false, "Skip warnings for variables the schema does not declare")
	validateCmd.Flags().Bool("strict", false, "Enable strict mode (reserved for stricter constraint handling)")
	validateCmd.Flags().BoolP("watch", "w", false, "Revalidate whenever the schema or an env file changes")
	validateCmd.Flags().Bool("show-values", false, "Print the resolved configuration after the report")
	validateCmd.Flags().Bool("no-process-env", false, "Validate only the env files, ignoring the live environment")

	// Make 'validate' the default when no subcommand is given
	rootCmd.Run = validateCmd.Run
}
