package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wajahatiqbal22/env-config-validator/internal/cli"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a starter schema and .env.example",
	Long: `Writes a commented env.schema.json plus a matching .env.example into the
given directory (default: the current one). Existing files are left alone
unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")

		if err := cli.RunInit(dir, force); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
}
