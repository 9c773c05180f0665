package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wajahatiqbal22/env-config-validator/internal/cli"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the schema as reference documentation",
	Long: `Generates a Markdown reference for every variable the schema declares and
renders it for the terminal. Use --plain to get raw Markdown for README
files or wikis.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		plain, _ := cmd.Flags().GetBool("plain")

		out, err := cli.RenderDocs(schemaPath, plain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().Bool("plain", false, "Emit raw Markdown without terminal styling")
}
