package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("env-config-validator version %s\n", strings.TrimSpace(envvalidator.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
