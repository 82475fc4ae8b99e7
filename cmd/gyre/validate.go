package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gyre/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <declaration.yaml>",
	Short: "Check a declaration and summarize its domain",
	Long:  `Loads a declaration, validates it (ordering, duplicates, emptiness) and reports the resulting domain: size, start, end, and whether Flip is available.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunValidate(cli.ValidateOptions{DeclPath: args[0]}, os.Stdout); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
