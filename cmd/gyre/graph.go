package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gyre/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <declaration.yaml>",
	Short: "Export the cycle visualization",
	Long:  `Outputs a Mermaid diagram of the domain's cycle, with the wraparound edge dotted.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		current, _ := cmd.Flags().GetString("current")
		pretty, _ := cmd.Flags().GetBool("pretty")

		opts := cli.GraphOptions{
			DeclPath: args[0],
			Current:  current,
			Pretty:   pretty,
		}
		if err := cli.RunGraph(opts, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("current", "", "Highlight this state on the diagram")
	graphCmd.Flags().Bool("pretty", false, "Render through the terminal markdown renderer")
}
