package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gyre/internal/cli"
)

// walkCmd represents the walk command
var walkCmd = &cobra.Command{
	Use:   "walk <declaration.yaml>",
	Short: "Traverse a declared domain",
	Long:  `Walks the cycle of a declared domain and prints one state per line. Cyclic walks need --take; --once bounds the walk at the domain boundary.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		once, _ := cmd.Flags().GetBool("once")
		reverse, _ := cmd.Flags().GetBool("reverse")
		take, _ := cmd.Flags().GetInt("take")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.WalkOptions{
			DeclPath: args[0],
			From:     from,
			Once:     once,
			Reverse:  reverse,
			Take:     take,
			Debug:    debug,
		}
		if err := cli.RunWalk(opts, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)

	walkCmd.Flags().String("from", "", "Starting state (default: the domain's start)")
	walkCmd.Flags().Bool("once", false, "Bounded walk: stop at the domain boundary")
	walkCmd.Flags().BoolP("reverse", "r", false, "Walk backward")
	walkCmd.Flags().IntP("take", "n", 0, "Number of states to take on a cyclic walk")
}
