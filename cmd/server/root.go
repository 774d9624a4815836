package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "garden-tracker",
	Short: "Garden Tracker - garden planning and crop rotation service",
	Long: `Garden Tracker is a planning service for hobby gardeners.

It provides a REST API for managing garden beds, planting history,
crop rotation recommendations and a 2D garden layout.

Run 'garden-tracker serve' to start the server, or 'garden-tracker seed'
to load the starter plant catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
