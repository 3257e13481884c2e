package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available backends",
	Long:  `Shows every renderer registered with the runner.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	out := cmd.OutOrStdout()
	if len(backends) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	fmt.Fprintln(out, "Available backends:")
	fmt.Fprintln(out)

	maxLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxLen {
			maxLen = len(b.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----------")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, b.Name, b.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'dino play --backend <name>' to use one.")
}
