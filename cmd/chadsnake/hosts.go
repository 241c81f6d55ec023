package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chad-snake/internal/registry"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List available hosts",
	Long:  `Shows the hosts compiled into this binary. Build with -tags gl for the OpenGL window.`,
	Run:   runHosts,
}

func runHosts(cmd *cobra.Command, args []string) {
	hosts := registry.List()

	if len(hosts) == 0 {
		fmt.Println("No hosts available.")
		return
	}

	fmt.Println("Available hosts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, h := range hosts {
		if len(h.ID) > maxIDLen {
			maxIDLen = len(h.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, h := range hosts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, h.ID, h.Title)
	}

	fmt.Println()
	fmt.Println("Run 'chadsnake play --host <id>' to use one.")
}
