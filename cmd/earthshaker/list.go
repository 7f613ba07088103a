package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available campaigns",
	Long:  `Shows every campaign: generated caves, the built-in classic pack and a --levels pack when given.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	campaigns := registry.List()

	if len(campaigns) == 0 {
		fmt.Println("No campaigns available.")
		return
	}

	fmt.Println("Available campaigns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range campaigns {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, c := range campaigns {
		count := "?"
		if src, err := openCampaign(c.ID); err == nil {
			count = fmt.Sprintf("%d", src.Count())
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, c.ID, count, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'earthshaker play <id>' to play a campaign.")
}
