package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `Shows the levels registered in the campaign with their goals.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels := registry.List()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Println("Campaign:")
	fmt.Println()
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Goal")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "----")

	for _, l := range levels {
		goal := "-"
		if lc, ok := cfg.Level(l.ID); ok {
			switch {
			case len(lc.BossPhases) > 0:
				goal = "defeat the guardian"
			case lc.KillThreshold > 0:
				goal = fmt.Sprintf("%d kills", lc.KillThreshold)
			}
		}
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, l.ID, l.Title, goal)
	}

	fmt.Println()
	fmt.Println("Run 'skyfighter play --level <id>' to start at a level.")
	return nil
}
