// Package cmd implements the swipedeck CLI commands.
package cmd

import (
	"fmt"

	"swipedeck/internal/config"
	"swipedeck/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Remember last page: %v\n", cfg.General.RememberLastPage)
	if cfg.General.OutsideOffset < 0 {
		fmt.Println("    Outside offset:     one strip width")
	} else {
		fmt.Printf("    Outside offset:     %d columns\n", cfg.General.OutsideOffset)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Animation]")
	fmt.Printf("    FPS:       %d\n", cfg.Animation.FPS)
	fmt.Printf("    Frequency: %.1f\n", cfg.Animation.Frequency)
	fmt.Printf("    Damping:   %.2f\n", cfg.Animation.Damping)
	fmt.Println()

	fmt.Printf("  Session store: %s\n", store.DefaultPath())
	fmt.Println()
	fmt.Println("  Run `swipedeck setup` to reconfigure.")
	return nil
}
