package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the built-in campaign merged with the levels in --levels.
A custom level with the same ID as a built-in one replaces it.

Examples:
  maze levels
  maze levels --levels ./my-levels`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-6s  %-24s  %-7s  %-9s  %s\n", "ID", "Name", "Size", "Kind", "Source")
	fmt.Printf("  %-6s  %-24s  %-7s  %-9s  %s\n", "--", "----", "----", "----", "------")

	for _, lvl := range opts.Levels {
		w, h := lvl.Size()
		kind := "static"
		if lvl.Generated() {
			kind = fmt.Sprintf("seed %d", lvl.Generate.Seed)
		}
		source := lvl.FilePath
		if source == "" {
			source = "built-in"
		}
		fmt.Printf("  %-6s  %-24s  %-7s  %-9s  %s\n", lvl.ID, lvl.Name, fmt.Sprintf("%dx%d", w, h), kind, source)
	}

	fmt.Println()
	fmt.Println("Run 'maze play --level <id>' to start from a level.")
}
