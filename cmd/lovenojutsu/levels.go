package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level of the campaign with its lock and completion state.`,
	Run:   runLevels,
}

// levelMark is the status column of the levels table.
func levelMark(store *progress.Store, level int) string {
	switch {
	case store.IsLevelCompleted(level):
		return "done"
	case store.IsLevelUnlocked(level):
		return "open"
	default:
		return "locked"
	}
}

func runLevels(_ *cobra.Command, _ []string) {
	s := mustOpenSession(false)
	defer s.Close()

	levels := registry.Levels()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range levels {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "State", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, g := range levels {
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, g.ID, levelMark(s.env.Progress, g.Level), g.Title)
	}

	if registry.Exists(registry.RouteQuiz) {
		fmt.Println()
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, registry.RouteQuiz, "open", "Quiz")
	}

	fmt.Println()
	fmt.Println("Run 'lovenojutsu play <level>' to play an unlocked level.")
}
