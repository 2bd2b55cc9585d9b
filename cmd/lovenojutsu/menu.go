package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/love-no-jutsu/internal/platform/tui"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive campaign menu",
	Long: `Opens the campaign menu. Pick any unlocked level, the quiz, the
progress view and, once the seventh level is done, the treasure.

Navigation:
  Up/Down or W/S or J/K  - Move cursor
  Enter/Space            - Select
  M                      - Mute or unmute
  Q/Ctrl+C               - Quit`,
	Run: func(_ *cobra.Command, _ []string) { runRoute(registry.RouteMenu) },
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play the quiz rounds",
	Long: `Plays the multiple-choice quiz. The quiz is outside the campaign and
never changes XP or unlocks.`,
	Run: func(_ *cobra.Command, _ []string) { runRoute(registry.RouteQuiz) },
}

// runRoute runs the app starting at route.
func runRoute(route string) {
	s := mustOpenSession(true)
	err := tui.Run(s.env, route)
	s.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
