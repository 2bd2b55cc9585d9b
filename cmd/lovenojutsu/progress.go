package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/love-no-jutsu/internal/platform/tui"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
)

var flagResetHistory bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show campaign progress",
	Long: `Shows XP, scroll fragments, clues and the level history.

Interactive terminals get a table view:
  Tab           - Switch between levels and history
  Up/Down       - Scroll
  Esc/B         - Close

When stdout is not a terminal a plain summary is printed.`,
	Run: runProgress,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start the campaign over",
	Long: `Restores the default progress: no XP, no fragments, no clues and only
level 1 unlocked. --history also clears the level history.`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also clear the level history")
}

func runProgress(_ *cobra.Command, _ []string) {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	s := mustOpenSession(interactive)
	defer s.Close()

	if !interactive {
		printProgress(s.env.Progress.Snapshot())
		return
	}

	width, height := terminalSize()
	if err := tui.RunProgress(s.env, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printProgress(st progress.State) {
	fmt.Printf("XP:               %d/%d\n", st.XP, progress.MaxXP)
	fmt.Printf("Scroll fragments: %d/%d\n", st.ScrollFragments, progress.MaxFragments)
	fmt.Printf("Current level:    %d\n", st.CurrentLevel)
	fmt.Printf("Completed levels: %v\n", st.CompletedLevels)
	if len(st.Clues) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Clues:")
	for i, c := range st.Clues {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
}

func runReset(_ *cobra.Command, _ []string) {
	s := mustOpenSession(false)
	defer s.Close()

	s.env.Progress.Reset()
	fmt.Printf("Progress %q reset.\n", s.env.Progress.Namespace())

	if flagResetHistory && s.store != nil {
		if err := s.store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Level history cleared.")
	}
}
