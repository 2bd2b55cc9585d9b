package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/love-no-jutsu/internal/platform/tui"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. Without an argument the current level is played.
A level is given as its number (3) or its ID (level-3).

Controls:
  Arrows/WASD - Move cursor or player
  Space       - Flip, tap, pick, mark
  Enter       - Start, confirm, continue
  1/2/3       - Drop zone or meter
  P           - Pause
  R           - Retry (after the level ends)
  B/Esc       - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 25% more time, slower spawns
  normal - Level tables as configured
  hard   - 20% less time, faster spawns
  fixed  - Level tables as configured

Examples:
  lovenojutsu play
  lovenojutsu play 4
  lovenojutsu play level-6 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// playRoute picks the route to start: the argument, or the first level
// not yet completed.
func playRoute(store *progress.Store, args []string) (string, error) {
	if len(args) == 0 {
		route := registry.LevelRoute(store.CurrentLevel())
		if !registry.Exists(route) {
			return registry.RouteTreasure, nil
		}
		return route, nil
	}

	route, err := registry.ResolveRoute(args[0])
	if err != nil {
		return "", err
	}
	if n, ok := registry.ParseLevelRoute(route); ok && !store.IsLevelUnlocked(n) {
		return "", fmt.Errorf("level %d is locked, complete level %d first", n, store.CurrentLevel())
	}
	return route, nil
}

func runPlay(_ *cobra.Command, args []string) {
	s := mustOpenSession(true)

	route, err := playRoute(s.env.Progress, args)
	if err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'lovenojutsu levels' to see what is unlocked.")
		os.Exit(1)
	}

	runErr := tui.Run(s.env, route)
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
