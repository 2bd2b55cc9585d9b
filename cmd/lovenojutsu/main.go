// lovenojutsu is a seven-level romantic adventure played in the terminal.
//
// Usage:
//
//	lovenojutsu levels          - List levels with lock and completion marks
//	lovenojutsu play [level]    - Play a level (default: the current one)
//	lovenojutsu menu            - Interactive campaign menu
//	lovenojutsu quiz            - Play the quiz rounds
//	lovenojutsu progress        - Show XP, scroll fragments, clues and history
//	lovenojutsu reset           - Start the campaign over
//	lovenojutsu serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set database path (default: ~/.lovenojutsu/lovenojutsu.db)
//	--namespace <name>    - Progress record key
//	--config <path>       - Custom levels.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/balance"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/memory"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/puzzle"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/quizgame"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/silentshinobi"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/storm"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/traits"
	_ "github.com/vovakirdan/love-no-jutsu/internal/games/wordhunt"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagNamespace  string
	flagConfig     string
	flagQuiz       string
	flagDifficulty string
	flagMute       bool
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lovenojutsu",
	Short: "Love no Jutsu - a seven-level adventure in your terminal",
	Long: `Love no Jutsu is a campaign of seven mini-games. Every completed level
earns XP, a scroll fragment and a clue, and unlocks the next one.

Available commands:
  levels    - Show all levels and what is unlocked
  play      - Play a level directly
  menu      - Interactive campaign menu
  quiz      - Play the quiz rounds
  progress  - Show progress and level history
  reset     - Start over
  serve     - Start SSH server for remote play

Environment:
  LNJ_DB, LNJ_NAMESPACE, LNJ_CONFIG override the defaults of
  --db, --namespace and --config. A .env file is read if present.

Examples:
  lovenojutsu menu
  lovenojutsu play 3 --difficulty easy
  lovenojutsu serve --ssh :2222`,
	PersistentPreRun: applyEnvDefaults,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the database")
	flags.StringVar(&flagNamespace, "namespace", progress.Namespace, "Key of the progress record")
	flags.StringVar(&flagConfig, "config", "", "Path to custom levels YAML")
	flags.StringVar(&flagQuiz, "quiz", "", "Path to custom quiz YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.BoolVar(&flagMute, "mute", false, "Disable audio")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnvDefaults lets the environment override flags the user did not set.
func applyEnvDefaults(cmd *cobra.Command, _ []string) {
	overrides := []struct {
		flag   string
		env    string
		target *string
	}{
		{"db", "LNJ_DB", &flagDBPath},
		{"namespace", "LNJ_NAMESPACE", &flagNamespace},
		{"config", "LNJ_CONFIG", &flagConfig},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			continue
		}
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.target = v
		}
	}
}
