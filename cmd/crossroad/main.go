// crossroad is a terminal lane-crossing arcade game: guide the frog across a
// road of traffic and a river of drifting platforms to fill all three targets
// before something runs you over, bites you, or eats you.
//
// Usage:
//
//	crossroad play            - Play the game
//	crossroad scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.crossroad/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossroad",
	Short: "Crossroad - a lane-crossing arcade game for your terminal",
	Long: `Crossroad is a terminal arcade game. Cross the road, ride the river,
fill all three targets to beat the level - the lanes get faster every time.

Available commands:
  play     - Play the game
  scores   - View high scores

Examples:
  crossroad play
  crossroad play --fps 30
  crossroad scores
  crossroad scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossroad/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
