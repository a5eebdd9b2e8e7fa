// frogger is a terminal Frogger: hop across six lanes of traffic, ride
// the planks over the river, and fill all five goal slots.
//
// Usage:
//
//	frogger play             - Play directly
//	frogger menu             - Title screen with menu
//	frogger serve            - Start SSH server for remote play
//	frogger scores           - Show the session's high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Run database (default: in-memory, per session)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chuashinherh/Frogger/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - hop home through traffic and river",
	Long: `Frogger is a terminal arcade game. Guide the frog from the bottom
bank to the five goal slots at the top: dodge six lanes of traffic,
cross the river on drifting planks, avoid the crocodile, and pick up
the lady frog for a bonus.

Available commands:
  play     - Play directly
  menu     - Title screen with menu
  serve    - Start SSH server for remote play
  scores   - View the session's high scores

Examples:
  frogger play
  frogger play --difficulty hard
  frogger menu
  frogger serve --ssh :2222
  frogger scores`,
}

func init() {
	// Global persistent flags. Scores live in memory unless --db points
	// at a file, so by default nothing survives the process.
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryDSN, "Run database path (\":memory:\" keeps scores for this session only)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
