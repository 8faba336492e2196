// snake is a terminal snake game.
//
// Usage:
//
//	snake [flags]
//
// Flags:
//
//	--fps <rate>          - Frames per second (overrides --speed and config)
//	--seed <value>        - RNG seed for reproducible food placement
//	--speed <preset>      - slow, normal, fast or insane
//	--food <mode>         - single or multi
//	--frontend <name>     - tcell or tea
//	--sched <shape>       - threaded or polled (tcell frontend)
//	--config <path>       - Custom config YAML
//	--log-file <path>     - Write logs to a file (discarded when unset)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagSpeed    string
	flagFood     string
	flagFrontend string
	flagSched    string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Play snake in your terminal",
	Long: `Steer the snake with the arrow keys or WASD and eat the food.
Running into a wall or into yourself ends the game. Ctrl+C quits.

Examples:
  snake
  snake --speed fast
  snake --food multi --seed 42
  snake --frontend tea
  snake --sched polled --log-file /tmp/snake.log --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, insane")
	f.StringVar(&flagFood, "food", "", "Food mode: single, multi")
	f.StringVar(&flagFrontend, "frontend", "", "Frontend: tcell, tea")
	f.StringVar(&flagSched, "sched", "", "Scheduling for the tcell frontend: threaded, polled")
	f.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
