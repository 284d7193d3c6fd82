// powercrisis is a terminal survival game: keep a house powered while
// electrical boxes fail, puddles spread and the generator burns fuel.
//
// Usage:
//
//	powercrisis list              - List game variants
//	powercrisis play [variant]    - Play a game
//	powercrisis menu              - Pick a variant interactively
//	powercrisis serve             - Host sessions over SSH
//	powercrisis scores [variant]  - Show best runs
//	powercrisis maps              - List or export maps
//	powercrisis preview [map]     - Render a map to PNG
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.powercrisis/scores.db)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/power-crisis/internal/games/powercrisis"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "powercrisis",
	Short: "Power Crisis - keep the lights on in your terminal",
	Long: `Power Crisis is a top-down survival game played in the terminal.

Electrical boxes fail at random. Repair them with kits from the van
before too many go dark: once fewer than half work, the generator
kicks in and burns fuel. The run ends when the tank is empty.

Available commands:
  list     - Show game variants
  play     - Play a variant directly
  menu     - Interactive picker
  serve    - Host sessions over SSH
  scores   - View best runs
  maps     - List or export maps
  preview  - Render a map to PNG

Examples:
  powercrisis play
  powercrisis play powercrisis_manual --difficulty hard
  powercrisis play --map ./house.yaml
  powercrisis serve --ssh :2222 --metrics 127.0.0.1:9100
  powercrisis preview bunker -o bunker.png`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd.Name() == "serve")
	},
}

func init() {
	rootCmd.SilenceErrors = true // main prints them
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.powercrisis/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (serve logs to stderr by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(previewCmd)
}

// logger is shared by the command and every game it starts.
var logger = log.New(io.Discard)

// setupLogging builds the logger. Interactive commands own the terminal,
// so they only log when --log-file is given.
func setupLogging(toStderr bool) error {
	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	case toStderr:
		w = os.Stderr
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "powercrisis",
		Level:           level,
	})
	powercrisis.SetLogger(logger)
	return nil
}
