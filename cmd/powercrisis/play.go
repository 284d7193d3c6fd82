package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/power-crisis/internal/config"
	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels"
	"github.com/vovakirdan/power-crisis/internal/platform/tui"
	"github.com/vovakirdan/power-crisis/internal/registry"
	"github.com/vovakirdan/power-crisis/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMap        string
	flagManual     bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a run. The default variant runs the generator automatically;
powercrisis_manual (or --manual) leaves it to you.

Controls:
  WASD/Arrows      - Move (hold)
  Shift+WASD       - Sprint
  Space/E          - Use a repair kit on a broken box in reach
  G                - Start/stop the generator (manual variant)
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - More kits, slower burn
  normal - Default scaling
  hard   - Fewer kits, faster failures
  fixed  - No scaling, config values as written

Examples:
  powercrisis play
  powercrisis play --manual --difficulty hard
  powercrisis play --map bunker
  powercrisis play --map ./house.json --config ./tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagManual, "manual", false, "Play the manual generator variant")
	playCmd.Flags().StringVar(&flagPlayer, "player", "local", "Name stored with your runs")
}

// addGameFlags registers the flags that configure new games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagMap, "map", "", "Built-in map ID or path to a map file")
}

// applyGameFlags validates game flags and hands them to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadPowerCrisis(flagConfig); err != nil {
			return err
		}
	}
	if flagMap != "" {
		if _, err := levels.Resolve(flagMap); err != nil {
			return err
		}
	}

	powercrisis.SetConfigPath(flagConfig)
	powercrisis.SetDifficultyPreset(flagDifficulty)
	powercrisis.SetLevel(flagMap)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history. A failure only disables history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := powercrisis.IDAuto
	if flagManual {
		gameID = powercrisis.IDManual
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'powercrisis list' to see available variants.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig(), tui.Options{Player: flagPlayer})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
