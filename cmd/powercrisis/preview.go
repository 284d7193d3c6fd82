package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/power-crisis/internal/config"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels"
	"github.com/vovakirdan/power-crisis/internal/platform/raster"
)

var (
	flagPreviewOut   string
	flagPreviewScale float64
	flagPreviewGrid  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [map]",
	Short: "Render a map to PNG",
	Long: `Draw a map top-down as a PNG image: walls, electrical boxes,
the van and the player start. The map size comes from the config.

Examples:
  powercrisis preview
  powercrisis preview bunker -o bunker.png --scale 12
  powercrisis preview ./house.yaml --config ./tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&flagPreviewOut, "output", "o", "", "Output PNG file (default: <map>.png)")
	previewCmd.Flags().Float64Var(&flagPreviewScale, "scale", raster.DefaultOptions().Scale, "Pixels per world unit")
	previewCmd.Flags().BoolVar(&flagPreviewGrid, "grid", true, "Draw a grid line every world unit")
	previewCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPreview(_ *cobra.Command, args []string) {
	cfg, err := config.LoadPowerCrisis(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ref := cfg.Map.Level
	if len(args) == 1 {
		ref = args[0]
	}
	level, err := levels.Resolve(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := flagPreviewOut
	if out == "" {
		out = level.ID + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := raster.Options{
		Scale: flagPreviewScale,
		MapW:  cfg.Map.Width,
		MapH:  cfg.Map.Height,
		Grid:  flagPreviewGrid,
	}
	if err := raster.WritePNG(f, level, opts); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%s)\n", out, level.Name)
}
