package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels"
)

var (
	flagMapsDir    string
	flagExportPath string
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	Long: `List the built-in maps, or the maps found under --dir.
Map files are YAML (.yaml, .yml) or JSON (.json).

Examples:
  powercrisis maps
  powercrisis maps --dir ./my-maps
  powercrisis maps export default -o house.yaml`,
	Args: cobra.NoArgs,
	Run:  runMaps,
}

var mapsExportCmd = &cobra.Command{
	Use:   "export <map>",
	Short: "Write a map as YAML",
	Long: `Write a built-in map or map file as YAML, to stdout or --output.
Useful as a starting point for custom maps.`,
	Args: cobra.ExactArgs(1),
	Run:  runMapsExport,
}

func init() {
	mapsCmd.Flags().StringVar(&flagMapsDir, "dir", "", "Directory to scan instead of the built-in maps")
	mapsExportCmd.Flags().StringVarP(&flagExportPath, "output", "o", "", "Output file (default: stdout)")
	mapsCmd.AddCommand(mapsExportCmd)
}

func runMaps(_ *cobra.Command, _ []string) {
	all, err := levels.NewLoader(flagMapsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No maps found.")
		return
	}

	width := len("ID")
	for _, l := range all {
		width = max(width, len(l.ID))
	}

	fmt.Printf("  %-*s  %-20s  %5s  %5s\n", width, "ID", "Name", "Walls", "Boxes")
	fmt.Printf("  %-*s  %-20s  %5s  %5s\n", width, "--", "----", "-----", "-----")
	for _, l := range all {
		fmt.Printf("  %-*s  %-20s  %5d  %5d\n", width, l.ID, l.Name, len(l.Walls), len(l.Equipment))
	}
	fmt.Println()
	fmt.Println("Run 'powercrisis play --map <id>' to play a map.")
}

func runMapsExport(_ *cobra.Command, args []string) {
	level, err := levels.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := levels.Export(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagExportPath == "" {
		os.Stdout.Write(data) //nolint:errcheck // Best-effort write to stdout
		return
	}
	if err := os.WriteFile(flagExportPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s to %s\n", level.ID, flagExportPath)
}
