// echoes is a short adventure about scarcity and kindness, played in the
// terminal or over SSH.
//
// Usage:
//
//	echoes                   - Play (same as "echoes play")
//	echoes play              - Play in this terminal
//	echoes serve             - Start SSH server for remote play
//	echoes zones [zone]      - List zones or print a zone's layout
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/echoes/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "echoes",
	Short: "Echoes of Humanity - a terminal adventure",
	Long: `Echoes of Humanity is a short adventure in three zones.
Collect gems, decide who to help, and find enlightenment.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  zones    - List zones or print a zone's layout

Examples:
  echoes
  echoes play --seed 42
  echoes serve --ssh :2222
  echoes zones Maze`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(zonesCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}
