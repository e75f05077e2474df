package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/echoes/internal/audio"
	"github.com/vovakirdan/echoes/internal/config"
	"github.com/vovakirdan/echoes/internal/core"
	"github.com/vovakirdan/echoes/internal/games/echoes"
	"github.com/vovakirdan/echoes/internal/logging"
	"github.com/vovakirdan/echoes/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a new session in this terminal.

Controls:
  WASD/Arrows  - Move
  Space        - Help a nearby NPC / begin
  1-4          - Answer the choice
  R            - Restart
  ?            - Show all keys
  Q/Esc        - Quit

Logs go to ~/.echoes/echoes.log unless the config names another file.

Examples:
  echoes play
  echoes play --seed 42
  echoes play --config ./echoes.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, logging.Options{
		Prefix:      "echoes",
		DefaultFile: config.UserPath("echoes.log"),
	})
	if err != nil {
		// The game works without a log
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	}
	defer logger.Close()

	if err := play(cfg, logger); err != nil {
		// The alternate screen is gone by now; keep the error visible.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if path := logger.Path(); path != "" {
			fmt.Fprintf(os.Stderr, "Details are in %s\n", path)
		}
		fmt.Fprintln(os.Stderr, "Press Enter to exit.")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		return err
	}
	return nil
}

func play(cfg config.Config, logger *logging.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", "value", r)
			err = fmt.Errorf("echoes crashed: %v", r)
		}
	}()

	layers, err := echoes.NewLayerCache(cfg.Render.CacheMaxCost)
	if err != nil {
		return err
	}
	defer layers.Close()

	opts := tui.Options{
		HoldTicks: cfg.Display.HoldTicks,
		Logger:    logger.Logger,
	}
	if cfg.Audio.Enabled {
		sounds := audio.NewManager(cfg.Audio.Volume)
		if initErr := sounds.Init(); initErr != nil {
			logger.Warn("sound disabled", "err", initErr)
		} else {
			defer sounds.Close()
			opts.Sounds = sounds
		}
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(echoes.New(layers), rc, opts); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
