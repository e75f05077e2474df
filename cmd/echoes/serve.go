package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/echoes/internal/games/echoes"
	"github.com/vovakirdan/echoes/internal/logging"
	"github.com/vovakirdan/echoes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the echoes SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own private session. Nothing is shared
between players and nothing is saved.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.echoes/host_key

Examples:
  echoes serve                           # Listen on :23235 with auto-generated key
  echoes serve --ssh :2222               # Listen on port 2222
  echoes serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: from config, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = use config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, err := logging.New(cfg.Log, logging.Options{
		Prefix:  "echoes-ssh",
		Console: os.Stderr,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	layers, err := echoes.NewLayerCache(cfg.Render.CacheMaxCost)
	if err != nil {
		return err
	}
	defer layers.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: cfg.Server.IdleTimeout(),
		TickRate:    cfg.Display.TickRate,
		HoldTicks:   cfg.Display.HoldTicks,
	}, func() tui.Game {
		return echoes.New(layers)
	}, logger.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting echoes SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	start := time.Now()
	if err := server.ListenAndServe(ctx); err != nil {
		return err
	}
	logger.Info("server stopped",
		"uptime", time.Since(start).Round(time.Second),
		"sessions_cut", server.Active(),
	)
	return nil
}
