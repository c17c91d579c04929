package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-tiles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gravtiles SSH server",
	Long: `Start an SSH server where every connection plays the levels in order.

Clears are recorded in the run history under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gravtiles/host_key

Examples:
  gravtiles serve                           # Listen on :23234 with auto-generated key
  gravtiles serve --ssh :2222               # Listen on port 2222
  gravtiles serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger()
	lvls := loadLevels(cfg, nil)
	dict := loadDictionary(cfg)

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      cfg.DB,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		ShowHints:   cfg.Play.ShowHints,
	}

	server, err := tui.NewSSHServer(srvCfg, lvls, dict, logger)
	if err != nil {
		exitf("cannot create server: %v", err)
	}

	fmt.Printf("Serving %d levels on %s\n", len(lvls), srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server error: %v", err)
	}
}
