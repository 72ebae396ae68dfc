package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/platform/tui"
	"github.com/vovakirdan/catchit/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catchit SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a menu and its own games.
All users share one scoreboard, which lives as long as the server process.
The SSH user name is the name on the scoreboard.

Address resolution: --addr, then $CATCHIT_SSH_ADDR, then server.addr from
the config. The host key is generated on first start if missing.

Examples:
  catchit serve                           # Listen on :2323
  catchit serve --addr :2222              # Listen on port 2222
  catchit serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in seconds (0 = config)")
	serveCmd.Flags().StringVar(&flagSkill, "skill", string(config.SkillNormal), "Autopilot skill: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) error {
	env, err := loadSetup()
	if err != nil {
		return err
	}
	skill, err := config.ParseSkill(flagSkill)
	if err != nil {
		return err
	}

	srvCfg := env.cfg.Server
	if addr := os.Getenv(config.EnvSSHAddr); addr != "" {
		srvCfg.Addr = addr
	}
	if flagSSHAddr != "" {
		srvCfg.Addr = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = flagIdleTimeout
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     srvCfg.Addr,
		HostKeyPath: config.ExpandHome(srvCfg.HostKeyPath),
		IdleTimeout: time.Duration(srvCfg.IdleTimeout) * time.Second,
		TickRate:    env.cfg.Display.TickRate,
	}, store, gameFactory(env.cfg, skill))
	if err != nil {
		store.Close()
		return err
	}

	fmt.Printf("Starting catchit SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
