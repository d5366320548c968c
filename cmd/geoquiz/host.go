package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"geoquiz/internal/client"
	"geoquiz/internal/config"
	"geoquiz/internal/host"
	"geoquiz/internal/questions"
)

func newHostCmd(logOpts *logOptions) *cobra.Command {
	cfg := config.Load()
	var (
		playerName string
		reveal     bool
	)

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Host a game session and play from this terminal.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if playerName == "" {
				playerName = cfg.Server.HostName
			}
			return runHost(cfg, playerName, reveal, logOpts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.Server.Bind, "bind", "b", cfg.Server.Bind, "address to bind to (env: GEOQUIZ_BIND)")
	fs.IntVarP(&cfg.Server.Port, "port", "p", cfg.Server.Port, "game port (env: GEOQUIZ_PORT)")
	fs.IntVar(&cfg.Server.DiscoveryPort, "discovery-port", cfg.Server.DiscoveryPort, "LAN discovery port, 0 disables (env: GEOQUIZ_DISCOVERY_PORT)")
	fs.StringVar(&cfg.Server.HostName, "session-name", cfg.Server.HostName, "session name shown to players scanning the network (env: GEOQUIZ_SESSION_NAME)")
	fs.DurationVar(&cfg.Server.GracePeriod, "grace-period", cfg.Server.GracePeriod, "delay before final results, absorbing late answers (env: GEOQUIZ_GRACE_PERIOD)")
	fs.IntVarP(&cfg.Game.QuestionsCount, "questions", "q", cfg.Game.QuestionsCount, "number of questions (env: GEOQUIZ_QUESTIONS)")
	fs.IntVarP(&cfg.Game.TimePerQuestion, "time", "t", cfg.Game.TimePerQuestion, "seconds per question (env: GEOQUIZ_TIME)")
	fs.IntSliceVarP(&cfg.Game.DifficultyLevels, "difficulty", "d", cfg.Game.DifficultyLevels, "difficulty levels to draw from (env: GEOQUIZ_DIFFICULTY)")
	fs.StringVarP(&playerName, "name", "n", "", "your player name, session name by default (env: GEOQUIZ_NAME)")
	fs.BoolVar(&reveal, "reveal", false, "tell each player immediately whether their answer was right (env: GEOQUIZ_REVEAL)")

	return cmd
}

func runHost(cfg *config.Config, playerName string, reveal bool, logOpts *logOptions) error {
	logger := newLogger(logOpts)

	supply := questions.NewStore()
	srv := host.New(host.Options{
		Config:            cfg.Game,
		Bind:              cfg.Server.Bind,
		GracePeriod:       cfg.Server.GracePeriod,
		RevealCorrectness: reveal,
	}, supply, logger)

	if err := srv.Start(cfg.Server.Port); err != nil {
		return err
	}
	defer srv.Stop("Host ended the game")

	// Discovery is best-effort; the session works without it.
	if cfg.Server.DiscoveryPort > 0 {
		address, err := client.LocalIP()
		if err != nil {
			logger.Warn("discovery disabled", "error", err)
		} else {
			announcer := host.NewAnnouncer(cfg.Server.HostName, address, cfg.Server.Port, srv.PlayerCount, logger)
			if err := announcer.Start(cfg.Server.DiscoveryPort); err != nil {
				logger.Warn("discovery disabled", "error", err)
			} else {
				defer announcer.Stop()
			}
		}
	}

	// The hosting device plays too: it joins its own session as the
	// first (and therefore host) player.
	u := newUI(uuid.NewString(), playerName, os.Stdout)
	conn := client.New(u.handleMessage, u.handleDisconnect, logger)
	u.conn = conn

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.Connect(ctx, "127.0.0.1", cfg.Server.Port, u.playerID, u.playerName); err != nil {
		return err
	}
	defer conn.Disconnect()

	u.printf("hosting %q on port %d, waiting for players", cfg.Server.HostName, cfg.Server.Port)
	u.printf("type /start when everyone is ready, /quit to end the session")

	go u.inputLoop(os.Stdin, srv.StartGame)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-u.done:
	case <-srv.Done():
	}

	logger.Info("shutting down host session")
	return nil
}
