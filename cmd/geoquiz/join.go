package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"geoquiz/internal/client"
	"geoquiz/internal/config"
)

func newJoinCmd(logOpts *logOptions) *cobra.Command {
	cfg := config.Load()
	var (
		address    string
		playerName string
		scan       bool
	)

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a hosted game session.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)
			if playerName == "" {
				return errors.New("--name is required")
			}
			if address == "" && !scan {
				return errors.New("either --address or --scan is required")
			}
			return runJoin(cfg, address, playerName, scan, logOpts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&address, "address", "a", "", "host address to connect to (env: GEOQUIZ_ADDRESS)")
	fs.IntVarP(&cfg.Server.Port, "port", "p", cfg.Server.Port, "game port (env: GEOQUIZ_PORT)")
	fs.IntVar(&cfg.Server.DiscoveryPort, "discovery-port", cfg.Server.DiscoveryPort, "LAN discovery port (env: GEOQUIZ_DISCOVERY_PORT)")
	fs.StringVarP(&playerName, "name", "n", "", "your player name (env: GEOQUIZ_NAME)")
	fs.BoolVar(&scan, "scan", false, "scan the local network for a session instead of giving an address (env: GEOQUIZ_SCAN)")

	return cmd
}

func runJoin(cfg *config.Config, address, playerName string, scan bool, logOpts *logOptions) error {
	logger := newLogger(logOpts)

	port := cfg.Server.Port

	if address == "" {
		localIP, err := client.LocalIP()
		if err != nil {
			return err
		}

		hosts := client.Scan(localIP, cfg.Server.DiscoveryPort, time.Second)
		if len(hosts) == 0 {
			return errors.New("no sessions found on the local network")
		}

		// Join the first session found.
		address = hosts[0].Address
		port = hosts[0].Port
		logger.Info("found session",
			"name", hosts[0].Name,
			"addr", address,
			"players", hosts[0].PlayerCount,
		)
	}

	u := newUI(uuid.NewString(), playerName, os.Stdout)
	conn := client.New(u.handleMessage, u.handleDisconnect, logger)
	u.conn = conn

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.Connect(ctx, address, port, u.playerID, u.playerName); err != nil {
		return err
	}
	defer conn.Disconnect()

	u.printf("joined %s:%d as %s", address, port, playerName)
	u.printf("type /ready when you are, then answer each question as it appears")

	go u.inputLoop(os.Stdin, nil)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-u.done:
	}

	logger.Info("leaving session")
	return nil
}
