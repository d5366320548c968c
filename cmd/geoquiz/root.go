package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const releaseVersion = "0.1.0"

type logOptions struct {
	level  string
	format string
}

func newRootCmd() *cobra.Command {
	logOpts := &logOptions{}

	cmd := &cobra.Command{
		Use:     "geoquiz",
		Short:   "LAN flag-trivia: host a game on one device, join from the others.",
		Version: releaseVersion,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&logOpts.level, "log-level", "info", "log level: debug, info, warn, error (env: GEOQUIZ_LOG_LEVEL)")
	pf.StringVar(&logOpts.format, "log-format", "text", "log format: text or json (env: GEOQUIZ_LOG_FORMAT)")

	cmd.AddCommand(newHostCmd(logOpts))
	cmd.AddCommand(newJoinCmd(logOpts))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("geoquiz v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// bindFlags wires every flag of cmd (and the persistent ones above it)
// to a GEOQUIZ_-prefixed environment variable; explicit flags win over
// the environment.
func bindFlags(cmd *cobra.Command) {
	v := viper.New()
	v.SetEnvPrefix("GEOQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	apply := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = v.BindPFlag(f.Name, f)
			_ = v.BindEnv(f.Name)
			if !f.Changed && v.IsSet(f.Name) {
				_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
			}
		})
	}

	apply(cmd.Flags())
	apply(cmd.InheritedFlags())
}

func newLogger(opts *logOptions) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLogLevel(opts.level)}

	var logger *slog.Logger
	if opts.format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
	}

	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
