package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisedwards/statsrange/internal/config"
	"github.com/chrisedwards/statsrange/internal/daterange"
	"github.com/chrisedwards/statsrange/internal/logging"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "statsrange",
	Short: "Size stats query windows in the viewer's calendar days",
	Long: `statsrange computes the date range a stats query must cover for a published post.

Days are counted on the viewer's local calendar, so a post published late on
Jan 10 and viewed on Jan 12 covers three days even if less than 48 hours have
passed. The timezone comes from --tz, the config file, or $TZ, in that order.`,
	Version:       fmt.Sprintf("%s (build %s, %s)", Version, Build, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/statsrange/statsrange.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// app is what every subcommand needs after config is loaded.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	log.Debug("config loaded", "file", cfg.ConfigFile(), "timezone", cfg.Timezone)
	return &app{cfg: cfg, log: log}, nil
}

// timezone resolves the viewer's timezone: flag, then config, then $TZ.
func (a *app) timezone(flag string) (string, error) {
	return daterange.ResolveTimezone(flag, a.cfg.Timezone, strings.TrimPrefix(os.Getenv("TZ"), ":"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
