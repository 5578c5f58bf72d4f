package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisedwards/statsrange/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		tz, err := rt.timezone("")
		if err != nil {
			return err
		}

		file := rt.cfg.ConfigFile()
		if file == "" {
			file = "(none, using defaults)"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", file)
		fmt.Fprintf(out, "Timezone:    %s\n", tz)
		fmt.Fprintf(out, "Log level:   %s\n", rt.cfg.LogLevel)
		fmt.Fprintf(out, "Log format:  %s\n", rt.cfg.LogFormat)
		fmt.Fprintf(out, "Cache path:  %s\n", orNone(rt.cfg.CachePath))
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := &config.Config{
			LogLevel:  config.DefaultLogLevel,
			LogFormat: config.DefaultLogFormat,
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
