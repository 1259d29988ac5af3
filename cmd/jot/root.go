package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/platform"
)

var (
	verbose    bool
	notesDir   string
	configPath string

	logLevel = new(slog.LevelVar)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A small note keeper backed by plain text files",
	Long: `Jot keeps numbered notes as plain text files in a single directory.
Each note is one file named <id>_<title>.txt; the directory is the only state.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}

		opts := &slog.HandlerOptions{
			Level: logLevel,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notesDir, "dir", "d", "", "Notes directory (overrides $"+platform.EnvDir+" and config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest "+platform.ConfigFileName+")")
}

// loadConfig resolves the effective configuration from the working directory.
func loadConfig() platform.Config {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}

	cfg, err := platform.Resolve(wd, configPath, notesDir)
	if err != nil {
		fatal("Invalid configuration", err)
	}
	if !verbose {
		logLevel.Set(cfg.Level())
	}
	if cfg.Source != "" {
		slog.Debug("config loaded", "file", cfg.Source)
	}
	return cfg
}

// openService builds the note service for the resolved notes directory.
func openService() (*jot.Service, platform.Config) {
	cfg := loadConfig()

	opts := append(cfg.Options(), jot.WithLogger(slog.Default()))
	service, err := jot.New(cfg.Dir, opts...)
	if err != nil {
		fatal("Failed to open notes directory", err)
	}
	return service, cfg
}
