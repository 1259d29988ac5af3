package main

import (
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/platform"
)

type statusReport struct {
	Version    string          `yaml:"version"`
	Config     platform.Config `yaml:"config"`
	ConfigFile string          `yaml:"config_file,omitempty"`
	Service    any             `yaml:"service"`
	Repository any             `yaml:"repository,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved configuration and repository state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg := openService()

		report := statusReport{
			Version:    jot.Version,
			Config:     cfg,
			ConfigFile: cfg.Source,
			Service:    service.State(),
		}
		if repo, ok := service.Repository().(introspection.Introspectable); ok {
			report.Repository = repo.State()
		}

		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		defer encoder.Close()
		if err := encoder.Encode(report); err != nil {
			fatal("Failed to encode status", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
