package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/internal/shell"
	"github.com/aretw0/jot/pkg/core"
)

var (
	listJSON bool
	listYAML bool
	listGlob string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if listGlob != "" && !doublestar.ValidatePattern(listGlob) {
			fatal("Invalid glob", fmt.Errorf("%q", listGlob))
		}

		service, _ := openService()

		notes, err := service.ListNotes(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		// Filter
		var filtered []core.Note
		for _, n := range notes {
			if listGlob != "" {
				if ok, _ := doublestar.Match(listGlob, n.Filename); !ok {
					continue
				}
			}
			filtered = append(filtered, n)
		}

		writeNotes(pickFormat(listJSON, listYAML), filtered, func() {
			if len(filtered) == 0 {
				fmt.Println("No notes found.")
				return
			}
			shell.WriteList(os.Stdout, filtered)
		})
	},
}

// outputFormat selects how note listings are printed.
type outputFormat int

const (
	formatPlain outputFormat = iota
	formatJSON
	formatYAML
)

func pickFormat(asJSON, asYAML bool) outputFormat {
	switch {
	case asJSON:
		return formatJSON
	case asYAML:
		return formatYAML
	}
	return formatPlain
}

// writeNotes prints v in the given format; plain handles formatPlain.
func writeNotes(format outputFormat, v any, plain func()) {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			fatal("Failed to encode JSON", err)
		}
	case formatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			fatal("Failed to encode YAML", err)
		}
		encoder.Close()
	default:
		plain()
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	listCmd.Flags().StringVar(&listGlob, "glob", "", "Only list notes whose filename matches the pattern")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}
