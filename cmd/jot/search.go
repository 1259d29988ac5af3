package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/internal/shell"
)

var (
	searchJSON bool
	searchYAML bool
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Find notes whose title or body contains a keyword",
	Long:  `Search matches the keyword case-insensitively against each note's title and body lines.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := openService()

		matches, err := service.SearchNotes(context.Background(), args[0])
		if err != nil {
			fatal("Search failed", err)
		}

		writeNotes(pickFormat(searchJSON, searchYAML), matches, func() {
			if len(matches) == 0 {
				fmt.Printf("No matches found for '%s'.\n", args[0])
				return
			}
			shell.WriteList(os.Stdout, matches)
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	searchCmd.Flags().BoolVar(&searchYAML, "yaml", false, "Output in YAML format")
	searchCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}
