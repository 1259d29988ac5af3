package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var createLines []string

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a note",
	Long: `Create a note with the next free ID.
The body is taken from repeated --line flags, or from stdin when it is not a terminal.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := readBody(createLines)
		if err != nil {
			fatal("Failed to read body", err)
		}

		service, _ := openService()

		n, err := service.CreateNote(context.Background(), args[0], body)
		if err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Saved note: %s\n", n.Filename)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringArrayVarP(&createLines, "line", "l", nil, "Body line (repeatable)")
}
