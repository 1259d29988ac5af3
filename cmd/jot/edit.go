package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var editLines []string

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Replace the body of a note",
	Long: `Replace the body of a note. The title and filename never change.
The body is taken from repeated --line flags, or from stdin when it is not a terminal.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Failed to update note", err)
		}

		body, err := readBody(editLines)
		if err != nil {
			fatal("Failed to read body", err)
		}

		service, _ := openService()

		n, err := service.UpdateNote(context.Background(), id, body)
		if err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note updated: %s\n", n.Filename)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringArrayVarP(&editLines, "line", "l", nil, "Body line (repeatable)")
}
