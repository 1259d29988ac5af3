package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/internal/shell"
	"github.com/aretw0/jot/pkg/core"
)

var viewRaw bool

var viewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Print a note",
	Long:  `Print a note by its ID, framed by its title. Use --raw to print only the body lines.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Error reading note", err)
		}

		service, _ := openService()

		n, err := service.GetNote(context.Background(), id)
		if err != nil {
			fatal("Error reading note", err)
		}

		if viewRaw {
			for _, line := range n.Body {
				fmt.Println(line)
			}
			return
		}
		shell.WriteNote(os.Stdout, n)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewRaw, "raw", false, "Print the body only")
}
