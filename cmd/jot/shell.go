package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/jot/internal/shell"
)

var shellQuiet bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long: `Shell runs the numbered menu on stdin/stdout.
When stdin is not a terminal the menu is printed only once.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := openService()

		ctx := context.Background()

		quiet := shellQuiet || !term.IsTerminal(int(os.Stdin.Fd()))
		sh := shell.New(service, os.Stdin, os.Stdout,
			shell.WithQuiet(quiet),
			shell.WithErrorOutput(os.Stderr),
		)
		if err := sh.Run(ctx); err != nil {
			fatal("Shell stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().BoolVarP(&shellQuiet, "quiet", "q", false, "Print the menu only once")
}
