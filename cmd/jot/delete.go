package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var (
	deleteYes    bool
	deleteAllYes bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note file. Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Error deleting note", err)
		}

		service, _ := openService()
		ctx := context.Background()

		n, err := service.GetNote(ctx, id)
		if err != nil {
			fatal("Error deleting note", err)
		}

		if !deleteYes && !confirm(fmt.Sprintf("Are you sure you want to delete '%s'?", n.Title)) {
			fmt.Println("Cancelled.")
			return
		}

		if err := service.DeleteNote(ctx, id); err != nil {
			fatal("Error deleting note", err)
		}

		fmt.Printf("Note deleted: %s\n", n.Filename)
	},
}

var deleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Delete every note",
	Long:  `Delete-all removes every .txt file in the notes directory. Asks for confirmation unless --yes is given.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := openService()

		if !deleteAllYes && !confirm("Are you sure you want to delete ALL notes?") {
			fmt.Println("Cancelled.")
			return
		}

		count, err := service.DeleteAllNotes(context.Background())
		if err != nil {
			fatal("Error deleting notes", err)
		}

		if count == 0 {
			fmt.Println("No notes to delete.")
			return
		}
		fmt.Printf("All notes deleted successfully! (%d)\n", count)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(deleteAllCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
	deleteAllCmd.Flags().BoolVarP(&deleteAllYes, "yes", "y", false, "Skip confirmation")
}
