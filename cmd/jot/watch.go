package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	jotlifecycle "github.com/aretw0/jot/pkg/adapters/lifecycle"
	"github.com/aretw0/jot/pkg/core"
)

var watchOnly []string

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Print changes to note files as they happen",
	Long: `Watch follows the notes directory and prints one line per created,
modified or deleted note. The optional pattern filters filenames (doublestar syntax).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}

		var opts []jotlifecycle.SourceOption
		for _, t := range watchOnly {
			eType := core.EventType(strings.ToUpper(t))
			switch eType {
			case core.EventCreate, core.EventModify, core.EventDelete:
				opts = append(opts, jotlifecycle.OnlyTypes(eType))
			default:
				fatal("Invalid event type", fmt.Errorf("%q (want create, modify or delete)", t))
			}
		}

		service, cfg := openService()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to watch notes", err)
		}

		src := jotlifecycle.NewSource(events, opts...)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to watch notes", err)
		}
		slog.Info("watching notes", "dir", cfg.Dir, "pattern", pattern)

		for e := range src.Events() {
			event, ok := e.(core.Event)
			if !ok {
				continue
			}
			ts := time.Unix(event.Timestamp, 0).Format(time.TimeOnly)
			fmt.Printf("%s %-6s %d %s\n", ts, event.Type, event.ID, event.Filename)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringSliceVar(&watchOnly, "only", nil, "Event types to print (create, modify, delete)")
}
