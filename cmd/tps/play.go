package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Versifine/tps/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the character from the keyboard",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		world, err := buildWorld(ctx, cfg)
		if err != nil {
			return err
		}
		return console.NewConsole(world, cfg.Simulation.TickInterval()).Start(ctx)
	},
}
