package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Versifine/tps/internal/sim"
)

var jsonReport bool

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Run a scripted scenario and print a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&jsonReport, "json", false, "print the report as JSON")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc, err := sim.LoadScenario(args[0])
	if err != nil {
		return err
	}
	world, err := buildWorld(ctx, cfg)
	if err != nil {
		return err
	}
	rep, err := sim.NewRunner(world, cfg.Simulation.TickInterval()).Run(ctx, sc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonReport {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(out, "scenario %s: %d ticks, %s\n", rep.Scenario, rep.Ticks, rep.Elapsed)
	fmt.Fprintf(out, "  shots:       %d (projectiles %d, impacts %d, exhausted %d)\n", rep.Shots, rep.Projectiles, rep.Impacts, rep.Exhausted)
	fmt.Fprintf(out, "  aim changes: %d\n", rep.AimFinished)
	for _, sw := range rep.Switches {
		fmt.Fprintf(out, "  switch:      %d -> %d (%s)\n", sw.From, sw.To, sw.Weapon)
	}
	for _, d := range rep.Depletions {
		fmt.Fprintf(out, "  depleted:    %s %s (have %.1f, need %.1f)\n", d.Kind, d.Cause, d.Have, d.Need)
	}
	fmt.Fprintf(out, "  final:       weapon=%s aiming=%t hp=%.1f mp=%.1f\n", rep.Weapon, rep.Final.Aiming, rep.Final.HP, rep.Final.MP)
	fmt.Fprintf(out, "  position:    (%.1f, %.1f, %.1f)\n", rep.Position.X(), rep.Position.Y(), rep.Position.Z())
	return nil
}
