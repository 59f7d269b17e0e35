package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Versifine/tps/internal/tables"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Publish the YAML tables to Redis",
	Long:  `Read the tables file named by tables.path and replace the tables stored in Redis under tables.redis.prefix.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	src, err := tables.LoadYAML(cfg.Tables.Path)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}

	client := newRedisClient(cfg.Tables.Redis)
	defer client.Close()

	dst, err := tables.NewRedisSource(&tables.RedisConfig{Client: client, Prefix: cfg.Tables.Redis.Prefix})
	if err != nil {
		return err
	}
	set := src.Set()
	if err := dst.Publish(ctx, set); err != nil {
		return fmt.Errorf("publish tables: %w", err)
	}
	slog.Info("Tables published", "addr", cfg.Tables.Redis.Addr, "aiming", len(set.Aiming), "weapons", len(set.Weapons))
	fmt.Fprintf(cmd.OutOrStdout(), "published %d aiming rows and %d weapons to %s\n", len(set.Aiming), len(set.Weapons), cfg.Tables.Redis.Addr)
	return nil
}
