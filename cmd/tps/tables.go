package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Versifine/tps/internal/aim"
	"github.com/Versifine/tps/internal/config"
	"github.com/Versifine/tps/internal/logger"
	"github.com/Versifine/tps/internal/sim"
	"github.com/Versifine/tps/internal/tables"
	"github.com/Versifine/tps/internal/weapon"
)

func newRedisClient(rc config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
}

// openTables returns the configured table source and a cleanup func.
func openTables(ctx context.Context, c *config.Config) (tables.Source, func(), error) {
	switch c.Tables.Source {
	case "", "yaml":
		src, err := tables.LoadYAML(c.Tables.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("load tables: %w", err)
		}
		return src, func() {}, nil
	case "redis":
		client := newRedisClient(c.Tables.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", c.Tables.Redis.Addr, err)
		}
		src, err := tables.NewRedisSource(&tables.RedisConfig{Client: client, Prefix: c.Tables.Redis.Prefix})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return src, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: tables.source %q", config.ErrInvalid, c.Tables.Source)
	}
}

func loadAssets(ctx context.Context, c *config.Config) (*weapon.Catalog, *aim.Profiles, error) {
	src, cleanup, err := openTables(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	catalog, err := weapon.LoadCatalog(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	profiles := aim.LoadProfiles(ctx, src, aim.StatFromRow(c.Character.Resting))
	return catalog, profiles, nil
}

func buildWorld(ctx context.Context, c *config.Config) (*sim.World, error) {
	catalog, profiles, err := loadAssets(ctx, c)
	if err != nil {
		return nil, err
	}
	return sim.NewWorld(c, catalog, profiles, logger.Component("character"))
}
