package tables

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "tps:tables"

// RedisConfig configures a RedisSource.
type RedisConfig struct {
	Client redis.UniversalClient
	Prefix string
}

func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.New("redis tables: config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("redis tables: client cannot be nil")
	}
	return nil
}

// RedisSource reads tables laid out as one ordered name list per table plus
// one JSON document per row:
//
//	<prefix>:aiming:names   LIST
//	<prefix>:aiming:<name>  STRING (json AimingRow)
//	<prefix>:weapon:names   LIST
//	<prefix>:weapon:<name>  STRING (json WeaponModeRow)
type RedisSource struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisSource(cfg *RedisConfig) (*RedisSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisSource{client: cfg.Client, prefix: prefix}, nil
}

func (s *RedisSource) aimingNamesKey() string { return s.prefix + ":aiming:names" }
func (s *RedisSource) weaponNamesKey() string { return s.prefix + ":weapon:names" }
func (s *RedisSource) aimingKey(name string) string {
	return s.prefix + ":aiming:" + name
}
func (s *RedisSource) weaponKey(name string) string {
	return s.prefix + ":weapon:" + name
}

// AimingRows skips names whose row document is missing.
func (s *RedisSource) AimingRows(ctx context.Context) ([]AimingRow, error) {
	names, err := s.client.LRange(ctx, s.aimingNamesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list aiming names: %w", err)
	}
	rows := make([]AimingRow, 0, len(names))
	for _, name := range names {
		var row AimingRow
		if err := s.getJSON(ctx, s.aimingKey(name), &row); err != nil {
			if errors.Is(err, ErrRowNotFound) {
				slog.Warn("Aiming row missing", "name", name)
				continue
			}
			return nil, err
		}
		if row.Name == "" {
			row.Name = name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *RedisSource) WeaponNames(ctx context.Context) ([]string, error) {
	names, err := s.client.LRange(ctx, s.weaponNamesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list weapon names: %w", err)
	}
	return names, nil
}

func (s *RedisSource) WeaponMode(ctx context.Context, name string) (WeaponModeRow, error) {
	var row WeaponModeRow
	if err := s.getJSON(ctx, s.weaponKey(name), &row); err != nil {
		return WeaponModeRow{}, fmt.Errorf("weapon %q: %w", name, err)
	}
	if row.Name == "" {
		row.Name = name
	}
	return row, nil
}

func (s *RedisSource) getJSON(ctx context.Context, key string, out any) error {
	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrRowNotFound
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Publish replaces the tables stored under the source prefix with set in a
// single transaction.
func (s *RedisSource) Publish(ctx context.Context, set Set) error {
	oldAiming, err := s.client.LRange(ctx, s.aimingNamesKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("list aiming names: %w", err)
	}
	oldWeapons, err := s.client.LRange(ctx, s.weaponNamesKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("list weapon names: %w", err)
	}

	stale := []string{s.aimingNamesKey(), s.weaponNamesKey()}
	for _, name := range oldAiming {
		stale = append(stale, s.aimingKey(name))
	}
	for _, name := range oldWeapons {
		stale = append(stale, s.weaponKey(name))
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, stale...)
		for _, row := range set.Aiming {
			data, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("encode aiming %q: %w", row.Name, err)
			}
			pipe.RPush(ctx, s.aimingNamesKey(), row.Name)
			pipe.Set(ctx, s.aimingKey(row.Name), data, 0)
		}
		for _, row := range set.Weapons {
			data, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("encode weapon %q: %w", row.Name, err)
			}
			pipe.RPush(ctx, s.weaponNamesKey(), row.Name)
			pipe.Set(ctx, s.weaponKey(row.Name), data, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish tables: %w", err)
	}
	return nil
}
