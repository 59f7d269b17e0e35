package weapon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Versifine/tps/internal/tables"
)

var (
	ErrUnknownSlot   = errors.New("unknown weapon slot")
	ErrUnknownWeapon = errors.New("unknown weapon")
)

// Catalog is the ordered slot list built once at startup. It is read-only
// after construction.
type Catalog struct {
	names   []string
	configs map[string]Config
}

// NewCatalog builds a catalog from already validated configs in slot order.
// Duplicate names keep the first config.
func NewCatalog(configs ...Config) *Catalog {
	c := &Catalog{configs: make(map[string]Config, len(configs))}
	for _, cfg := range configs {
		if _, dup := c.configs[cfg.Name]; dup {
			continue
		}
		c.names = append(c.names, cfg.Name)
		c.configs[cfg.Name] = cfg
	}
	return c
}

// LoadCatalog reads the weapon-name list and every row it names. Rows that
// are missing or invalid keep their slot but resolve to ErrUnknownWeapon,
// so slot numbering stays aligned with the table.
func LoadCatalog(ctx context.Context, src tables.Source) (*Catalog, error) {
	names, err := src.WeaponNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("load weapon names: %w", err)
	}

	c := &Catalog{
		names:   make([]string, 0, len(names)),
		configs: make(map[string]Config, len(names)),
	}
	for _, name := range names {
		c.names = append(c.names, name)
		row, err := src.WeaponMode(ctx, name)
		if err != nil {
			slog.Warn("Weapon row unavailable", "weapon", name, "error", err)
			continue
		}
		cfg, err := FromRow(row)
		if err != nil {
			slog.Warn("Weapon row rejected", "weapon", name, "error", err)
			continue
		}
		cfg.Name = name
		c.configs[name] = cfg
	}
	slog.Debug("Weapon catalog loaded", "slots", len(c.names), "resolved", len(c.configs))
	return c, nil
}

// Resolve returns the config at slot. Both an out-of-range slot and a slot
// whose row is missing fail with ErrUnknownSlot.
func (c *Catalog) Resolve(slot int) (Config, error) {
	if c == nil || slot < 0 || slot >= len(c.names) {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	cfg, ok := c.configs[c.names[slot]]
	if !ok {
		return Config{}, fmt.Errorf("%w: %d: %w", ErrUnknownSlot, slot, ErrUnknownWeapon)
	}
	return cfg, nil
}

// Lookup resolves by weapon name.
func (c *Catalog) Lookup(name string) (Config, error) {
	if c != nil {
		if cfg, ok := c.configs[name]; ok {
			return cfg, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Name returns the slot's name, or "" when out of range.
func (c *Catalog) Name(slot int) string {
	if c == nil || slot < 0 || slot >= len(c.names) {
		return ""
	}
	return c.names[slot]
}

func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}
