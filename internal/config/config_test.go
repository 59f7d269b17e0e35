package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Versifine/tps/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:       "valid yaml over defaults",
			createFile: true,
			content: `logging:
  level: "debug"
  file: "tps.log"
simulation:
  tick_rate: 120
tables:
  source: redis
  redis:
    addr: "127.0.0.1:6380"
    prefix: "arena:tables"
character:
  aim_in_speed: 0.5
  starting_slot: 2
  ammo:
    rifle_ammo: 90
    rocket: 4
  energy:
    battery: 50
arena:
  floor_size: 8
  boxes: []
`,
			validate: func(t *testing.T, cfg *Config, _ error) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
				assert.Equal(t, time.Second/120, cfg.Simulation.TickInterval())
				assert.Equal(t, "redis", cfg.Tables.Source)
				assert.Equal(t, "127.0.0.1:6380", cfg.Tables.Redis.Addr)
				assert.InDelta(t, 0.5, cfg.Character.AimInSpeed, 1e-12)
				assert.InDelta(t, 0.2, cfg.Character.AimOutSpeed, 1e-12)
				assert.InDelta(t, 90, cfg.Character.Resting.FieldOfView, 1e-12)
				assert.Equal(t, 8, cfg.Arena.FloorSize)
				assert.Empty(t, cfg.Arena.Boxes)
				assert.NoError(t, cfg.Validate())

				ledger, err := cfg.Character.Ledger()
				require.NoError(t, err)
				assert.Equal(t, 90, ledger.AmmoOf(resource.RifleAmmo))
				assert.Equal(t, 4, ledger.AmmoOf(resource.Rocket))
				assert.InDelta(t, 50, ledger.Battery, 1e-12)
				assert.InDelta(t, 100, ledger.Mana, 1e-12)
			},
		},
		{
			name:    "missing file",
			wantErr: true,
			validate: func(t *testing.T, _ *Config, err error) {
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name:       "malformed yaml",
			createFile: true,
			content: `simulation:
  tick_rate: [60
tables:
  source: yaml
`,
			wantErr: true,
			validate: func(t *testing.T, _ *Config, err error) {
				assert.Contains(t, err.Error(), "yaml")
			},
		},
		{
			name:       "empty file yields defaults",
			createFile: true,
			validate: func(t *testing.T, cfg *Config, _ error) {
				assert.Equal(t, 60, cfg.Simulation.TickRate)
				assert.Equal(t, "yaml", cfg.Tables.Source)
				assert.NotEmpty(t, cfg.Tables.Path)
				assert.NoError(t, cfg.Validate())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if tt.createFile {
				require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0o644))
			}

			cfg, err := Load(configPath)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}
			tt.validate(t, cfg, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown source", func(c *Config) { c.Tables.Source = "sqlite" }},
		{"yaml without path", func(c *Config) { c.Tables.Path = "" }},
		{"redis without addr", func(c *Config) { c.Tables.Source = "redis"; c.Tables.Redis.Addr = "" }},
		{"negative tick rate", func(c *Config) { c.Simulation.TickRate = -1 }},
		{"negative slot", func(c *Config) { c.Character.StartingSlot = -2 }},
		{"unknown ammo", func(c *Config) { c.Character.Ammo["plasma"] = 3 }},
		{"energy in ammo map", func(c *Config) { c.Character.Ammo["battery"] = 3 }},
		{"ammo in energy map", func(c *Config) { c.Character.Energy["arrow"] = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	var nilCfg *Config
	assert.ErrorIs(t, nilCfg.Validate(), ErrInvalid)
}
