package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/tps/internal/arena"
	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/tables"
)

type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Simulation SimulationConfig `yaml:"simulation"`
	Tables     TablesConfig     `yaml:"tables"`
	Character  CharacterConfig  `yaml:"character"`
	Arena      arena.Layout     `yaml:"arena"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SimulationConfig struct {
	TickRate int     `yaml:"tick_rate"`
	Gravity  float64 `yaml:"gravity"`
}

// TickInterval is the fixed step length for TickRate.
func (s SimulationConfig) TickInterval() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

type TablesConfig struct {
	Source string      `yaml:"source"`
	Path   string      `yaml:"path"`
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type CharacterConfig struct {
	Name           string                `yaml:"name"`
	AimInSpeed     float64               `yaml:"aim_in_speed"`
	AimOutSpeed    float64               `yaml:"aim_out_speed"`
	BaseTurnRate   float64               `yaml:"base_turn_rate"`
	BaseLookUpRate float64               `yaml:"base_look_up_rate"`
	HP             float64               `yaml:"hp"`
	MP             float64               `yaml:"mp"`
	StartingSlot   int                   `yaml:"starting_slot"`
	CoolingRate    float64               `yaml:"cooling_rate"`
	GroundedFire   bool                  `yaml:"grounded_fire"`
	Ammo           map[string]int        `yaml:"ammo"`
	Energy         map[string]float64    `yaml:"energy"`
	Resting        tables.AimingRow      `yaml:"resting"`
	EyeHeight      float64               `yaml:"eye_height"`
	Sockets        map[string][3]float64 `yaml:"sockets"`
}

var ErrInvalid = errors.New("invalid config")

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Simulation: SimulationConfig{
			TickRate: 60,
			Gravity:  980,
		},
		Tables: TablesConfig{
			Source: "yaml",
			Path:   "configs/tables.yaml",
			Redis:  RedisConfig{Addr: "localhost:6379", Prefix: "tps:tables"},
		},
		Character: CharacterConfig{
			Name:           "player",
			AimInSpeed:     0.25,
			AimOutSpeed:    0.2,
			BaseTurnRate:   45,
			BaseLookUpRate: 45,
			HP:             100,
			MP:             100,
			CoolingRate:    25,
			Ammo:           map[string]int{},
			Energy:         map[string]float64{},
			Resting: tables.AimingRow{
				Name:            "resting",
				SocketOffset:    [3]float64{0, 50, 70},
				ArmLength:       300,
				MaxAcceleration: 2048,
				MaxWalkSpeed:    600,
				FieldOfView:     90,
			},
			EyeHeight: 160,
			Sockets: map[string][3]float64{
				"muzzle_01": {60, 20, 130},
			},
		},
		Arena: arena.DefaultLayout(),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalid)
	}
	switch c.Tables.Source {
	case "yaml":
		if c.Tables.Path == "" {
			return fmt.Errorf("%w: tables.path is required for the yaml source", ErrInvalid)
		}
	case "redis":
		if c.Tables.Redis.Addr == "" {
			return fmt.Errorf("%w: tables.redis.addr is required for the redis source", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown tables.source %q", ErrInvalid, c.Tables.Source)
	}
	if c.Simulation.TickRate < 0 {
		return fmt.Errorf("%w: simulation.tick_rate must not be negative", ErrInvalid)
	}
	if c.Character.StartingSlot < 0 {
		return fmt.Errorf("%w: character.starting_slot must not be negative", ErrInvalid)
	}
	if _, err := c.Character.Ledger(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Ledger builds the starting resource counters. MP is the mana counter.
func (c CharacterConfig) Ledger() (resource.Ledger, error) {
	var l resource.Ledger
	for name, n := range c.Ammo {
		kind, err := resource.ParseKind(name)
		if err != nil {
			return l, fmt.Errorf("character.ammo: %w", err)
		}
		if !kind.IsAmmo() {
			return l, fmt.Errorf("character.ammo: %s is not an ammo kind", kind)
		}
		l.SetAmmo(kind, n)
	}
	l.Mana = c.MP
	for name, v := range c.Energy {
		kind, err := resource.ParseKind(name)
		if err != nil {
			return l, fmt.Errorf("character.energy: %w", err)
		}
		switch kind {
		case resource.Battery:
			l.Battery = v
		case resource.Fuel:
			l.Fuel = v
		case resource.Overheat:
			l.Overheat = v
		case resource.Mana:
			l.Mana = v
		default:
			return l, fmt.Errorf("character.energy: %s is not an energy kind", kind)
		}
	}
	return l, nil
}
