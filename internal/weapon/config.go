// Package weapon holds the static weapon configuration, the slot catalog
// and the slot switcher.
package weapon

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/tables"
)

type TriggerMechanism int

const (
	PressOnce TriggerMechanism = iota
	FullAuto
	ReleaseFire
	OnePressAuto
)

var triggerNames = map[TriggerMechanism]string{
	PressOnce:    "press_once",
	FullAuto:     "full_auto",
	ReleaseFire:  "release_fire",
	OnePressAuto: "one_press_auto",
}

func (t TriggerMechanism) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("trigger(%d)", int(t))
}

// ParseTrigger defaults an empty name to PressOnce.
func ParseTrigger(s string) (TriggerMechanism, error) {
	if s == "" {
		return PressOnce, nil
	}
	for t, name := range triggerNames {
		if name == s {
			return t, nil
		}
	}
	return PressOnce, fmt.Errorf("unknown trigger mechanism %q", s)
}

type CostModel int

const (
	CostNone CostModel = iota
	CostAmmo
	CostEnergy
)

func (c CostModel) String() string {
	switch c {
	case CostNone:
		return "none"
	case CostAmmo:
		return "ammo"
	case CostEnergy:
		return "energy"
	default:
		return fmt.Sprintf("cost(%d)", int(c))
	}
}

func ParseCost(s string) (CostModel, error) {
	switch s {
	case "", "none":
		return CostNone, nil
	case "ammo":
		return CostAmmo, nil
	case "energy":
		return CostEnergy, nil
	default:
		return CostNone, fmt.Errorf("unknown cost model %q", s)
	}
}

var ErrInconsistentCost = errors.New("cost model and resource kind disagree")

type ProjectileTemplate struct {
	Class        string
	InitialSpeed float64
	MaxSpeed     float64
	GravityScale float64
	Lifespan     time.Duration
	Damage       float64
}

type MontageSpec struct {
	Name   string
	Length time.Duration
}

// Config is the immutable description of one weapon.
type Config struct {
	Name         string
	Trigger      TriggerMechanism
	Cost         CostModel
	Resource     resource.Kind
	PerShot      float64
	FireInterval time.Duration
	Muzzles      []string
	Projectile   ProjectileTemplate
	Montage      MontageSpec
}

func (c Config) Validate() error {
	switch c.Cost {
	case CostNone:
		if c.Resource != resource.KindNone {
			return fmt.Errorf("%w: %s has cost none but resource %s", ErrInconsistentCost, c.Name, c.Resource)
		}
	case CostAmmo:
		if !c.Resource.IsAmmo() {
			return fmt.Errorf("%w: %s has ammo cost but resource %s", ErrInconsistentCost, c.Name, c.Resource)
		}
	case CostEnergy:
		if !c.Resource.IsEnergy() {
			return fmt.Errorf("%w: %s has energy cost but resource %s", ErrInconsistentCost, c.Name, c.Resource)
		}
	default:
		return fmt.Errorf("%s: unknown cost model %d", c.Name, int(c.Cost))
	}
	if c.PerShot < 0 {
		return fmt.Errorf("%s: negative per-shot cost", c.Name)
	}
	if c.FireInterval < 0 {
		return fmt.Errorf("%s: negative fire interval", c.Name)
	}
	return nil
}

// MontageRate is the play rate that fits the fire montage into one fire
// interval. It is 1 when either length is unknown.
func (c Config) MontageRate() float64 {
	if c.Montage.Length <= 0 || c.FireInterval <= 0 {
		return 1
	}
	return c.Montage.Length.Seconds() / c.FireInterval.Seconds()
}

// FromRow converts and validates a weapon-mode table row. Ammo weapons
// without an explicit cost use one round per muzzle.
func FromRow(row tables.WeaponModeRow) (Config, error) {
	trigger, err := ParseTrigger(row.Trigger)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", row.Name, err)
	}
	cost, err := ParseCost(row.Cost)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", row.Name, err)
	}

	cfg := Config{
		Name:         row.Name,
		Trigger:      trigger,
		Cost:         cost,
		Resource:     row.Resource,
		PerShot:      row.PerShot,
		FireInterval: seconds(row.FireRate),
		Muzzles:      append([]string(nil), row.Muzzles...),
		Projectile: ProjectileTemplate{
			Class:        row.Projectile.Class,
			InitialSpeed: row.Projectile.InitialSpeed,
			MaxSpeed:     row.Projectile.MaxSpeed,
			GravityScale: row.Projectile.GravityScale,
			Lifespan:     seconds(row.Projectile.Lifespan),
			Damage:       row.Projectile.Damage,
		},
		Montage: MontageSpec{
			Name:   row.Montage.Name,
			Length: seconds(row.Montage.Length),
		},
	}
	if cfg.Cost == CostAmmo && cfg.PerShot == 0 {
		cfg.PerShot = 1
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func seconds(v float64) time.Duration {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return time.Duration(math.Round(v * float64(time.Second)))
}
