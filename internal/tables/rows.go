// Package tables reads the aiming-profile and weapon-mode tables. Rows are
// keyed by name and kept in declaration order.
package tables

import (
	"context"
	"errors"

	"github.com/Versifine/tps/internal/resource"
)

var ErrRowNotFound = errors.New("table row not found")

// AimingRow is one aiming profile. Index 0 of the runtime profile list is the
// resting pose and never comes from a table.
type AimingRow struct {
	Name            string     `yaml:"name" json:"name"`
	SocketOffset    [3]float64 `yaml:"socket_offset" json:"socket_offset"`
	ArmLength       float64    `yaml:"arm_length" json:"arm_length"`
	MaxAcceleration float64    `yaml:"max_acceleration" json:"max_acceleration"`
	MaxWalkSpeed    float64    `yaml:"max_walk_speed" json:"max_walk_speed"`
	FieldOfView     float64    `yaml:"field_of_view" json:"field_of_view"`
}

type MontageRow struct {
	Name   string  `yaml:"name" json:"name"`
	Length float64 `yaml:"length" json:"length"`
}

type ProjectileRow struct {
	Class        string  `yaml:"class" json:"class"`
	InitialSpeed float64 `yaml:"initial_speed" json:"initial_speed"`
	MaxSpeed     float64 `yaml:"max_speed" json:"max_speed"`
	GravityScale float64 `yaml:"gravity_scale" json:"gravity_scale"`
	Lifespan     float64 `yaml:"lifespan" json:"lifespan"`
	Damage       float64 `yaml:"damage" json:"damage"`
}

// WeaponModeRow is one weapon. FireRate is the interval between shots in
// seconds.
type WeaponModeRow struct {
	Name       string        `yaml:"name" json:"name"`
	Trigger    string        `yaml:"trigger" json:"trigger"`
	Cost       string        `yaml:"cost" json:"cost"`
	Resource   resource.Kind `yaml:"resource" json:"resource"`
	PerShot    float64       `yaml:"per_shot" json:"per_shot"`
	FireRate   float64       `yaml:"fire_rate" json:"fire_rate"`
	Muzzles    []string      `yaml:"muzzles" json:"muzzles"`
	Montage    MontageRow    `yaml:"montage" json:"montage"`
	Projectile ProjectileRow `yaml:"projectile" json:"projectile"`
}

// Set is a full table bundle as stored on disk.
type Set struct {
	Aiming  []AimingRow     `yaml:"aiming" json:"aiming"`
	Weapons []WeaponModeRow `yaml:"weapons" json:"weapons"`
}

// Source is a read-only view over both tables.
type Source interface {
	AimingRows(ctx context.Context) ([]AimingRow, error)
	WeaponNames(ctx context.Context) ([]string, error)
	WeaponMode(ctx context.Context, name string) (WeaponModeRow, error)
}
