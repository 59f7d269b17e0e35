// Package aim blends camera and movement parameters between the resting
// pose and an aiming profile.
package aim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/tps/internal/tables"
)

// Stat is one snapshot of the blended fields.
type Stat struct {
	SocketOffset    mgl64.Vec3
	ArmLength       float64
	MaxAcceleration float64
	MaxWalkSpeed    float64
	FieldOfView     float64
}

// Lerp returns a at t=0 and b at t=1 exactly.
func Lerp(a, b Stat, t float64) Stat {
	return Stat{
		SocketOffset:    a.SocketOffset.Mul(1 - t).Add(b.SocketOffset.Mul(t)),
		ArmLength:       lerp(a.ArmLength, b.ArmLength, t),
		MaxAcceleration: lerp(a.MaxAcceleration, b.MaxAcceleration, t),
		MaxWalkSpeed:    lerp(a.MaxWalkSpeed, b.MaxWalkSpeed, t),
		FieldOfView:     lerp(a.FieldOfView, b.FieldOfView, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func StatFromRow(row tables.AimingRow) Stat {
	return Stat{
		SocketOffset:    mgl64.Vec3(row.SocketOffset),
		ArmLength:       row.ArmLength,
		MaxAcceleration: row.MaxAcceleration,
		MaxWalkSpeed:    row.MaxWalkSpeed,
		FieldOfView:     row.FieldOfView,
	}
}

const RestingName = "resting"

// Profiles is the ordered profile list. Index 0 is always the resting pose.
type Profiles struct {
	names []string
	stats []Stat
}

func NewProfiles(resting Stat, rows []tables.AimingRow) *Profiles {
	p := &Profiles{
		names: []string{RestingName},
		stats: []Stat{resting},
	}
	for _, row := range rows {
		p.names = append(p.names, row.Name)
		p.stats = append(p.stats, StatFromRow(row))
	}
	return p
}

// LoadProfiles reads the aiming table. A missing table leaves only the
// resting pose.
func LoadProfiles(ctx context.Context, src tables.Source, resting Stat) *Profiles {
	if src == nil {
		return NewProfiles(resting, nil)
	}
	rows, err := src.AimingRows(ctx)
	if err != nil {
		slog.Warn("Aiming table unavailable, using resting pose only", "error", err)
		return NewProfiles(resting, nil)
	}
	return NewProfiles(resting, rows)
}

func (p *Profiles) Len() int {
	return len(p.stats)
}

func (p *Profiles) At(i int) (Stat, bool) {
	if i < 0 || i >= len(p.stats) {
		return Stat{}, false
	}
	return p.stats[i], true
}

func (p *Profiles) Resting() Stat {
	return p.stats[0]
}

func (p *Profiles) Name(i int) string {
	if i < 0 || i >= len(p.names) {
		return ""
	}
	return p.names[i]
}

// Index finds a profile by name.
func (p *Profiles) Index(name string) (int, error) {
	for i, n := range p.names {
		if n == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: aiming profile %q", tables.ErrRowNotFound, name)
}
