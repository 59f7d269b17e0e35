// Package trigger turns press and release input into fire attempts for the
// armed weapon.
package trigger

import (
	"log/slog"
	"time"

	"github.com/Versifine/tps/internal/event"
	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/weapon"
)

// maxCatchUp bounds the refires a single Advance may produce.
const maxCatchUp = 1024

// Shooter is the part of the character a fire attempt talks to.
type Shooter interface {
	IsAiming() bool
	PlayFireMontage(montage weapon.MontageSpec, rate float64)
	// SpawnProjectile reports false when the muzzle could not be placed.
	// The round is spent either way.
	SpawnProjectile(muzzle string, cfg weapon.Config) bool
}

// FireGate is the overridable "able to fire" check.
type FireGate interface {
	CanFire() bool
}

type FireGateFunc func() bool

func (f FireGateFunc) CanFire() bool { return f() }

// OpenFireGate never blocks.
type OpenFireGate struct{}

func (OpenFireGate) CanFire() bool { return true }

type Config struct {
	Shooter Shooter
	Pool    *resource.Pool
	Gate    FireGate
	Bus     *event.Bus
}

type Machine struct {
	shooter Shooter
	pool    *resource.Pool
	gate    FireGate
	bus     *event.Bus

	weapon   weapon.Config
	armed    bool
	held     bool
	cooldown Cooldown
}

func New(cfg Config) *Machine {
	gate := cfg.Gate
	if gate == nil {
		gate = OpenFireGate{}
	}
	pool := cfg.Pool
	if pool == nil {
		pool = resource.NewPool(resource.Ledger{})
	}
	return &Machine{
		shooter: cfg.Shooter,
		pool:    pool,
		gate:    gate,
		bus:     cfg.Bus,
	}
}

// Arm makes cfg the weapon fired by later presses. The running cooldown is
// kept.
func (m *Machine) Arm(cfg weapon.Config) {
	m.weapon = cfg
	m.armed = true
}

func (m *Machine) Weapon() (weapon.Config, bool) {
	return m.weapon, m.armed
}

func (m *Machine) Held() bool { return m.held }

func (m *Machine) CooldownPassed() bool { return !m.cooldown.Running() }

func (m *Machine) Cooldown() *Cooldown { return &m.cooldown }

// Press handles a fire-press and reports whether a shot went out.
func (m *Machine) Press() bool {
	m.held = true
	if !m.armed {
		return false
	}
	switch m.weapon.Trigger {
	case weapon.PressOnce, weapon.FullAuto:
		return m.attempt()
	case weapon.ReleaseFire, weapon.OnePressAuto:
		slog.Debug("Trigger variant has no press behaviour", "trigger", m.weapon.Trigger, "weapon", m.weapon.Name)
	}
	return false
}

func (m *Machine) Release() {
	m.held = false
	if !m.armed {
		return
	}
	switch m.weapon.Trigger {
	case weapon.ReleaseFire, weapon.OnePressAuto:
		slog.Debug("Trigger variant has no release behaviour", "trigger", m.weapon.Trigger, "weapon", m.weapon.Name)
	}
}

// Advance runs the cooldown. Each expiry while a full-auto trigger is held
// re-attempts fire with every guard checked again.
func (m *Machine) Advance(dt time.Duration) int {
	if !m.cooldown.Advance(dt) {
		return 0
	}
	shots := 0
	for i := 0; i < maxCatchUp; i++ {
		if !m.held || !m.armed || m.weapon.Trigger != weapon.FullAuto || !m.attempt() {
			break
		}
		shots++
		if !m.cooldown.Expired() {
			return shots
		}
	}
	m.cooldown.Settle()
	return shots
}

func (m *Machine) attempt() bool {
	if m.shooter == nil || !m.shooter.IsAiming() {
		return false
	}
	if m.cooldown.Running() {
		return false
	}
	if !m.gate.CanFire() {
		return false
	}
	if m.weapon.Cost != weapon.CostNone && !m.pool.Require(m.weapon.Resource, m.weapon.PerShot) {
		return false
	}
	m.fire()
	return true
}

func (m *Machine) fire() {
	w := m.weapon
	m.cooldown.Start(w.FireInterval)
	m.shooter.PlayFireMontage(w.Montage, w.MontageRate())

	spawned := 0
	for _, muzzle := range w.Muzzles {
		if w.Cost != weapon.CostNone {
			if !m.pool.Afford(w.Resource, w.PerShot) {
				slog.Debug("Resource ran out during multi-fire",
					"weapon", w.Name, "resource", w.Resource, "spawned", spawned, "muzzles", len(w.Muzzles))
				m.bus.Publish(event.EventMultiFireExhausted, event.MultiFireExhaustedEvent{
					Weapon:  w.Name,
					Kind:    w.Resource.String(),
					Spawned: spawned,
					Muzzles: len(w.Muzzles),
				})
				break
			}
			m.pool.TryDebit(w.Resource, w.PerShot)
		}
		if m.shooter.SpawnProjectile(muzzle, w) {
			spawned++
		}
	}

	m.bus.Publish(event.EventFired, event.FiredEvent{Weapon: w.Name, Spawned: spawned})
}
