package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/tps/internal/character"
	"github.com/Versifine/tps/internal/event"
	"github.com/Versifine/tps/internal/resource"
)

type Report struct {
	Scenario    string                        `json:"scenario"`
	Ticks       int                           `json:"ticks"`
	Elapsed     time.Duration                 `json:"elapsed"`
	Shots       int                           `json:"shots"`
	Projectiles int                           `json:"projectiles"`
	Impacts     int                           `json:"impacts"`
	Exhausted   int                           `json:"exhausted"`
	AimFinished int                           `json:"aim_finished"`
	Switches    []event.WeaponSwitchedEvent   `json:"switches"`
	Depletions  []event.ResourceDepletedEvent `json:"depletions"`
	Final       character.RuntimeState        `json:"final"`
	Weapon      string                        `json:"weapon"`
	Ledger      resource.Ledger               `json:"ledger"`
	Position    mgl64.Vec3                    `json:"position"`
}

type Runner struct {
	world    *World
	interval time.Duration
}

func NewRunner(world *World, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Runner{world: world, interval: interval}
}

// Run plays the scenario in fixed steps. Steps due at or before a tick's
// start are applied before that tick.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	interval := r.interval
	if sc.TickRate > 0 {
		interval = time.Second / time.Duration(sc.TickRate)
	}

	rep := &Report{Scenario: sc.Name}
	r.subscribe(rep)

	var now time.Duration
	next := 0
	for now < sc.Duration {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for next < len(sc.Steps) && sc.Steps[next].At <= now {
			if err := sc.Steps[next].apply(r.world.Controller); err != nil {
				slog.Warn("Scenario step failed", "step", next, "at", sc.Steps[next].At, "error", err)
			}
			next++
		}
		dt := interval
		if rest := sc.Duration - now; rest < dt {
			dt = rest
		}
		r.world.Step(dt)
		now += dt
		rep.Ticks++
	}

	ctrl := r.world.Controller
	rep.Elapsed = now
	rep.Projectiles = len(r.world.Projectiles.Spawned())
	rep.Impacts = len(r.world.Projectiles.Impacts())
	rep.Final = ctrl.State()
	rep.Weapon = ctrl.CurrentWeaponName()
	rep.Ledger = ctrl.Pool().Snapshot()
	rep.Position = r.world.Body.Position()
	slog.Info("Scenario finished", "scenario", sc.Name, "ticks", rep.Ticks, "shots", rep.Shots, "projectiles", rep.Projectiles)
	return rep, nil
}

func (r *Runner) subscribe(rep *Report) {
	bus := r.world.Bus
	bus.Subscribe(event.EventFired, func(any) { rep.Shots++ })
	bus.Subscribe(event.EventMultiFireExhausted, func(any) { rep.Exhausted++ })
	bus.Subscribe(event.EventAimFinished, func(any) { rep.AimFinished++ })
	bus.Subscribe(event.EventWeaponSwitched, func(e any) {
		if sw, ok := e.(event.WeaponSwitchedEvent); ok {
			rep.Switches = append(rep.Switches, sw)
		}
	})
	bus.Subscribe(event.EventResourceDepleted, func(e any) {
		if d, ok := e.(event.ResourceDepletedEvent); ok {
			rep.Depletions = append(rep.Depletions, d)
		}
	})
}
