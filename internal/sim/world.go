// Package sim wires a character into an arena and drives it with fixed
// simulation steps.
package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/tps/internal/aim"
	"github.com/Versifine/tps/internal/arena"
	"github.com/Versifine/tps/internal/character"
	"github.com/Versifine/tps/internal/config"
	"github.com/Versifine/tps/internal/event"
	"github.com/Versifine/tps/internal/physics"
	"github.com/Versifine/tps/internal/weapon"
)

// World is one character in one arena.
type World struct {
	Grid        *arena.Grid
	Body        *physics.Body
	Rig         *arena.Rig
	Projectiles *arena.ProjectileLog
	Controller  *character.Controller
	Bus         *event.Bus
}

func NewWorld(cfg *config.Config, catalog *weapon.Catalog, profiles *aim.Profiles, log *slog.Logger) (*World, error) {
	grid, err := cfg.Arena.Build()
	if err != nil {
		return nil, fmt.Errorf("build arena: %w", err)
	}

	params := physics.DefaultParams()
	if cfg.Arena.CellSize > 0 {
		params.CellSize = cfg.Arena.CellSize
	}
	if cfg.Simulation.Gravity > 0 {
		params.Gravity = cfg.Simulation.Gravity
	}
	resting := aim.StatFromRow(cfg.Character.Resting)
	params.MaxWalkSpeed = resting.MaxWalkSpeed
	params.MaxAcceleration = resting.MaxAcceleration

	body := physics.NewBody(mgl64.Vec3(cfg.Arena.Spawn), grid, params)

	sockets := make(map[string]mgl64.Vec3, len(cfg.Character.Sockets))
	for name, off := range cfg.Character.Sockets {
		sockets[name] = mgl64.Vec3(off)
	}
	rig := arena.NewRig(body, arena.RigConfig{EyeHeight: cfg.Character.EyeHeight, Sockets: sockets})

	tracer := arena.NewTracer(grid, params.CellSize)
	projectiles := arena.NewProjectileLog(tracer, params.Gravity)

	ledger, err := cfg.Character.Ledger()
	if err != nil {
		return nil, err
	}

	var gates character.Gates = character.DefaultGates{}
	if cfg.Character.GroundedFire {
		gates = character.GroundedGates{}
	}

	bus := event.NewBus()
	ctrl, err := character.New(character.Collaborators{
		Movement: body,
		Camera:   rig,
		View:     rig,
		Animator: rig,
		Spawner:  projectiles,
		Muzzles:  rig,
		Tracer:   tracer,
		Debug:    rig,
	}, catalog, profiles, character.Options{
		Name:           cfg.Character.Name,
		AimSpeeds:      aim.Speeds{In: cfg.Character.AimInSpeed, Out: cfg.Character.AimOutSpeed},
		BaseTurnRate:   cfg.Character.BaseTurnRate,
		BaseLookUpRate: cfg.Character.BaseLookUpRate,
		StartingSlot:   cfg.Character.StartingSlot,
		HP:             cfg.Character.HP,
		Ledger:         ledger,
		CoolingRate:    cfg.Character.CoolingRate,
		Gates:          gates,
		Bus:            bus,
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}
	ctrl.Start()

	return &World{
		Grid:        grid,
		Body:        body,
		Rig:         rig,
		Projectiles: projectiles,
		Controller:  ctrl,
		Bus:         bus,
	}, nil
}

// Step advances the controller, then the body, then projectiles in flight.
func (w *World) Step(dt time.Duration) {
	w.Controller.Tick(dt)
	w.Rig.Sync()
	w.Body.Step(dt)
	w.Projectiles.Step(dt)
}
