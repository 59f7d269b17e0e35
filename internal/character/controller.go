// Package character is the player character's combat and locomotion
// controller. It turns input into movement, aiming, weapon switching and
// fire, and drives the camera, movement, animation and spawn collaborators
// once per tick.
package character

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/tps/internal/aim"
	"github.com/Versifine/tps/internal/event"
	"github.com/Versifine/tps/internal/physics"
	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/trigger"
	"github.com/Versifine/tps/internal/weapon"
)

// TraceRange is how far the aim trace reaches from the camera.
const TraceRange = 100.0 * 3000.0

const (
	DefaultBaseTurnRate   = 45.0
	DefaultBaseLookUpRate = 45.0
)

var ErrMissingCollaborator = errors.New("missing collaborator")

func errMissing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingCollaborator, name)
}

type Options struct {
	Name string

	AimSpeeds      aim.Speeds
	BaseTurnRate   float64
	BaseLookUpRate float64

	StartingSlot int
	HP           float64
	Ledger       resource.Ledger
	CoolingRate  float64

	Gates  Gates
	Bus    *event.Bus
	Logger *slog.Logger
}

// RuntimeState is a copy of the controller's mutable state.
type RuntimeState struct {
	WeaponIndex       int
	LastWeaponIndex   int
	TriggerPressed    bool
	CooldownPassed    bool
	Aiming            bool
	TransitioningAim  bool
	AimProgress       float64
	NormalizedForward float64
	NormalizedRight   float64
	HP                float64
	MP                float64
}

type Controller struct {
	collab Collaborators
	opts   Options
	gates  Gates
	bus    *event.Bus
	log    *slog.Logger

	pool     *resource.Pool
	catalog  *weapon.Catalog
	switcher *weapon.Switcher
	blend    *aim.Blend
	trigger  *trigger.Machine

	axes              [axisCount]float64
	normalizedForward float64
	normalizedRight   float64
	hp                float64
}

func New(collab Collaborators, catalog *weapon.Catalog, profiles *aim.Profiles, opts Options) (*Controller, error) {
	if err := collab.validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, errMissing("weapon catalog")
	}
	if opts.Gates == nil {
		opts.Gates = DefaultGates{}
	}
	if opts.BaseTurnRate == 0 {
		opts.BaseTurnRate = DefaultBaseTurnRate
	}
	if opts.BaseLookUpRate == 0 {
		opts.BaseLookUpRate = DefaultBaseLookUpRate
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "character")
	if opts.Name != "" {
		log = log.With("character", opts.Name)
	}

	c := &Controller{
		collab:  collab,
		opts:    opts,
		gates:   opts.Gates,
		bus:     opts.Bus,
		log:     log,
		catalog: catalog,
		hp:      opts.HP,
	}

	c.pool = resource.NewPool(opts.Ledger)
	c.pool.SetCoolingRate(opts.CoolingRate)
	c.pool.OnDepleted(c.onDepleted)

	c.switcher = weapon.NewSwitcher(catalog, weapon.GateFunc(func() bool {
		return c.gates.CanSwitchWeapon(c)
	}))
	c.switcher.OnSwitched(c.onSwitched)

	c.blend = aim.NewBlend(profiles, opts.AimSpeeds, aimSink{c}, aim.GateFunc(func() bool {
		return c.gates.CanAim(c)
	}))
	c.blend.OnFinished(c.onAimFinished)

	c.trigger = trigger.New(trigger.Config{
		Shooter: shooter{c},
		Pool:    c.pool,
		Gate: trigger.FireGateFunc(func() bool {
			return c.gates.CanFire(c)
		}),
		Bus: opts.Bus,
	})
	return c, nil
}

// Start pushes the resting pose and equips the starting slot.
func (c *Controller) Start() {
	c.blend.Reset()
	c.orient(false)
	if !c.switcher.Equip(c.opts.StartingSlot) {
		c.log.Warn("Starting weapon unavailable", "slot", c.opts.StartingSlot, "slots", c.catalog.Len())
	}
}

func (c *Controller) Press(a Action) {
	switch a {
	case ActionFire:
		c.trigger.Press()
	case ActionAim:
		if c.blend.BeginAim() {
			c.orient(true)
		}
	case ActionJump:
		c.collab.Movement.Jump()
	case ActionWeapon1, ActionWeapon2, ActionWeapon3, ActionWeapon4:
		slot := int(a - ActionWeapon1)
		if slot >= c.catalog.Len() {
			return
		}
		c.switcher.Select(slot)
	case ActionNextWeapon:
		c.switcher.Cycle(1)
	case ActionPrevWeapon:
		c.switcher.Cycle(-1)
	default:
		c.log.Debug("Unhandled press", "action", a)
	}
}

func (c *Controller) Release(a Action) {
	switch a {
	case ActionFire:
		c.trigger.Release()
	case ActionAim:
		if c.blend.EndAim() {
			c.orient(false)
		}
	case ActionJump:
		c.collab.Movement.StopJumping()
	}
}

// Axis sets a level input, clamped to [-1, 1] for the movement axes.
func (c *Controller) Axis(a Axis, value float64) {
	if a < 0 || a >= axisCount {
		return
	}
	if a == AxisMoveForward || a == AxisMoveRight {
		value = mgl64.Clamp(value, -1, 1)
	}
	c.axes[a] = value
}

// Tick advances one simulation step: movement and look input, aim blend,
// fire cooldown and passive cooling.
func (c *Controller) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.applyMovement()
	c.applyLook(dt)
	c.updateLocomotion()
	c.blend.Tick(dt)
	c.trigger.Advance(dt)
	c.pool.Dissipate(dt)
}

func (c *Controller) applyMovement() {
	heading := c.collab.View.ControlRotation().YawOnly()
	if v := c.axes[AxisMoveForward]; v != 0 {
		c.collab.Movement.AddInput(heading.Forward(), v)
	}
	if v := c.axes[AxisMoveRight]; v != 0 {
		c.collab.Movement.AddInput(heading.Right(), v)
	}
}

func (c *Controller) applyLook(dt time.Duration) {
	secs := dt.Seconds()
	yaw := c.axes[AxisTurn] + c.axes[AxisTurnRate]*c.opts.BaseTurnRate*secs
	pitch := c.axes[AxisLookUp] + c.axes[AxisLookUpRate]*c.opts.BaseLookUpRate*secs
	if yaw != 0 {
		c.collab.View.AddYawInput(yaw)
	}
	if pitch != 0 {
		c.collab.View.AddPitchInput(pitch)
	}
}

// updateLocomotion derives the normalized forward/right pair reported to the
// animator. Each axis is speed/maxWalk scaled by its input, divided by √2
// when the other axis is also held.
func (c *Controller) updateLocomotion() {
	forward, right := 0.0, 0.0
	if c.IsAiming() {
		fwd, rgt := c.axes[AxisMoveForward], c.axes[AxisMoveRight]
		forward = c.normalizedVelocity(fwd, rgt != 0)
		right = c.normalizedVelocity(rgt, fwd != 0)
	}
	c.normalizedForward, c.normalizedRight = forward, right
	c.collab.Animator.SetLocomotion(forward, right)
}

func (c *Controller) normalizedVelocity(value float64, diagonal bool) float64 {
	if value == 0 {
		return 0
	}
	maxWalk := c.collab.Movement.MaxWalkSpeed()
	if maxWalk <= 0 {
		return 0
	}
	v := c.collab.Movement.Velocity()
	speed := math.Hypot(v.X(), v.Y())
	div := 1.0
	if diagonal {
		div = math.Sqrt2
	}
	return speed * value / (div * maxWalk)
}

func (c *Controller) orient(aiming bool) {
	c.collab.Camera.SetUsePawnControlRotation(aiming)
	c.collab.View.SetUseControllerYaw(aiming)
	c.collab.Movement.SetOrientToMovement(!aiming)
}

// SelectAimProfile picks the aiming profile by name. Only allowed while the
// blend is resting.
func (c *Controller) SelectAimProfile(name string) error {
	i, err := c.blend.Profiles().Index(name)
	if err != nil {
		return err
	}
	return c.blend.SelectProfile(i)
}

// AddAmmo credits a pickup.
func (c *Controller) AddAmmo(kind resource.Kind, amount float64) {
	c.pool.Credit(kind, amount)
	c.log.Debug("Pickup collected", "resource", kind, "amount", amount, "total", c.pool.Amount(kind))
}

func (c *Controller) HP() float64              { return c.hp }
func (c *Controller) SetHP(v float64)          { c.hp = v }
func (c *Controller) MP() float64              { return c.pool.Amount(resource.Mana) }
func (c *Controller) SetMP(v float64)          { c.pool.SetMana(v) }
func (c *Controller) IsAiming() bool           { return c.blend.IsAiming() }
func (c *Controller) Pool() *resource.Pool     { return c.pool }
func (c *Controller) Catalog() *weapon.Catalog { return c.catalog }

func (c *Controller) IsTransitioningAim() bool { return c.blend.IsTransitioning() }
func (c *Controller) IsTriggerPressed() bool   { return c.trigger.Held() }
func (c *Controller) WeaponIndex() int         { return c.switcher.Index() }
func (c *Controller) LastWeaponIndex() int     { return c.switcher.Last() }
func (c *Controller) AimState() aim.State      { return c.blend.State() }

func (c *Controller) NormalizedForward() float64 { return c.normalizedForward }
func (c *Controller) NormalizedRight() float64   { return c.normalizedRight }

func (c *Controller) CurrentWeaponName() string {
	cfg, ok := c.switcher.Current()
	if !ok {
		return ""
	}
	return cfg.Name
}

// TriggerMechanism of the equipped weapon, PressOnce when none is equipped.
func (c *Controller) TriggerMechanism() weapon.TriggerMechanism {
	cfg, _ := c.switcher.Current()
	return cfg.Trigger
}

func (c *Controller) State() RuntimeState {
	return RuntimeState{
		WeaponIndex:       c.switcher.Index(),
		LastWeaponIndex:   c.switcher.Last(),
		TriggerPressed:    c.trigger.Held(),
		CooldownPassed:    c.trigger.CooldownPassed(),
		Aiming:            c.blend.IsAiming(),
		TransitioningAim:  c.blend.IsTransitioning(),
		AimProgress:       c.blend.Progress(),
		NormalizedForward: c.normalizedForward,
		NormalizedRight:   c.normalizedRight,
		HP:                c.hp,
		MP:                c.MP(),
	}
}

func (c *Controller) movement() Movement {
	return c.collab.Movement
}

func (c *Controller) onSwitched(s weapon.Switched) {
	c.trigger.Arm(s.Weapon)
	c.collab.Animator.SetWeaponIndex(s.To)
	c.log.Info("Weapon switched", "from", s.From, "to", s.To, "weapon", s.Weapon.Name, "trigger", s.Weapon.Trigger)
	c.bus.Publish(event.EventWeaponSwitched, event.WeaponSwitchedEvent{From: s.From, To: s.To, Weapon: s.Weapon.Name})
}

func (c *Controller) onDepleted(d resource.Depletion) {
	c.log.Debug("Resource depleted", "resource", d.Kind, "cause", d.Cause, "have", d.Have, "need", d.Need)
	c.bus.Publish(event.EventResourceDepleted, event.ResourceDepletedEvent{
		Kind:  d.Kind.String(),
		Cause: d.Cause.String(),
		Have:  d.Have,
		Need:  d.Need,
	})
}

func (c *Controller) onAimFinished(aiming bool) {
	c.log.Debug("Aim transition finished", "aiming", aiming)
	c.bus.Publish(event.EventAimFinished, event.AimFinishedEvent{Aiming: aiming, Profile: c.blend.Target()})
}

// aimSink pushes blended aim stats to the camera and movement.
type aimSink struct {
	c *Controller
}

func (s aimSink) ApplyAim(st aim.Stat) {
	cam := s.c.collab.Camera
	cam.SetArmLength(st.ArmLength)
	cam.SetSocketOffset(st.SocketOffset)
	cam.SetFieldOfView(st.FieldOfView)
	mov := s.c.collab.Movement
	mov.SetMaxWalkSpeed(st.MaxWalkSpeed)
	mov.SetMaxAcceleration(st.MaxAcceleration)
}

type shooter struct {
	c *Controller
}

func (s shooter) IsAiming() bool {
	return s.c.IsAiming()
}

func (s shooter) PlayFireMontage(m weapon.MontageSpec, rate float64) {
	if m.Name == "" {
		return
	}
	s.c.collab.Animator.PlayMontage(m.Name, rate)
}

func (s shooter) SpawnProjectile(muzzle string, cfg weapon.Config) bool {
	socket, ok := s.c.collab.Muzzles.SocketTransform(muzzle)
	if !ok {
		s.c.log.Warn("Muzzle socket not found", "weapon", cfg.Name, "muzzle", muzzle)
		return false
	}
	at := physics.Transform{
		Location: socket.Location,
		Rotation: s.c.muzzleRotation(socket.Location),
		Scale:    socket.Scale,
	}
	s.c.collab.Spawner.Spawn(at, cfg)
	return true
}

// muzzleRotation aims from the muzzle at whatever the camera looks at. A
// trace that hits nothing aims at the end of the trace.
func (c *Controller) muzzleRotation(from mgl64.Vec3) physics.Rotator {
	start := c.collab.Camera.Location()
	end := start.Add(c.collab.Camera.Rotation().Forward().Mul(TraceRange))
	target := end
	if c.collab.Tracer != nil {
		if hit, ok := c.collab.Tracer.LineTrace(start, end); ok {
			target = hit
		}
	}
	if c.collab.Debug != nil {
		c.collab.Debug.DrawLine(from, target)
	}
	return physics.LookAt(from, target)
}
