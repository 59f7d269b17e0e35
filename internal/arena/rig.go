package arena

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/tps/internal/physics"
)

const (
	DefaultEyeHeight = 160.0
	MaxPitch         = 89.0
	maxDebugLines    = 64
)

type RigConfig struct {
	EyeHeight float64
	// Sockets are muzzle offsets from the feet in the body's facing frame.
	Sockets map[string]mgl64.Vec3
}

type AnimState struct {
	Montage     string
	Rate        float64
	Plays       int
	WeaponIndex int
	Forward     float64
	Right       float64
}

type Line struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// Rig is the presentation side of a character: the camera on its boom, the
// control rotation, the weapon sockets and the animation state.
type Rig struct {
	body *physics.Body
	cfg  RigConfig

	control          physics.Rotator
	useControllerYaw bool
	usePawnRotation  bool

	fov          float64
	armLength    float64
	socketOffset mgl64.Vec3

	anim  AnimState
	lines []Line
}

func NewRig(body *physics.Body, cfg RigConfig) *Rig {
	if cfg.EyeHeight == 0 {
		cfg.EyeHeight = DefaultEyeHeight
	}
	return &Rig{body: body, cfg: cfg, anim: AnimState{WeaponIndex: -1}}
}

// Sync turns the body to the control yaw while the controller owns yaw.
func (r *Rig) Sync() {
	if r.useControllerYaw {
		r.body.SetFacingYaw(r.control.Yaw)
	}
}

func (r *Rig) pivot() mgl64.Vec3 {
	return r.body.Position().Add(mgl64.Vec3{0, 0, r.cfg.EyeHeight})
}

func (r *Rig) Location() mgl64.Vec3 {
	boom := physics.Transform{Location: r.pivot(), Rotation: r.control.YawOnly()}
	arm := r.control.Forward().Mul(-r.armLength)
	return boom.TransformPoint(r.socketOffset).Add(arm)
}

// Rotation follows the control rotation when the camera uses it, otherwise
// the camera looks at the pivot.
func (r *Rig) Rotation() physics.Rotator {
	if r.usePawnRotation {
		return r.control
	}
	return physics.LookAt(r.Location(), r.pivot())
}

func (r *Rig) SetFieldOfView(fov float64)             { r.fov = fov }
func (r *Rig) SetArmLength(length float64)            { r.armLength = length }
func (r *Rig) SetSocketOffset(offset mgl64.Vec3)      { r.socketOffset = offset }
func (r *Rig) SetUsePawnControlRotation(enabled bool) { r.usePawnRotation = enabled }
func (r *Rig) FieldOfView() float64                   { return r.fov }
func (r *Rig) ArmLength() float64                     { return r.armLength }
func (r *Rig) ControlRotation() physics.Rotator       { return r.control }
func (r *Rig) SetUseControllerYaw(enabled bool)       { r.useControllerYaw = enabled }
func (r *Rig) UsesControllerYaw() bool                { return r.useControllerYaw }
func (r *Rig) SetControlRotation(rot physics.Rotator) { r.control = rot.Normalized() }

func (r *Rig) AddYawInput(degrees float64) {
	r.control.Yaw = physics.NormalizeAxis(r.control.Yaw + degrees)
}

func (r *Rig) AddPitchInput(degrees float64) {
	r.control.Pitch = mgl64.Clamp(r.control.Pitch+degrees, -MaxPitch, MaxPitch)
}

// SocketTransform places a named socket on the body.
func (r *Rig) SocketTransform(name string) (physics.Transform, bool) {
	offset, ok := r.cfg.Sockets[name]
	if !ok {
		return physics.Transform{}, false
	}
	facing := physics.Rotator{Yaw: r.body.FacingYaw()}
	frame := physics.Transform{Location: r.body.Position(), Rotation: facing}
	return physics.Transform{
		Location: frame.TransformPoint(offset),
		Rotation: facing,
		Scale:    physics.IdentityScale(),
	}, true
}

func (r *Rig) PlayMontage(name string, rate float64) {
	r.anim.Montage = name
	r.anim.Rate = rate
	r.anim.Plays++
}

func (r *Rig) SetWeaponIndex(index int) { r.anim.WeaponIndex = index }

func (r *Rig) SetLocomotion(forward, right float64) {
	r.anim.Forward = forward
	r.anim.Right = right
}

func (r *Rig) Anim() AnimState { return r.anim }

// DrawLine keeps the most recent debug lines.
func (r *Rig) DrawLine(start, end mgl64.Vec3) {
	if len(r.lines) == maxDebugLines {
		copy(r.lines, r.lines[1:])
		r.lines = r.lines[:maxDebugLines-1]
	}
	r.lines = append(r.lines, Line{Start: start, End: end})
}

func (r *Rig) Lines() []Line {
	return append([]Line(nil), r.lines...)
}
