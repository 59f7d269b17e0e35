package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type BlockStore interface {
	IsSolid(x, y, z int) bool
}

type Params struct {
	CellSize            float64
	Gravity             float64
	JumpZVelocity       float64
	AirControl          float64
	BrakingDeceleration float64
	MaxWalkSpeed        float64
	MaxAcceleration     float64
}

func DefaultParams() Params {
	return Params{
		CellSize:            DefaultCellSize,
		Gravity:             DefaultGravity,
		JumpZVelocity:       DefaultJumpZVelocity,
		AirControl:          DefaultAirControl,
		BrakingDeceleration: DefaultBrakingDeceleration,
		MaxWalkSpeed:        DefaultMaxWalkSpeed,
		MaxAcceleration:     DefaultMaxAcceleration,
	}
}

type State struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	OnGround bool
}

// Body is a kinematic walker. It treats the character as a point at its feet
// and only collides with the ground below it; walls are not resolved.
type Body struct {
	state  State
	params Params
	blocks BlockStore

	maxWalkSpeed    float64
	maxAcceleration float64

	pending          mgl64.Vec3
	jumpRequested    bool
	orientToMovement bool
	facingYaw        float64
}

func NewBody(position mgl64.Vec3, blocks BlockStore, params Params) *Body {
	if params.CellSize <= 0 {
		params.CellSize = DefaultCellSize
	}
	b := &Body{
		state:            State{Position: position},
		params:           params,
		blocks:           blocks,
		maxWalkSpeed:     params.MaxWalkSpeed,
		maxAcceleration:  params.MaxAcceleration,
		orientToMovement: true,
	}
	b.state.OnGround = b.standing(position)
	return b
}

func (b *Body) State() State {
	return b.state
}

func (b *Body) Position() mgl64.Vec3 {
	return b.state.Position
}

func (b *Body) FacingYaw() float64 {
	return b.facingYaw
}

// SetFacingYaw is used when the controller drives rotation directly.
func (b *Body) SetFacingYaw(yaw float64) {
	b.facingYaw = NormalizeAxis(yaw)
}

func (b *Body) IsFalling() bool {
	return !b.state.OnGround
}

func (b *Body) Velocity() mgl64.Vec3 {
	return b.state.Velocity
}

func (b *Body) MaxWalkSpeed() float64 {
	return b.maxWalkSpeed
}

func (b *Body) SetMaxWalkSpeed(v float64) {
	b.maxWalkSpeed = math.Max(v, 0)
}

func (b *Body) MaxAcceleration() float64 {
	return b.maxAcceleration
}

func (b *Body) SetMaxAcceleration(v float64) {
	b.maxAcceleration = math.Max(v, 0)
}

// AddInput accumulates movement intent until the next Step.
func (b *Body) AddInput(direction mgl64.Vec3, scale float64) {
	b.pending = b.pending.Add(direction.Mul(scale))
}

func (b *Body) SetOrientToMovement(enabled bool) {
	b.orientToMovement = enabled
}

func (b *Body) OrientsToMovement() bool {
	return b.orientToMovement
}

func (b *Body) Jump() {
	b.jumpRequested = true
}

func (b *Body) StopJumping() {
	b.jumpRequested = false
}

// Step integrates one tick of pending input, gravity and ground contact.
func (b *Body) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	b.state.OnGround = b.standing(b.state.Position)

	input := mgl64.Vec3{b.pending.X(), b.pending.Y(), 0}
	b.pending = mgl64.Vec3{}
	if l := input.Len(); l > 1 {
		input = input.Mul(1 / l)
	}

	planar := mgl64.Vec3{b.state.Velocity.X(), b.state.Velocity.Y(), 0}
	if input.Len() > MinimumInputLength {
		accel := b.maxAcceleration
		if !b.state.OnGround {
			accel *= b.params.AirControl
		}
		planar = planar.Add(input.Mul(accel * secs))
		if b.orientToMovement {
			b.facingYaw = mgl64.RadToDeg(math.Atan2(input.Y(), input.X()))
		}
	} else if b.state.OnGround {
		planar = brake(planar, b.params.BrakingDeceleration*secs)
	}
	if speed := planar.Len(); speed > b.maxWalkSpeed && speed > 0 {
		planar = planar.Mul(b.maxWalkSpeed / speed)
	}

	vz := b.state.Velocity.Z()
	if b.state.OnGround && b.jumpRequested {
		vz = b.params.JumpZVelocity
		b.state.OnGround = false
		b.jumpRequested = false
	}
	if !b.state.OnGround {
		vz -= b.params.Gravity * secs
	}

	prev := b.state.Position
	next := prev.Add(mgl64.Vec3{planar.X(), planar.Y(), vz}.Mul(secs))

	b.state.OnGround = false
	if vz <= 0 {
		if top, ok := b.landing(prev, next); ok {
			next = mgl64.Vec3{next.X(), next.Y(), top}
			vz = 0
			b.state.OnGround = true
		}
	}

	b.state.Position = next
	b.state.Velocity = mgl64.Vec3{planar.X(), planar.Y(), vz}
}

func brake(v mgl64.Vec3, drop float64) mgl64.Vec3 {
	speed := v.Len()
	if speed <= drop || speed == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul((speed - drop) / speed)
}

func (b *Body) cell(v float64) int {
	return int(math.Floor(v / b.params.CellSize))
}

func (b *Body) standing(pos mgl64.Vec3) bool {
	if b.blocks == nil {
		return false
	}
	cz := b.cell(pos.Z() - GroundProbeDistance)
	top := float64(cz+1) * b.params.CellSize
	if pos.Z()-top > GroundProbeDistance {
		return false
	}
	return b.blocks.IsSolid(b.cell(pos.X()), b.cell(pos.Y()), cz)
}

// landing scans the column under next from the height of prev downwards and
// returns the top of the first solid cell crossed.
func (b *Body) landing(prev, next mgl64.Vec3) (float64, bool) {
	if b.blocks == nil {
		return 0, false
	}
	cx := b.cell(next.X())
	cy := b.cell(next.Y())
	from := b.cell(prev.Z() - GroundProbeDistance)
	to := b.cell(next.Z() - GroundProbeDistance)
	for cz := from; cz >= to; cz-- {
		if b.blocks.IsSolid(cx, cy, cz) {
			return float64(cz+1) * b.params.CellSize, true
		}
	}
	return 0, false
}
