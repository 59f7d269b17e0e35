package character

//go:generate mockgen -destination=mock/mock_collaborators.go -package=charactermock -source=collaborators.go

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/tps/internal/physics"
	"github.com/Versifine/tps/internal/weapon"
)

// Movement is the character's movement solver.
type Movement interface {
	IsFalling() bool
	Velocity() mgl64.Vec3
	MaxWalkSpeed() float64
	SetMaxWalkSpeed(v float64)
	SetMaxAcceleration(v float64)
	AddInput(direction mgl64.Vec3, scale float64)
	SetOrientToMovement(enabled bool)
	Jump()
	StopJumping()
}

// Camera is the follow camera on its boom.
type Camera interface {
	Location() mgl64.Vec3
	Rotation() physics.Rotator
	SetFieldOfView(fov float64)
	SetArmLength(length float64)
	SetSocketOffset(offset mgl64.Vec3)
	SetUsePawnControlRotation(enabled bool)
}

// View is the player's control rotation.
type View interface {
	ControlRotation() physics.Rotator
	AddYawInput(degrees float64)
	AddPitchInput(degrees float64)
	SetUseControllerYaw(enabled bool)
}

type Animator interface {
	PlayMontage(name string, rate float64)
	SetWeaponIndex(index int)
	SetLocomotion(forward, right float64)
}

type Spawner interface {
	Spawn(at physics.Transform, cfg weapon.Config)
}

// Tracer runs a visibility line trace and returns the first hit.
type Tracer interface {
	LineTrace(start, end mgl64.Vec3) (mgl64.Vec3, bool)
}

type MuzzleLocator interface {
	SocketTransform(name string) (physics.Transform, bool)
}

type DebugDrawer interface {
	DrawLine(start, end mgl64.Vec3)
}

// Collaborators groups everything the controller drives. Tracer and Debug
// are optional.
type Collaborators struct {
	Movement Movement
	Camera   Camera
	View     View
	Animator Animator
	Spawner  Spawner
	Muzzles  MuzzleLocator
	Tracer   Tracer
	Debug    DebugDrawer
}

func (c Collaborators) validate() error {
	switch {
	case c.Movement == nil:
		return errMissing("movement")
	case c.Camera == nil:
		return errMissing("camera")
	case c.View == nil:
		return errMissing("view")
	case c.Animator == nil:
		return errMissing("animator")
	case c.Spawner == nil:
		return errMissing("spawner")
	case c.Muzzles == nil:
		return errMissing("muzzle locator")
	}
	return nil
}
