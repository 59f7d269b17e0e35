package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is an orientation in degrees.
type Rotator struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

func (r Rotator) Forward() mgl64.Vec3 {
	pitch := mgl64.DegToRad(r.Pitch)
	yaw := mgl64.DegToRad(r.Yaw)
	return mgl64.Vec3{
		math.Cos(pitch) * math.Cos(yaw),
		math.Cos(pitch) * math.Sin(yaw),
		math.Sin(pitch),
	}
}

// Right is the horizontal right axis of the yaw component.
func (r Rotator) Right() mgl64.Vec3 {
	yaw := mgl64.DegToRad(r.Yaw)
	return mgl64.Vec3{-math.Sin(yaw), math.Cos(yaw), 0}
}

// YawOnly drops pitch and roll, giving a heading parallel to the ground.
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
		Roll:  NormalizeAxis(r.Roll),
	}
}

// NormalizeAxis maps an angle into (-180, 180].
func NormalizeAxis(v float64) float64 {
	v = math.Mod(v, 360)
	if v <= -180 {
		v += 360
	} else if v > 180 {
		v -= 360
	}
	return v
}

// LookAt returns the rotation that points from one location at another.
// Coincident points give the zero rotator.
func LookAt(from, to mgl64.Vec3) Rotator {
	d := to.Sub(from)
	if d.Len() < MinimumInputLength {
		return Rotator{}
	}
	return Rotator{
		Pitch: mgl64.RadToDeg(math.Atan2(d.Z(), math.Hypot(d.X(), d.Y()))),
		Yaw:   mgl64.RadToDeg(math.Atan2(d.Y(), d.X())),
	}
}

type Transform struct {
	Location mgl64.Vec3
	Rotation Rotator
	Scale    mgl64.Vec3
}

func IdentityScale() mgl64.Vec3 {
	return mgl64.Vec3{1, 1, 1}
}

// TransformPoint maps a local offset (forward, right, up) through the yaw of
// the transform and adds the location.
func (t Transform) TransformPoint(local mgl64.Vec3) mgl64.Vec3 {
	heading := t.Rotation.YawOnly()
	world := heading.Forward().Mul(local.X()).
		Add(heading.Right().Mul(local.Y())).
		Add(mgl64.Vec3{0, 0, local.Z()})
	return t.Location.Add(world)
}
