package arena

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Versifine/tps/internal/physics"
	"github.com/Versifine/tps/internal/weapon"
)

func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestGridSetAndGet(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, 0, g.LoadedChunkCount())

	require.True(t, g.SetBlock(-1, -17, 5, Wall))
	m, ok := g.Block(-1, -17, 5)
	require.True(t, ok)
	assert.Equal(t, Wall, m)
	assert.True(t, g.IsSolid(-1, -17, 5))
	assert.Equal(t, 1, g.LoadedChunkCount())

	m, ok = g.Block(100, 100, 0)
	assert.True(t, ok)
	assert.Equal(t, Air, m)

	assert.False(t, g.SetBlock(0, 0, MaxZ+1, Wall))
	_, ok = g.Block(0, 0, MinZ-1)
	assert.False(t, ok)

	require.True(t, g.SetBlock(3, 3, 3, Glass))
	assert.False(t, g.IsSolid(3, 3, 3))
}

func TestGridFillSwapsBounds(t *testing.T) {
	g := NewGrid()
	n := g.Fill([3]int{2, 2, 1}, [3]int{0, 0, 0}, Crate)
	assert.Equal(t, 18, n)
	assert.True(t, g.IsSolid(1, 1, 1))
}

func TestParseMaterial(t *testing.T) {
	m, err := ParseMaterial("crate")
	require.NoError(t, err)
	assert.Equal(t, Crate, m)
	_, err = ParseMaterial("lava")
	assert.Error(t, err)
	assert.Equal(t, "material(99)", Material(99).String())
}

func TestLineTraceHitsWallFace(t *testing.T) {
	g := NewGrid()
	g.Fill([3]int{5, -2, 0}, [3]int{5, 2, 3}, Wall)
	tr := NewTracer(g, 100)

	hit, ok := tr.LineTrace(mgl64.Vec3{50, 50, 150}, mgl64.Vec3{2000, 50, 150})
	require.True(t, ok)
	assert.InDelta(t, 500, hit.X(), 1e-6)
	assert.InDelta(t, 50, hit.Y(), 1e-6)
	assert.InDelta(t, 150, hit.Z(), 1e-6)

	_, ok = tr.LineTrace(mgl64.Vec3{50, 50, 150}, mgl64.Vec3{400, 50, 150})
	assert.False(t, ok, "segment stops short of the wall")

	_, ok = tr.LineTrace(mgl64.Vec3{50, 50, 150}, mgl64.Vec3{-2000, 50, 150})
	assert.False(t, ok)
}

func TestLineTraceLongRangeLeavesWorld(t *testing.T) {
	tr := NewTracer(NewGrid(), 100)
	_, ok := tr.LineTrace(mgl64.Vec3{0, 0, 100}, mgl64.Vec3{0, 0, 300000})
	assert.False(t, ok)
}

func TestLayoutBuild(t *testing.T) {
	g, err := DefaultLayout().Build()
	require.NoError(t, err)
	assert.True(t, g.IsSolid(0, 0, -1))
	assert.True(t, g.IsSolid(20, 0, 2))

	_, err = Layout{Boxes: []Box{{Material: "cheese"}}}.Build()
	assert.Error(t, err)
}

func TestProjectileFlightAndImpact(t *testing.T) {
	g := NewGrid()
	g.Fill([3]int{10, -5, 0}, [3]int{10, 5, 5}, Wall)
	log := NewProjectileLog(NewTracer(g, 100), 980)
	ids := 0
	log.newID = func() uuid.UUID {
		ids++
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(ids)})
	}

	cfg := weapon.Config{Name: "rifle", Projectile: weapon.ProjectileTemplate{Class: "bullet", InitialSpeed: 5000, Damage: 12}}
	log.Spawn(physics.Transform{Location: mgl64.Vec3{50, 50, 150}}, cfg)

	lob := cfg
	lob.Name = "lob"
	lob.Projectile = weapon.ProjectileTemplate{InitialSpeed: 100, Lifespan: 200 * time.Millisecond}
	log.Spawn(physics.Transform{Location: mgl64.Vec3{50, 50, 150}, Rotation: physics.Rotator{Yaw: 180}}, lob)
	require.Equal(t, 2, log.Live())

	for i := 0; i < 30; i++ {
		log.Step(time.Second / 60)
	}

	impacts := log.Impacts()
	require.Len(t, impacts, 1)
	assert.Equal(t, "rifle", impacts[0].Weapon)
	assert.InDelta(t, 1000, impacts[0].Point.X(), 1e-6)
	assert.Equal(t, 12.0, impacts[0].Damage)
	assert.Equal(t, 1, log.Expired())
	assert.Equal(t, 0, log.Live())

	spawned := log.Spawned()
	require.Len(t, spawned, 2)
	assert.NotEqual(t, spawned[0].ID, spawned[1].ID)
	assert.InDelta(t, -100, spawned[1].Velocity.X(), 1e-9)
}

func TestProjectileDefaultsSpeedAndUsesRealIDs(t *testing.T) {
	log := NewProjectileLog(nil, 980)
	log.Spawn(physics.Transform{}, weapon.Config{Name: "pistol"})
	spawned := log.Spawned()
	require.Len(t, spawned, 1)
	assert.NotEqual(t, uuid.Nil, spawned[0].ID)
	assert.InDelta(t, DefaultProjectileSpeed, spawned[0].Velocity.Len(), 1e-9)
}

func TestRigCameraAndSockets(t *testing.T) {
	g, err := DefaultLayout().Build()
	require.NoError(t, err)
	body := physics.NewBody(mgl64.Vec3{50, 50, 0}, g, physics.DefaultParams())
	rig := NewRig(body, RigConfig{Sockets: map[string]mgl64.Vec3{"muzzle_01": {40, 20, 120}}})

	rig.SetArmLength(300)
	rig.SetSocketOffset(mgl64.Vec3{0, 50, 0})
	cam := rig.Location()
	assertVecNear(t, mgl64.Vec3{50 - 300, 100, 160}, cam)

	rig.SetUsePawnControlRotation(true)
	rig.AddYawInput(90)
	rig.AddPitchInput(200)
	assert.Equal(t, physics.Rotator{Pitch: MaxPitch, Yaw: 90}, rig.Rotation())

	rig.SetUsePawnControlRotation(false)
	rot := rig.Rotation()
	assert.False(t, math.IsNaN(rot.Yaw))

	rig.SetUseControllerYaw(true)
	rig.Sync()
	assert.InDelta(t, 90, body.FacingYaw(), 1e-9)
	tr, ok := rig.SocketTransform("muzzle_01")
	require.True(t, ok)
	assertVecNear(t, mgl64.Vec3{50 - 20, 50 + 40, 120}, tr.Location)

	_, ok = rig.SocketTransform("muzzle_09")
	assert.False(t, ok)
}

func TestRigAnimAndDebugLines(t *testing.T) {
	rig := NewRig(physics.NewBody(mgl64.Vec3{}, nil, physics.DefaultParams()), RigConfig{})
	assert.Equal(t, -1, rig.Anim().WeaponIndex)

	rig.PlayMontage("fire", 2)
	rig.PlayMontage("fire", 2)
	rig.SetWeaponIndex(3)
	rig.SetLocomotion(0.5, -0.5)
	assert.Equal(t, AnimState{Montage: "fire", Rate: 2, Plays: 2, WeaponIndex: 3, Forward: 0.5, Right: -0.5}, rig.Anim())

	for i := 0; i < maxDebugLines+5; i++ {
		rig.DrawLine(mgl64.Vec3{float64(i)}, mgl64.Vec3{})
	}
	lines := rig.Lines()
	require.Len(t, lines, maxDebugLines)
	assert.Equal(t, float64(5), lines[0].Start.X())
}
