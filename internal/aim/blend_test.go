package aim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Versifine/tps/internal/tables"
)

var (
	resting = Stat{
		SocketOffset:    mgl64.Vec3{0, 50, 70},
		ArmLength:       300,
		MaxAcceleration: 2048,
		MaxWalkSpeed:    600,
		FieldOfView:     90,
	}
	scopeRow = tables.AimingRow{
		Name:            "scope",
		SocketOffset:    [3]float64{0, 35, 15},
		ArmLength:       80.3,
		MaxAcceleration: 512.7,
		MaxWalkSpeed:    151.1,
		FieldOfView:     37.9,
	}
)

type recordingSink struct {
	applied []Stat
}

func (r *recordingSink) ApplyAim(s Stat) { r.applied = append(r.applied, s) }

func (r *recordingSink) last() Stat { return r.applied[len(r.applied)-1] }

const tick = 10 * time.Millisecond

func newTestBlend(sink Sink, gate Gate) *Blend {
	return NewBlend(NewProfiles(resting, []tables.AimingRow{scopeRow}), Speeds{In: 0.2, Out: 0.5}, sink, gate)
}

func TestLerpEndpointsAreExact(t *testing.T) {
	target := StatFromRow(scopeRow)
	assert.Equal(t, resting, Lerp(resting, target, 0))
	assert.Equal(t, target, Lerp(resting, target, 1))

	mid := Lerp(resting, target, 0.5)
	assert.InDelta(t, (300+80.3)/2, mid.ArmLength, 1e-9)
}

func TestBlendTransitionsInAndOut(t *testing.T) {
	sink := &recordingSink{}
	b := newTestBlend(sink, nil)
	var finished []bool
	b.OnFinished(func(aiming bool) { finished = append(finished, aiming) })

	require.True(t, b.BeginAim())
	assert.Equal(t, TransitioningIn, b.State())
	assert.True(t, b.IsAiming())
	assert.False(t, b.BeginAim())

	for i := 0; i < 19; i++ {
		b.Tick(tick)
	}
	require.Equal(t, TransitioningIn, b.State())
	assert.Empty(t, finished)

	b.Tick(tick)
	b.Tick(tick)
	assert.Equal(t, Aiming, b.State())
	assert.Equal(t, 1.0, b.Progress())
	assert.Equal(t, StatFromRow(scopeRow), sink.last())
	assert.Equal(t, []bool{true}, finished)

	require.True(t, b.EndAim())
	assert.False(t, b.IsAiming())
	for i := 0; i < 60; i++ {
		b.Tick(tick)
	}
	assert.Equal(t, Resting, b.State())
	assert.Equal(t, resting, sink.last())
	assert.Equal(t, []bool{true, false}, finished)

	n := len(sink.applied)
	b.Tick(tick)
	assert.Len(t, sink.applied, n, "resting blend must not push")
}

func TestBlendReversalIsContinuous(t *testing.T) {
	sink := &recordingSink{}
	b := newTestBlend(sink, nil)
	b.BeginAim()
	for i := 0; i < 7; i++ {
		b.Tick(tick)
	}
	before := sink.last()
	progress := b.Progress()

	require.True(t, b.EndAim())
	assert.Equal(t, progress, b.Progress())
	b.Tick(tick)
	after := sink.last()

	// one tick of the faster aim-in rate bounds the change
	step := math.Abs(resting.FieldOfView-scopeRow.FieldOfView) * tick.Seconds() / 0.2
	assert.LessOrEqual(t, math.Abs(after.FieldOfView-before.FieldOfView), step+1e-9)
	assert.Less(t, b.Progress(), progress)

	require.True(t, b.BeginAim())
	assert.Equal(t, TransitioningIn, b.State())
}

func TestBlendGateBlocksBegin(t *testing.T) {
	grounded := false
	b := newTestBlend(nil, GateFunc(func() bool { return grounded }))
	assert.False(t, b.BeginAim())
	assert.Equal(t, Resting, b.State())
	assert.False(t, b.EndAim())

	grounded = true
	assert.True(t, b.BeginAim())
}

func TestBlendNonPositiveSpeedUsesOneSecond(t *testing.T) {
	b := NewBlend(NewProfiles(resting, []tables.AimingRow{scopeRow}), Speeds{}, nil, nil)
	b.BeginAim()
	b.Tick(500 * time.Millisecond)
	assert.InDelta(t, 0.5, b.Progress(), 1e-9)
}

func TestSelectProfile(t *testing.T) {
	b := newTestBlend(nil, nil)
	assert.Equal(t, 1, b.Target())
	assert.Error(t, b.SelectProfile(5))
	require.NoError(t, b.SelectProfile(0))

	b.BeginAim()
	assert.ErrorIs(t, b.SelectProfile(1), ErrBusy)
}

func TestProfilesAlwaysHaveResting(t *testing.T) {
	p := NewProfiles(resting, nil)
	require.Equal(t, 1, p.Len())
	assert.Equal(t, resting, p.Resting())
	assert.Equal(t, RestingName, p.Name(0))

	b := NewBlend(p, Speeds{In: 1}, nil, nil)
	assert.Equal(t, 0, b.Target())
}

type brokenSource struct {
	tables.Source
}

func (brokenSource) AimingRows(context.Context) ([]tables.AimingRow, error) {
	return nil, errors.New("no table")
}

func TestLoadProfilesFallsBack(t *testing.T) {
	p := LoadProfiles(context.Background(), brokenSource{}, resting)
	assert.Equal(t, 1, p.Len())

	src := tables.NewMemorySource(tables.Set{Aiming: []tables.AimingRow{scopeRow}})
	p = LoadProfiles(context.Background(), src, resting)
	require.Equal(t, 2, p.Len())
	i, err := p.Index("scope")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = p.Index("sniper")
	assert.ErrorIs(t, err, tables.ErrRowNotFound)
}
