package aim

import (
	"errors"
	"fmt"
	"time"
)

type State int

const (
	Resting State = iota
	TransitioningIn
	Aiming
	TransitioningOut
)

func (s State) String() string {
	switch s {
	case Resting:
		return "resting"
	case TransitioningIn:
		return "transitioning_in"
	case Aiming:
		return "aiming"
	case TransitioningOut:
		return "transitioning_out"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var ErrBusy = errors.New("aim blend is not resting")

// Sink receives the blended snapshot.
type Sink interface {
	ApplyAim(Stat)
}

// Gate decides whether aiming may begin.
type Gate interface {
	CanAim() bool
}

type GateFunc func() bool

func (f GateFunc) CanAim() bool { return f() }

// Speeds are the aim-in and aim-out durations in seconds. Non-positive
// values are treated as 1.
type Speeds struct {
	In  float64
	Out float64
}

func playRate(speed float64) float64 {
	if speed <= 0 {
		speed = 1
	}
	return 1 / speed
}

// Blend drives the progress value between the resting profile (0) and the
// selected target profile (1). Reversing mid-flight keeps the current
// progress.
type Blend struct {
	profiles *Profiles
	target   int
	speeds   Speeds
	sink     Sink
	gate     Gate

	state    State
	progress float64
	rate     float64

	onFinished func(aiming bool)
}

// NewBlend targets profile 1 when the table has one, the resting pose
// otherwise.
func NewBlend(profiles *Profiles, speeds Speeds, sink Sink, gate Gate) *Blend {
	if profiles == nil {
		profiles = NewProfiles(Stat{}, nil)
	}
	target := 0
	if profiles.Len() > 1 {
		target = 1
	}
	return &Blend{
		profiles: profiles,
		target:   target,
		speeds:   speeds,
		sink:     sink,
		gate:     gate,
	}
}

// OnFinished is called once each time a transition reaches its end.
func (b *Blend) OnFinished(fn func(aiming bool)) {
	b.onFinished = fn
}

// BeginAim starts or reverses towards the aiming profile. It reports
// whether the state changed.
func (b *Blend) BeginAim() bool {
	if b.state == TransitioningIn || b.state == Aiming {
		return false
	}
	if b.gate != nil && !b.gate.CanAim() {
		return false
	}
	b.state = TransitioningIn
	b.rate = playRate(b.speeds.In)
	return true
}

// EndAim starts or reverses towards the resting pose.
func (b *Blend) EndAim() bool {
	if b.state == Resting || b.state == TransitioningOut {
		return false
	}
	b.state = TransitioningOut
	b.rate = playRate(b.speeds.Out)
	return true
}

// Tick advances an in-flight transition and pushes the blended snapshot
// whenever the blend is not resting.
func (b *Blend) Tick(dt time.Duration) {
	if b.state == Resting {
		return
	}
	finished := false
	switch b.state {
	case TransitioningIn:
		b.progress += b.rate * dt.Seconds()
		if b.progress >= 1 {
			b.progress = 1
			b.state = Aiming
			finished = true
		}
	case TransitioningOut:
		b.progress -= b.rate * dt.Seconds()
		if b.progress <= 0 {
			b.progress = 0
			b.state = Resting
			finished = true
		}
	}
	b.apply()
	if finished && b.onFinished != nil {
		b.onFinished(b.state == Aiming)
	}
}

// Reset snaps back to the resting pose and pushes it.
func (b *Blend) Reset() {
	b.state = Resting
	b.progress = 0
	b.apply()
}

// SelectProfile changes the target profile. Only allowed while resting.
func (b *Blend) SelectProfile(index int) error {
	if b.state != Resting {
		return ErrBusy
	}
	if _, ok := b.profiles.At(index); !ok {
		return fmt.Errorf("aiming profile index %d out of range [0,%d)", index, b.profiles.Len())
	}
	b.target = index
	return nil
}

func (b *Blend) Current() Stat {
	target, _ := b.profiles.At(b.target)
	return Lerp(b.profiles.Resting(), target, b.progress)
}

func (b *Blend) State() State      { return b.state }
func (b *Blend) Progress() float64 { return b.progress }
func (b *Blend) Target() int       { return b.target }

func (b *Blend) Profiles() *Profiles { return b.profiles }

// IsAiming is true from BeginAim until EndAim.
func (b *Blend) IsAiming() bool {
	return b.state == TransitioningIn || b.state == Aiming
}

func (b *Blend) IsTransitioning() bool {
	return b.state == TransitioningIn || b.state == TransitioningOut
}

func (b *Blend) apply() {
	if b.sink != nil {
		b.sink.ApplyAim(b.Current())
	}
}
