package weapon

import (
	"log/slog"
)

// SwitchGate decides whether a slot change may happen right now.
type SwitchGate interface {
	CanSwitchWeapon() bool
}

type GateFunc func() bool

func (f GateFunc) CanSwitchWeapon() bool { return f() }

// Switched describes a completed slot change.
type Switched struct {
	From   int
	To     int
	Weapon Config
}

// Switcher tracks the equipped slot. Rejected requests change nothing and
// report nothing.
type Switcher struct {
	catalog *Catalog
	gate    SwitchGate

	index   int
	last    int
	current Config
	armed   bool

	onSwitched func(Switched)
}

func NewSwitcher(catalog *Catalog, gate SwitchGate) *Switcher {
	return &Switcher{catalog: catalog, gate: gate, index: -1, last: -1}
}

func (s *Switcher) OnSwitched(fn func(Switched)) {
	s.onSwitched = fn
}

// Equip sets the starting slot without consulting the gate.
func (s *Switcher) Equip(slot int) bool {
	return s.apply(slot)
}

// Select switches to an explicit slot.
func (s *Switcher) Select(slot int) bool {
	if !s.allowed() {
		return false
	}
	return s.apply(slot)
}

// Cycle steps through the slot list with wraparound. A negative result maps
// to the last slot. Slots that fail to resolve are stepped over, so one
// broken row never pins the player in place.
func (s *Switcher) Cycle(step int) bool {
	if !s.allowed() {
		return false
	}
	count := s.catalog.Len()
	if count == 0 {
		return false
	}
	next := s.index
	for i := 0; i < count; i++ {
		next = (next + step) % count
		if next < 0 {
			next = count - 1
		}
		if next == s.index {
			return false
		}
		if s.apply(next) {
			return true
		}
	}
	return false
}

func (s *Switcher) Index() int {
	return s.index
}

// Last is the slot held before the most recent successful switch, -1 if none.
func (s *Switcher) Last() int {
	return s.last
}

// Current returns the equipped config and whether one is equipped.
func (s *Switcher) Current() (Config, bool) {
	return s.current, s.armed
}

func (s *Switcher) allowed() bool {
	return s.gate == nil || s.gate.CanSwitchWeapon()
}

func (s *Switcher) apply(slot int) bool {
	cfg, err := s.catalog.Resolve(slot)
	if err != nil {
		slog.Warn("Weapon switch ignored", "slot", slot, "error", err)
		return false
	}
	from := s.index
	s.last = from
	s.index = slot
	s.current = cfg
	s.armed = true
	if s.onSwitched != nil {
		s.onSwitched(Switched{From: from, To: slot, Weapon: cfg})
	}
	return true
}
