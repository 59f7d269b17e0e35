// Package resource keeps the ammunition and energy counters of a character
// and is the only place where they are debited or credited.
package resource

import (
	"math"
	"time"
)

// OverheatCap bounds heat. A shot must leave heat below it; credits clamp
// to it.
const OverheatCap = 100.0

// Cause tells why a debit was refused.
type Cause int

const (
	CauseOutOfAmmo Cause = iota + 1
	CauseOutOfEnergy
	CauseOverheated
)

func (c Cause) String() string {
	switch c {
	case CauseOutOfAmmo:
		return "out_of_ammo"
	case CauseOutOfEnergy:
		return "out_of_energy"
	case CauseOverheated:
		return "overheated"
	default:
		return "unknown"
	}
}

// Depletion is the single failure kind reported by the pool. Overheating
// shares the channel with running dry and is told apart by Cause.
type Depletion struct {
	Kind  Kind
	Cause Cause
	Have  float64
	Need  float64
}

// Ledger is a plain copy of every counter.
type Ledger struct {
	Ammo     [ammoKinds]int
	Mana     float64
	Battery  float64
	Fuel     float64
	Overheat float64
}

// AmmoOf returns the rounds stored for an ammo kind, 0 for anything else.
func (l Ledger) AmmoOf(kind Kind) int {
	if !kind.IsAmmo() {
		return 0
	}
	return l.Ammo[kind-StandardAmmo]
}

// SetAmmo is a builder helper for starting ledgers.
func (l *Ledger) SetAmmo(kind Kind, rounds int) {
	if !kind.IsAmmo() {
		return
	}
	if rounds < 0 {
		rounds = 0
	}
	l.Ammo[kind-StandardAmmo] = rounds
}

// Pool owns a Ledger. Ammo amounts are whole rounds: fractional debits round
// up and fractional credits round down, so rounding never creates ammo.
type Pool struct {
	ledger      Ledger
	coolingRate float64
	onDepleted  func(Depletion)
}

func NewPool(initial Ledger) *Pool {
	initial.Overheat = clampHeat(initial.Overheat)
	for i, n := range initial.Ammo {
		if n < 0 {
			initial.Ammo[i] = 0
		}
	}
	return &Pool{ledger: initial}
}

// OnDepleted installs the notification hook for refused debits.
func (p *Pool) OnDepleted(fn func(Depletion)) {
	p.onDepleted = fn
}

// SetCoolingRate sets how much heat Dissipate removes per second.
func (p *Pool) SetCoolingRate(perSecond float64) {
	if perSecond < 0 {
		perSecond = 0
	}
	p.coolingRate = perSecond
}

func (p *Pool) Snapshot() Ledger {
	return p.ledger
}

// Amount reports a counter as a float regardless of its storage type.
func (p *Pool) Amount(kind Kind) float64 {
	switch {
	case kind.IsAmmo():
		return float64(p.ledger.AmmoOf(kind))
	case kind == Mana:
		return p.ledger.Mana
	case kind == Battery:
		return p.ledger.Battery
	case kind == Fuel:
		return p.ledger.Fuel
	case kind == Overheat:
		return p.ledger.Overheat
	default:
		return 0
	}
}

// Afford reports whether TryDebit would succeed. It never signals.
func (p *Pool) Afford(kind Kind, amount float64) bool {
	_, ok := p.check(kind, amount)
	return ok
}

// Require behaves like Afford but signals the depletion when it fails.
func (p *Pool) Require(kind Kind, amount float64) bool {
	cause, ok := p.check(kind, amount)
	if !ok {
		p.signal(kind, cause, amount)
	}
	return ok
}

// TryDebit consumes amount of kind. On failure nothing is mutated and the
// depletion hook fires. For Overheat the debit adds heat instead.
func (p *Pool) TryDebit(kind Kind, amount float64) bool {
	if !p.Require(kind, amount) {
		return false
	}
	if amount <= 0 {
		return true
	}
	switch {
	case kind.IsAmmo():
		p.ledger.Ammo[kind-StandardAmmo] -= ammoUnits(amount)
	case kind == Mana:
		p.ledger.Mana -= amount
	case kind == Battery:
		p.ledger.Battery -= amount
	case kind == Fuel:
		p.ledger.Fuel -= amount
	case kind == Overheat:
		p.ledger.Overheat = clampHeat(p.ledger.Overheat + amount)
	}
	return true
}

// Credit adds to a counter. Ammo has no upper bound; heat is clamped to
// [0, OverheatCap].
func (p *Pool) Credit(kind Kind, amount float64) {
	if amount <= 0 {
		return
	}
	switch {
	case kind.IsAmmo():
		p.ledger.Ammo[kind-StandardAmmo] += int(math.Floor(amount))
	case kind == Mana:
		p.ledger.Mana += amount
	case kind == Battery:
		p.ledger.Battery += amount
	case kind == Fuel:
		p.ledger.Fuel += amount
	case kind == Overheat:
		p.ledger.Overheat = clampHeat(p.ledger.Overheat + amount)
	}
}

// Cool removes heat, never below zero.
func (p *Pool) Cool(amount float64) {
	if amount <= 0 {
		return
	}
	p.ledger.Overheat = clampHeat(p.ledger.Overheat - amount)
}

// Dissipate applies passive cooling for an elapsed tick.
func (p *Pool) Dissipate(dt time.Duration) {
	if p.coolingRate == 0 || dt <= 0 {
		return
	}
	p.Cool(p.coolingRate * dt.Seconds())
}

// SetMana overwrites the mana counter (the character's MP).
func (p *Pool) SetMana(v float64) {
	p.ledger.Mana = v
}

func (p *Pool) check(kind Kind, amount float64) (Cause, bool) {
	if amount < 0 {
		amount = 0
	}
	switch {
	case kind.IsAmmo():
		if p.ledger.AmmoOf(kind) >= ammoUnits(amount) {
			return 0, true
		}
		return CauseOutOfAmmo, false
	case kind == Overheat:
		if p.ledger.Overheat+amount < OverheatCap {
			return 0, true
		}
		return CauseOverheated, false
	case kind.IsEnergy():
		if p.Amount(kind) >= amount {
			return 0, true
		}
		return CauseOutOfEnergy, false
	default:
		return 0, true
	}
}

func (p *Pool) signal(kind Kind, cause Cause, need float64) {
	if p.onDepleted == nil {
		return
	}
	p.onDepleted(Depletion{
		Kind:  kind,
		Cause: cause,
		Have:  p.Amount(kind),
		Need:  need,
	})
}

func ammoUnits(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Ceil(amount))
}

func clampHeat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > OverheatCap {
		return OverheatCap
	}
	return v
}
