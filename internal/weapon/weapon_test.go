package weapon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/tables"
)

func testSet() tables.Set {
	return tables.Set{
		Weapons: []tables.WeaponModeRow{
			{Name: "pistol", Trigger: "press_once", Cost: "ammo", Resource: resource.StandardAmmo, FireRate: 0.25,
				Muzzles: []string{"muzzle_01"}, Montage: tables.MontageRow{Name: "fire_pistol", Length: 0.5}},
			{Name: "rifle", Trigger: "full_auto", Cost: "ammo", Resource: resource.RifleAmmo, PerShot: 1, FireRate: 0.1,
				Muzzles: []string{"muzzle_01"}},
			{Name: "lance", Trigger: "full_auto", Cost: "energy", Resource: resource.Overheat, PerShot: 20, FireRate: 0.2,
				Muzzles: []string{"muzzle_01", "muzzle_02"}},
		},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(context.Background(), tables.NewMemorySource(testSet()))
	require.NoError(t, err)
	return c
}

func TestFromRow(t *testing.T) {
	tests := []struct {
		name    string
		row     tables.WeaponModeRow
		wantErr error
		check   func(t *testing.T, c Config)
	}{
		{
			name: "ammo defaults to one round",
			row:  tables.WeaponModeRow{Name: "p", Cost: "ammo", Resource: resource.Arrow, FireRate: 0.5},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, PressOnce, c.Trigger)
				assert.Equal(t, 1.0, c.PerShot)
				assert.Equal(t, 500*time.Millisecond, c.FireInterval)
			},
		},
		{
			name: "no cost",
			row:  tables.WeaponModeRow{Name: "fist", Trigger: "one_press_auto"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, OnePressAuto, c.Trigger)
				assert.Equal(t, CostNone, c.Cost)
			},
		},
		{
			name:    "ammo cost with energy kind",
			row:     tables.WeaponModeRow{Name: "bad", Cost: "ammo", Resource: resource.Battery},
			wantErr: ErrInconsistentCost,
		},
		{
			name:    "energy cost with ammo kind",
			row:     tables.WeaponModeRow{Name: "bad", Cost: "energy", Resource: resource.Rocket},
			wantErr: ErrInconsistentCost,
		},
		{
			name:    "none cost with a kind",
			row:     tables.WeaponModeRow{Name: "bad", Resource: resource.Fuel},
			wantErr: ErrInconsistentCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromRow(tt.row)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}

	_, err := FromRow(tables.WeaponModeRow{Name: "x", Trigger: "burst"})
	assert.Error(t, err)
}

func TestMontageRate(t *testing.T) {
	c := Config{FireInterval: 250 * time.Millisecond, Montage: MontageSpec{Length: 500 * time.Millisecond}}
	assert.InDelta(t, 2.0, c.MontageRate(), 1e-9)
	assert.Equal(t, 1.0, Config{}.MontageRate())
}

func TestCatalogResolve(t *testing.T) {
	c := testCatalog(t)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"pistol", "rifle", "lance"}, c.Names())

	cfg, err := c.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, "rifle", cfg.Name)
	assert.Equal(t, FullAuto, cfg.Trigger)

	for _, slot := range []int{-1, 3, 100} {
		_, err := c.Resolve(slot)
		assert.ErrorIs(t, err, ErrUnknownSlot, "slot %d", slot)
	}

	_, err = c.Lookup("lance")
	assert.NoError(t, err)
	_, err = c.Lookup("bow")
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

type missingRowSource struct {
	tables.Source
}

func (missingRowSource) WeaponNames(context.Context) ([]string, error) {
	return []string{"pistol", "ghost"}, nil
}

func (m missingRowSource) WeaponMode(ctx context.Context, name string) (tables.WeaponModeRow, error) {
	return m.Source.WeaponMode(ctx, name)
}

func TestCatalogKeepsSlotForMissingRow(t *testing.T) {
	c, err := LoadCatalog(context.Background(), missingRowSource{tables.NewMemorySource(testSet())})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "ghost", c.Name(1))

	_, err = c.Resolve(1)
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

type failingSource struct {
	tables.Source
}

func (failingSource) WeaponNames(context.Context) ([]string, error) {
	return nil, errors.New("offline")
}

func TestLoadCatalogPropagatesNameError(t *testing.T) {
	_, err := LoadCatalog(context.Background(), failingSource{})
	assert.Error(t, err)
}

func TestSwitcherCycleWraps(t *testing.T) {
	c := testCatalog(t)
	s := NewSwitcher(c, nil)
	require.True(t, s.Equip(0))

	require.True(t, s.Cycle(-1))
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, 0, s.Last())

	require.True(t, s.Cycle(1))
	assert.Equal(t, 0, s.Index())

	require.True(t, s.Cycle(1))
	assert.Equal(t, 1, s.Index())
}

func TestSwitcherGateRejectsSilently(t *testing.T) {
	c := testCatalog(t)
	open := true
	s := NewSwitcher(c, GateFunc(func() bool { return open }))
	require.True(t, s.Equip(0))

	var events []Switched
	s.OnSwitched(func(e Switched) { events = append(events, e) })

	open = false
	for slot := 0; slot < c.Len(); slot++ {
		assert.False(t, s.Select(slot))
	}
	assert.False(t, s.Cycle(1))
	assert.False(t, s.Cycle(-1))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, -1, s.Last())
	assert.Empty(t, events)

	open = true
	require.True(t, s.Select(2))
	require.Len(t, events, 1)
	assert.Equal(t, Switched{From: 0, To: 2, Weapon: events[0].Weapon}, events[0])
	assert.Equal(t, "lance", events[0].Weapon.Name)
}

func TestSwitcherUnknownSlotKeepsState(t *testing.T) {
	c := testCatalog(t)
	s := NewSwitcher(c, nil)
	require.True(t, s.Equip(1))

	assert.False(t, s.Select(7))
	assert.Equal(t, 1, s.Index())
	cfg, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "rifle", cfg.Name)
}

type brokenSlotSource struct {
	tables.Source
	names []string
}

func (b brokenSlotSource) WeaponNames(context.Context) ([]string, error) {
	return b.names, nil
}

func TestSwitcherCycleStepsOverBrokenSlots(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		start     int
		step      int
		wantOK    bool
		wantIndex int
	}{
		{"next skips ghost", []string{"pistol", "ghost", "rifle"}, 0, 1, true, 2},
		{"prev skips ghost", []string{"pistol", "ghost", "rifle"}, 2, -1, true, 0},
		{"prev wraps over ghost", []string{"ghost", "pistol", "rifle"}, 1, -1, true, 2},
		{"only broken slots left", []string{"pistol", "ghost", "phantom"}, 0, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := brokenSlotSource{Source: tables.NewMemorySource(testSet()), names: tt.names}
			c, err := LoadCatalog(context.Background(), src)
			require.NoError(t, err)
			s := NewSwitcher(c, nil)
			require.True(t, s.Equip(tt.start))

			var events []Switched
			s.OnSwitched(func(e Switched) { events = append(events, e) })

			assert.Equal(t, tt.wantOK, s.Cycle(tt.step))
			assert.Equal(t, tt.wantIndex, s.Index())
			if tt.wantOK {
				require.Len(t, events, 1)
				assert.Equal(t, tt.start, events[0].From)
				assert.Equal(t, tt.start, s.Last())
			} else {
				assert.Empty(t, events)
				assert.Equal(t, -1, s.Last())
			}
		})
	}
}

func TestSwitcherEmptyCatalog(t *testing.T) {
	s := NewSwitcher(NewCatalog(), nil)
	assert.False(t, s.Cycle(1))
	_, ok := s.Current()
	assert.False(t, ok)
}
