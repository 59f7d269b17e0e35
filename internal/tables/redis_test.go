package tables_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/tables"
)

type RedisSourceTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	source *tables.RedisSource
	ctx    context.Context
}

func (s *RedisSourceTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.ctx = context.Background()

	src, err := tables.NewRedisSource(&tables.RedisConfig{Client: s.client, Prefix: "test"})
	s.Require().NoError(err)
	s.source = src
}

func (s *RedisSourceTestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *RedisSourceTestSuite) sampleSet() tables.Set {
	return tables.Set{
		Aiming: []tables.AimingRow{
			{Name: "hip", ArmLength: 150, FieldOfView: 70, MaxWalkSpeed: 300},
			{Name: "scope", ArmLength: 80, FieldOfView: 40, MaxWalkSpeed: 150},
		},
		Weapons: []tables.WeaponModeRow{
			{Name: "rifle", Trigger: "full_auto", Cost: "ammo", Resource: resource.RifleAmmo, PerShot: 1, FireRate: 0.1, Muzzles: []string{"muzzle_01"}},
			{Name: "staff", Trigger: "press_once", Cost: "energy", Resource: resource.Mana, PerShot: 5, FireRate: 0.5},
		},
	}
}

func (s *RedisSourceTestSuite) TestNewRedisSource() {
	testCases := []struct {
		name   string
		config *tables.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &tables.RedisConfig{}, errMsg: "client cannot be nil"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			src, err := tables.NewRedisSource(tc.config)
			s.Require().Error(err)
			s.Nil(src)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisSourceTestSuite) TestPublishThenRead() {
	s.Require().NoError(s.source.Publish(s.ctx, s.sampleSet()))

	aiming, err := s.source.AimingRows(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(aiming, 2)
	s.Equal("hip", aiming[0].Name)
	s.Equal("scope", aiming[1].Name)
	s.Equal(40.0, aiming[1].FieldOfView)

	names, err := s.source.WeaponNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"rifle", "staff"}, names)

	staff, err := s.source.WeaponMode(s.ctx, "staff")
	s.Require().NoError(err)
	s.Equal(resource.Mana, staff.Resource)
	s.Equal(5.0, staff.PerShot)
}

func (s *RedisSourceTestSuite) TestPublishReplacesPreviousTables() {
	s.Require().NoError(s.source.Publish(s.ctx, s.sampleSet()))
	s.Require().NoError(s.source.Publish(s.ctx, tables.Set{
		Weapons: []tables.WeaponModeRow{{Name: "bow", Trigger: "release_fire", Cost: "ammo", Resource: resource.Arrow}},
	}))

	names, err := s.source.WeaponNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"bow"}, names)

	_, err = s.source.WeaponMode(s.ctx, "rifle")
	s.ErrorIs(err, tables.ErrRowNotFound)

	aiming, err := s.source.AimingRows(s.ctx)
	s.Require().NoError(err)
	s.Empty(aiming)
}

func (s *RedisSourceTestSuite) TestMissingRowsAreRecoverable() {
	s.Require().NoError(s.client.RPush(s.ctx, "test:aiming:names", "ghost", "real").Err())
	s.Require().NoError(s.client.Set(s.ctx, "test:aiming:real", `{"arm_length": 90}`, 0).Err())

	aiming, err := s.source.AimingRows(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(aiming, 1)
	s.Equal("real", aiming[0].Name)
	s.Equal(90.0, aiming[0].ArmLength)

	_, err = s.source.WeaponMode(s.ctx, "ghost")
	s.ErrorIs(err, tables.ErrRowNotFound)
}

func (s *RedisSourceTestSuite) TestCorruptRowIsAnError() {
	s.Require().NoError(s.client.Set(s.ctx, "test:weapon:broken", "{not json", 0).Err())

	_, err := s.source.WeaponMode(s.ctx, "broken")
	s.Require().Error(err)
	s.NotErrorIs(err, tables.ErrRowNotFound)
}

func TestRedisSourceTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSourceTestSuite))
}
