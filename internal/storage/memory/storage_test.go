package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestRestrictionAbsentByDefault() {
	_, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StorageSuite) TestSetAndGetRestriction() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))

	channelID, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("chan-a", channelID)
}

func (s *StorageSuite) TestSetOverwritesRestriction() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-b"))

	channelID, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("chan-b", channelID)
}

func (s *StorageSuite) TestRemoveRestriction() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))
	s.Require().NoError(s.storage.RemoveRestriction(s.ctx, "guild-1"))

	_, ok, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StorageSuite) TestRemoveMissingRestrictionIsNoop() {
	s.NoError(s.storage.RemoveRestriction(s.ctx, "guild-unknown"))
}

func (s *StorageSuite) TestRestrictionsReturnsCopy() {
	s.Require().NoError(s.storage.SetRestriction(s.ctx, "guild-1", "chan-a"))

	all, err := s.storage.Restrictions(s.ctx)
	s.Require().NoError(err)
	all["guild-1"] = "tampered"

	channelID, _, err := s.storage.Restriction(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal("chan-a", channelID)
}
