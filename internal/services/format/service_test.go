package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ffcommunity/banwatch/internal/model"
)

type BuildSuite struct {
	suite.Suite
	observedAt time.Time
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func (s *BuildSuite) SetupTest() {
	s.observedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *BuildSuite) record(banned, mock bool) *model.PlayerStatus {
	return &model.PlayerStatus{
		ID:         "123456789",
		Name:       "Striker",
		Banned:     banned,
		Mock:       mock,
		ObservedAt: s.observedAt,
	}
}

func (s *BuildSuite) TestBannedUsesNegativeBundle() {
	payload, err := Build(s.record(true, false), model.LangEnglish)
	s.Require().NoError(err)

	s.Contains(payload.Title, "Account Banned")
	s.Equal(model.ColorBanned, payload.Color)
	s.Equal("Violation detected", payload.Footer)
}

func (s *BuildSuite) TestNotBannedUsesPositiveBundle() {
	payload, err := Build(s.record(false, false), model.LangEnglish)
	s.Require().NoError(err)

	s.Contains(payload.Title, "Account Clean")
	s.Equal(model.ColorClean, payload.Color)
	s.Equal("No violations found", payload.Footer)
}

func (s *BuildSuite) TestFieldsAreFixedOrder() {
	payload, err := Build(s.record(true, false), model.LangEnglish)
	s.Require().NoError(err)

	s.Require().Len(payload.Fields, 3)

	s.Equal("Player ID", payload.Fields[0].Label)
	s.Equal("`123456789`", payload.Fields[0].Value)
	s.True(payload.Fields[0].Inline)

	s.Equal("Player Name", payload.Fields[1].Label)
	s.Equal("Striker", payload.Fields[1].Value)
	s.True(payload.Fields[1].Inline)

	s.Equal("Ban Status", payload.Fields[2].Label)
	s.False(payload.Fields[2].Inline)
}

func (s *BuildSuite) TestDemoMarkerOnlyForMockRecords() {
	mock, err := Build(s.record(false, true), model.LangEnglish)
	s.Require().NoError(err)
	s.Contains(mock.Footer, DemoMarker)

	live, err := Build(s.record(false, false), model.LangEnglish)
	s.Require().NoError(err)
	s.NotContains(live.Footer, DemoMarker)
}

func (s *BuildSuite) TestFrenchBundle() {
	payload, err := Build(s.record(true, false), model.LangFrench)
	s.Require().NoError(err)

	s.Contains(payload.Title, "Compte Banni")
	s.Equal("ID du Joueur", payload.Fields[0].Label)
}

func (s *BuildSuite) TestUnknownLanguageFails() {
	_, err := Build(s.record(true, false), "de")
	s.ErrorIs(err, model.ErrUnknownLanguage)
}

func (s *BuildSuite) TestBuildIsPure() {
	first, err := Build(s.record(true, true), model.LangFrench)
	s.Require().NoError(err)

	second, err := Build(s.record(true, true), model.LangFrench)
	s.Require().NoError(err)

	s.Equal(first, second)
}
