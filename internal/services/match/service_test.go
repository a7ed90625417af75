package match

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestSubstringOutranksSimilarity() {
	choices := []string{"Saquon Barkley", "Nick Chubb", "Josh Jacobs"}

	got := s.service.Rank("chubb", choices, DefaultLimit, DefaultMinScore)

	s.Require().NotEmpty(got)
	s.Equal("Nick Chubb", got[0])
}

func (s *ServiceSuite) TestEarlierSubstringWins() {
	choices := []string{"Mark Andrews", "Andrew Luck"}

	got := s.service.Rank("andrew", choices, DefaultLimit, DefaultMinScore)

	// "andrew" starts at index 0 in "Andrew Luck", index 5 in "Mark Andrews".
	s.Equal([]string{"Andrew Luck", "Mark Andrews"}, got)
}

func (s *ServiceSuite) TestCaseInsensitive() {
	got := s.service.Rank("BARKLEY", []string{"Saquon Barkley"}, DefaultLimit, DefaultMinScore)
	s.Equal([]string{"Saquon Barkley"}, got)
}

func (s *ServiceSuite) TestSimilarityCatchesTypos() {
	got := s.service.Rank("barklee", []string{"Saquon Barkley", "Patrick Mahomes"}, DefaultLimit, DefaultMinScore)

	s.Require().NotEmpty(got)
	s.Equal("Saquon Barkley", got[0])
}

func (s *ServiceSuite) TestMinScoreFiltersWeakMatches() {
	got := s.service.Rank("zzzzqqqq", []string{"Saquon Barkley", "Nick Chubb"}, DefaultLimit, DefaultMinScore)
	s.Empty(got)
}

func (s *ServiceSuite) TestLimitTruncates() {
	choices := []string{"Back One", "Back Two", "Back Three", "Back Four"}

	got := s.service.Rank("back", choices, 2, DefaultMinScore)

	s.Len(got, 2)
}

func (s *ServiceSuite) TestBlankQueryReturnsPrefix() {
	choices := []string{"c", "a", "b"}

	got := s.service.Rank("   ", choices, 2, DefaultMinScore)

	// No scoring or reordering on a blank query.
	s.Equal([]string{"c", "a"}, got)
}

func (s *ServiceSuite) TestTiesKeepInputOrder() {
	// Both contain the query at index 0, so both score identically.
	choices := []string{"Smith A", "Smith B"}

	got := s.service.Rank("smith", choices, DefaultLimit, DefaultMinScore)

	s.Equal(choices, got)
}

func (s *ServiceSuite) TestNonPositiveLimitUsesDefault() {
	choices := make([]string, 30)
	for i := range choices {
		choices[i] = "player"
	}

	got := s.service.Rank("player", choices, 0, DefaultMinScore)

	s.Len(got, DefaultLimit)
}
