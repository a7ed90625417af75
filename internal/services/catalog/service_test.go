package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/auctionclerk/internal/model"
	"github.com/mcoot/auctionclerk/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) load(csv string) *Service {
	svc, err := FromReader(strings.NewReader(csv), "test.csv", testutil.NopLogger())
	s.Require().NoError(err)
	return svc
}

const sampleCSV = `name,position,salary,tier,proteam
Alpha Back,RB,50,1,DAL
Bravo Back,rb,30,2,SF
Charlie Wide,WR,40,1,MIA
Delta Quarter,QB,35,,BUF
Echo End,TE,10,3,
Foxtrot Kicker,K,,,
`

func (s *ServiceSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "salaries.csv")
	s.Require().NoError(os.WriteFile(path, []byte(sampleCSV), 0644))

	svc, err := Load(path, testutil.NopLogger())

	s.Require().NoError(err)
	s.Equal(6, svc.Size())
}

func (s *ServiceSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "nope.csv"), testutil.NopLogger())
	s.Error(err)
}

func (s *ServiceSuite) TestParsesRows() {
	svc := s.load(sampleCSV)

	p, ok := svc.ByName("Alpha Back")
	s.Require().True(ok)
	s.Equal(model.PositionRB, p.Position)
	s.Equal(50, p.Salary)
	s.True(p.HasSalary)
	s.Equal("1", p.Tier)
	s.Equal("DAL", p.ProTeam)
}

func (s *ServiceSuite) TestPositionNormalizedUppercase() {
	svc := s.load(sampleCSV)

	p, ok := svc.ByName("Bravo Back")
	s.Require().True(ok)
	s.Equal(model.PositionRB, p.Position)
}

func (s *ServiceSuite) TestBlankSalaryMeansNoBaseValue() {
	svc := s.load(sampleCSV)

	p, ok := svc.ByName("Foxtrot Kicker")
	s.Require().True(ok)
	s.False(p.HasSalary)
	s.Equal(0, p.Salary)
}

func (s *ServiceSuite) TestMissingRequiredColumn() {
	_, err := FromReader(strings.NewReader("name,position\nAlpha,RB\n"), "test.csv", testutil.NopLogger())

	s.Require().Error(err)
	s.Contains(err.Error(), `"salary"`)
	s.Contains(err.Error(), "test.csv")
}

func (s *ServiceSuite) TestHeaderMatchIsCaseAndSpaceInsensitive() {
	svc := s.load("Name , SALARY\nAlpha,10\n")

	p, ok := svc.ByName("Alpha")
	s.Require().True(ok)
	s.Equal(10, p.Salary)
}

func (s *ServiceSuite) TestMissingPositionColumnDefaultsUnknown() {
	svc := s.load("name,salary\nAlpha,10\n")

	p, ok := svc.ByName("Alpha")
	s.Require().True(ok)
	s.Equal(model.PositionUnknown, p.Position)
}

func (s *ServiceSuite) TestInvalidSalaryRejected() {
	_, err := FromReader(strings.NewReader("name,salary\nAlpha,lots\n"), "test.csv", testutil.NopLogger())
	s.Error(err)

	_, err = FromReader(strings.NewReader("name,salary\nAlpha,-5\n"), "test.csv", testutil.NopLogger())
	s.Error(err)
}

func (s *ServiceSuite) TestBlankNameRowsSkipped() {
	svc := s.load("name,salary\n,10\nAlpha,10\n")
	s.Equal(1, svc.Size())
}

func (s *ServiceSuite) TestDuplicateNamesFirstWins() {
	svc := s.load("name,position,salary\nAlpha,RB,50\nAlpha,WR,20\n")

	s.Equal(2, svc.Size())
	p, ok := svc.ByName("Alpha")
	s.Require().True(ok)
	s.Equal(model.PositionRB, p.Position)
	s.Equal(50, p.Salary)
}

func (s *ServiceSuite) TestNamesExcludingKeepsSourceOrder() {
	svc := s.load(sampleCSV)

	names := svc.NamesExcluding(map[string]bool{"Bravo Back": true})

	s.Equal([]string{"Alpha Back", "Charlie Wide", "Delta Quarter", "Echo End", "Foxtrot Kicker"}, names)
}

func (s *ServiceSuite) TestRemainingCountByPosition() {
	svc := s.load(sampleCSV)

	s.Equal(2, svc.RemainingCountByPosition(model.PositionRB, nil))
	s.Equal(1, svc.RemainingCountByPosition(model.PositionRB, map[string]bool{"Alpha Back": true}))
	s.Equal(0, svc.RemainingCountByPosition(model.PositionDST, nil))
}

func (s *ServiceSuite) TestRemainingValueSkipsBlankSalaries() {
	svc := s.load(sampleCSV)

	s.Equal(165, svc.RemainingValue(nil))
	s.Equal(115, svc.RemainingValue(map[string]bool{"Alpha Back": true}))
}

func (s *ServiceSuite) TestUndraftedByPositionSortedBySalaryDesc() {
	svc := s.load(sampleCSV)

	pool := svc.UndraftedByPosition(model.PositionRB, nil)

	s.Require().Len(pool, 2)
	s.Equal("Alpha Back", pool[0].Name)
	s.Equal("Bravo Back", pool[1].Name)
}

func (s *ServiceSuite) TestInitialCountsFrozenAtLoad() {
	svc := s.load(sampleCSV)

	counts := svc.InitialCountByPosition()
	s.Equal(2, counts[model.PositionRB])

	// Returned map is a copy; mutating it must not leak back.
	counts[model.PositionRB] = 99
	s.Equal(2, svc.InitialCountByPosition()[model.PositionRB])
}
