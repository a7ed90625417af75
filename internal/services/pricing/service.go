package pricing

import (
	"log/slog"
	"math"
	"strings"

	"github.com/mcoot/auctionclerk/internal/model"
	"github.com/mcoot/auctionclerk/internal/services/catalog"
	"github.com/mcoot/auctionclerk/internal/services/teams"
)

// The product of all adjustment factors is clamped once, at the end,
// before rounding.
const (
	capMin = 0.6
	capMax = 1.3

	inflationMin = 0.85
	inflationMax = 1.15

	needHighMultiplier = 1.10
	needMedMultiplier  = 1.02
	needLowMultiplier  = 0.85

	supplyWeightHigh = 0.25
	supplyWeightMed  = 0.10

	tierGapWeight = 0.5
	tierGapCap    = 0.2
)

// needLevel classifies how urgently the designated team wants a position.
type needLevel int

const (
	needLow needLevel = iota
	needMed
	needHigh
)

// Base roster requirements, plus one FLEX slot fillable by RB/WR/TE
// overflow.
var baseRequirements = map[model.Position]int{
	model.PositionQB:  1,
	model.PositionRB:  2,
	model.PositionWR:  2,
	model.PositionTE:  1,
	model.PositionDST: 1,
	model.PositionK:   1,
}

const flexSlots = 1

var flexEligible = map[model.Position]bool{
	model.PositionRB: true,
	model.PositionWR: true,
	model.PositionTE: true,
}

// Service computes adjusted suggested prices for nominations.
type Service struct {
	catalog  *catalog.Service
	registry *teams.Service
	logger   *slog.Logger
}

// New creates a new pricing engine over the given catalog and registry.
func New(catalog *catalog.Service, registry *teams.Service, logger *slog.Logger) *Service {
	return &Service{
		catalog:  catalog,
		registry: registry,
		logger:   logger,
	}
}

// Suggest returns the adjusted price for a nomination, or ok=false when
// the player has no base salary to adjust. The designated myTeam is
// auto-created with the default budget when absent, since the need
// factor is computed against it. All five factors are computed before
// multiplying; the product is clamped once and rounded half away from
// zero.
func (s *Service) Suggest(player *model.Player, session *model.Session, myTeam string) (int, bool) {
	if !player.HasSalary {
		return 0, false
	}

	team := s.registry.GetOrCreate(myTeam)
	need := s.needFor(team, player.Position)

	inflation := s.inflationFactor(session)
	needMult := needMultiplier(need)
	supply := s.supplyFactor(player.Position, session, need)
	tierGap := s.tierGapFactor(player, session)
	tierScarcity := s.tierScarcityFactor(player, session, need)

	adjustment := clamp(inflation*needMult*supply*tierGap*tierScarcity, capMin, capMax)
	price := int(math.Round(float64(player.Salary) * adjustment))

	s.logger.Debug("price suggested",
		slog.String("player", player.Name),
		slog.Int("base", player.Salary),
		slog.Int("suggested", price),
		slog.Float64("inflation", inflation),
		slog.Float64("need", needMult),
		slog.Float64("supply", supply),
		slog.Float64("tier_gap", tierGap),
		slog.Float64("tier_scarcity", tierScarcity),
	)
	return price, true
}

// inflationFactor compares league-wide spendable budget to the fair value
// left on the board. Base salaries are calibrated so the two sums start
// equal; any deviation signals market-wide over- or under-spending.
// Neutral while no teams exist or the remaining value is non-positive.
func (s *Service) inflationFactor(session *model.Session) float64 {
	all := s.registry.All()
	if len(all) == 0 {
		return 1.0
	}
	totalRemaining := 0
	for _, team := range all {
		totalRemaining += team.Remaining()
	}
	remainingValue := s.catalog.RemainingValue(session.Drafted)
	if remainingValue <= 0 {
		return 1.0
	}
	return clamp(float64(totalRemaining)/float64(remainingValue), inflationMin, inflationMax)
}

// needFor classifies the team's appetite at pos: high while the base
// requirement is unmet, med for flex-eligible positions while the FLEX
// slot is open, low otherwise.
func (s *Service) needFor(team *model.Team, pos model.Position) needLevel {
	if team.Roster[pos] < baseRequirements[pos] {
		return needHigh
	}
	if flexEligible[pos] && s.flexOpen(team) {
		return needMed
	}
	return needLow
}

// flexOpen reports whether RB/WR/TE overflow has not yet consumed the
// FLEX slot.
func (s *Service) flexOpen(team *model.Team) bool {
	overflow := 0
	for pos := range flexEligible {
		if extra := team.Roster[pos] - baseRequirements[pos]; extra > 0 {
			overflow += extra
		}
	}
	if overflow > flexSlots {
		overflow = flexSlots
	}
	return overflow < flexSlots
}

func needMultiplier(need needLevel) float64 {
	switch need {
	case needHigh:
		return needHighMultiplier
	case needMed:
		return needMedMultiplier
	default:
		return needLowMultiplier
	}
}

// supplyFactor nudges the price up as a position's pool dries up.
// Skipped entirely when the position had no players on record at load.
func (s *Service) supplyFactor(pos model.Position, session *model.Session, need needLevel) float64 {
	initial := s.catalog.InitialCountByPosition()[pos]
	if initial == 0 {
		return 1.0
	}

	var weight float64
	switch need {
	case needHigh:
		weight = supplyWeightHigh
	case needMed:
		weight = supplyWeightMed
	default:
		return 1.0
	}

	remaining := s.catalog.RemainingCountByPosition(pos, session.Drafted)
	scarcity := 1.0 - float64(remaining)/float64(initial)
	if scarcity < 0 {
		scarcity = 0
	}
	return 1.0 + scarcity*weight
}

// tierGapFactor rewards a large salary drop to the next-best remaining
// player at the position. Neutral for the cheapest remaining player and
// when the nominated player cannot be located in the remaining pool.
func (s *Service) tierGapFactor(player *model.Player, session *model.Session) float64 {
	pool := s.catalog.UndraftedByPosition(player.Position, session.Drafted)
	idx := -1
	for i, p := range pool {
		if p.Name == player.Name {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(pool) || player.Salary <= 0 {
		return 1.0
	}

	next := pool[idx+1]
	gapRatio := float64(player.Salary-next.Salary) / float64(player.Salary)
	if gapRatio < 0 {
		gapRatio = 0
	}
	bump := gapRatio * tierGapWeight
	if bump > tierGapCap {
		bump = tierGapCap
	}
	return 1.0 + bump
}

// tierScarcityFactor bumps the price when few undrafted players share the
// nominated player's tier at the position. Neutral without a tier label.
func (s *Service) tierScarcityFactor(player *model.Player, session *model.Session, need needLevel) float64 {
	if strings.TrimSpace(player.Tier) == "" {
		return 1.0
	}

	remaining := 0
	for _, p := range s.catalog.UndraftedByPosition(player.Position, session.Drafted) {
		if p.Tier == player.Tier {
			remaining++
		}
	}

	switch need {
	case needHigh:
		switch {
		case remaining <= 1:
			return 1.10
		case remaining <= 3:
			return 1.05
		}
	case needMed:
		if remaining <= 1 {
			return 1.05
		}
	}
	return 1.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Interface for dependency injection
type ServiceInterface interface {
	Suggest(player *model.Player, session *model.Session, myTeam string) (int, bool)
}

var _ ServiceInterface = (*Service)(nil)
