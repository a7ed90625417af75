package teams

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/auctionclerk/internal/model"
	"github.com/mcoot/auctionclerk/internal/services/match"
	"github.com/mcoot/auctionclerk/internal/ui"
)

// suggestionLimit caps the fuzzy matches offered in the team menu.
const suggestionLimit = 10

// Service is the registry of auction teams. Team names are
// case-sensitive keys; resolving the same name always yields the same
// instance.
type Service struct {
	matcher  *match.Service
	selector ui.Selector
	budget   int
	teams    map[string]*model.Team
	logger   *slog.Logger
}

// New creates an empty registry. budget applies to every team the
// registry creates; model.DefaultBudget when non-positive.
func New(matcher *match.Service, selector ui.Selector, budget int, logger *slog.Logger) *Service {
	if budget <= 0 {
		budget = model.DefaultBudget
	}
	return &Service{
		matcher:  matcher,
		selector: selector,
		budget:   budget,
		teams:    make(map[string]*model.Team),
		logger:   logger,
	}
}

// ResolveOrCreate resolves a free-text query to a team. An exact-name hit
// returns that team with no menu. Otherwise fuzzy suggestions are offered
// behind a leading create-new option; with no suggestions at all the team
// is created directly without prompting. A menu cancel returns
// model.ErrSelectionCancelled so the caller can re-prompt for a fresh
// query instead of aborting.
func (s *Service) ResolveOrCreate(query string) (*model.Team, error) {
	if team, ok := s.teams[query]; ok {
		return team, nil
	}

	suggestions := s.matcher.Rank(query, s.names(), suggestionLimit, match.DefaultMinScore)
	if len(suggestions) == 0 {
		return s.create(query), nil
	}

	createLabel := fmt.Sprintf("Create new team '%s'", query)
	options := append([]string{createLabel}, suggestions...)

	choice, ok := s.selector.Choose("Select team or create new", options)
	if !ok {
		return nil, model.ErrSelectionCancelled
	}
	if choice == createLabel {
		return s.create(query), nil
	}
	team, ok := s.teams[choice]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return team, nil
}

// Get returns the team registered under name.
func (s *Service) Get(name string) (*model.Team, bool) {
	team, ok := s.teams[name]
	return team, ok
}

// GetOrCreate returns the named team, registering it with the default
// budget when absent. Used to bootstrap the designated my-team.
func (s *Service) GetOrCreate(name string) *model.Team {
	if team, ok := s.teams[name]; ok {
		return team
	}
	return s.create(name)
}

// All returns the registered teams sorted by name, case-insensitively.
func (s *Service) All() []*model.Team {
	out := make([]*model.Team, 0, len(s.teams))
	for _, team := range s.teams {
		out = append(out, team)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Count returns the number of registered teams.
func (s *Service) Count() int {
	return len(s.teams)
}

func (s *Service) names() []string {
	names := make([]string, 0, len(s.teams))
	for name := range s.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) create(name string) *model.Team {
	team := model.NewTeam(name, s.budget)
	s.teams[name] = team
	s.logger.Info("team created",
		slog.String("team", name),
		slog.Int("budget", s.budget),
	)
	return team
}
