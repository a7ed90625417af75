package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mcoot/auctionclerk/internal/model"
)

// Service is the immutable-for-the-session view over the loaded player
// table. Drafted status is owned by the session and supplied to queries
// as a set of names.
type Service struct {
	players      []model.Player
	byName       map[string]*model.Player
	initialByPos map[model.Position]int
	logger       *slog.Logger
}

// Load reads the player catalog from a CSV file.
func Load(path string, logger *slog.Logger) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f, path, logger)
}

// FromReader parses a catalog from r; source names the origin in error
// messages. Required columns: name, salary (header match is case and
// whitespace insensitive). Optional: position, tier, proteam.
func FromReader(r io.Reader, source string, logger *slog.Logger) (*Service, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", source)
	}

	cols := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"name", "salary"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q in %s", required, source)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	svc := &Service{
		byName:       make(map[string]*model.Player),
		initialByPos: make(map[model.Position]int),
		logger:       logger,
	}
	for _, row := range records[1:] {
		p := model.Player{
			Name:     cell(row, "name"),
			Position: model.ParsePosition(cell(row, "position")),
			Tier:     cell(row, "tier"),
			ProTeam:  strings.ToUpper(cell(row, "proteam")),
		}
		if p.Name == "" {
			continue
		}
		if raw := cell(row, "salary"); raw != "" {
			salary, convErr := strconv.Atoi(raw)
			if convErr != nil || salary < 0 {
				return nil, fmt.Errorf("invalid salary %q for player %q in %s", raw, p.Name, source)
			}
			p.Salary = salary
			p.HasSalary = true
		}
		svc.players = append(svc.players, p)
	}

	// Index after the slice is final so the pointers stay valid.
	for i := range svc.players {
		p := &svc.players[i]
		if _, seen := svc.byName[p.Name]; !seen {
			svc.byName[p.Name] = p
		}
		svc.initialByPos[p.Position]++
	}

	logger.Info("catalog loaded",
		slog.String("source", source),
		slog.Int("players", len(svc.players)),
	)
	return svc, nil
}

// Size returns the number of catalog rows.
func (s *Service) Size() int {
	return len(s.players)
}

// NamesExcluding returns undrafted player names in source order.
func (s *Service) NamesExcluding(drafted map[string]bool) []string {
	names := make([]string, 0, len(s.players))
	for i := range s.players {
		if !drafted[s.players[i].Name] {
			names = append(names, s.players[i].Name)
		}
	}
	return names
}

// ByName returns the first catalog row with the given name. Duplicate
// names are a known source ambiguity; first occurrence wins.
func (s *Service) ByName(name string) (*model.Player, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// RemainingCountByPosition counts undrafted players at pos.
func (s *Service) RemainingCountByPosition(pos model.Position, drafted map[string]bool) int {
	count := 0
	for i := range s.players {
		if s.players[i].Position == pos && !drafted[s.players[i].Name] {
			count++
		}
	}
	return count
}

// RemainingValue sums base salaries over undrafted players. Rows with a
// blank salary contribute nothing.
func (s *Service) RemainingValue(drafted map[string]bool) int {
	total := 0
	for i := range s.players {
		if !drafted[s.players[i].Name] && s.players[i].HasSalary {
			total += s.players[i].Salary
		}
	}
	return total
}

// UndraftedByPosition returns undrafted players at pos sorted by
// descending base salary; ties keep source order.
func (s *Service) UndraftedByPosition(pos model.Position, drafted map[string]bool) []*model.Player {
	var pool []*model.Player
	for i := range s.players {
		if s.players[i].Position == pos && !drafted[s.players[i].Name] {
			pool = append(pool, &s.players[i])
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Salary > pool[j].Salary
	})
	return pool
}

// InitialCountByPosition returns the per-position counts computed once at
// load. This is the scarcity denominator and is never recomputed.
func (s *Service) InitialCountByPosition() map[model.Position]int {
	out := make(map[model.Position]int, len(s.initialByPos))
	for pos, n := range s.initialByPos {
		out[pos] = n
	}
	return out
}

// Interface for dependency injection
type ServiceInterface interface {
	Size() int
	NamesExcluding(drafted map[string]bool) []string
	ByName(name string) (*model.Player, bool)
	RemainingCountByPosition(pos model.Position, drafted map[string]bool) int
	RemainingValue(drafted map[string]bool) int
	UndraftedByPosition(pos model.Position, drafted map[string]bool) []*model.Player
	InitialCountByPosition() map[model.Position]int
}

var _ ServiceInterface = (*Service)(nil)
