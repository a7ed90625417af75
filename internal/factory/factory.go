package factory

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/itbasis/go-clock"

	"github.com/mcoot/auctionclerk/internal/model"
	"github.com/mcoot/auctionclerk/internal/services/catalog"
	"github.com/mcoot/auctionclerk/internal/services/draft"
	"github.com/mcoot/auctionclerk/internal/services/match"
	"github.com/mcoot/auctionclerk/internal/services/pricing"
	"github.com/mcoot/auctionclerk/internal/services/teams"
	"github.com/mcoot/auctionclerk/internal/ui"
)

// DefaultMyTeam is the team the pricing need factor is computed against
// when none is configured.
const DefaultMyTeam = "Me"

// App contains all wired application components
type App struct {
	// External dependencies
	Clock clock.Clock

	// Services
	Catalog    *catalog.Service
	Matcher    *match.Service
	Registry   *teams.Service
	Pricing    *pricing.Service
	Session    *model.Session
	Controller *draft.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// CSVPath is the path to the player salary CSV (required)
	CSVPath string
	// Budget is the per-team auction budget
	// If non-positive, defaults to model.DefaultBudget
	Budget int
	// MyTeam names the team need-based pricing is computed for
	// If empty, defaults to DefaultMyTeam
	MyTeam string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Input and Output carry the draft prompt loop (optional)
	// If nil, default to os.Stdin and os.Stdout
	Input  io.Reader
	Output io.Writer
	// Selector resolves ambiguous player and team queries (optional)
	// If nil, an interactive menu over Input/Output is used
	Selector ui.Selector
	// Clock supplies pick timestamps (optional)
	// If nil, the wall clock is used
	Clock clock.Clock
}

// New creates a new application with all dependencies wired, loading the
// player catalog from cfg.CSVPath.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var in io.Reader = os.Stdin
	if cfg.Input != nil {
		in = cfg.Input
	}
	// One shared buffer, so the menu fallback and the draft prompts never
	// read past each other. Rewrapping downstream is a no-op.
	in = bufio.NewReader(in)

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	selector := cfg.Selector
	if selector == nil {
		selector = ui.NewMenu(in, out, logger)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	myTeam := cfg.MyTeam
	if myTeam == "" {
		myTeam = DefaultMyTeam
	}

	cat, err := catalog.Load(cfg.CSVPath, logger)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(cat, selector, clk, cfg.Budget, myTeam, in, out, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	cat *catalog.Service,
	selector ui.Selector,
	clk clock.Clock,
	budget int,
	myTeam string,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *App {
	matcher := match.New()
	registry := teams.New(matcher, selector, budget, logger)
	pricer := pricing.New(cat, registry, logger)
	session := model.NewSession()
	controller := draft.NewController(cat, matcher, pricer, registry, selector, session, clk, myTeam, in, out, logger)

	return &App{
		Clock:      clk,
		Catalog:    cat,
		Matcher:    matcher,
		Registry:   registry,
		Pricing:    pricer,
		Session:    session,
		Controller: controller,
	}
}
