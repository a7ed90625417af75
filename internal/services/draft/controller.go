package draft

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/itbasis/go-clock"

	"github.com/mcoot/auctionclerk/internal/model"
	"github.com/mcoot/auctionclerk/internal/services/catalog"
	"github.com/mcoot/auctionclerk/internal/services/match"
	"github.com/mcoot/auctionclerk/internal/services/pricing"
	"github.com/mcoot/auctionclerk/internal/services/teams"
	"github.com/mcoot/auctionclerk/internal/ui"
)

// Player-resolution and label layout parameters.
const (
	matchLimit     = 20
	labelNameWidth = 28
	proTeamWidth   = 4
)

// Keywords recognized at the nomination prompt.
var (
	quitWords  = map[string]bool{"q": true, "quit": true, "exit": true}
	teamsWords = map[string]bool{"teams": true, ":teams": true}
	undoWords  = map[string]bool{"undo": true, ":undo": true}
)

// Controller drives one nomination→price→team→commit cycle at a time and
// owns the undoable pick history. It is the single owner of session
// mutation; every other component only reads draft state.
type Controller struct {
	catalog  *catalog.Service
	matcher  *match.Service
	pricer   *pricing.Service
	registry *teams.Service
	selector ui.Selector
	session  *model.Session
	clock    clock.Clock
	logger   *slog.Logger

	myTeam string
	in     *bufio.Reader
	out    io.Writer
}

// NewController creates a new DraftController. myTeam names the team the
// pricing need factor is computed against.
func NewController(
	cat *catalog.Service,
	matcher *match.Service,
	pricer *pricing.Service,
	registry *teams.Service,
	selector ui.Selector,
	session *model.Session,
	clk clock.Clock,
	myTeam string,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		catalog:  cat,
		matcher:  matcher,
		pricer:   pricer,
		registry: registry,
		selector: selector,
		session:  session,
		clock:    clk,
		logger:   logger,
		myTeam:   myTeam,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run loops over nomination cycles until the catalog is exhausted or the
// user quits. End of input anywhere at the nomination prompt quits; at
// the price or team prompts it only abandons the current cycle.
func (c *Controller) Run() error {
	for {
		if len(c.catalog.NamesExcluding(c.session.Drafted)) == 0 {
			fmt.Fprintln(c.out, "All players drafted. Draft complete.")
			c.logger.Info("draft complete", slog.Int("picks", len(c.session.History)))
			return nil
		}

		input := c.promptNomination()
		switch input.Kind {
		case model.NominationQuit:
			fmt.Fprintln(c.out, "Exiting draft.")
			return nil
		case model.NominationShowTeams:
			c.printTeamSummary()
		case model.NominationUndo:
			c.undoLast()
		case model.NominationPlayer:
			c.runCycle(input.Player)
		}
	}
}

// promptNomination reads free text until it resolves to a command or a
// single player. Blank input re-prompts; end of input quits.
func (c *Controller) promptNomination() model.NominationInput {
	for {
		raw, err := c.readLine("Player (or 'teams'/'undo'/'q'): ")
		if err != nil {
			return model.NominationInput{Kind: model.NominationQuit}
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		lowered := strings.ToLower(raw)
		switch {
		case quitWords[lowered]:
			return model.NominationInput{Kind: model.NominationQuit}
		case teamsWords[lowered]:
			return model.NominationInput{Kind: model.NominationShowTeams}
		case undoWords[lowered]:
			return model.NominationInput{Kind: model.NominationUndo}
		}

		player, ok := c.resolvePlayer(raw)
		if !ok {
			continue
		}
		return model.NominationInput{Kind: model.NominationPlayer, Player: player}
	}
}

// resolvePlayer fuzzy-matches raw against undrafted names. One hit
// auto-selects; several open the selection menu; a menu cancel returns
// to the nomination prompt.
func (c *Controller) resolvePlayer(raw string) (*model.Player, bool) {
	names := c.catalog.NamesExcluding(c.session.Drafted)
	matches := c.matcher.Rank(raw, names, matchLimit, match.DefaultMinScore)
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "No matches. Try again.")
		return nil, false
	}

	chosen := matches[0]
	if len(matches) > 1 {
		options := make([]ui.Option, 0, len(matches))
		for _, name := range matches {
			player, ok := c.catalog.ByName(name)
			if !ok {
				continue
			}
			options = append(options, ui.Option{Label: playerLabel(player), Value: name})
		}
		var ok bool
		chosen, ok = c.selector.ChooseValue("Select player", options)
		if !ok {
			return nil, false
		}
	}

	player, ok := c.catalog.ByName(chosen)
	if !ok {
		// Matches always come from the catalog, so a miss here is a data
		// inconsistency rather than user error. Recover and re-prompt.
		fmt.Fprintln(c.out, "Unexpected selection; please try again.")
		c.logger.Warn("resolved name missing from catalog", slog.String("name", chosen))
		return nil, false
	}
	return player, true
}

// runCycle takes a resolved player through price and team entry and
// commits the pick. A cancel at either prompt abandons the cycle with no
// state change.
func (c *Controller) runCycle(player *model.Player) {
	fmt.Fprintf(c.out, "Selected: %s (%s)\n", player.Name, player.Position)

	var suggested *int
	if price, ok := c.pricer.Suggest(player, c.session, c.myTeam); ok {
		suggested = &price
		fmt.Fprintf(c.out, "Suggested price: $%d (base $%d)\n", price, player.Salary)
	} else {
		fmt.Fprintln(c.out, "Suggested price: n/a")
	}

	price, ok := c.promptPrice(suggested)
	if !ok {
		fmt.Fprintln(c.out, "Cancelled. Back to player search.")
		return
	}

	team, ok := c.promptTeam()
	if !ok {
		fmt.Fprintln(c.out, "Cancelled. Back to player search.")
		return
	}

	c.commit(player, team, price)
}

// promptPrice accepts a non-negative whole number, or blank to take the
// default when one exists. End of input cancels the cycle.
func (c *Controller) promptPrice(def *int) (int, bool) {
	prompt := "Price: "
	if def != nil {
		prompt = fmt.Sprintf("Price [$%d]: ", *def)
	}
	for {
		raw, err := c.readLine(prompt)
		if err != nil {
			return 0, false
		}
		raw = strings.TrimSpace(raw)
		if raw == "" && def != nil {
			return *def, true
		}
		price, convErr := strconv.Atoi(raw)
		if convErr != nil || price < 0 {
			fmt.Fprintln(c.out, "Enter a whole number (e.g., 15)")
			continue
		}
		return price, true
	}
}

// promptTeam reads team queries until the registry resolves one. A menu
// cancel re-prompts for a fresh query; end of input cancels the cycle.
func (c *Controller) promptTeam() (*model.Team, bool) {
	for {
		raw, err := c.readLine("Team: ")
		if err != nil {
			return nil, false
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		team, resolveErr := c.registry.ResolveOrCreate(raw)
		if resolveErr != nil {
			if errors.Is(resolveErr, model.ErrSelectionCancelled) {
				continue
			}
			fmt.Fprintf(c.out, "Could not resolve team: %v\n", resolveErr)
			continue
		}
		return team, true
	}
}

func (c *Controller) commit(player *model.Player, team *model.Team, price int) {
	team.AddPick(player.Position, price)
	c.session.Commit(model.Pick{
		PlayerName: player.Name,
		Position:   player.Position,
		Price:      price,
		TeamName:   team.Name,
		PickedAt:   c.clock.Now(),
	})

	c.logger.Info("pick committed",
		slog.String("player", player.Name),
		slog.String("position", string(player.Position)),
		slog.Int("price", price),
		slog.String("team", team.Name),
	)

	fmt.Fprintf(c.out, "Assigned %s to %s for $%d. Remaining for %s: $%d.\n",
		player.Name, team.Name, price, team.Name, team.Remaining())
	c.printTeamSummary()
}

// undoLast reverses the most recent pick exactly: spend, roster count,
// and drafted mark. A no-op with a message when history is empty.
func (c *Controller) undoLast() {
	pick, ok := c.session.Undo()
	if !ok {
		fmt.Fprintln(c.out, "Nothing to undo.")
		return
	}
	if team, found := c.registry.Get(pick.TeamName); found {
		team.RemovePick(pick.Position, pick.Price)
	}

	c.logger.Info("pick undone",
		slog.String("player", pick.PlayerName),
		slog.String("team", pick.TeamName),
		slog.Int("price", pick.Price),
	)

	fmt.Fprintf(c.out, "Undid: %s from %s (-$%d).\n", pick.PlayerName, pick.TeamName, pick.Price)
	c.printTeamSummary()
}

// printTeamSummary renders every team's spend and per-position roster,
// sorted by name case-insensitively.
func (c *Controller) printTeamSummary() {
	all := c.registry.All()
	if len(all) == 0 {
		fmt.Fprintln(c.out, "No teams yet.")
		return
	}
	fmt.Fprintln(c.out, "\nTeams:")
	for _, team := range all {
		fmt.Fprintf(c.out, "- %s: spent $%d, remaining $%d | %s\n",
			team.Name, team.Spent, team.Remaining(), rosterSummary(team))
	}
	fmt.Fprintln(c.out)
}

// rosterSummary formats roster counts sorted alphabetically by position.
func rosterSummary(team *model.Team) string {
	if len(team.Roster) == 0 {
		return "no picks"
	}
	positions := make([]string, 0, len(team.Roster))
	for pos := range team.Roster {
		positions = append(positions, string(pos))
	}
	sort.Strings(positions)

	parts := make([]string, 0, len(positions))
	for _, pos := range positions {
		parts = append(parts, fmt.Sprintf("%s:%d", pos, team.Roster[model.Position(pos)]))
	}
	return strings.Join(parts, ", ")
}

// playerLabel is a fixed-width menu row: name (ellipsis-truncated),
// pro team, position.
func playerLabel(p *model.Player) string {
	name := p.Name
	if runes := []rune(name); len(runes) > labelNameWidth {
		name = string(runes[:labelNameWidth-1]) + "…"
	}
	return fmt.Sprintf("%-*s  %-*s  %s", labelNameWidth, name, proTeamWidth, p.ProTeam, p.Position)
}

// readLine prints the prompt and reads one line. A final line without a
// trailing newline is still returned before the error surfaces.
func (c *Controller) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
