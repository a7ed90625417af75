package model

import "strings"

// Position is a roster position, uppercase-normalized at load time.
type Position string

// PositionUnknown is assigned when the catalog has no position column or
// an empty cell.
const PositionUnknown Position = "UNKNOWN"

// Standard fantasy football positions. These carry base roster
// requirements in the pricing engine; anything else passes through as-is.
const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionDST Position = "D/ST"
	PositionK   Position = "K"
)

// ParsePosition normalizes a raw position cell. Unrecognized positions
// pass through uppercased rather than collapsing to UNKNOWN, so catalogs
// with exotic slots still group correctly.
func ParsePosition(raw string) Position {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return PositionUnknown
	}
	return Position(raw)
}

// Player is one row of the loaded catalog. Immutable after load; drafted
// status lives in the session's drafted set, never on the player.
type Player struct {
	Name      string
	Position  Position
	Salary    int
	HasSalary bool   // false when the salary cell was blank
	Tier      string // optional scarcity bucket
	ProTeam   string // optional display string
}
