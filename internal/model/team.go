package model

// DefaultBudget is the per-team auction budget used when a team is
// created without an explicit one.
const DefaultBudget = 200

// Team tracks one auction participant's budget, spend, and roster.
type Team struct {
	Name   string
	Budget int
	Spent  int
	Roster map[Position]int
}

// NewTeam creates a team with no spend and an empty roster.
func NewTeam(name string, budget int) *Team {
	return &Team{
		Name:   name,
		Budget: budget,
		Roster: make(map[Position]int),
	}
}

// Remaining is the budget left to spend. It may go negative when a human
// overrides a price above budget; the assistant advises, it does not
// enforce.
func (t *Team) Remaining() int {
	return t.Budget - t.Spent
}

// AddPick records a purchase at the given position.
func (t *Team) AddPick(pos Position, price int) {
	t.Spent += price
	t.Roster[pos]++
}

// RemovePick reverses AddPick: spent is floored at zero and the roster
// key is removed when its count reaches zero.
func (t *Team) RemovePick(pos Position, price int) {
	t.Spent -= price
	if t.Spent < 0 {
		t.Spent = 0
	}
	if n, ok := t.Roster[pos]; ok {
		if n <= 1 {
			delete(t.Roster, pos)
		} else {
			t.Roster[pos] = n - 1
		}
	}
}
