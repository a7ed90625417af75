package model

import "time"

// Pick is one completed assignment. The ordered history of picks is the
// single source of truth for undo; attribution of individual picks to
// teams lives only here, never on Player or Team.
type Pick struct {
	PlayerName string
	Position   Position
	Price      int
	TeamName   string
	PickedAt   time.Time
}

// Session is the mutable draft state: which players are gone and the
// ordered pick history. The draft controller is its single owner; no
// other component mutates it.
type Session struct {
	Drafted map[string]bool
	History []Pick
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{Drafted: make(map[string]bool)}
}

// Commit marks the player drafted and appends the pick to history.
func (s *Session) Commit(pick Pick) {
	s.Drafted[pick.PlayerName] = true
	s.History = append(s.History, pick)
}

// Undo pops the most recent pick and clears its drafted mark. Returns
// false when there is nothing to undo.
func (s *Session) Undo() (Pick, bool) {
	if len(s.History) == 0 {
		return Pick{}, false
	}
	last := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	delete(s.Drafted, last.PlayerName)
	return last, true
}
