package model

// NominationKind discriminates what the nomination prompt resolved to.
type NominationKind int

const (
	NominationQuit NominationKind = iota
	NominationShowTeams
	NominationUndo
	NominationPlayer
)

// NominationInput is the tagged result of the nomination prompt. Call
// sites switch on Kind rather than comparing sentinel strings.
type NominationInput struct {
	Kind   NominationKind
	Player *Player // set only for NominationPlayer
}
