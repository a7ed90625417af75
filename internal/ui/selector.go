package ui

// Option pairs a display label with the value a selection resolves to.
type Option struct {
	Label string
	Value string
}

// Selector resolves one value from a list of options. Implementations
// must leave the terminal usable on every exit path.
type Selector interface {
	// Choose returns the selected option, or ok=false on cancel.
	Choose(title string, options []string) (choice string, ok bool)
	// ChooseValue selects by label and maps back to the paired value.
	// The first matching label wins when labels are duplicated.
	ChooseValue(title string, options []Option) (value string, ok bool)
}
