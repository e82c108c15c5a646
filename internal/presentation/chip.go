// Package presentation maps record statuses to the chip labels and color
// tokens the console renders, and formats numbers for display.
package presentation

// Color tokens understood by the console theme.
const (
	ColorDefault   = "default"
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorSuccess   = "success"
	ColorWarning   = "warning"
	ColorError     = "error"
)

const (
	VariantFilled   = "filled"
	VariantOutlined = "outlined"
)

// Chip is the rendered form of a status value.
type Chip struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Variant string `json:"variant,omitempty"`
	// Status is an optional workflow caption shown next to the chip.
	Status string `json:"status,omitempty"`
}

// Table is a fixed status → chip lookup with a fallback key.
type Table[S ~string] struct {
	entries    map[S]Chip
	fallback   S
	defaultHit Chip
}

// NewTable builds a lookup table. The fallback key must be one of entries.
func NewTable[S ~string](fallback S, entries map[S]Chip) Table[S] {
	return Table[S]{
		entries:    entries,
		fallback:   fallback,
		defaultHit: entries[fallback],
	}
}

// Lookup returns the chip for s, or the fallback chip when s is unknown.
func (t Table[S]) Lookup(s S) Chip {
	if c, ok := t.entries[s]; ok {
		return c
	}
	return t.defaultHit
}

// Fallback returns the key used for unknown values.
func (t Table[S]) Fallback() S { return t.fallback }

// Known reports whether s has its own entry.
func (t Table[S]) Known(s S) bool {
	_, ok := t.entries[s]
	return ok
}
