package seating

import "strings"

// TableStyle identifies a seating configuration offered in the planning tool.
type TableStyle string

const (
	StyleRound60 TableStyle = "round60"
	StyleRound72 TableStyle = "round72"
	StyleRect6   TableStyle = "rect6"
	StyleRect8   TableStyle = "rect8"
)

const (
	// DefaultStyle is the style preselected in the planning tool.
	DefaultStyle = StyleRound60
	// DefaultGuestCount is the guest count preselected in the planning tool.
	DefaultGuestCount = 64
	// DefaultCapacity applies to any style outside the known set.
	DefaultCapacity = 8
)

// StyleInfo describes a table style for display.
type StyleInfo struct {
	ID       TableStyle `json:"id"`
	Label    string     `json:"label"`
	Sub      string     `json:"sub"`
	Capacity int        `json:"capacity"`
	Round    bool       `json:"round"`
}

var aliases = map[string]TableStyle{
	"small-round":       StyleRound60,
	"large-round":       StyleRound72,
	"utility-rectangle": StyleRect6,
	"banquet-rectangle": StyleRect8,
}

// Capacity returns the seats per table for the style. Unrecognized styles
// seat DefaultCapacity.
func (s TableStyle) Capacity() int {
	switch s {
	case StyleRound60:
		return 8
	case StyleRound72:
		return 10
	case StyleRect6:
		return 6
	case StyleRect8:
		return 8
	default:
		return DefaultCapacity
	}
}

// IsRound reports whether the style id denotes a round table.
func (s TableStyle) IsRound() bool {
	return strings.HasPrefix(string(s), "round")
}

// Known reports whether s is one of the four offered styles.
func (s TableStyle) Known() bool {
	switch s {
	case StyleRound60, StyleRound72, StyleRect6, StyleRect8:
		return true
	}
	return false
}

// ParseTableStyle maps user input to a TableStyle. Both ids ("round60") and
// descriptive names ("small-round") are accepted. Anything else is returned
// as-is so the caller still gets the default capacity.
func ParseTableStyle(s string) TableStyle {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return DefaultStyle
	}
	if st, ok := aliases[v]; ok {
		return st
	}
	return TableStyle(v)
}

// Styles lists the offered table styles in display order.
func Styles() []StyleInfo {
	return []StyleInfo{
		{ID: StyleRound60, Label: `60" Round`, Sub: "Seats 8", Capacity: StyleRound60.Capacity(), Round: true},
		{ID: StyleRound72, Label: `72" Round`, Sub: "Seats 10", Capacity: StyleRound72.Capacity(), Round: true},
		{ID: StyleRect6, Label: "6ft Utility", Sub: "Seats 6", Capacity: StyleRect6.Capacity(), Round: false},
		{ID: StyleRect8, Label: "8ft Banquet", Sub: "Seats 8", Capacity: StyleRect8.Capacity(), Round: false},
	}
}
