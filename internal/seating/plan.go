// Package seating sizes table and chair orders from a guest count and
// produces the bounded table layout shown in the planning tool.
package seating

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxGuests is the largest guest count the planning tool accepts.
	MaxGuests = 1000
	// MaxVisualTables caps how many table glyphs are rendered.
	MaxVisualTables = 12

	roundChairDistance = 42
	rectChairDistance  = 36
)

// Plan is the derived seating order for a guest count and table style.
type Plan struct {
	Style            TableStyle `json:"style"`
	GuestCount       int        `json:"guest_count"`
	TablesNeeded     int        `json:"tables_needed"`
	ChairsNeeded     int        `json:"chairs_needed"`
	VisualCount      int        `json:"visual_count"`
	CapacityPerTable int        `json:"capacity_per_table"`
	IsRound          bool       `json:"is_round"`
}

// ComputePlan derives the seating plan. It never fails: negative guest
// counts are treated as zero and unknown styles seat DefaultCapacity.
func ComputePlan(guestCount int, style TableStyle) Plan {
	if guestCount < 0 {
		guestCount = 0
	}
	capacity := style.Capacity()
	tables := (guestCount + capacity - 1) / capacity

	return Plan{
		Style:            style,
		GuestCount:       guestCount,
		TablesNeeded:     tables,
		ChairsNeeded:     guestCount,
		VisualCount:      min(tables, MaxVisualTables),
		CapacityPerTable: capacity,
		IsRound:          style.IsRound(),
	}
}

// ExtraTables is the number of tables not shown in the layout.
func (p Plan) ExtraTables() int {
	return p.TablesNeeded - p.VisualCount
}

// Summary renders the plan as a short human readable text.
func (p Plan) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Guests: %d\n", p.GuestCount)
	fmt.Fprintf(&sb, "Table style: %s (seats %d)\n", p.Style, p.CapacityPerTable)
	fmt.Fprintf(&sb, "Total tables: %d\n", p.TablesNeeded)
	fmt.Fprintf(&sb, "Total chairs: %d\n", p.ChairsNeeded)
	if extra := p.ExtraTables(); extra > 0 {
		fmt.Fprintf(&sb, "+ %d More Tables Not Shown\n", extra)
	}
	return sb.String()
}

// ClampGuestCount bounds a requested guest count to [0, MaxGuests].
func ClampGuestCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxGuests {
		return MaxGuests
	}
	return n
}

// ParseGuestCount reads the leading integer of s and clamps it. Input with
// no leading digits counts as zero guests.
func ParseGuestCount(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || end == 0 && (c == '-' || c == '+') {
			end++
			continue
		}
		break
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Atoi reports range errors with the saturated value.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			if strings.HasPrefix(s, "-") {
				return 0
			}
			return MaxGuests
		}
		return 0
	}
	return ClampGuestCount(n)
}
