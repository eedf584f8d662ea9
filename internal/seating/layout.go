package seating

import "fmt"

// ChairPosition places one chair around a table glyph.
type ChairPosition struct {
	AngleDeg float64 `json:"angle_deg"`
	Distance int     `json:"distance"`
}

// TableGlyph is one rendered table with its chairs.
type TableGlyph struct {
	Label  string          `json:"label"`
	Round  bool            `json:"round"`
	Chairs []ChairPosition `json:"chairs"`
}

// Layout returns the glyphs to draw for the plan, at most MaxVisualTables.
// Chairs are spread evenly around each table; round tables keep them at a
// wider radius than rectangular ones.
func (p Plan) Layout() []TableGlyph {
	dist := rectChairDistance
	if p.IsRound {
		dist = roundChairDistance
	}

	glyphs := make([]TableGlyph, 0, p.VisualCount)
	for i := 0; i < p.VisualCount; i++ {
		chairs := make([]ChairPosition, p.CapacityPerTable)
		for j := range chairs {
			chairs[j] = ChairPosition{
				AngleDeg: float64(j) / float64(p.CapacityPerTable) * 360,
				Distance: dist,
			}
		}
		glyphs = append(glyphs, TableGlyph{
			Label:  fmt.Sprintf("T%d", i+1),
			Round:  p.IsRound,
			Chairs: chairs,
		})
	}
	return glyphs
}
