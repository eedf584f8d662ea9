package seating

import "testing"

func TestLayout(t *testing.T) {
	t.Run("CappedRound", func(t *testing.T) {
		glyphs := ComputePlan(200, StyleRound72).Layout()
		if len(glyphs) != MaxVisualTables {
			t.Fatalf("expected %d glyphs, got %d", MaxVisualTables, len(glyphs))
		}
		if glyphs[0].Label != "T1" || glyphs[11].Label != "T12" {
			t.Errorf("unexpected labels %q..%q", glyphs[0].Label, glyphs[11].Label)
		}
		g := glyphs[0]
		if !g.Round {
			t.Error("expected round glyph")
		}
		if len(g.Chairs) != 10 {
			t.Fatalf("expected 10 chairs, got %d", len(g.Chairs))
		}
		if g.Chairs[0].AngleDeg != 0 || g.Chairs[5].AngleDeg != 180 {
			t.Errorf("unexpected angles %v, %v", g.Chairs[0].AngleDeg, g.Chairs[5].AngleDeg)
		}
		if g.Chairs[3].Distance != roundChairDistance {
			t.Errorf("expected distance %d, got %d", roundChairDistance, g.Chairs[3].Distance)
		}
	})

	t.Run("Rectangular", func(t *testing.T) {
		glyphs := ComputePlan(6, StyleRect6).Layout()
		if len(glyphs) != 1 {
			t.Fatalf("expected 1 glyph, got %d", len(glyphs))
		}
		if glyphs[0].Round {
			t.Error("expected rectangular glyph")
		}
		if glyphs[0].Chairs[1].AngleDeg != 60 || glyphs[0].Chairs[1].Distance != rectChairDistance {
			t.Errorf("unexpected chair %+v", glyphs[0].Chairs[1])
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if glyphs := ComputePlan(0, StyleRound60).Layout(); len(glyphs) != 0 {
			t.Errorf("expected no glyphs, got %d", len(glyphs))
		}
	})
}
