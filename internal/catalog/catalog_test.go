package catalog

import (
	"reflect"
	"testing"
)

func TestItems(t *testing.T) {
	items := Items()
	if len(items) != 6 {
		t.Fatalf("Expected 6 items, got %d", len(items))
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	if !reflect.DeepEqual(ids, []string{"c1", "c2", "t1", "t2", "d1", "d2"}) {
		t.Errorf("Unexpected item order %v", ids)
	}

	t.Run("ReturnsCopy", func(t *testing.T) {
		items[0].Name = "changed"
		if Items()[0].Name != "White Resin Folding Chair" {
			t.Error("Mutating the returned slice changed the catalog")
		}
	})
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		category string
		expected []string
	}{
		{"Chairs", []string{"c1", "c2"}},
		{"tables", []string{"t1", "t2"}},
		{" DECOR ", []string{"d1"}},
		{"Flooring", []string{"d2"}},
		{"Tents", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := []string{}
			for _, it := range ByCategory(tt.category) {
				got = append(got, it.ID)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	if len(ByCategory("")) != 6 {
		t.Error("Expected an empty category to return every item")
	}
}

func TestFind(t *testing.T) {
	it, ok := Find("d2")
	if !ok {
		t.Fatal("Expected to find d2")
	}
	if it.Price != 250.00 || it.Category != "Flooring" {
		t.Errorf("Unexpected item %+v", it)
	}
	if _, ok := Find("zz"); ok {
		t.Error("Expected unknown id to be missing")
	}
}

func TestCategories(t *testing.T) {
	expected := []string{"Chairs", "Tables", "Decor", "Flooring"}
	if got := Categories(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestLocations(t *testing.T) {
	locs := Locations()
	if len(locs) != 11 {
		t.Fatalf("Expected 11 locations, got %d", len(locs))
	}
	if locs[0] != "Wake Forest" || locs[10] != "Holly Springs" {
		t.Errorf("Unexpected order %v", locs)
	}

	locs[0] = "Durham"
	if Locations()[0] != "Wake Forest" {
		t.Error("Mutating the returned slice changed the locations")
	}
}

func TestIsServiceable(t *testing.T) {
	for _, name := range []string{"Raleigh", "holly springs", " Cary "} {
		if !IsServiceable(name) {
			t.Errorf("Expected %q to be serviceable", name)
		}
	}
	for _, name := range []string{"", "Durham", "Chapel Hill"} {
		if IsServiceable(name) {
			t.Errorf("Expected %q not to be serviceable", name)
		}
	}

	if got, _ := NormalizeLocation("wake forest"); got != "Wake Forest" {
		t.Errorf("Expected canonical 'Wake Forest', got '%s'", got)
	}
}

func TestLocationLabel(t *testing.T) {
	if got := LocationLabel(""); got != "North Carolina" {
		t.Errorf("Expected 'North Carolina', got '%s'", got)
	}
	if got := LocationLabel("Apex"); got != "Apex" {
		t.Errorf("Expected 'Apex', got '%s'", got)
	}
}
