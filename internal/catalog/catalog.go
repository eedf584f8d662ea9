// Package catalog holds the read-only rental inventory and the towns the
// business delivers to.
package catalog

import "strings"

// Item is a rentable product.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// DefaultRegion labels advice requests made without a selected town.
const DefaultRegion = "North Carolina"

var inventory = []Item{
	{ID: "c1", Name: "White Resin Folding Chair", Category: "Chairs", Price: 3.50, Image: "https://picsum.photos/seed/chair1/400/400", Description: "Padded seat, perfect for weddings."},
	{ID: "c2", Name: "Natural Wood Crossback", Category: "Chairs", Price: 8.00, Image: "https://picsum.photos/seed/chair2/400/400", Description: "Elegant rustic charm for any venue."},
	{ID: "t1", Name: `60" Round Table`, Category: "Tables", Price: 12.00, Image: "https://picsum.photos/seed/table1/400/400", Description: "Seats 8 guests comfortably."},
	{ID: "t2", Name: "8ft Banquet Table", Category: "Tables", Price: 10.00, Image: "https://picsum.photos/seed/table2/400/400", Description: "Standard rectangular table for buffet or seating."},
	{ID: "d1", Name: "Cafe String Lights (50ft)", Category: "Decor", Price: 45.00, Image: "https://picsum.photos/seed/light1/400/400", Description: "Warm ambiance for outdoor events."},
	{ID: "d2", Name: "Oak Dance Floor (12x12)", Category: "Flooring", Price: 250.00, Image: "https://picsum.photos/seed/dance1/400/400", Description: "Professional grade interlocking panels."},
}

var locations = []string{
	"Wake Forest",
	"Raleigh",
	"Morrisville",
	"Apex",
	"Cary",
	"Rolesville",
	"Youngsville",
	"Franklinton",
	"Creedmoor",
	"Louisburg",
	"Holly Springs",
}

// Items returns a copy of the full inventory.
func Items() []Item {
	out := make([]Item, len(inventory))
	copy(out, inventory)
	return out
}

// ByCategory returns the items whose category matches, ignoring case. An
// empty category returns everything.
func ByCategory(category string) []Item {
	category = strings.TrimSpace(category)
	if category == "" {
		return Items()
	}
	out := []Item{}
	for _, it := range inventory {
		if strings.EqualFold(it.Category, category) {
			out = append(out, it)
		}
	}
	return out
}

// Find looks up an item by id.
func Find(id string) (Item, bool) {
	for _, it := range inventory {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Categories lists the distinct categories in inventory order.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range inventory {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

// Locations returns a copy of the serviceable towns.
func Locations() []string {
	out := make([]string, len(locations))
	copy(out, locations)
	return out
}

// NormalizeLocation returns the canonical spelling of a serviceable town.
func NormalizeLocation(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, l := range locations {
		if strings.EqualFold(l, name) {
			return l, true
		}
	}
	return "", false
}

// IsServiceable reports whether name is a town the business delivers to.
func IsServiceable(name string) bool {
	_, ok := NormalizeLocation(name)
	return ok
}

// LocationLabel is the location text used in advice requests.
func LocationLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultRegion
	}
	return name
}
