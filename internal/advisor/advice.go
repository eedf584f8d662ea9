// Package advisor turns a free-text event description into structured
// rental advice using a generative text model.
package advisor

import (
	"errors"

	"rental-planner/internal/llm"
)

var (
	// ErrInvalidArgument is returned before any provider call when the
	// request carries no description.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAdviceGenerationFailed covers transport failures and any response
	// that does not match the advice shape.
	ErrAdviceGenerationFailed = errors.New("advice generation failed")
)

// AdviceRequest is the input to a single advice call.
type AdviceRequest struct {
	Description string `json:"description"`
	GuestCount  int    `json:"guest_count"`
	Location    string `json:"location"`
}

// Advice is the structured rental guidance returned by the model.
type Advice struct {
	Recommendations []string `json:"recommendations"`
	LayoutStrategy  string   `json:"layoutStrategy"`
	SuggestedAddons []string `json:"suggestedAddons"`
	ProTip          string   `json:"proTip"`
}

const (
	fieldRecommendations = "recommendations"
	fieldLayoutStrategy  = "layoutStrategy"
	fieldSuggestedAddons = "suggestedAddons"
	fieldProTip          = "proTip"
)

var requiredFields = []string{
	fieldRecommendations,
	fieldLayoutStrategy,
	fieldSuggestedAddons,
	fieldProTip,
}

var adviceSchema = &llm.Schema{
	Type: llm.TypeObject,
	Properties: map[string]*llm.Schema{
		fieldRecommendations: {
			Type:        llm.TypeArray,
			Items:       &llm.Schema{Type: llm.TypeString},
			Description: "Specific equipment recommendations (chairs, tables, etc.)",
		},
		fieldLayoutStrategy: {
			Type:        llm.TypeString,
			Description: "Expert advice on seating layout and flow",
		},
		fieldSuggestedAddons: {
			Type:        llm.TypeArray,
			Items:       &llm.Schema{Type: llm.TypeString},
			Description: "Extra items like lighting, heaters, or decor",
		},
		fieldProTip: {
			Type:        llm.TypeString,
			Description: "A professional insider tip for this specific type of event",
		},
	},
	Required: requiredFields,
}

// AdviceSchema returns the response shape requested from the provider.
func AdviceSchema() *llm.Schema {
	return adviceSchema
}
