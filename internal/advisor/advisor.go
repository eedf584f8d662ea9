package advisor

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"rental-planner/internal/llm"
	"rental-planner/internal/shared"
)

//go:embed advisor_prompt.md
var advisorPrompt string

var promptTmpl = template.Must(template.New("advisor").Parse(advisorPrompt))

// AgentName identifies advice calls in execution metrics.
const AgentName = "Advisor"

// Advisor requests event advice from a text generator.
type Advisor struct {
	textGen llm.TextGenerator
}

// NewAdvisor creates an Advisor backed by textGen.
func NewAdvisor(textGen llm.TextGenerator) *Advisor {
	return &Advisor{textGen: textGen}
}

// RequestEventAdvice issues one provider call for req and returns the parsed
// advice. The call is made once; deadlines come from ctx. The returned meta
// carries token usage whenever the provider reported it, including on
// validation failures.
func (a *Advisor) RequestEventAdvice(ctx context.Context, req AdviceRequest) (Advice, shared.AgentMeta, error) {
	meta := shared.AgentMeta{AgentName: AgentName}
	if strings.TrimSpace(req.Description) == "" {
		return Advice{}, meta, fmt.Errorf("%w: description is empty", ErrInvalidArgument)
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return Advice{}, meta, fmt.Errorf("%w: %v", ErrAdviceGenerationFailed, err)
	}

	start := time.Now()
	resp, err := a.textGen.GenerateContent(ctx, prompt, adviceSchema)
	meta.Usage = resp.Usage
	meta.Latency = time.Since(start)
	if err != nil {
		return Advice{}, meta, fmt.Errorf("%w: %w", ErrAdviceGenerationFailed, err)
	}

	advice, err := ParseAdvice(resp.Content)
	if err != nil {
		return Advice{}, meta, err
	}
	return advice, meta, nil
}

// BuildPrompt renders the advice prompt for req.
func BuildPrompt(req AdviceRequest) (string, error) {
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("failed to render advisor prompt: %w", err)
	}
	return buf.String(), nil
}

// ParseAdvice decodes a provider payload. Every required field must be
// present, non-null and of the declared type; otherwise the whole payload is
// rejected with ErrAdviceGenerationFailed.
func ParseAdvice(payload string) (Advice, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Advice{}, fmt.Errorf("%w: empty response", ErrAdviceGenerationFailed)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return Advice{}, fmt.Errorf("%w: malformed response: %v", ErrAdviceGenerationFailed, err)
	}

	for _, name := range requiredFields {
		v, ok := raw[name]
		if !ok || string(bytes.TrimSpace(v)) == "null" {
			return Advice{}, fmt.Errorf("%w: missing field %q", ErrAdviceGenerationFailed, name)
		}
	}

	var advice Advice
	fields := []struct {
		name string
		dst  any
	}{
		{fieldRecommendations, &advice.Recommendations},
		{fieldLayoutStrategy, &advice.LayoutStrategy},
		{fieldSuggestedAddons, &advice.SuggestedAddons},
		{fieldProTip, &advice.ProTip},
	}
	for _, f := range fields {
		if err := json.Unmarshal(raw[f.name], f.dst); err != nil {
			return Advice{}, fmt.Errorf("%w: field %q has the wrong type: %v", ErrAdviceGenerationFailed, f.name, err)
		}
	}
	return advice, nil
}
