package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-planner/internal/advisor"
	"rental-planner/internal/config"
	"rental-planner/internal/events"
	"rental-planner/internal/metrics"
	"rental-planner/internal/shared"
)

type mockAdvisor struct {
	advice   advisor.Advice
	meta     shared.AgentMeta
	err      error
	calls    int
	lastReq  advisor.AdviceRequest
	deadline bool
}

func (m *mockAdvisor) RequestEventAdvice(ctx context.Context, req advisor.AdviceRequest) (advisor.Advice, shared.AgentMeta, error) {
	m.calls++
	m.lastReq = req
	_, m.deadline = ctx.Deadline()
	return m.advice, m.meta, m.err
}

type recordedMeta struct {
	meta    shared.AgentMeta
	success bool
}

type mockMetrics struct {
	recorded []recordedMeta
	daily    []metrics.DailyUsage
	removed  int64
	err      error
}

func (m *mockMetrics) RecordMeta(meta shared.AgentMeta, success bool) error {
	m.recorded = append(m.recorded, recordedMeta{meta, success})
	return m.err
}

func (m *mockMetrics) GetDailyUsage(days int) ([]metrics.DailyUsage, error) {
	return m.daily, m.err
}

func (m *mockMetrics) Cleanup(days int) (int64, error) {
	return m.removed, m.err
}

type mockPublisher struct {
	events []events.LeadEvent
	err    error
}

func (m *mockPublisher) PublishLead(ctx context.Context, e events.LeadEvent) error {
	m.events = append(m.events, e)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{AdviceTimeout: 30 * time.Second, DatabasePath: "testdata/metrics.db"}
}

var goodAdvice = advisor.Advice{
	Recommendations: []string{"Crossback chairs"},
	LayoutStrategy:  "Long banquet rows.",
	SuggestedAddons: []string{"Heaters"},
	ProTip:          "Confirm venue load-in times.",
}

func TestGenerateAdvice(t *testing.T) {
	meta := shared.AgentMeta{AgentName: "Advisor", Usage: shared.TokenUsage{PromptTokens: 10, CompletionTokens: 20}}

	t.Run("Success", func(t *testing.T) {
		adv := &mockAdvisor{advice: goodAdvice, meta: meta}
		store := &mockMetrics{}
		pub := &mockPublisher{}
		a := NewApp(adv, store, pub, testConfig())

		got, err := a.GenerateAdvice(context.Background(), AdviceInput{
			Description: "Garden wedding",
			GuestCount:  5000,
			Source:      "http",
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.ProTip != goodAdvice.ProTip {
			t.Errorf("Unexpected advice %+v", got)
		}

		if adv.lastReq.GuestCount != 1000 {
			t.Errorf("Expected guest count clamped to 1000, got %d", adv.lastReq.GuestCount)
		}
		if adv.lastReq.Location != "North Carolina" {
			t.Errorf("Expected default location label, got '%s'", adv.lastReq.Location)
		}
		if !adv.deadline {
			t.Error("Expected the advice call to carry a deadline")
		}

		if len(store.recorded) != 1 || !store.recorded[0].success {
			t.Errorf("Expected one successful metric, got %+v", store.recorded)
		}
		if len(pub.events) != 1 {
			t.Fatalf("Expected one lead event, got %d", len(pub.events))
		}
		if e := pub.events[0]; !e.Success || e.Source != "http" || e.GuestCount != 1000 {
			t.Errorf("Unexpected lead event %+v", e)
		}
	})

	t.Run("InvalidArgument", func(t *testing.T) {
		adv := &mockAdvisor{err: advisor.ErrInvalidArgument}
		store := &mockMetrics{}
		pub := &mockPublisher{}
		a := NewApp(adv, store, pub, testConfig())

		_, err := a.GenerateAdvice(context.Background(), AdviceInput{Description: " "})
		if !errors.Is(err, advisor.ErrInvalidArgument) {
			t.Fatalf("Expected ErrInvalidArgument, got %v", err)
		}
		if len(store.recorded) != 0 || len(pub.events) != 0 {
			t.Error("Expected no metrics or lead events for an invalid request")
		}
	})

	t.Run("GenerationFailed", func(t *testing.T) {
		adv := &mockAdvisor{advice: goodAdvice, meta: meta, err: advisor.ErrAdviceGenerationFailed}
		store := &mockMetrics{}
		pub := &mockPublisher{}
		a := NewApp(adv, store, pub, testConfig())

		got, err := a.GenerateAdvice(context.Background(), AdviceInput{Description: "Gala", GuestCount: 40, Location: "Cary"})
		if !errors.Is(err, advisor.ErrAdviceGenerationFailed) {
			t.Fatalf("Expected ErrAdviceGenerationFailed, got %v", err)
		}
		if got.ProTip != "" || got.Recommendations != nil {
			t.Errorf("Expected zero advice on failure, got %+v", got)
		}
		if len(store.recorded) != 1 || store.recorded[0].success {
			t.Errorf("Expected one failed metric, got %+v", store.recorded)
		}
		if len(pub.events) != 1 || pub.events[0].Success {
			t.Errorf("Expected one failed lead event, got %+v", pub.events)
		}
	})

	t.Run("PublishAndMetricsErrorsIgnored", func(t *testing.T) {
		adv := &mockAdvisor{advice: goodAdvice, meta: meta}
		a := NewApp(adv, &mockMetrics{err: errors.New("disk full")}, &mockPublisher{err: errors.New("broker down")}, testConfig())

		if _, err := a.GenerateAdvice(context.Background(), AdviceInput{Description: "Gala"}); err != nil {
			t.Errorf("Expected side-effect failures to be swallowed, got %v", err)
		}
	})

	t.Run("NilPublisher", func(t *testing.T) {
		a := NewApp(&mockAdvisor{advice: goodAdvice}, nil, nil, nil)
		if _, err := a.GenerateAdvice(context.Background(), AdviceInput{Description: "Gala"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}

func TestPlanSeating(t *testing.T) {
	a := NewApp(&mockAdvisor{}, nil, nil, nil)

	p := a.PlanSeating(100, "large-round")
	if p.TablesNeeded != 10 || p.ChairsNeeded != 100 || !p.IsRound {
		t.Errorf("Unexpected plan %+v", p)
	}

	p = a.PlanSeating(-3, "")
	if p.TablesNeeded != 0 || p.ChairsNeeded != 0 {
		t.Errorf("Expected an empty plan, got %+v", p)
	}
}

func TestUsage(t *testing.T) {
	store := &mockMetrics{daily: []metrics.DailyUsage{{Date: "2026-03-10", TotalExecution: 3}}}
	a := NewApp(&mockAdvisor{}, store, nil, testConfig())

	report, err := a.Usage(7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Days != 7 || len(report.Daily) != 1 {
		t.Errorf("Unexpected report %+v", report)
	}

	if _, err := a.Usage(0); err == nil {
		t.Error("Expected an error for zero days")
	}

	empty, err := NewApp(&mockAdvisor{}, &mockMetrics{}, nil, testConfig()).Usage(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if empty.Daily == nil {
		t.Error("Expected an empty, non-nil daily list")
	}
}

func TestCleanupMetrics(t *testing.T) {
	a := NewApp(&mockAdvisor{}, &mockMetrics{removed: 4}, nil, testConfig())
	n, err := a.CleanupMetrics(30)
	if err != nil || n != 4 {
		t.Errorf("Expected 4 rows removed, got %d (%v)", n, err)
	}
	if _, err := a.CleanupMetrics(-1); err == nil {
		t.Error("Expected an error for negative days")
	}
	if _, err := NewApp(&mockAdvisor{}, nil, nil, nil).CleanupMetrics(3); err == nil {
		t.Error("Expected an error without a metrics store")
	}
}
