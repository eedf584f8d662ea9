// Package app wires the advisor, metrics store and lead publisher into the
// operations shared by the CLI, the HTTP API and the Telegram bot.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"rental-planner/internal/advisor"
	"rental-planner/internal/catalog"
	"rental-planner/internal/config"
	"rental-planner/internal/events"
	"rental-planner/internal/metrics"
	"rental-planner/internal/seating"
	"rental-planner/internal/shared"
)

const publishTimeout = 5 * time.Second

// AdviceRequester produces event advice.
type AdviceRequester interface {
	RequestEventAdvice(ctx context.Context, req advisor.AdviceRequest) (advisor.Advice, shared.AgentMeta, error)
}

// MetricsStore persists and reports execution metrics.
type MetricsStore interface {
	RecordMeta(meta shared.AgentMeta, success bool) error
	GetDailyUsage(days int) ([]metrics.DailyUsage, error)
	Cleanup(olderThanDays int) (int64, error)
}

// App holds the application's dependencies.
type App struct {
	advisor   AdviceRequester
	metrics   MetricsStore
	publisher events.Publisher
	cfg       *config.Config
}

// NewApp creates and initializes a new App instance. A nil publisher drops
// lead events.
func NewApp(adv AdviceRequester, metricsStore MetricsStore, publisher events.Publisher, cfg *config.Config) *App {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &App{
		advisor:   adv,
		metrics:   metricsStore,
		publisher: publisher,
		cfg:       cfg,
	}
}

// AdviceInput is an advice request as entered by a user. Location may be
// empty; GuestCount is clamped to the supported range.
type AdviceInput struct {
	Description string
	GuestCount  int
	Location    string
	TableStyle  string
	Source      string
}

// GenerateAdvice requests advice for in under the configured timeout,
// records the call and announces the lead.
func (a *App) GenerateAdvice(ctx context.Context, in AdviceInput) (advisor.Advice, error) {
	req := advisor.AdviceRequest{
		Description: in.Description,
		GuestCount:  seating.ClampGuestCount(in.GuestCount),
		Location:    catalog.LocationLabel(in.Location),
	}

	if a.cfg != nil && a.cfg.AdviceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.AdviceTimeout)
		defer cancel()
	}

	advice, meta, err := a.advisor.RequestEventAdvice(ctx, req)
	if errors.Is(err, advisor.ErrInvalidArgument) {
		return advisor.Advice{}, err
	}

	if a.metrics != nil {
		if recErr := a.metrics.RecordMeta(meta, err == nil); recErr != nil {
			log.Printf("Warning: failed to record metrics for %s: %v", meta.AgentName, recErr)
		}
	}

	if err != nil {
		log.Printf("Advice request failed (source=%s guests=%d location=%q): %v", in.Source, req.GuestCount, req.Location, err)
	}

	a.publishLead(ctx, in, req, err == nil)

	if err != nil {
		return advisor.Advice{}, err
	}
	return advice, nil
}

func (a *App) publishLead(ctx context.Context, in AdviceInput, req advisor.AdviceRequest, success bool) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.LeadEvent{
		Description: req.Description,
		GuestCount:  req.GuestCount,
		Location:    req.Location,
		TableStyle:  in.TableStyle,
		Source:      in.Source,
		Success:     success,
		OccurredAt:  time.Now().UTC(),
	}
	if err := a.publisher.PublishLead(pubCtx, event); err != nil {
		log.Printf("Warning: failed to publish lead event: %v", err)
	}
}

// PlanSeating computes a seating plan from raw user input.
func (a *App) PlanSeating(guestCount int, style string) seating.Plan {
	return seating.ComputePlan(seating.ClampGuestCount(guestCount), seating.ParseTableStyle(style))
}

// UsageReport summarizes recent model usage and process health.
type UsageReport struct {
	Days   int                  `json:"days"`
	Daily  []metrics.DailyUsage `json:"daily"`
	Health metrics.SysHealth    `json:"health"`
}

// Usage returns token usage for the last days days.
func (a *App) Usage(days int) (UsageReport, error) {
	if days <= 0 {
		return UsageReport{}, fmt.Errorf("days must be positive, got %d", days)
	}
	if a.metrics == nil {
		return UsageReport{}, errors.New("metrics store not configured")
	}
	daily, err := a.metrics.GetDailyUsage(days)
	if err != nil {
		return UsageReport{}, fmt.Errorf("failed to load usage: %w", err)
	}
	if daily == nil {
		daily = []metrics.DailyUsage{}
	}

	report := UsageReport{Days: days, Daily: daily}
	if a.cfg != nil {
		report.Health = metrics.GetSysHealth(filepath.Dir(a.cfg.DatabasePath))
	}
	return report, nil
}

// CleanupMetrics deletes metrics older than days days.
func (a *App) CleanupMetrics(days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("days must be positive, got %d", days)
	}
	if a.metrics == nil {
		return 0, errors.New("metrics store not configured")
	}
	return a.metrics.Cleanup(days)
}
