package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rental-planner/internal/advisor"
	"rental-planner/internal/app"
	"rental-planner/internal/catalog"
	"rental-planner/internal/seating"
)

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

const helpText = `🪑 *Event Rental Planner*

Describe your event in a message and I will suggest the rentals you need.

/guests N - set the guest count (0-1000)
/style ID - round60, round72, rect6 or rect8
/location TOWN - set the town (/location alone clears it)
/plan - show tables and chairs for your settings
/catalog [category] - browse the inventory
/locations - towns we deliver to`

func formatSettings(s Session) string {
	return fmt.Sprintf("⚙️ *Current settings*\nGuests: %d\nStyle: %s\nLocation: %s",
		s.GuestCount, esc(string(s.Style)), esc(catalog.LocationLabel(s.Location)))
}

func formatPlan(p seating.Plan) string {
	var sb strings.Builder
	shape := "rectangular"
	if p.IsRound {
		shape = "round"
	}
	sb.WriteString("📐 *Seating Plan*\n\n")
	fmt.Fprintf(&sb, "Guests: %d\n", p.GuestCount)
	fmt.Fprintf(&sb, "Tables: *%d* (%s, seats %d)\n", p.TablesNeeded, shape, p.CapacityPerTable)
	fmt.Fprintf(&sb, "Chairs: *%d*\n", p.ChairsNeeded)
	if extra := p.ExtraTables(); extra > 0 {
		fmt.Fprintf(&sb, "\n_Showing %d tables, + %d More Tables Not Shown_\n", p.VisualCount, extra)
	}
	return sb.String()
}

func formatAdvice(a advisor.Advice) string {
	var sb strings.Builder
	sb.WriteString("✨ *Rental Advice*\n\n")

	sb.WriteString("🪑 *Recommendations*\n")
	for _, r := range a.Recommendations {
		fmt.Fprintf(&sb, "• %s\n", esc(r))
	}

	fmt.Fprintf(&sb, "\n📐 *Layout Strategy*\n%s\n", esc(a.LayoutStrategy))

	sb.WriteString("\n💡 *Suggested Add-ons*\n")
	for _, s := range a.SuggestedAddons {
		fmt.Fprintf(&sb, "• %s\n", esc(s))
	}

	fmt.Fprintf(&sb, "\n⭐ *Pro Tip*\n_%s_\n", esc(a.ProTip))
	return sb.String()
}

func formatCatalog(items []catalog.Item) string {
	if len(items) == 0 {
		return "No items in that category. Try: " + strings.Join(catalog.Categories(), ", ")
	}
	var sb strings.Builder
	sb.WriteString("📦 *Inventory*\n\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "• *%s* (%s) $%.2f\n  %s\n", esc(it.Name), esc(it.Category), it.Price, esc(it.Description))
	}
	return sb.String()
}

func formatLocations(locs []string) string {
	return "📍 *We deliver to*\n" + esc(strings.Join(locs, ", "))
}

func formatUsage(r app.UsageReport) string {
	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(r.Daily) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range r.Daily {
		fmt.Fprintf(&sb, "• *%s*: %d tokens (%d execs, %d failed)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution, d.Failures)
	}

	sb.WriteString("\n🧠 *System Health*\n")
	fmt.Fprintf(&sb, "• RAM: %dMB (Alloc) / %dMB (Sys)\n", r.Health.AllocMB, r.Health.SysMB)
	fmt.Fprintf(&sb, "• Goroutines: %d\n", r.Health.Goroutines)
	fmt.Fprintf(&sb, "• Disk Data: %s\n", r.Health.DataDiskSize)
	fmt.Fprintf(&sb, "• Uptime: %s\n", r.Health.Uptime)
	return sb.String()
}
