package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"rental-planner/internal/advisor"
	"rental-planner/internal/app"
	"rental-planner/internal/catalog"
	"rental-planner/internal/config"
	"rental-planner/internal/database"
	"rental-planner/internal/events"
	"rental-planner/internal/llm"
	"rental-planner/internal/metrics"
	"rental-planner/internal/seating"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "plan":
		runPlan(args)
	case "advise":
		runAdvise(args)
	case "catalog":
		runCatalog(args)
	case "locations":
		for _, l := range catalog.Locations() {
			fmt.Println(l)
		}
	case "metrics":
		runMetrics(args)
	case "metrics-cleanup":
		runMetricsCleanup(args)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	guests := fs.Int("guests", seating.DefaultGuestCount, "Number of guests (0-1000)")
	style := fs.String("style", string(seating.DefaultStyle), "Table style: round60, round72, rect6, rect8")
	asJSON := fs.Bool("json", false, "Print the plan and layout as JSON")
	fs.Parse(args)

	plan := seating.ComputePlan(seating.ClampGuestCount(*guests), seating.ParseTableStyle(*style))
	if *asJSON {
		printJSON(struct {
			seating.Plan
			ExtraTables int                  `json:"extra_tables"`
			Layout      []seating.TableGlyph `json:"layout"`
		}{plan, plan.ExtraTables(), plan.Layout()})
		return
	}
	fmt.Print(plan.Summary())
}

func runAdvise(args []string) {
	fs := flag.NewFlagSet("advise", flag.ExitOnError)
	guests := fs.Int("guests", seating.DefaultGuestCount, "Number of guests (0-1000)")
	location := fs.String("location", "", "Serviceable town (empty for anywhere in North Carolina)")
	description := fs.String("description", "", "Free-text event description")
	fs.Parse(args)

	if *description == "" && fs.NArg() > 0 {
		*description = strings.Join(fs.Args(), " ")
	}
	if *location != "" {
		town, ok := catalog.NormalizeLocation(*location)
		if !ok {
			log.Fatalf("Location %q is not in the service area. Run 'locations' for the list.", *location)
		}
		*location = town
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	textGen, closer, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s client: %v", cfg.LLMProvider, err)
	}
	defer closer.Close()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	publisher, err := events.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize events publisher: %v", err)
	}
	defer publisher.Close()

	application := app.NewApp(advisor.NewAdvisor(textGen), metrics.NewStore(db.SQL), publisher, cfg)

	fmt.Printf("Requesting advice for %d guests in %s...\n", seating.ClampGuestCount(*guests), catalog.LocationLabel(*location))
	advice, err := application.GenerateAdvice(ctx, app.AdviceInput{
		Description: *description,
		GuestCount:  *guests,
		Location:    *location,
		Source:      "cli",
	})
	if err != nil {
		log.Fatalf("Advice request failed: %v", err)
	}

	fmt.Println("\n=== RECOMMENDATIONS ===")
	for _, r := range advice.Recommendations {
		fmt.Printf("- %s\n", r)
	}
	fmt.Println("\n=== LAYOUT STRATEGY ===")
	fmt.Println(advice.LayoutStrategy)
	fmt.Println("\n=== SUGGESTED ADD-ONS ===")
	for _, s := range advice.SuggestedAddons {
		fmt.Printf("- %s\n", s)
	}
	fmt.Println("\n=== PRO TIP ===")
	fmt.Println(advice.ProTip)
}

func runCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	category := fs.String("category", "", "Only show items in this category")
	fs.Parse(args)

	for _, it := range catalog.ByCategory(*category) {
		fmt.Printf("%-3s %-28s %-9s $%7.2f  %s\n", it.ID, it.Name, it.Category, it.Price, it.Description)
	}
}

func openMetricsApp() (*app.App, func()) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return app.NewApp(nil, metrics.NewStore(db.SQL), nil, cfg), func() { db.Close() }
}

func runMetrics(args []string) {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	days := fs.Int("days", 7, "Report the last N days")
	fs.Parse(args)

	application, closeDB := openMetricsApp()
	defer closeDB()

	report, err := application.Usage(*days)
	if err != nil {
		log.Fatalf("Failed to load usage: %v", err)
	}
	if len(report.Daily) == 0 {
		fmt.Println("No usage recorded yet.")
	}
	for _, d := range report.Daily {
		fmt.Printf("%s  prompt=%d completion=%d executions=%d failures=%d\n",
			d.Date, d.TotalPrompt, d.TotalCompletion, d.TotalExecution, d.Failures)
	}
	fmt.Printf("\nRAM %dMB alloc / %dMB sys, data dir %s\n", report.Health.AllocMB, report.Health.SysMB, report.Health.DataDiskSize)
}

func runMetricsCleanup(args []string) {
	fs := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
	days := fs.Int("days", 30, "Keep records for the last N days")
	fs.Parse(args)

	application, closeDB := openMetricsApp()
	defer closeDB()

	affected, err := application.CleanupMetrics(*days)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
	fmt.Printf("Successfully removed %d old metric records.\n", affected)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}

func printUsage() {
	fmt.Println("Usage: rental-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan               Compute tables and chairs (-guests N -style S [-json])")
	fmt.Println("  advise             Ask for rental advice (-guests N -location L -description D)")
	fmt.Println("  catalog            List rental items (-category C)")
	fmt.Println("  locations          List serviceable towns")
	fmt.Println("  metrics            Show recent model usage (-days N)")
	fmt.Println("  metrics-cleanup    Remove old metric records (-days N)")
}
