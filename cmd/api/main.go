package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meeting-conflict-resolver/config"
	_ "meeting-conflict-resolver/docs" // Swagger docs
	"meeting-conflict-resolver/internal/httpserver"
	"meeting-conflict-resolver/internal/resolution/slotfinder"
	"meeting-conflict-resolver/internal/resolution/usecase"
	"meeting-conflict-resolver/pkg/datemath"
	"meeting-conflict-resolver/pkg/gcalendar"
	"meeting-conflict-resolver/pkg/llmprovider"
	"meeting-conflict-resolver/pkg/log"
	"meeting-conflict-resolver/pkg/rulestore"
)

// @title       Meeting Conflict Resolver API
// @description Detects overlapping calendar meetings and reschedules them with LLM-assisted prioritization, per-user priority rules, and free/busy aware slot search.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Conflict Resolver...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Resolver mode: %s, prioritization: %s", cfg.Resolver.Mode, cfg.Resolver.Prioritization)

	// 3. DateMath parser
	timezone := cfg.Resolver.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
		timezone = "UTC"
	}
	loc, _ := time.LoadLocation(timezone)

	// 4. Google Calendar client
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar unavailable: %v", err)
		logger.Error(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	// 5. Rule store (optional)
	var ruleStore usecase.RuleStore
	if cfg.RuleStore.URL != "" {
		rs, rsErr := rulestore.New(rulestore.Config{
			BaseURL:   cfg.RuleStore.URL,
			Timeout:   parseDurationOr(cfg.RuleStore.Timeout, 5*time.Second),
			CacheSize: cfg.RuleStore.CacheSize,
			CacheTTL:  parseDurationOr(cfg.RuleStore.CacheTTL, 5*time.Minute),
		})
		if rsErr != nil {
			logger.Errorf(ctx, "Failed to initialize rule store: %v", rsErr)
			return
		}
		ruleStore = rs
		logger.Infof(ctx, "Rule store initialized at %s", cfg.RuleStore.URL)
	} else {
		logger.Warn(ctx, "Rule store not configured, resolving without priority rules")
	}

	// 6. LLM oracle (only needed for oracle prioritization)
	var oracle usecase.Oracle
	if cfg.Resolver.Prioritization == "oracle" {
		providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
		if provErr != nil {
			logger.Errorf(ctx, "Failed to initialize LLM providers: %v", provErr)
			return
		}
		oracle = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, 2*time.Second),
			MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 30*time.Second),
		}, logger)
		logger.Infof(ctx, "LLM oracle initialized with %d provider(s)", len(providers))
	} else {
		logger.Info(ctx, "Given-order prioritization configured, skipping LLM providers")
	}

	// 7. Slot finder
	finder := slotfinder.New(
		slotfinder.WithGranularity(time.Duration(cfg.Resolver.SlotGranularityMinutes)*time.Minute),
		slotfinder.WithMaxCandidates(cfg.Resolver.MaxCandidateSlots),
		slotfinder.WithLocation(loc),
	)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Calendar:    calendarClient,
		RuleStore:   ruleStore,
		Oracle:      oracle,
		Finder:      finder,
		DateMath:    dateMathParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
