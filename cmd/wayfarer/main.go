package main

import (
	"fmt"
	"os"

	"github.com/wayfarer-dev/wayfarer/internal/cache"
	"github.com/wayfarer-dev/wayfarer/internal/cli"
	"github.com/wayfarer-dev/wayfarer/internal/config"
	"github.com/wayfarer-dev/wayfarer/internal/costing"
	"github.com/wayfarer-dev/wayfarer/internal/db"
	"github.com/wayfarer-dev/wayfarer/internal/intelligence"
	"github.com/wayfarer-dev/wayfarer/internal/llm"
	"github.com/wayfarer-dev/wayfarer/internal/providers"
	"github.com/wayfarer-dev/wayfarer/internal/repository"
	"github.com/wayfarer-dev/wayfarer/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	trips := repository.NewSQLiteTripRepo(database)

	// LLM client: real Ollama backend when enabled, otherwise a disabled
	// client so every generator takes its deterministic fallback path.
	var llmObserver llm.Observer = llm.NoopObserver{}
	if cfg.Debug || cfg.LLM.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	var llmClient llm.Client = llm.Disabled{}
	if cfg.LLM.Enabled {
		llmClient = llm.NewOllamaClient(cfg.LLM, llmObserver)
	}

	// Providers fall back to synthetic data internally when no API keys
	// are configured, so the wiring is the same either way.
	var providerObserver providers.Observer = providers.NoopObserver{}
	if cfg.Debug {
		providerObserver = providers.NewLogObserver(os.Stderr)
	}
	weather := providers.NewHTTPWeatherService(cfg.Providers, providerObserver)
	flights := providers.NewHTTPFlightService(cfg.Providers, providerObserver)
	hotels := providers.NewHTTPHotelService(cfg.Providers, providerObserver)

	var researchCache cache.ResearchCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		researchCache = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	knowledge := intelligence.NewKnowledgeService(llmClient)
	itinerary := intelligence.NewItineraryService(llmClient)
	summaries := intelligence.NewSummaryService(llmClient)

	estimator := costing.NewModel(costing.DefaultRates())

	research := service.NewResearchService(weather, flights, hotels, knowledge, researchCache, cfg.Providers.DefaultOrigin)
	planner := service.NewPlannerService(itinerary, estimator)
	summarizer := service.NewSummarizerService(summaries)

	app := &cli.App{
		NewOrchestrator: func(onStage service.StageObserver) service.Orchestrator {
			return service.NewOrchestrator(research, planner, summarizer, onStage)
		},
		Trips:     trips,
		Estimator: estimator,
		Config:    cfg,
	}

	return cli.NewRootCmd(app).Execute()
}
