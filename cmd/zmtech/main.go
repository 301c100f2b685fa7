package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/messfin/zmtechstockAIagent/internal/analyzer"
	"github.com/messfin/zmtechstockAIagent/internal/collector"
	"github.com/messfin/zmtechstockAIagent/internal/config"
	"github.com/messfin/zmtechstockAIagent/internal/recorder"
	"github.com/messfin/zmtechstockAIagent/internal/report"
	"github.com/messfin/zmtechstockAIagent/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] zmtech starting...")

	symbol := flag.String("symbol", "", "analyze a single symbol and exit")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and analyzer
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	a := analyzer.New(fetcher)
	a.LookbackDays = cfg.Analysis.LookbackDays
	a.LevelsWindow = cfg.Analysis.LevelsWindow

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init report generator
	var gen *report.GeminiGenerator
	if cfg.Report.Enabled {
		gen = report.NewGeminiGenerator(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Proxy)
		log.Printf("[INFO] report generation enabled (model: %s)", cfg.Gemini.Model)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, a, rec, gen, cfg.Watchlist, cfg.Report.Dir, cfg.Export.Dir)

	// One-shot mode: analyze a single symbol and exit.
	if *symbol != "" {
		if err := sched.RunSymbol(*symbol); err != nil {
			log.Fatalf("[FATAL] analyze %s: %v", *symbol, err)
		}
		return
	}

	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing watchlist analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] zmtech is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] zmtech stopped")
}
