// Package scheduler runs the watchlist analysis on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/messfin/zmtechstockAIagent/internal/analyzer"
	"github.com/messfin/zmtechstockAIagent/internal/export"
	"github.com/messfin/zmtechstockAIagent/internal/recorder"
	"github.com/messfin/zmtechstockAIagent/internal/report"
)

// Scheduler manages the periodic watchlist runs.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyzer.Analyzer
	Recorder  recorder.Recorder
	Generator *report.GeminiGenerator // nil when reports are disabled
	Watchlist []string
	ReportDir string
	ExportDir string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. generator may be nil.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, rec recorder.Recorder, gen *report.GeminiGenerator, watchlist []string, reportDir, exportDir string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  a,
		Recorder:  rec,
		Generator: gen,
		Watchlist: watchlist,
		ReportDir: reportDir,
		ExportDir: exportDir,
		Ctx:       ctx,
	}
}

// Register registers the daily watchlist task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Printf("[INFO] running watchlist analysis (%d symbols)", len(s.Watchlist))
	for _, symbol := range s.Watchlist {
		if err := s.RunSymbol(symbol); err != nil {
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
		}
	}
}

// RunSymbol analyzes one symbol, records the run, exports the table, and
// generates the AI report when a generator is configured.
func (s *Scheduler) RunSymbol(symbol string) error {
	res, err := s.Analyzer.Analyze(symbol)
	if err != nil {
		return err
	}

	latest := res.Latest()
	log.Printf("[INFO] %s: close=%.2f rsi=%.1f macd=%+.4f trend=%s volume=%s",
		symbol, latest.Close, latest.RSI, latest.MACD, res.Trend.Overall, res.Volume.Regime)

	if err := s.Recorder.RecordAnalysis(res); err != nil {
		log.Printf("[ERROR] record %s: %v", symbol, err)
	}

	if s.ExportDir != "" {
		if err := os.MkdirAll(s.ExportDir, 0o755); err != nil {
			log.Printf("[WARN] create export dir: %v", err)
		} else {
			path := filepath.Join(s.ExportDir, fmt.Sprintf("%s_%s.csv", symbol, time.Now().Format("20060102")))
			if err := export.WriteFile(path, res); err != nil {
				log.Printf("[ERROR] export %s: %v", symbol, err)
			}
		}
	}

	if s.Generator != nil {
		text, err := s.Generator.GenerateWithRetry(s.Ctx, res, 2)
		if err != nil {
			log.Printf("[ERROR] generate report for %s: %v", symbol, err)
			return nil // analysis itself succeeded
		}
		if err := s.saveReport(symbol, text); err != nil {
			log.Printf("[ERROR] save report for %s: %v", symbol, err)
		}
	}
	return nil
}

func (s *Scheduler) saveReport(symbol, text string) error {
	if err := os.MkdirAll(s.ReportDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(s.ReportDir, fmt.Sprintf("%s_analysis_%s.txt", symbol, time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Printf("[INFO] report saved: %s", path)
	return nil
}
