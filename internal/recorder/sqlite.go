package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// SQLiteRecorder persists one row per analysis run to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			close          REAL,
			rsi            REAL,
			macd           REAL,
			macd_signal    REAL,
			macd_histogram REAL,
			ema9           REAL,
			ema20          REAL,
			ema50          REAL,
			ema200         REAL,
			bb_upper       REAL,
			bb_middle      REAL,
			bb_lower       REAL,
			atr            REAL,
			stoch_k        REAL,
			stoch_d        REAL,
			vwap           REAL,
			pivot          REAL,
			r1             REAL,
			r2             REAL,
			r3             REAL,
			s1             REAL,
			s2             REAL,
			s3             REAL,
			trend_short    TEXT,
			trend_medium   TEXT,
			trend_long     TEXT,
			trend_overall  TEXT,
			volume_ratio   REAL,
			volume_regime  TEXT,
			buy_signals    INTEGER,
			sell_signals   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON analysis_runs(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis inserts the latest-bar scalar summary of one run.
func (r *SQLiteRecorder) RecordAnalysis(res *model.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := res.Latest()
	buys, sells := res.SignalCounts()

	_, err := r.db.Exec(`INSERT INTO analysis_runs
		(timestamp, symbol, close, rsi, macd, macd_signal, macd_histogram,
		 ema9, ema20, ema50, ema200,
		 bb_upper, bb_middle, bb_lower, atr, stoch_k, stoch_d, vwap,
		 pivot, r1, r2, r3, s1, s2, s3,
		 trend_short, trend_medium, trend_long, trend_overall,
		 volume_ratio, volume_regime, buy_signals, sell_signals)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Symbol,
		latest.Close, latest.RSI, latest.MACD, latest.Signal, latest.Histogram,
		latest.EMA9, latest.EMA20, latest.EMA50, latest.EMA200,
		latest.BBUpper, latest.BBMiddle, latest.BBLower,
		latest.ATR, latest.StochK, latest.StochD, latest.VWAP,
		res.Levels.Pivot, res.Levels.R1, res.Levels.R2, res.Levels.R3,
		res.Levels.S1, res.Levels.S2, res.Levels.S3,
		string(res.Trend.ShortTerm), string(res.Trend.MediumTerm),
		string(res.Trend.LongTerm), string(res.Trend.Overall),
		res.Volume.Ratio, string(res.Volume.Regime),
		buys, sells,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
