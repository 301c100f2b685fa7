package recorder

import "github.com/messfin/zmtechstockAIagent/internal/model"

// Recorder persists analysis runs for later inspection.
type Recorder interface {
	RecordAnalysis(res *model.AnalysisResult) error
	Close() error
}
