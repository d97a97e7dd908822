package store

import (
	"time"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
)

// #region run-record
// RunRecord is one recorded decision run.
type RunRecord struct {
	ID          int64
	RunID       string
	Answers     answer.Vector
	WeightedSum float64
	Outcome     string // "YES" | "Confused" | "NO"
	TriggerType string // "cli" | "mcp"
	ConfigJSON  string
	CreatedAt   time.Time
}

// #endregion run-record

// #region outcome-count
// OutcomeCount is the number of recorded runs per outcome.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// #endregion outcome-count
