package logging

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table.
type DecisionEntry struct {
	RunID       string // generated when empty
	TriggerType string // "cli" | "mcp"
	AnswersJSON string // JSON array of the five raw answers
	WeightedSum float64
	Outcome     string // "YES" | "Confused" | "NO"
	ConfigJSON  string // decision config active at decision time
	CreatedAt   time.Time
}

// #endregion decision-entry
