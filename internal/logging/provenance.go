package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/google/uuid"
)

// #region new-entry
// NewDecisionEntry builds an entry for one decision, capturing the answers
// and the configuration that produced the result.
func NewDecisionEntry(trigger string, answers answer.Vector, result decision.Result, config decision.DecisionConfig) (DecisionEntry, error) {
	answersJSON, err := json.Marshal(answers.Ints())
	if err != nil {
		return DecisionEntry{}, fmt.Errorf("marshal answers: %w", err)
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return DecisionEntry{}, fmt.Errorf("marshal config: %w", err)
	}
	return DecisionEntry{
		TriggerType: trigger,
		AnswersJSON: string(answersJSON),
		WeightedSum: result.WeightedSum,
		Outcome:     result.Outcome.String(),
		ConfigJSON:  string(configJSON),
	}, nil
}

// #endregion new-entry

// #region log-decision
// LogDecision writes an entry to the decision_log table and returns its run ID.
func LogDecision(db *sql.DB, entry DecisionEntry) (string, error) {
	if entry.RunID == "" {
		entry.RunID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (run_id, trigger_type, answers_json, weighted_sum, outcome, config_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.TriggerType,
		entry.AnswersJSON,
		entry.WeightedSum,
		entry.Outcome,
		nullIfEmpty(entry.ConfigJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("log decision: %w", err)
	}
	return entry.RunID, nil
}

// #endregion log-decision

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
