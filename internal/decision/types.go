package decision

// #region outcome
// Outcome is the recommendation produced from an answer vector.
type Outcome int

const (
	Yes      Outcome = 0
	Confused Outcome = 1
	No       Outcome = 2
)

// #endregion outcome

// #region decision-config
// DecisionConfig holds the per-question weights and the two bucket thresholds.
type DecisionConfig struct {
	Weights           [5]float64 `json:"weights"`
	YesThreshold      float64    `json:"yes_threshold"`      // sum strictly above -> Yes
	ConfusedThreshold float64    `json:"confused_threshold"` // sum strictly above -> Confused
}

// DefaultDecisionConfig returns the compiled-in weights and thresholds.
func DefaultDecisionConfig() DecisionConfig {
	return DecisionConfig{
		Weights:           [5]float64{1.0, 1.2, 1.5, 1.1, 1.0},
		YesThreshold:      8,
		ConfusedThreshold: 3,
	}
}

// #endregion decision-config

// #region result
// Result is the output of one decision.
type Result struct {
	Outcome     Outcome
	WeightedSum float64
}

// #endregion result
