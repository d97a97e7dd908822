// Package decision maps five ordinal answers to a recommendation with a
// weighted sum and two thresholds.
package decision

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
)

// #region engine
// Engine decides outcomes from answer vectors.
type Engine struct {
	config DecisionConfig
}

// NewEngine creates an engine with the given configuration.
func NewEngine(config DecisionConfig) *Engine {
	return &Engine{config: config}
}

// Config returns the engine's configuration.
func (e *Engine) Config() DecisionConfig {
	return e.config
}

// Decide scores the answers and buckets the sum. Answers outside {0,1,2}
// are not rejected; they contribute to the sum like any other value.
func (e *Engine) Decide(answers answer.Vector) Result {
	sum := WeightedSum(answers, e.config.Weights)
	return Result{
		Outcome:     Classify(sum, e.config),
		WeightedSum: sum,
	}
}

// #endregion engine

// #region scoring
// WeightedSum returns the dot product of answers and weights.
func WeightedSum(answers answer.Vector, weights [5]float64) float64 {
	var sum float64
	for i, a := range answers {
		// explicit conversion keeps the product rounded, no fused multiply-add
		sum += float64(float64(a) * weights[i])
	}
	return sum
}

// Classify buckets a weighted sum. Both thresholds are strict.
func Classify(sum float64, config DecisionConfig) Outcome {
	switch {
	case sum > config.YesThreshold:
		return Yes
	case sum > config.ConfusedThreshold:
		return Confused
	default:
		return No
	}
}

// Decide scores five raw answers with the default configuration.
func Decide(q1, q2, q3, q4, q5 int) Outcome {
	return NewEngine(DefaultDecisionConfig()).Decide(answer.FromInts(q1, q2, q3, q4, q5)).Outcome
}

// #endregion scoring

// #region outcome-strings
func (o Outcome) String() string {
	switch o {
	case Yes:
		return "YES"
	case Confused:
		return "Confused"
	case No:
		return "NO"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ParseOutcome is the inverse of String, ignoring case.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return Yes, nil
	case "confused":
		return Confused, nil
	case "no":
		return No, nil
	default:
		return 0, fmt.Errorf("unknown outcome %q", s)
	}
}

// #endregion outcome-strings
